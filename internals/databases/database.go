package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sabeel_backend/internals/configs"
	activityModel "sabeel_backend/internals/features/activitylog/model"
	deliveryModel "sabeel_backend/internals/features/deliveries/model"
	mosqueModel "sabeel_backend/internals/features/mosques/model"
	requestModel "sabeel_backend/internals/features/requests/model"
	truckModel "sabeel_backend/internals/features/trucks/model"
	userModel "sabeel_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sabeel&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&mosqueModel.MosqueModel{},
		&mosqueModel.MosqueSupplyModel{},
		&truckModel.TruckModel{},
		&requestModel.NeedRequestModel{},
		&requestModel.NeedRequestSupplyModel{},
		&deliveryModel.DeliveryModel{},
		&activityModel.ActivityLogModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migrations applied.")
}
