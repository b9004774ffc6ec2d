package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sabeel_backend/internals/features/mosques/model"
)

/* =========================================================
   WATER NEED SCORER
   Weights (max severity sums to 100):
   - water-level deficit      0-50
   - time since last delivery 0-30
   - historical usage         0-15
   - geographic/base factor   0-5
========================================================= */

type NeedScoreService struct {
	DB *gorm.DB
}

func NewNeedScoreService(db *gorm.DB) *NeedScoreService {
	return &NeedScoreService{DB: db}
}

// DeliveryHistory is the delivered-delivery snapshot the scorer needs.
// Loaded separately so the calculation itself stays pure and testable.
type DeliveryHistory struct {
	LastDeliveredAt       *time.Time
	LitersLastThreeMonths int64
}

// CalculateNeedScore is pure: same mosque, history and clock always
// produce the same score.
func (s *NeedScoreService) CalculateNeedScore(m *model.MosqueModel, hist DeliveryHistory, now time.Time) int {
	return Score([]WeightedComponent{
		{Name: "water_level_deficit", Points: waterLevelPoints(m.MosqueCurrentWaterLevel, m.MosqueRequiredWaterLevel), Max: 50},
		{Name: "time_since_delivery", Points: timeSinceDeliveryPoints(hist.LastDeliveredAt, now), Max: 30},
		{Name: "historical_usage", Points: historicalUsagePoints(hist.LitersLastThreeMonths, m.MosqueRequiredWaterLevel), Max: 15},
		{Name: "geographic_base", Points: geographicBasePoints(m.MosqueIsActive), Max: 5},
	})
}

// waterLevelPoints: 0-50. Below 20% of required → max; at or above
// required → 0; linear in between, truncated.
func waterLevelPoints(current, required int) int {
	if required == 0 {
		return 0
	}
	pct := float64(current) / float64(required) * 100
	if pct < 20 {
		return 50
	}
	if pct >= 100 {
		return 0
	}
	return int(50 * (1 - pct/100))
}

// timeSinceDeliveryPoints: 0-30. No delivered delivery at all → max.
func timeSinceDeliveryPoints(lastDeliveredAt *time.Time, now time.Time) int {
	if lastDeliveredAt == nil {
		return 30
	}
	days := int(now.Sub(*lastDeliveredAt).Hours() / 24)
	if days >= 30 {
		return 30
	}
	if days < 7 {
		return 0
	}
	return int(30 * float64(days-7) / 23)
}

// historicalUsagePoints: 0-15, from average liters delivered per month
// over the trailing 3 months as a percentage of the required level.
func historicalUsagePoints(litersLastThreeMonths int64, required int) int {
	if required <= 0 {
		return 0
	}
	averagePerMonth := float64(litersLastThreeMonths) / 3
	usagePct := averagePerMonth / float64(required) * 100
	switch {
	case usagePct > 80:
		return 15
	case usagePct > 50:
		return 10
	case usagePct > 20:
		return 5
	default:
		return 0
	}
}

// geographicBasePoints: flat 2 for an active mosque. Placeholder weight
// reserved for future geographic signals; must stay stable.
func geographicBasePoints(isActive bool) int {
	if isActive {
		return 2
	}
	return 0
}

// LoadDeliveryHistory reads the delivered history for one mosque.
// tx may be nil → uses s.DB.
func (s *NeedScoreService) LoadDeliveryHistory(tx *gorm.DB, mosqueID uuid.UUID, now time.Time) (DeliveryHistory, error) {
	db := s.DB
	if tx != nil {
		db = tx
	}

	var hist DeliveryHistory

	var last struct {
		DeliveryActualDeliveryDate *time.Time `gorm:"column:delivery_actual_delivery_date"`
	}
	err := db.Table("deliveries").
		Select("delivery_actual_delivery_date").
		Where("delivery_mosque_id = ? AND delivery_status = ? AND delivery_actual_delivery_date IS NOT NULL", mosqueID, "delivered").
		Order("delivery_actual_delivery_date DESC").
		Limit(1).Take(&last).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return hist, err
	}
	if err == nil {
		hist.LastDeliveredAt = last.DeliveryActualDeliveryDate
	}

	threeMonthsAgo := now.AddDate(0, -3, 0)
	var total *int64
	if err := db.Table("deliveries").
		Select("SUM(delivery_liters_delivered)").
		Where("delivery_mosque_id = ? AND delivery_status = ? AND delivery_actual_delivery_date >= ?", mosqueID, "delivered", threeMonthsAgo).
		Scan(&total).Error; err != nil {
		return hist, err
	}
	if total != nil {
		hist.LitersLastThreeMonths = *total
	}

	return hist, nil
}

// UpdateNeedLevel recomputes and persists need_score / need_level for
// one mosque. Callers must invoke it explicitly after any change that
// can affect the inputs (water level edits, delivery completion); it
// never fires from a model hook, so a score write cannot re-trigger it.
func (s *NeedScoreService) UpdateNeedLevel(tx *gorm.DB, m *model.MosqueModel) error {
	db := s.DB
	if tx != nil {
		db = tx
	}

	now := time.Now()
	hist, err := s.LoadDeliveryHistory(db, m.MosqueID, now)
	if err != nil {
		return err
	}

	score := s.CalculateNeedScore(m, hist, now)
	level := TierFor(score)

	if err := db.Model(&model.MosqueModel{}).
		Where("mosque_id = ?", m.MosqueID).
		Updates(map[string]any{
			"mosque_need_score": score,
			"mosque_need_level": level,
		}).Error; err != nil {
		return err
	}

	m.MosqueNeedScore = score
	m.MosqueNeedLevel = level
	return nil
}
