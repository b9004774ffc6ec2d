package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductType is the closed set of supply categories a mosque can stock.
type ProductType string

const (
	ProductDryFood      ProductType = "dry_food"
	ProductHotFood      ProductType = "hot_food"
	ProductMiswak       ProductType = "miswak"
	ProductPrayerMat    ProductType = "prayer_mat"
	ProductPrayerSheets ProductType = "prayer_sheets"
	ProductPrayerTowels ProductType = "prayer_towels"
	ProductQuran        ProductType = "quran"
	ProductQuranHolder  ProductType = "quran_holder"
	ProductTissues      ProductType = "tissues"
)

var AllProductTypes = []ProductType{
	ProductDryFood,
	ProductHotFood,
	ProductMiswak,
	ProductPrayerMat,
	ProductPrayerSheets,
	ProductPrayerTowels,
	ProductQuran,
	ProductQuranHolder,
	ProductTissues,
}

func IsValidProductType(p ProductType) bool {
	for _, t := range AllProductTypes {
		if t == p {
			return true
		}
	}
	return false
}

// MosqueSupplyModel is one inventory line per (mosque, product_type).
// mosque_supply_updated_at doubles as the staleness signal for scoring.
type MosqueSupplyModel struct {
	MosqueSupplyID               uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"mosque_supply_id"`
	MosqueSupplyMosqueID         uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_mosque_supplies_mosque_product" json:"mosque_supply_mosque_id"`
	MosqueSupplyProductType      ProductType `gorm:"type:varchar(20);not null;uniqueIndex:uq_mosque_supplies_mosque_product;index:idx_mosque_supplies_product" json:"mosque_supply_product_type"`
	MosqueSupplyCurrentQuantity  int         `gorm:"not null;default:0" json:"mosque_supply_current_quantity"`
	MosqueSupplyRequiredQuantity int         `gorm:"not null;default:0" json:"mosque_supply_required_quantity"`
	MosqueSupplyNeedScore        int         `gorm:"not null;default:0;index:idx_mosque_supplies_need_score" json:"mosque_supply_need_score"`
	MosqueSupplyNeedLevel        NeedLevel   `gorm:"type:varchar(10);not null;default:'Medium'" json:"mosque_supply_need_level"`
	MosqueSupplyIsActive         bool        `gorm:"not null;default:true" json:"mosque_supply_is_active"`
	MosqueSupplyCreatedAt        time.Time   `gorm:"autoCreateTime" json:"mosque_supply_created_at"`
	MosqueSupplyUpdatedAt        time.Time   `gorm:"autoUpdateTime" json:"mosque_supply_updated_at"`
}

func (MosqueSupplyModel) TableName() string {
	return "mosque_supplies"
}
