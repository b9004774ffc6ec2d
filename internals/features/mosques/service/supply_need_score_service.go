package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sabeel_backend/internals/features/mosques/model"
)

/* =========================================================
   SUPPLY NEED SCORER (per product line)
   - quantity deficit 0-60
   - staleness        0-25
   - active flag      0-15
========================================================= */

type SupplyNeedScoreService struct {
	DB *gorm.DB
}

func NewSupplyNeedScoreService(db *gorm.DB) *SupplyNeedScoreService {
	return &SupplyNeedScoreService{DB: db}
}

// CalculateNeedScore is pure; staleness is measured against the line's
// own updated_at.
func (s *SupplyNeedScoreService) CalculateNeedScore(sup *model.MosqueSupplyModel, now time.Time) int {
	return Score([]WeightedComponent{
		{Name: "quantity_deficit", Points: quantityDeficitPoints(sup.MosqueSupplyCurrentQuantity, sup.MosqueSupplyRequiredQuantity), Max: 60},
		{Name: "staleness", Points: stalenessPoints(sup.MosqueSupplyUpdatedAt, now), Max: 25},
		{Name: "active_flag", Points: activeFlagPoints(sup.MosqueSupplyIsActive), Max: 15},
	})
}

func quantityDeficitPoints(current, required int) int {
	if required <= 0 {
		return 0
	}
	pct := float64(current) / float64(required) * 100
	switch {
	case pct < 20:
		return 60
	case pct < 50:
		return 40
	case pct < 80:
		return 20
	default:
		return 0
	}
}

func stalenessPoints(updatedAt, now time.Time) int {
	days := int(now.Sub(updatedAt).Hours() / 24)
	switch {
	case days >= 30:
		return 25
	case days >= 14:
		return 15
	case days >= 7:
		return 5
	default:
		return 0
	}
}

func activeFlagPoints(isActive bool) int {
	if isActive {
		return 15
	}
	return 0
}

// UpdateSuppliesNeedScores recomputes every supply line of a mosque in
// one batch. Invoke after any create/edit of the mosque's supply set;
// tx may be nil → uses s.DB.
func (s *SupplyNeedScoreService) UpdateSuppliesNeedScores(tx *gorm.DB, mosqueID uuid.UUID) error {
	db := s.DB
	if tx != nil {
		db = tx
	}

	var supplies []model.MosqueSupplyModel
	if err := db.Where("mosque_supply_mosque_id = ?", mosqueID).Find(&supplies).Error; err != nil {
		return err
	}

	now := time.Now()
	for i := range supplies {
		sup := &supplies[i]
		score := s.CalculateNeedScore(sup, now)
		level := TierFor(score)

		// UpdateColumns keeps updated_at untouched: a score write must
		// not reset the staleness signal it was derived from.
		if err := db.Model(&model.MosqueSupplyModel{}).
			Where("mosque_supply_id = ?", sup.MosqueSupplyID).
			UpdateColumns(map[string]any{
				"mosque_supply_need_score": score,
				"mosque_supply_need_level": level,
			}).Error; err != nil {
			return err
		}
		sup.MosqueSupplyNeedScore = score
		sup.MosqueSupplyNeedLevel = level
	}
	return nil
}
