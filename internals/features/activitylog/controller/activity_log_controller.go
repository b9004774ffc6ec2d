package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sabeel_backend/internals/features/activitylog/model"
	helper "sabeel_backend/internals/helpers"
)

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

// GET /api/activity-logs?type=
// Newest first; the dashboard feed reads the first page.
func (ctl *ActivityLogController) Index(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.ActivityLogModel{})
	if typ := c.Query("type"); typ != "" {
		q = q.Where("activity_log_type = ?", typ)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count activity logs")
	}

	var logs []model.ActivityLogModel
	if err := q.Order("activity_log_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list activity logs")
	}

	return helper.JsonList(c, "activity logs fetched", logs, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
