package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httpresp"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, ok := intQuery(c, "limit", 100)
	if !ok || limit < 1 || limit > 500 {
		httperr.BadRequest(c, "invalid_limit", "limit must be between 1 and 500")
		return
	}

	q := h.db.Model(&models.AuditLog{}).Order("created_at DESC").Limit(limit)

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to load audit logs")
		return
	}

	httpresp.List(c, logs)
}
