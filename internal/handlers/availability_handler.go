package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httpresp"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/middleware"
	ucScheduling "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	submitUC *ucScheduling.SubmitAvailability
	listUC   *ucScheduling.ListMyAvailability
	updateUC *ucScheduling.UpdateBlock
	deleteUC *ucScheduling.DeleteBlock
}

func NewAvailabilityHandler(
	submitUC *ucScheduling.SubmitAvailability,
	listUC *ucScheduling.ListMyAvailability,
	updateUC *ucScheduling.UpdateBlock,
	deleteUC *ucScheduling.DeleteBlock,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		submitUC: submitUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type timeBlockRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Notes     string `json:"notes"`
}

type submitAvailabilityRequest struct {
	// date (YYYY-MM-DD) → desired full block set for that date
	TimeSlots           map[string][]timeBlockRequest `json:"time_slots" binding:"required"`
	SlotDurationMinutes int                           `json:"slot_duration_minutes"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AvailabilityHandler) Submit(c *gin.Context) {
	var req submitAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	days := make(map[string][]ucScheduling.TimeBlockInput, len(req.TimeSlots))
	for date, blocks := range req.TimeSlots {
		for _, b := range blocks {
			days[date] = append(days[date], ucScheduling.TimeBlockInput{
				StartTime: b.StartTime,
				EndTime:   b.EndTime,
				Notes:     b.Notes,
			})
		}
		if len(blocks) == 0 {
			days[date] = []ucScheduling.TimeBlockInput{}
		}
	}

	saved, err := h.submitUC.Execute(c.Request.Context(), ucScheduling.SubmitAvailabilityInput{
		UserID:              middleware.CallerID(c),
		SlotDurationMinutes: req.SlotDurationMinutes,
		Days:                days,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, "availability saved", gin.H{
		"blocks": saved,
		"total":  len(saved),
	})
}

func (h *AvailabilityHandler) ListMine(c *gin.Context) {
	blocks, err := h.listUC.Execute(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, blocks)
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	blockID, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "invalid availability id")
		return
	}

	var req timeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	block, err := h.updateUC.Execute(
		c.Request.Context(),
		middleware.CallerID(c),
		blockID,
		ucScheduling.TimeBlockInput{
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Notes:     req.Notes,
		},
	)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, "availability updated", block)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	blockID, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "invalid availability id")
		return
	}

	if err := h.deleteUC.Execute(
		c.Request.Context(), middleware.CallerID(c), blockID); err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, "availability deleted", nil)
}
