package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/domain/interview"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httpresp"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/middleware"
	ucScheduling "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type InterviewHandler struct {
	slotsUC    *ucScheduling.ListBookableSlots
	scheduleUC *ucScheduling.ScheduleInterview
	cancelUC   *ucScheduling.CancelInterview
	linkUC     *ucScheduling.AddMeetingLink
	feedbackUC *ucScheduling.SubmitFeedback
	markUC     *ucScheduling.MarkSessionStatus
	listUC     *ucScheduling.ListSessions
}

func NewInterviewHandler(
	slotsUC *ucScheduling.ListBookableSlots,
	scheduleUC *ucScheduling.ScheduleInterview,
	cancelUC *ucScheduling.CancelInterview,
	linkUC *ucScheduling.AddMeetingLink,
	feedbackUC *ucScheduling.SubmitFeedback,
	markUC *ucScheduling.MarkSessionStatus,
	listUC *ucScheduling.ListSessions,
) *InterviewHandler {
	return &InterviewHandler{
		slotsUC:    slotsUC,
		scheduleUC: scheduleUC,
		cancelUC:   cancelUC,
		linkUC:     linkUC,
		feedbackUC: feedbackUC,
		markUC:     markUC,
		listUC:     listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type scheduleInterviewRequest struct {
	CandidateID   uint   `json:"candidate_id" binding:"required"`
	InterviewerID uint   `json:"interviewer_id" binding:"required"`
	BlockID       uint   `json:"availability_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
	Remarks       string `json:"remarks"`
}

type meetingLinkRequest struct {
	MeetingLink string `json:"meeting_link" binding:"required"`
}

type feedbackRequest struct {
	Result  string `json:"result" binding:"required"`
	Remarks string `json:"remarks"`
}

type markStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HR / ADMIN
// ======================================================

func (h *InterviewHandler) AvailableSlots(c *gin.Context) {
	duration, ok := intQuery(c, "duration", 0)
	if !ok {
		httperr.BadRequest(c, "invalid_duration", "duration must be an integer number of minutes")
		return
	}

	groups, err := h.slotsUC.Execute(c.Request.Context(), ucScheduling.ListBookableSlotsInput{
		FromDate:        c.Query("from"),
		ToDate:          c.Query("to"),
		DurationMinutes: duration,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, groups)
}

func (h *InterviewHandler) Schedule(c *gin.Context) {
	var req scheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	result, err := h.scheduleUC.Execute(
		c.Request.Context(),
		middleware.CallerID(c),
		domain.BookingRequest{
			CandidateID:   req.CandidateID,
			InterviewerID: req.InterviewerID,
			BlockID:       req.BlockID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Remarks:       req.Remarks,
		},
	)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, "interview scheduled successfully", result)
}

func (h *InterviewHandler) Cancel(c *gin.Context) {
	sessionID, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "invalid session id")
		return
	}

	if err := h.cancelUC.Execute(
		c.Request.Context(), middleware.CallerID(c), sessionID); err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, "interview cancelled", nil)
}

func (h *InterviewHandler) MarkStatus(c *gin.Context) {
	sessionID, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "invalid session id")
		return
	}

	var req markStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	session, err := h.markUC.Execute(
		c.Request.Context(), middleware.CallerID(c), sessionID, req.Status)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, "session status updated", session)
}

func (h *InterviewHandler) ListScheduled(c *gin.Context) {
	sessions, err := h.listUC.AllActive(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, sessions)
}

func (h *InterviewHandler) ListUpcoming(c *gin.Context) {
	sessions, err := h.listUC.Upcoming(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, sessions)
}

func (h *InterviewHandler) ListByCandidate(c *gin.Context) {
	candidateID, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "invalid candidate id")
		return
	}

	sessions, err := h.listUC.ByCandidate(c.Request.Context(), candidateID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, sessions)
}

// ======================================================
// PANELIST / FACULTY
// ======================================================

func (h *InterviewHandler) MySessions(c *gin.Context) {
	sessions, err := h.listUC.ByInterviewerUser(
		c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, sessions)
}

func (h *InterviewHandler) AddMeetingLink(c *gin.Context) {
	sessionID, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "invalid session id")
		return
	}

	var req meetingLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	session, err := h.linkUC.Execute(
		c.Request.Context(), middleware.CallerID(c), sessionID, req.MeetingLink)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, "meeting link added", gin.H{
		"session_id":   session.ID,
		"meeting_link": session.MeetingLink,
		"status":       session.SessionStatus,
	})
}

func (h *InterviewHandler) SubmitFeedback(c *gin.Context) {
	sessionID, ok := idParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "invalid session id")
		return
	}

	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	session, err := h.feedbackUC.Execute(
		c.Request.Context(), middleware.CallerID(c), sessionID, req.Result, req.Remarks)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, "feedback recorded", gin.H{
		"session_id": session.ID,
		"status":     session.SessionStatus,
		"result":     session.InterviewResult,
	})
}
