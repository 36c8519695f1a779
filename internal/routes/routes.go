package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/audit"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/clock"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/config"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/handlers"
	infraRepo "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/infra/repository"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/lock"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/middleware"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/notify"
	ucScheduling "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/usecase/scheduling"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	locker lock.Locker,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)
	clk := clock.System()

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifyDispatcher := notify.NewDispatcher(notify.LogSink{}, cfg.NotifyQueueSize)

	// ======================================================
	// USE CASES
	// ======================================================
	submitAvailabilityUC := ucScheduling.NewSubmitAvailability(
		schedulingRepo,
		auditDispatcher,
		clk,
	)

	listMyAvailabilityUC := ucScheduling.NewListMyAvailability(schedulingRepo)

	updateBlockUC := ucScheduling.NewUpdateBlock(schedulingRepo, auditDispatcher)
	deleteBlockUC := ucScheduling.NewDeleteBlock(schedulingRepo, auditDispatcher)

	listBookableSlotsUC := ucScheduling.NewListBookableSlots(schedulingRepo)

	scheduleInterviewUC := ucScheduling.NewScheduleInterview(
		schedulingRepo,
		locker,
		auditDispatcher,
		notifyDispatcher,
	)

	cancelInterviewUC := ucScheduling.NewCancelInterview(
		schedulingRepo,
		auditDispatcher,
		notifyDispatcher,
	)

	addMeetingLinkUC := ucScheduling.NewAddMeetingLink(
		schedulingRepo,
		auditDispatcher,
		notifyDispatcher,
		clk,
	)

	submitFeedbackUC := ucScheduling.NewSubmitFeedback(
		schedulingRepo,
		auditDispatcher,
		clk,
	)

	markStatusUC := ucScheduling.NewMarkSessionStatus(schedulingRepo, auditDispatcher)

	listSessionsUC := ucScheduling.NewListSessions(schedulingRepo, clk)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	availabilityHandler := handlers.NewAvailabilityHandler(
		submitAvailabilityUC,
		listMyAvailabilityUC,
		updateBlockUC,
		deleteBlockUC,
	)

	interviewHandler := handlers.NewInterviewHandler(
		listBookableSlotsUC,
		scheduleInterviewUC,
		cancelInterviewUC,
		addMeetingLinkUC,
		submitFeedbackUC,
		markStatusUC,
		listSessionsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// PANELIST AVAILABILITY
			// ------------------------------
			panelists := secured.Group("/panelists")
			panelists.Use(middleware.RequireRoles(models.RolePanelist, models.RoleFaculty))
			{
				panelists.POST("/availability", availabilityHandler.Submit)
				panelists.GET("/availability", availabilityHandler.ListMine)
				panelists.PUT("/availability/:id", availabilityHandler.Update)
				panelists.DELETE("/availability/:id", availabilityHandler.Delete)
			}

			// ------------------------------
			// INTERVIEWS
			// ------------------------------
			interviews := secured.Group("/interviews")
			{
				hr := interviews.Group("/")
				hr.Use(middleware.RequireRoles(models.RoleHR, models.RoleAdmin))
				{
					hr.GET("/available-slots", interviewHandler.AvailableSlots)
					hr.POST("/schedule", interviewHandler.Schedule)
					hr.PATCH("/:id/cancel", interviewHandler.Cancel)
					hr.PATCH("/:id/status", interviewHandler.MarkStatus)
					hr.GET("/scheduled", interviewHandler.ListScheduled)
					hr.GET("/upcoming", interviewHandler.ListUpcoming)
					hr.GET("/candidate/:id", interviewHandler.ListByCandidate)
				}

				panel := interviews.Group("/")
				panel.Use(middleware.RequireRoles(models.RolePanelist, models.RoleFaculty))
				{
					panel.GET("/my-sessions", interviewHandler.MySessions)
					panel.PUT("/:id/meeting-link", interviewHandler.AddMeetingLink)
					panel.PUT("/:id/feedback", interviewHandler.SubmitFeedback)
				}
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRoles(models.RoleAdmin))
			{
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
