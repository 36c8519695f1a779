package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/domain/interview"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// openSessionStatuses are the states that still occupy calendar time.
var openSessionStatuses = []string{
	string(domain.StatusScheduled),
	string(domain.StatusLinkAdded),
}

// --------------------------------------------------
// Identity / candidates
// --------------------------------------------------

func (r *SchedulingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *SchedulingGormRepository) GetCandidateByID(
	ctx context.Context,
	id uint,
) (*models.Candidate, error) {

	var candidate models.Candidate
	if err := r.db.WithContext(ctx).First(&candidate, id).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

// --------------------------------------------------
// Interviewer
// --------------------------------------------------

func (r *SchedulingGormRepository) FindInterviewerByUserID(
	ctx context.Context,
	userID uint,
) (*models.Interviewer, error) {

	var interviewer models.Interviewer
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&interviewer).Error; err != nil {
		return nil, err
	}
	return &interviewer, nil
}

func (r *SchedulingGormRepository) GetOrCreateInterviewer(
	ctx context.Context,
	userID uint,
) (*models.Interviewer, error) {

	var interviewer models.Interviewer
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&interviewer).Error

	if err == nil {
		return &interviewer, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	interviewer = models.Interviewer{
		UserID:              userID,
		MaxInterviewsPerDay: 5,
		IsActive:            true,
	}

	if err := r.db.WithContext(ctx).Create(&interviewer).Error; err != nil {
		return nil, err
	}

	return &interviewer, nil
}

func (r *SchedulingGormRepository) GetInterviewerByID(
	ctx context.Context,
	id uint,
) (*models.Interviewer, error) {

	var interviewer models.Interviewer
	if err := r.db.WithContext(ctx).First(&interviewer, id).Error; err != nil {
		return nil, err
	}
	return &interviewer, nil
}

// --------------------------------------------------
// Availability blocks
// --------------------------------------------------

func (r *SchedulingGormRepository) ReplaceAvailability(
	ctx context.Context,
	interviewerID uint,
	days []domain.DayBlocks,
) ([]models.AvailabilityBlock, error) {

	var saved []models.AvailabilityBlock

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, day := range days {
			if err := tx.
				Where("interviewer_id = ? AND available_date = ?", interviewerID, day.Date).
				Delete(&models.AvailabilityBlock{}).Error; err != nil {
				return err
			}

			for i := range day.Blocks {
				block := day.Blocks[i]
				block.ID = 0
				block.InterviewerID = interviewerID
				block.AvailableDate = day.Date
				block.IsBooked = false
				block.IsActive = true

				if err := tx.Create(&block).Error; err != nil {
					return err
				}
				saved = append(saved, block)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func (r *SchedulingGormRepository) GetBlockByID(
	ctx context.Context,
	id uint,
) (*models.AvailabilityBlock, error) {

	var block models.AvailabilityBlock
	if err := r.db.WithContext(ctx).First(&block, id).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *SchedulingGormRepository) UpdateBlock(
	ctx context.Context,
	block *models.AvailabilityBlock,
) error {
	return r.db.WithContext(ctx).Save(block).Error
}

func (r *SchedulingGormRepository) DeleteBlock(
	ctx context.Context,
	block *models.AvailabilityBlock,
) error {
	return r.db.WithContext(ctx).Delete(block).Error
}

func (r *SchedulingGormRepository) ListBlocksByInterviewer(
	ctx context.Context,
	interviewerID uint,
	activeOnly bool,
) ([]models.AvailabilityBlock, error) {

	q := r.db.WithContext(ctx).
		Where("interviewer_id = ?", interviewerID)

	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var blocks []models.AvailabilityBlock
	if err := q.
		Order("available_date ASC, start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *SchedulingGormRepository) FindBookableBlocks(
	ctx context.Context,
	fromDate string,
	toDate string,
) ([]models.AvailabilityBlock, error) {

	q := r.db.WithContext(ctx).
		Where("is_active = ? AND is_booked = ?", true, false)

	if fromDate != "" {
		q = q.Where("available_date >= ?", fromDate)
	}
	if toDate != "" {
		q = q.Where("available_date <= ?", toDate)
	}

	var blocks []models.AvailabilityBlock
	if err := q.
		Order("available_date ASC, start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

// --------------------------------------------------
// Sessions (create / conflict)
// --------------------------------------------------

func (r *SchedulingGormRepository) HasActiveSessionForCandidate(
	ctx context.Context,
	candidateID uint,
) (bool, error) {
	return r.candidateHasActiveSession(r.db.WithContext(ctx), candidateID)
}

func (r *SchedulingGormRepository) HasOverlappingSession(
	ctx context.Context,
	interviewerID uint,
	date string,
	startTime string,
	endTime string,
) (bool, error) {
	return r.interviewerHasOverlap(
		r.db.WithContext(ctx), interviewerID, date, startTime, endTime)
}

func (r *SchedulingGormRepository) candidateHasActiveSession(
	q *gorm.DB,
	candidateID uint,
) (bool, error) {

	var count int64
	if err := q.
		Model(&models.InterviewSession{}).
		Where(
			"candidate_id = ? AND is_active = ? AND session_status IN ?",
			candidateID, true, openSessionStatuses,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SchedulingGormRepository) interviewerHasOverlap(
	q *gorm.DB,
	interviewerID uint,
	date string,
	startTime string,
	endTime string,
) (bool, error) {

	// Half-open overlap: [a,b) and [c,d) overlap iff a < d and c < b.
	var count int64
	if err := q.
		Model(&models.InterviewSession{}).
		Where(
			"interviewer_id = ? AND interview_date = ? AND is_active = ? "+
				"AND session_status <> ? AND start_time < ? AND end_time > ?",
			interviewerID, date, true,
			string(domain.StatusCancelled), endTime, startTime,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// overlappingSessionsLocked selects, FOR UPDATE, the open sessions that
// occupy any part of the proposed range. Row locks, never a locked
// aggregate: postgres rejects FOR UPDATE combined with count().
func overlappingSessionsLocked(tx *gorm.DB, session *models.InterviewSession) *gorm.DB {
	return tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"interviewer_id = ? AND interview_date = ? AND is_active = ? "+
				"AND session_status <> ? AND start_time < ? AND end_time > ?",
			session.InterviewerID, session.InterviewDate, true,
			string(domain.StatusCancelled), session.EndTime, session.StartTime,
		)
}

// candidateOpenSessionsLocked selects, FOR UPDATE, the candidate's open
// sessions. Built fresh from tx so it never inherits another check's
// statement.
func candidateOpenSessionsLocked(tx *gorm.DB, candidateID uint) *gorm.DB {
	return tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"candidate_id = ? AND is_active = ? AND session_status IN ?",
			candidateID, true, openSessionStatuses,
		)
}

// CreateSessionIfFree re-validates under row locks inside the insert
// transaction so two concurrent schedulers cannot both commit. This is the
// storage-level backstop behind the per-interviewer advisory lock.
func (r *SchedulingGormRepository) CreateSessionIfFree(
	ctx context.Context,
	session *models.InterviewSession,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conflicting []models.InterviewSession
		if err := overlappingSessionsLocked(tx, session).
			Find(&conflicting).Error; err != nil {
			return err
		}
		if len(conflicting) > 0 {
			return httperr.Conflict("double_booked",
				"interviewer already has a session at this time")
		}

		var open []models.InterviewSession
		if err := candidateOpenSessionsLocked(tx, session.CandidateID).
			Find(&open).Error; err != nil {
			return err
		}
		if len(open) > 0 {
			return httperr.Conflict("candidate_already_scheduled",
				"candidate already has an active interview scheduled")
		}

		if err := tx.Create(session).Error; err != nil {
			return err
		}

		return tx.
			Model(&models.AvailabilityBlock{}).
			Where("id = ?", session.BlockID).
			Update("is_booked", true).Error
	})
}

// --------------------------------------------------
// Sessions (state change)
// --------------------------------------------------

func (r *SchedulingGormRepository) GetSessionByID(
	ctx context.Context,
	id uint,
) (*models.InterviewSession, error) {

	var session models.InterviewSession
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SchedulingGormRepository) UpdateSession(
	ctx context.Context,
	session *models.InterviewSession,
) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *SchedulingGormRepository) CancelSession(
	ctx context.Context,
	session *models.InterviewSession,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(session).Error; err != nil {
			return err
		}

		if session.BlockID == 0 {
			return nil
		}

		var stillBooked int64
		if err := tx.
			Model(&models.InterviewSession{}).
			Where(
				"block_id = ? AND is_active = ? AND session_status IN ?",
				session.BlockID, true, openSessionStatuses,
			).
			Count(&stillBooked).Error; err != nil {
			return err
		}

		if stillBooked > 0 {
			return nil
		}

		return tx.
			Model(&models.AvailabilityBlock{}).
			Where("id = ?", session.BlockID).
			Update("is_booked", false).Error
	})
}

// --------------------------------------------------
// Session queries
// --------------------------------------------------

func (r *SchedulingGormRepository) ListSessionsByCandidate(
	ctx context.Context,
	candidateID uint,
) ([]models.InterviewSession, error) {

	var sessions []models.InterviewSession
	if err := r.db.WithContext(ctx).
		Where("candidate_id = ? AND is_active = ?", candidateID, true).
		Order("interview_date DESC, start_time DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *SchedulingGormRepository) ListSessionsByInterviewer(
	ctx context.Context,
	interviewerID uint,
) ([]models.InterviewSession, error) {

	var sessions []models.InterviewSession
	if err := r.db.WithContext(ctx).
		Where("interviewer_id = ? AND is_active = ?", interviewerID, true).
		Order("interview_date DESC, start_time DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *SchedulingGormRepository) ListActiveSessions(
	ctx context.Context,
) ([]models.InterviewSession, error) {

	var sessions []models.InterviewSession
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("interview_date DESC, start_time DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *SchedulingGormRepository) ListUpcomingSessions(
	ctx context.Context,
	today string,
) ([]models.InterviewSession, error) {

	var sessions []models.InterviewSession
	if err := r.db.WithContext(ctx).
		Where(
			"is_active = ? AND interview_date >= ? AND session_status IN ?",
			true, today, openSessionStatuses,
		).
		Order("interview_date ASC, start_time ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
