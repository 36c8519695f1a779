package scheduling

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/audit"
	domain "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/domain/interview"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/lock"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/notify"
)

// fakeRepo is an in-memory domain.Repository mirroring the storage
// semantics the gorm implementation provides, including the insert-time
// re-checks of CreateSessionIfFree.
type fakeRepo struct {
	users        map[uint]*models.User
	candidates   map[uint]*models.Candidate
	interviewers map[uint]*models.Interviewer
	blocks       map[uint]*models.AvailabilityBlock
	sessions     map[uint]*models.InterviewSession

	nextInterviewerID uint
	nextBlockID       uint
	nextSessionID     uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        map[uint]*models.User{},
		candidates:   map[uint]*models.Candidate{},
		interviewers: map[uint]*models.Interviewer{},
		blocks:       map[uint]*models.AvailabilityBlock{},
		sessions:     map[uint]*models.InterviewSession{},
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

// -------- seeding helpers --------

func (f *fakeRepo) addUser(u models.User) *models.User {
	cp := u
	if cp.Status == "" {
		cp.Status = models.UserActive
	}
	f.users[cp.ID] = &cp
	return &cp
}

func (f *fakeRepo) addCandidate(c models.Candidate) *models.Candidate {
	cp := c
	if cp.Status == "" {
		cp.Status = models.CandidateActive
	}
	f.candidates[cp.ID] = &cp
	return &cp
}

func (f *fakeRepo) addInterviewer(iv models.Interviewer) *models.Interviewer {
	cp := iv
	if cp.ID == 0 {
		f.nextInterviewerID++
		cp.ID = f.nextInterviewerID
	} else if cp.ID > f.nextInterviewerID {
		f.nextInterviewerID = cp.ID
	}
	f.interviewers[cp.ID] = &cp
	return &cp
}

func (f *fakeRepo) addBlock(b models.AvailabilityBlock) *models.AvailabilityBlock {
	cp := b
	if cp.ID == 0 {
		f.nextBlockID++
		cp.ID = f.nextBlockID
	} else if cp.ID > f.nextBlockID {
		f.nextBlockID = cp.ID
	}
	f.blocks[cp.ID] = &cp
	return &cp
}

// -------- identity / candidates --------

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetCandidateByID(_ context.Context, id uint) (*models.Candidate, error) {
	c, ok := f.candidates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

// -------- interviewer --------

func (f *fakeRepo) FindInterviewerByUserID(_ context.Context, userID uint) (*models.Interviewer, error) {
	for _, iv := range f.interviewers {
		if iv.UserID == userID {
			return iv, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetOrCreateInterviewer(ctx context.Context, userID uint) (*models.Interviewer, error) {
	if iv, err := f.FindInterviewerByUserID(ctx, userID); err == nil {
		return iv, nil
	}
	return f.addInterviewer(models.Interviewer{
		UserID:              userID,
		MaxInterviewsPerDay: 5,
		IsActive:            true,
	}), nil
}

func (f *fakeRepo) GetInterviewerByID(_ context.Context, id uint) (*models.Interviewer, error) {
	iv, ok := f.interviewers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return iv, nil
}

// -------- availability blocks --------

func (f *fakeRepo) ReplaceAvailability(
	_ context.Context,
	interviewerID uint,
	days []domain.DayBlocks,
) ([]models.AvailabilityBlock, error) {

	var saved []models.AvailabilityBlock
	for _, day := range days {
		for id, b := range f.blocks {
			if b.InterviewerID == interviewerID && b.AvailableDate == day.Date {
				delete(f.blocks, id)
			}
		}
		for _, b := range day.Blocks {
			b.ID = 0
			b.InterviewerID = interviewerID
			b.AvailableDate = day.Date
			b.IsBooked = false
			b.IsActive = true
			saved = append(saved, *f.addBlock(b))
		}
	}
	return saved, nil
}

func (f *fakeRepo) GetBlockByID(_ context.Context, id uint) (*models.AvailabilityBlock, error) {
	b, ok := f.blocks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (f *fakeRepo) UpdateBlock(_ context.Context, block *models.AvailabilityBlock) error {
	f.blocks[block.ID] = block
	return nil
}

func (f *fakeRepo) DeleteBlock(_ context.Context, block *models.AvailabilityBlock) error {
	delete(f.blocks, block.ID)
	return nil
}

func (f *fakeRepo) ListBlocksByInterviewer(
	_ context.Context,
	interviewerID uint,
	activeOnly bool,
) ([]models.AvailabilityBlock, error) {

	var out []models.AvailabilityBlock
	for _, b := range f.blocks {
		if b.InterviewerID != interviewerID {
			continue
		}
		if activeOnly && !b.IsActive {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeRepo) FindBookableBlocks(
	_ context.Context,
	fromDate string,
	toDate string,
) ([]models.AvailabilityBlock, error) {

	var out []models.AvailabilityBlock
	for _, b := range f.blocks {
		if !b.IsActive || b.IsBooked {
			continue
		}
		// empty bounds are unbounded, matching the SQL range clauses
		if fromDate != "" && b.AvailableDate < fromDate {
			continue
		}
		if toDate != "" && b.AvailableDate > toDate {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

// -------- sessions --------

func (f *fakeRepo) HasActiveSessionForCandidate(_ context.Context, candidateID uint) (bool, error) {
	for _, s := range f.sessions {
		if s.CandidateID == candidateID && s.IsActive && domain.IsOpen(domain.Status(s.SessionStatus)) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) HasOverlappingSession(
	_ context.Context,
	interviewerID uint,
	date string,
	startTime string,
	endTime string,
) (bool, error) {

	for _, s := range f.sessions {
		if s.InterviewerID != interviewerID || s.InterviewDate != date {
			continue
		}
		// only CANCELLED frees the range, matching the SQL predicate
		if !s.IsActive || domain.Status(s.SessionStatus) == domain.StatusCancelled {
			continue
		}
		if domain.RangesOverlap(s.StartTime, s.EndTime, startTime, endTime) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateSessionIfFree(ctx context.Context, session *models.InterviewSession) error {
	overlap, _ := f.HasOverlappingSession(
		ctx, session.InterviewerID, session.InterviewDate, session.StartTime, session.EndTime)
	if overlap {
		return httperr.Conflict("double_booked", "interviewer already has a session at this time")
	}

	busy, _ := f.HasActiveSessionForCandidate(ctx, session.CandidateID)
	if busy {
		return httperr.Conflict("candidate_already_scheduled",
			"candidate already has an active interview scheduled")
	}

	f.nextSessionID++
	session.ID = f.nextSessionID
	cp := *session
	f.sessions[cp.ID] = &cp

	if b, ok := f.blocks[session.BlockID]; ok {
		b.IsBooked = true
	}
	return nil
}

func (f *fakeRepo) GetSessionByID(_ context.Context, id uint) (*models.InterviewSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeRepo) UpdateSession(_ context.Context, session *models.InterviewSession) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeRepo) CancelSession(_ context.Context, session *models.InterviewSession) error {
	f.sessions[session.ID] = session

	stillBooked := false
	for _, s := range f.sessions {
		if s.BlockID == session.BlockID && s.IsActive && domain.IsOpen(domain.Status(s.SessionStatus)) {
			stillBooked = true
			break
		}
	}
	if b, ok := f.blocks[session.BlockID]; ok && !stillBooked {
		b.IsBooked = false
	}
	return nil
}

// -------- session queries --------

func (f *fakeRepo) ListSessionsByCandidate(_ context.Context, candidateID uint) ([]models.InterviewSession, error) {
	var out []models.InterviewSession
	for _, s := range f.sessions {
		if s.CandidateID == candidateID && s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListSessionsByInterviewer(_ context.Context, interviewerID uint) ([]models.InterviewSession, error) {
	var out []models.InterviewSession
	for _, s := range f.sessions {
		if s.InterviewerID == interviewerID && s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActiveSessions(_ context.Context) ([]models.InterviewSession, error) {
	var out []models.InterviewSession
	for _, s := range f.sessions {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListUpcomingSessions(_ context.Context, today string) ([]models.InterviewSession, error) {
	var out []models.InterviewSession
	for _, s := range f.sessions {
		if s.IsActive && s.InterviewDate >= today && domain.IsOpen(domain.Status(s.SessionStatus)) {
			out = append(out, *s)
		}
	}
	return out, nil
}

// ======================================================
// Locker / dispatcher fakes
// ======================================================

type fakeLocker struct {
	held     map[string]bool
	acquired []string
	released []string
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: map[string]bool{}}
}

func (l *fakeLocker) Acquire(_ context.Context, key string, _ time.Duration) (string, error) {
	if l.held[key] {
		return "", lock.ErrNotAcquired
	}
	l.held[key] = true
	l.acquired = append(l.acquired, key)
	return "token-" + key, nil
}

func (l *fakeLocker) Release(_ context.Context, key string, _ string) error {
	l.held[key] = false
	l.released = append(l.released, key)
	return nil
}

type recordingAudit struct {
	events []audit.Event
}

func (a *recordingAudit) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}

type recordingNotifier struct {
	events []notify.Event
}

func (n *recordingNotifier) Dispatch(ev notify.Event) {
	n.events = append(n.events, ev)
}
