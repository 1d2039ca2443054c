package services

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitportal/internal/config"
	"recruitportal/internal/models"
	"recruitportal/internal/notify"
	"recruitportal/internal/repositories"
	"recruitportal/pkg/apperrors"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	config.SetConfig(cfg)
	os.Exit(m.Run())
}

// In-memory фейки репозиториев для юнит-тестов сервисов.
// Хранят указатели: мутации сервиса видны тесту без перечитывания.

func nextID(prefix string, n int) string {
	return fmt.Sprintf("%s-%d", prefix, n)
}

// --- users ---

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = nextID("user", len(r.users)+1)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) ListByRole(role models.UserRole) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) CountByRole() (map[models.UserRole]int64, error) {
	out := make(map[models.UserRole]int64)
	for _, u := range r.users {
		out[u.Role]++
	}
	return out, nil
}

// --- job postings ---

type fakePostingRepo struct {
	postings map[string]*models.JobPosting
}

func newFakePostingRepo() *fakePostingRepo {
	return &fakePostingRepo{postings: make(map[string]*models.JobPosting)}
}

func (r *fakePostingRepo) Create(p *models.JobPosting) error {
	if p.ID == "" {
		p.ID = nextID("posting", len(r.postings)+1)
	}
	r.postings[p.ID] = p
	return nil
}

func (r *fakePostingRepo) FindByID(id string) (*models.JobPosting, error) {
	if p, ok := r.postings[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrJobPostingNotFound
}

func (r *fakePostingRepo) Update(p *models.JobPosting) error {
	r.postings[p.ID] = p
	return nil
}

func (r *fakePostingRepo) ListByEmployer(employerID string) ([]models.JobPosting, error) {
	var out []models.JobPosting
	for _, p := range r.postings {
		if p.EmployerID == employerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostingRepo) ListByStatus(status models.JobPostingStatus) ([]models.JobPosting, error) {
	var out []models.JobPosting
	for _, p := range r.postings {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostingRepo) ListApproved() ([]models.JobPosting, error) {
	return r.ListByStatus(models.JobPostingStatusApproved)
}

func (r *fakePostingRepo) CountByStatus() (map[models.JobPostingStatus]int64, error) {
	out := make(map[models.JobPostingStatus]int64)
	for _, p := range r.postings {
		out[p.Status]++
	}
	return out, nil
}

func (r *fakePostingRepo) CloseExpired(now time.Time) (int64, error) {
	var n int64
	for _, p := range r.postings {
		if p.Status == models.JobPostingStatusApproved && p.Deadline != nil && p.Deadline.Before(now) {
			p.Status = models.JobPostingStatusClosed
			n++
		}
	}
	return n, nil
}

// --- applications ---

type fakeApplicationRepo struct {
	apps map[string]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]*models.Application)}
}

func (r *fakeApplicationRepo) Create(a *models.Application) error {
	if a.ID == "" {
		a.ID = nextID("app", len(r.apps)+1)
	}
	r.apps[a.ID] = a
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	if a, ok := r.apps[id]; ok {
		return a, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) Update(a *models.Application) error {
	r.apps[a.ID] = a
	return nil
}

func (r *fakeApplicationRepo) ListByApplicant(applicantID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.apps {
		if a.ApplicantID == applicantID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByPosting(jobPostingID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.apps {
		if a.JobPostingID == jobPostingID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByStatus(status models.ApplicationStatus) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.apps {
		if a.Status == status {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ExistsForApplicant(jobPostingID, applicantID string) (bool, error) {
	for _, a := range r.apps {
		if a.JobPostingID == jobPostingID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) CountByStatus() (map[models.ApplicationStatus]int64, error) {
	out := make(map[models.ApplicationStatus]int64)
	for _, a := range r.apps {
		out[a.Status]++
	}
	return out, nil
}

// --- tickets ---

type fakeTicketRepo struct {
	tickets map[string]*models.Ticket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]*models.Ticket)}
}

func (r *fakeTicketRepo) Create(t *models.Ticket) error {
	if t.ID == "" {
		t.ID = nextID("ticket", len(r.tickets)+1)
	}
	r.tickets[t.ID] = t
	return nil
}

func (r *fakeTicketRepo) FindByID(id string) (*models.Ticket, error) {
	if t, ok := r.tickets[id]; ok {
		return t, nil
	}
	return nil, repositories.ErrTicketNotFound
}

func (r *fakeTicketRepo) Update(t *models.Ticket) error {
	r.tickets[t.ID] = t
	return nil
}

func (r *fakeTicketRepo) List() ([]models.Ticket, error) {
	var out []models.Ticket
	for _, t := range r.tickets {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTicketRepo) ListByStatus(status models.TicketStatus) ([]models.Ticket, error) {
	var out []models.Ticket
	for _, t := range r.tickets {
		if t.Status == status {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) ListByEmail(email string) ([]models.Ticket, error) {
	var out []models.Ticket
	for _, t := range r.tickets {
		if t.UserEmail == email {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) CountOpen() (int64, error) {
	var n int64
	for _, t := range r.tickets {
		if t.Status == models.TicketStatusOpen {
			n++
		}
	}
	return n, nil
}

// --- transcript requests ---

type fakeTranscriptRepo struct {
	requests map[string]*models.TranscriptRequest
}

func newFakeTranscriptRepo() *fakeTranscriptRepo {
	return &fakeTranscriptRepo{requests: make(map[string]*models.TranscriptRequest)}
}

func (r *fakeTranscriptRepo) Create(req *models.TranscriptRequest) error {
	if req.ID == "" {
		req.ID = nextID("transcript", len(r.requests)+1)
	}
	r.requests[req.ID] = req
	return nil
}

func (r *fakeTranscriptRepo) FindByID(id string) (*models.TranscriptRequest, error) {
	if req, ok := r.requests[id]; ok {
		return req, nil
	}
	return nil, repositories.ErrTranscriptNotFound
}

func (r *fakeTranscriptRepo) Update(req *models.TranscriptRequest) error {
	r.requests[req.ID] = req
	return nil
}

func (r *fakeTranscriptRepo) FindLiveByApplicant(applicantID string) (*models.TranscriptRequest, error) {
	for _, req := range r.requests {
		if req.ApplicantID != applicantID {
			continue
		}
		if req.Status == models.TranscriptRequestStatusPending || req.Status == models.TranscriptRequestStatusApproved {
			return req, nil
		}
	}
	return nil, repositories.ErrTranscriptNotFound
}

func (r *fakeTranscriptRepo) List() ([]models.TranscriptRequest, error) {
	var out []models.TranscriptRequest
	for _, req := range r.requests {
		out = append(out, *req)
	}
	return out, nil
}

func (r *fakeTranscriptRepo) ListByStatus(status models.TranscriptRequestStatus) ([]models.TranscriptRequest, error) {
	var out []models.TranscriptRequest
	for _, req := range r.requests {
		if req.Status == status {
			out = append(out, *req)
		}
	}
	return out, nil
}

// --- challenges ---

type fakeChallengeRepo struct {
	challenges  map[string]*models.SkillChallenge
	submissions map[string]*models.ChallengeSubmission
}

func newFakeChallengeRepo() *fakeChallengeRepo {
	return &fakeChallengeRepo{
		challenges:  make(map[string]*models.SkillChallenge),
		submissions: make(map[string]*models.ChallengeSubmission),
	}
}

func (r *fakeChallengeRepo) CreateChallenge(ch *models.SkillChallenge) error {
	if ch.ID == "" {
		ch.ID = nextID("challenge", len(r.challenges)+1)
	}
	r.challenges[ch.ID] = ch
	return nil
}

func (r *fakeChallengeRepo) FindChallengeByID(id string) (*models.SkillChallenge, error) {
	if ch, ok := r.challenges[id]; ok {
		return ch, nil
	}
	return nil, repositories.ErrChallengeNotFound
}

func (r *fakeChallengeRepo) ListActiveChallenges() ([]models.SkillChallenge, error) {
	var out []models.SkillChallenge
	for _, ch := range r.challenges {
		if ch.Active {
			out = append(out, *ch)
		}
	}
	return out, nil
}

func (r *fakeChallengeRepo) CreateSubmission(sub *models.ChallengeSubmission) error {
	if sub.ID == "" {
		sub.ID = nextID("submission", len(r.submissions)+1)
	}
	r.submissions[sub.ID] = sub
	return nil
}

func (r *fakeChallengeRepo) FindSubmissionByID(id string) (*models.ChallengeSubmission, error) {
	if sub, ok := r.submissions[id]; ok {
		return sub, nil
	}
	return nil, repositories.ErrSubmissionNotFound
}

func (r *fakeChallengeRepo) UpdateSubmission(sub *models.ChallengeSubmission) error {
	r.submissions[sub.ID] = sub
	return nil
}

func (r *fakeChallengeRepo) ListSubmissionsByStudent(studentID string) ([]models.ChallengeSubmission, error) {
	var out []models.ChallengeSubmission
	for _, sub := range r.submissions {
		if sub.StudentID == studentID {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (r *fakeChallengeRepo) ListSubmissionsByStatus(status models.SubmissionStatus) ([]models.ChallengeSubmission, error) {
	var out []models.ChallengeSubmission
	for _, sub := range r.submissions {
		if sub.Status == status {
			out = append(out, *sub)
		}
	}
	return out, nil
}

// --- badges ---

type fakeBadgeRepo struct {
	badges []*models.Badge
}

func newFakeBadgeRepo() *fakeBadgeRepo {
	return &fakeBadgeRepo{}
}

func (r *fakeBadgeRepo) Create(badge *models.Badge) error {
	if badge.ID == "" {
		badge.ID = nextID("badge", len(r.badges)+1)
	}
	r.badges = append(r.badges, badge)
	return nil
}

func (r *fakeBadgeRepo) ListByStudent(studentID string) ([]models.Badge, error) {
	var out []models.Badge
	for _, b := range r.badges {
		if b.StudentID == studentID {
			out = append(out, *b)
		}
	}
	return out, nil
}

// --- audit log ---

type fakeAuditRepo struct {
	entries []*models.AuditLog
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{}
}

func (r *fakeAuditRepo) Create(entry *models.AuditLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeAuditRepo) List(filter repositories.AuditLogFilter) ([]models.AuditLog, int64, error) {
	var out []models.AuditLog
	for _, e := range r.entries {
		if filter.EntityType != "" && e.EntityType != filter.EntityType {
			continue
		}
		if filter.ActorID != "" && e.ActorID != filter.ActorID {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

// --- dispatcher ---

// fakeDispatcher собирает запросы синхронно: доставка в тестах
// не нужна, важен сам факт и содержимое Dispatch.
type fakeDispatcher struct {
	dispatched []notify.Request
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{}
}

func (d *fakeDispatcher) Dispatch(_ context.Context, req notify.Request) {
	d.dispatched = append(d.dispatched, req)
}

func (d *fakeDispatcher) byType(t string) []notify.Request {
	var out []notify.Request
	for _, req := range d.dispatched {
		if req.Type == t {
			out = append(out, req)
		}
	}
	return out
}

// --- assert helpers ---

func assertAppErrorCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr), "expected *apperrors.AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
