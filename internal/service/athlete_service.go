package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/analytics"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/repository"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidSession      = errors.New("session name is required")
	ErrInvalidContentType  = errors.New("invalid or missing image content type")
	ErrPhotoNotFound       = errors.New("photo not found")
	ErrPhotoNotOwned       = errors.New("photo does not belong to this athlete")
	ErrUploadURLError      = errors.New("failed to generate upload URL")
	ErrDownloadURLError    = errors.New("failed to generate download URL")
	ErrPhotoMetadataFailed = errors.New("failed to store photo metadata")
	ErrPhotoDeleteFailed   = errors.New("failed to delete photo")
)

// RecentSessionsLimit caps the sessions listed on the dashboard.
const RecentSessionsLimit = 5

// UploadURLResponse structure for returning URL and object key
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"` // Sent back as photoKey when logging the session
}

// ExerciseSets reports one exercise of a finished session, one flag per set.
type ExerciseSets struct {
	Name string `json:"name"`
	Sets []bool `json:"sets"`
}

type SessionInput struct {
	WorkoutID string                 `json:"workoutId"`
	Name      string                 `json:"name"`
	Duration  string                 `json:"duration"`
	Kind      domain.SessionKind     `json:"kind"`
	PhotoKey  string                 `json:"photoKey"`
	Running   *domain.RunningMetrics `json:"running"`
	Exercises []ExerciseSets         `json:"exercises"`
}

// Dashboard is everything the athlete home screen shows.
type Dashboard struct {
	AthleteID        string                         `json:"athleteId"`
	Name             string                         `json:"name"`
	Today            string                         `json:"today"`
	Notifications    []domain.Notification          `json:"notifications"`
	WeeklyFrequency  []analytics.DayBucket          `json:"weeklyFrequency"`
	TopExercises     []analytics.ExerciseEngagement `json:"topExercises"`
	SkippedExercises []analytics.SkipShare          `json:"skippedExercises"`
	PlanProgress     []analytics.PlanProgress       `json:"planProgress"`
	RecentSessions   []domain.SessionLogEntry       `json:"recentSessions"`
	Streak           int                            `json:"streak"`
	TotalSessions    int                            `json:"totalSessions"`
}

type AthleteService interface {
	Plans(ctx context.Context, athleteID string) ([]domain.Plan, error)
	LogSession(ctx context.Context, athleteID string, input SessionInput) (*domain.SessionLogEntry, error)
	Dashboard(ctx context.Context, athleteID string) (*Dashboard, error)

	// Photo upload process
	RequestPhotoUpload(ctx context.Context, athleteID, contentType string) (*UploadURLResponse, error)
	PhotoURL(ctx context.Context, athleteID, objectKey string) (string, error)
	DeletePhoto(ctx context.Context, athleteID, objectKey string) error
}

// athleteService implements the AthleteService interface.
type athleteService struct {
	athletes    athleteStore
	photoRepo   repository.PhotoRepository
	fileStorage storage.FileStorage
	photoTTL    time.Duration
	loc         *time.Location
	now         func() time.Time
}

// NewAthleteService creates a new instance of athleteService. A nil now
// uses time.Now.
func NewAthleteService(
	athleteRepo repository.AthleteRepository,
	photoRepo repository.PhotoRepository,
	fileStorage storage.FileStorage,
	fallback []domain.Athlete,
	photoTTL time.Duration,
	loc *time.Location,
	now func() time.Time,
) AthleteService {
	if photoTTL <= 0 {
		photoTTL = storage.DefaultPresignedURLExpiry
	}
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &athleteService{
		athletes:    athleteStore{repo: athleteRepo, fallback: fallback},
		photoRepo:   photoRepo,
		fileStorage: fileStorage,
		photoTTL:    photoTTL,
		loc:         loc,
		now:         now,
	}
}

// Plans returns the athlete's published plans. Drafts stay coach-only.
func (s *athleteService) Plans(ctx context.Context, athleteID string) ([]domain.Plan, error) {
	athlete, _, err := s.athletes.load(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	return publishedPlans(athlete.Plans), nil
}

func publishedPlans(plans []domain.Plan) []domain.Plan {
	published := make([]domain.Plan, 0, len(plans))
	for _, p := range plans {
		if p.IsPublished() {
			published = append(published, p)
		}
	}
	return published
}

// === Sessions ===

// LogSession appends a session to the athlete's history and refreshes the
// stored analytics. The session is kept even if the analytics write fails.
func (s *athleteService) LogSession(ctx context.Context, athleteID string, input SessionInput) (*domain.SessionLogEntry, error) {
	athlete, stored, err := s.athletes.load(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if input.WorkoutID != "" {
		plan, ok := athlete.PlanByID(input.WorkoutID)
		if !ok || !plan.IsPublished() {
			return nil, ErrPlanNotFound
		}
		if name == "" {
			name = plan.Title
		}
	}
	if name == "" {
		return nil, ErrInvalidSession
	}
	if input.PhotoKey != "" && !strings.HasPrefix(input.PhotoKey, photoPrefix(athleteID)) {
		return nil, ErrPhotoNotOwned
	}

	kind := input.Kind
	if kind == "" {
		kind = domain.KindStrength
	}
	if kind != domain.KindStrength && kind != domain.KindRunning {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidSession, kind)
	}

	now := nowIn(s.now, s.loc)
	entry := domain.SessionLogEntry{
		ID:        uuid.NewString(),
		WorkoutID: input.WorkoutID,
		Name:      name,
		Duration:  input.Duration,
		Date:      analytics.FormatDate(now),
		Timestamp: now.UnixMilli(),
		PhotoKey:  input.PhotoKey,
		Running:   input.Running,
		Kind:      kind,
	}

	// AppendSession needs an existing document.
	if !stored {
		if err = s.athletes.save(ctx, athlete, false, map[string]interface{}{}); err != nil {
			return nil, err
		}
	}
	if err = s.athletes.repo.AppendSession(ctx, athleteID, entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		logrus.WithError(err).WithField("athleteId", athleteID).Error("append session")
		return nil, err
	}

	outcomes := make([]analytics.ExerciseOutcome, 0, len(input.Exercises))
	for _, ex := range input.Exercises {
		outcomes = append(outcomes, analytics.OutcomeFromSets(strings.TrimSpace(ex.Name), ex.Sets))
	}
	summary := analytics.ApplySession(athlete.Analytics, outcomes)
	history := append(append([]domain.SessionLogEntry{}, athlete.History...), entry)
	summary.Streak = analytics.Streak(history, now)

	if err = s.athletes.save(ctx, athlete, true, map[string]interface{}{"analytics": summary}); err != nil {
		logrus.WithField("sessionId", entry.ID).Warn("session stored without analytics update")
	}

	logrus.WithFields(logrus.Fields{
		"athleteId": athleteID,
		"sessionId": entry.ID,
		"kind":      entry.Kind,
	}).Info("session logged")
	return &entry, nil
}

// Dashboard aggregates the athlete's current state. Streak is recomputed
// from history since the stored value only changes when a session is logged.
func (s *athleteService) Dashboard(ctx context.Context, athleteID string) (*Dashboard, error) {
	athlete, _, err := s.athletes.load(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	now := nowIn(s.now, s.loc)
	plans := publishedPlans(athlete.Plans)
	top := analytics.TopExercises(athlete.Analytics)

	return &Dashboard{
		AthleteID:        athlete.ID,
		Name:             athlete.Name,
		Today:            analytics.FormatDate(now),
		Notifications:    analytics.RenewalNotifications(plans, athlete.History, now),
		WeeklyFrequency:  analytics.WeeklyFrequency(athlete.History, now),
		TopExercises:     top,
		SkippedExercises: analytics.SkipBreakdown(top),
		PlanProgress:     analytics.ProgressForAll(plans, athlete.History),
		RecentSessions:   recentSessions(athlete.History, RecentSessionsLimit),
		Streak:           analytics.Streak(athlete.History, now),
		TotalSessions:    len(athlete.History),
	}, nil
}

// recentSessions returns the newest sessions first.
func recentSessions(history []domain.SessionLogEntry, limit int) []domain.SessionLogEntry {
	recent := append([]domain.SessionLogEntry{}, history...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp > recent[j].Timestamp
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// === Photo Upload Process ===

func photoPrefix(athleteID string) string {
	return path.Join("sessions", athleteID) + "/"
}

// RequestPhotoUpload records the photo metadata and returns a pre-signed URL
// the athlete uploads the image to.
func (s *athleteService) RequestPhotoUpload(ctx context.Context, athleteID, contentType string) (*UploadURLResponse, error) {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	parts := strings.Split(contentType, "/")
	if len(parts) != 2 || parts[0] != "image" || parts[1] == "" {
		return nil, ErrInvalidContentType
	}
	if _, _, err := s.athletes.load(ctx, athleteID); err != nil {
		return nil, err
	}

	objectKey := photoPrefix(athleteID) + fmt.Sprintf("%s.%s", uuid.NewString(), parts[1])

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, s.photoTTL)
	if err != nil {
		logrus.WithError(err).WithField("objectKey", objectKey).Error("presign photo upload")
		return nil, ErrUploadURLError
	}

	photo := &domain.Photo{
		AthleteID:   athleteID,
		ObjectKey:   objectKey,
		ContentType: contentType,
		UploadedAt:  s.now().UTC(),
	}
	if _, err = s.photoRepo.Create(ctx, photo); err != nil {
		logrus.WithError(err).WithField("objectKey", objectKey).Error("create photo metadata")
		return nil, ErrPhotoMetadataFailed
	}

	return &UploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

// checkPhotoOwner verifies the photo exists and belongs to athleteID.
func (s *athleteService) checkPhotoOwner(ctx context.Context, athleteID, objectKey string) error {
	if objectKey == "" {
		return ErrPhotoNotFound
	}

	photo, err := s.photoRepo.GetByKey(ctx, objectKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	if photo.AthleteID != athleteID {
		return ErrPhotoNotOwned
	}
	return nil
}

// PhotoURL returns a temporary download URL for one of the athlete's photos.
func (s *athleteService) PhotoURL(ctx context.Context, athleteID, objectKey string) (string, error) {
	if err := s.checkPhotoOwner(ctx, athleteID, objectKey); err != nil {
		return "", err
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, s.photoTTL)
	if err != nil {
		logrus.WithError(err).WithField("objectKey", objectKey).Error("presign photo download")
		return "", ErrDownloadURLError
	}
	return url, nil
}

// DeletePhoto removes the stored object, then its metadata.
func (s *athleteService) DeletePhoto(ctx context.Context, athleteID, objectKey string) error {
	if err := s.checkPhotoOwner(ctx, athleteID, objectKey); err != nil {
		return err
	}

	if err := s.fileStorage.DeleteObject(ctx, objectKey); err != nil {
		logrus.WithError(err).WithField("objectKey", objectKey).Error("delete photo object")
		return ErrPhotoDeleteFailed
	}
	if err := s.photoRepo.DeleteByKey(ctx, objectKey); err != nil && !errors.Is(err, repository.ErrNotFound) {
		logrus.WithError(err).WithField("objectKey", objectKey).Error("delete photo metadata")
		return ErrPhotoDeleteFailed
	}
	return nil
}
