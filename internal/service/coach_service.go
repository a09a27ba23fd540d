package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/analytics"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrNothingToUpdate   = errors.New("no profile fields to update")
	ErrInvalidProfile    = errors.New("invalid profile fields")
	ErrInvalidPlan       = errors.New("plan title is required and projected sessions must be positive")
	ErrPlanAlreadyPublic = errors.New("plan is already published")
)

// AthleteSnapshot is the live view of athlete documents.
type AthleteSnapshot interface {
	Athletes() []domain.Athlete
	Listen(fn func([]domain.Athlete)) (unlisten func())
}

// ProfileUpdate holds the athlete fields a coach may change. Nil fields are
// left untouched.
type ProfileUpdate struct {
	Name      *string  `json:"name"`
	Email     *string  `json:"email"`
	Phone     *string  `json:"phone"`
	Goal      *string  `json:"goal"`
	BirthDate *string  `json:"birthDate"`
	WeightKg  *float64 `json:"weightKg"`
	HeightCm  *float64 `json:"heightCm"`
}

type PlanInput struct {
	Title             string            `json:"title"`
	Items             []domain.PlanItem `json:"items"`
	ProjectedSessions *int              `json:"projectedSessions"`
	Publish           bool              `json:"publish"`
}

// AthleteNotification is a notification tagged with the athlete it concerns.
type AthleteNotification struct {
	domain.Notification
	AthleteID   string `json:"athleteId"`
	AthleteName string `json:"athleteName"`
}

type CoachService interface {
	Roster(ctx context.Context) []domain.Athlete
	WatchRoster(fn func([]domain.Athlete)) (unwatch func())
	Athlete(ctx context.Context, athleteID string) (*domain.Athlete, error)
	UpdateAthlete(ctx context.Context, athleteID string, update ProfileUpdate) (*domain.Athlete, error)

	AssignPlan(ctx context.Context, athleteID string, input PlanInput) (*domain.Plan, error)
	PublishPlan(ctx context.Context, athleteID, planID string) (*domain.Plan, error)
	PlanProgress(ctx context.Context, athleteID string) ([]analytics.PlanProgress, error)

	Notifications(ctx context.Context) []AthleteNotification
}

// coachService implements the CoachService interface.
type coachService struct {
	athletes athleteStore
	snapshot AthleteSnapshot
	loc      *time.Location
	now      func() time.Time
}

// NewCoachService creates a new instance of coachService. A nil now uses
// time.Now.
func NewCoachService(
	athleteRepo repository.AthleteRepository,
	snapshot AthleteSnapshot,
	fallback []domain.Athlete,
	loc *time.Location,
	now func() time.Time,
) CoachService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &coachService{
		athletes: athleteStore{repo: athleteRepo, fallback: fallback},
		snapshot: snapshot,
		loc:      loc,
		now:      now,
	}
}

// === Roster ===

// Roster merges the live snapshot with the fixed roster.
func (s *coachService) Roster(_ context.Context) []domain.Athlete {
	return analytics.MergeRoster(s.snapshot.Athletes(), s.athletes.fallback)
}

// WatchRoster calls fn with the merged roster after every snapshot.
func (s *coachService) WatchRoster(fn func([]domain.Athlete)) func() {
	return s.snapshot.Listen(func(athletes []domain.Athlete) {
		fn(analytics.MergeRoster(athletes, s.athletes.fallback))
	})
}

func (s *coachService) Athlete(ctx context.Context, athleteID string) (*domain.Athlete, error) {
	athlete, _, err := s.athletes.load(ctx, athleteID)
	return athlete, err
}

// UpdateAthlete applies the non-nil profile fields with merge semantics.
func (s *coachService) UpdateAthlete(ctx context.Context, athleteID string, update ProfileUpdate) (*domain.Athlete, error) {
	fields, err := profileFields(update)
	if err != nil {
		return nil, err
	}

	athlete, stored, err := s.athletes.load(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if err = s.athletes.save(ctx, athlete, stored, fields); err != nil {
		return nil, err
	}

	updated, err := s.athletes.repo.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}
	return updated, nil
}

func profileFields(u ProfileUpdate) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return nil, ErrInvalidProfile
		}
		fields["name"] = name
	}
	if u.Email != nil {
		fields["email"] = strings.ToLower(strings.TrimSpace(*u.Email))
	}
	if u.Phone != nil {
		fields["phone"] = strings.TrimSpace(*u.Phone)
	}
	if u.Goal != nil {
		fields["goal"] = strings.TrimSpace(*u.Goal)
	}
	if u.BirthDate != nil {
		if *u.BirthDate != "" {
			if _, ok := analytics.ParseDate(*u.BirthDate, time.UTC); !ok {
				return nil, ErrInvalidProfile
			}
		}
		fields["birthDate"] = strings.TrimSpace(*u.BirthDate)
	}
	if u.WeightKg != nil {
		if *u.WeightKg < 0 {
			return nil, ErrInvalidProfile
		}
		fields["weightKg"] = *u.WeightKg
	}
	if u.HeightCm != nil {
		if *u.HeightCm < 0 {
			return nil, ErrInvalidProfile
		}
		fields["heightCm"] = *u.HeightCm
	}

	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}
	return fields, nil
}

// === Plans ===

// AssignPlan appends a new plan to the athlete, as a draft unless
// input.Publish is set.
func (s *coachService) AssignPlan(ctx context.Context, athleteID string, input PlanInput) (*domain.Plan, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || (input.ProjectedSessions != nil && *input.ProjectedSessions <= 0) {
		return nil, ErrInvalidPlan
	}

	athlete, stored, err := s.athletes.load(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	plan := domain.Plan{
		ID:                uuid.NewString(),
		Title:             input.Title,
		Items:             input.Items,
		ProjectedSessions: input.ProjectedSessions,
		Status:            domain.PlanDraft,
		CreatedAt:         s.now().UTC(),
	}
	if plan.Items == nil {
		plan.Items = []domain.PlanItem{}
	}
	if input.Publish {
		plan.Status = domain.PlanPublished
	}

	plans := append(append([]domain.Plan{}, athlete.Plans...), plan)
	if err = s.athletes.save(ctx, athlete, stored, map[string]interface{}{"plans": plans}); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *coachService) PublishPlan(ctx context.Context, athleteID, planID string) (*domain.Plan, error) {
	athlete, stored, err := s.athletes.load(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	plan, ok := athlete.PlanByID(planID)
	if !ok {
		return nil, ErrPlanNotFound
	}
	if plan.IsPublished() {
		return nil, ErrPlanAlreadyPublic
	}
	plan.Status = domain.PlanPublished

	if err = s.athletes.save(ctx, athlete, stored, map[string]interface{}{"plans": athlete.Plans}); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *coachService) PlanProgress(ctx context.Context, athleteID string) ([]analytics.PlanProgress, error) {
	athlete, _, err := s.athletes.load(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	return analytics.ProgressForAll(athlete.Plans, athlete.History), nil
}

// === Notifications ===

// Notifications derives renewal notifications for every athlete in the
// merged roster, in roster order.
func (s *coachService) Notifications(ctx context.Context) []AthleteNotification {
	now := nowIn(s.now, s.loc)
	all := []AthleteNotification{}
	for _, athlete := range s.Roster(ctx) {
		// Drafts are invisible to the athlete, so they cannot be renewed yet.
		for _, n := range analytics.RenewalNotifications(publishedPlans(athlete.Plans), athlete.History, now) {
			all = append(all, AthleteNotification{
				Notification: n,
				AthleteID:    athlete.ID,
				AthleteName:  athlete.Name,
			})
		}
	}
	return all
}
