package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
	ErrInvalidRegistration  = errors.New("name, email and password are required")
	ErrEmailReserved        = errors.New("email belongs to a roster athlete, ask your coach for access")
	ErrAthleteHasNoEmail    = errors.New("athlete has no email to log in with")
)

type AuthService interface {
	// Register signs up a new athlete. Coach accounts are never created here.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// CreateAthleteAccount gives an existing athlete a login, keeping its id
	// and history.
	CreateAthleteAccount(ctx context.Context, athleteID, password string) (*domain.User, error)
	// EnsureCoach creates the coach account if it does not exist yet.
	EnsureCoach(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
}

// TokenClaims is the JWT payload issued on login.
type TokenClaims struct {
	UserID    string      `json:"uid"`
	Role      domain.Role `json:"role"`
	AthleteID string      `json:"aid,omitempty"`
	jwt.RegisteredClaims
}

// authService implements the AuthService interface.
type authService struct {
	userRepo      repository.UserRepository
	athletes      athleteStore
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService. fallback is the
// fixed roster: its emails are reserved for accounts the coach creates.
func NewAuthService(
	userRepo repository.UserRepository,
	athleteRepo repository.AthleteRepository,
	fallback []domain.Athlete,
	jwtSecret string,
	jwtExpiration time.Duration,
) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		userRepo:      userRepo,
		athletes:      athleteStore{repo: athleteRepo, fallback: fallback},
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates an athlete account and its athlete document.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrInvalidRegistration
	}

	// Roster athletes already have plans and history; only the coach links them.
	if s.isRosterEmail(email) {
		return nil, ErrEmailReserved
	}
	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	user, err := s.createUser(ctx, name, email, password, domain.RoleAthlete, "")
	if err != nil {
		return nil, err
	}

	athlete := &domain.Athlete{ID: user.AthleteID, Name: name, Email: email}
	if err = s.athletes.save(ctx, athlete, false, nil); err != nil {
		s.removeUser(ctx, user.ID)
		return nil, fmt.Errorf("create athlete document: %w", err)
	}

	return user, nil
}

// CreateAthleteAccount creates the login for a stored or roster athlete,
// using the athlete's email.
func (s *authService) CreateAthleteAccount(ctx context.Context, athleteID, password string) (*domain.User, error) {
	if password == "" {
		return nil, ErrInvalidRegistration
	}

	athlete, stored, err := s.athletes.load(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	email := normalizeEmail(athlete.Email)
	if email == "" {
		return nil, ErrAthleteHasNoEmail
	}
	if err = s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	user, err := s.createUser(ctx, athlete.Name, email, password, domain.RoleAthlete, athlete.ID)
	if err != nil {
		return nil, err
	}

	if !stored {
		if err = s.athletes.save(ctx, athlete, false, nil); err != nil {
			s.removeUser(ctx, user.ID)
			return nil, fmt.Errorf("create athlete document: %w", err)
		}
	}

	logrus.WithField("athleteId", athlete.ID).Info("athlete account created")
	return user, nil
}

// EnsureCoach is safe to call on every start.
func (s *authService) EnsureCoach(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrInvalidRegistration
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		if existing.Role != domain.RoleCoach {
			return nil, fmt.Errorf("%w: %s is not a coach account", ErrUserAlreadyExists, email)
		}
		existing.PasswordHash = ""
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user, err := s.createUser(ctx, name, email, password, domain.RoleCoach, "")
	if err != nil {
		return nil, err
	}
	logrus.WithField("email", email).Info("coach account created")
	return user, nil
}

func (s *authService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

// createUser hashes the password and stores the account. Athlete accounts
// without an athleteID get one derived from the new user id.
func (s *authService) createUser(ctx context.Context, name, email, password string, role domain.Role, athleteID string) (*domain.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	user := &domain.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		AthleteID:    athleteID,
	}
	if role == domain.RoleAthlete && user.AthleteID == "" {
		user.AthleteID = user.ID.Hex()
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	user.ID = userID

	user.PasswordHash = ""
	return user, nil
}

// removeUser undoes createUser after a failed athlete write, so the email
// can register again.
func (s *authService) removeUser(ctx context.Context, id primitive.ObjectID) {
	if err := s.userRepo.Delete(context.WithoutCancel(ctx), id); err != nil {
		logrus.WithError(err).WithField("userId", id.Hex()).Error("remove account after failed athlete write")
	}
}

func (s *authService) isRosterEmail(email string) bool {
	for _, a := range s.athletes.fallback {
		if a.Email != "" && normalizeEmail(a.Email) == email {
			return true
		}
	}
	return false
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login handles user authentication and JWT generation.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrAuthenticationFailed
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	return token, user, nil
}

func (s *authService) generateJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID:    user.ID.Hex(),
		Role:      user.Role,
		AthleteID: user.AthleteID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "abfit",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ParseToken validates a token issued by Login and returns its claims.
func ParseToken(tokenString, secret string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == "" || claims.Role == "" {
		return nil, errors.New("invalid token or missing claims")
	}
	return claims, nil
}
