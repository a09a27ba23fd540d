package repository

import (
	"context"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound     = RepositoryError("not found")
	ErrConflict     = RepositoryError("conflict")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with login accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AthleteRepository defines the interface for the athlete documents.
type AthleteRepository interface {
	List(ctx context.Context) ([]domain.Athlete, error)
	GetByID(ctx context.Context, id string) (*domain.Athlete, error)
	// Save merges fields into the athlete document, creating it when missing,
	// and stamps the write time. Fields not present are preserved.
	Save(ctx context.Context, id string, fields map[string]interface{}) error
	AppendSession(ctx context.Context, id string, entry domain.SessionLogEntry) error
	// Watch calls onChange after every change to the collection until ctx is
	// done. It returns ctx.Err() on cancellation, or the error that stopped
	// the watch.
	Watch(ctx context.Context, onChange func()) error
}

// PhotoRepository defines the interface for session photo metadata.
type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.Photo) (primitive.ObjectID, error)
	GetByKey(ctx context.Context, objectKey string) (*domain.Photo, error)
	DeleteByKey(ctx context.Context, objectKey string) error
}
