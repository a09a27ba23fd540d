package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const photoCollectionName = "photos"

// mongoPhotoRepository implements repository.PhotoRepository
type mongoPhotoRepository struct {
	collection *mongo.Collection
}

// NewMongoPhotoRepository creates a new Photo repository backed by MongoDB.
func NewMongoPhotoRepository(db *mongo.Database) repository.PhotoRepository {
	return &mongoPhotoRepository{
		collection: db.Collection(photoCollectionName),
	}
}

// Create inserts new photo metadata into the database.
func (r *mongoPhotoRepository) Create(ctx context.Context, photo *domain.Photo) (primitive.ObjectID, error) {
	if photo.AthleteID == "" || photo.ObjectKey == "" {
		return primitive.NilObjectID, errors.New("photo requires athleteId and objectKey")
	}

	photo.ID = primitive.NewObjectID()
	photo.UploadedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, photo)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrConflict
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByKey retrieves photo metadata by its object key.
func (r *mongoPhotoRepository) GetByKey(ctx context.Context, objectKey string) (*domain.Photo, error) {
	var photo domain.Photo
	err := r.collection.FindOne(ctx, bson.M{"objectKey": objectKey}).Decode(&photo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// DeleteByKey removes the metadata of one photo.
func (r *mongoPhotoRepository) DeleteByKey(ctx context.Context, objectKey string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"objectKey": objectKey})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePhotoIndexes creates necessary indexes for the photos collection.
func EnsurePhotoIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "objectKey", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "athleteId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
