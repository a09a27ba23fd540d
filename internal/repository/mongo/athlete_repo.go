package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const athleteCollectionName = "athletes"

// Fields managed by the repository itself; callers cannot overwrite them.
var reservedAthleteFields = map[string]struct{}{
	"_id":       {},
	"createdAt": {},
	"updatedAt": {},
}

// mongoAthleteRepository implements repository.AthleteRepository
type mongoAthleteRepository struct {
	collection *mongo.Collection
}

// NewMongoAthleteRepository creates a new Athlete repository backed by MongoDB.
func NewMongoAthleteRepository(db *mongo.Database) repository.AthleteRepository {
	return &mongoAthleteRepository{
		collection: db.Collection(athleteCollectionName),
	}
}

// List returns every athlete document ordered by name.
func (r *mongoAthleteRepository) List(ctx context.Context) ([]domain.Athlete, error) {
	athletes := []domain.Athlete{}
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &athletes); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return athletes, nil
}

// GetByID retrieves a single athlete document.
func (r *mongoAthleteRepository) GetByID(ctx context.Context, id string) (*domain.Athlete, error) {
	var athlete domain.Athlete
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&athlete)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &athlete, nil
}

// Save applies fields with $set, so anything not listed is preserved.
// The document is created on first save.
func (r *mongoAthleteRepository) Save(ctx context.Context, id string, fields map[string]interface{}) error {
	if id == "" {
		return errors.New("athlete ID is required for save")
	}

	now := time.Now().UTC()
	set := bson.M{"updatedAt": now}
	for key, value := range fields {
		if _, reserved := reservedAthleteFields[key]; reserved {
			continue
		}
		set[key] = value
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	return err
}

// AppendSession pushes an entry to the end of the athlete's history.
func (r *mongoAthleteRepository) AppendSession(ctx context.Context, id string, entry domain.SessionLogEntry) error {
	update := bson.M{
		"$push": bson.M{"history": entry},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Watch opens a change stream on the athletes collection. Change streams
// need a replica set; on a standalone server the call fails right away.
func (r *mongoAthleteRepository) Watch(ctx context.Context, onChange func()) error {
	stream, err := r.collection.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return err
	}
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		onChange()
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return stream.Err()
}

// EnsureAthleteIndexes creates necessary indexes for the athletes collection.
func EnsureAthleteIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
