package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo stores metadata about a session photo uploaded by an athlete.
// The actual file resides in S3.
type Photo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AthleteID   string             `bson:"athleteId" json:"athleteId"`
	ObjectKey   string             `bson:"objectKey" json:"objectKey"` // Key in the S3 bucket
	ContentType string             `bson:"contentType" json:"contentType"`
	UploadedAt  time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
