package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one team's first correct answer. Incorrect attempts are
// never persisted, so IsCorrect is true on every stored document.
type Submission struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeamID    int                `bson:"team_id" json:"teamId"`
	Answer    string             `bson:"answer" json:"answer"`
	IsCorrect bool               `bson:"is_correct" json:"isCorrect"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
