package repository

import (
	"context"

	"hunt-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertStatus is the tagged result of an insert attempt. The unique index
// on team_id is the authoritative guard against two concurrent correct
// submissions for the same team, so a duplicate-key error is an expected
// outcome, not a fault.
type InsertStatus int

const (
	Inserted InsertStatus = iota
	DuplicateTeam
)

type SubmissionRepository struct {
	Col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{Col: db.Collection("submissions")}
}

// EnsureIndexes creates the unique index on team_id. Must run before the
// service accepts traffic.
func (r *SubmissionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "team_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// FindCorrectByTeam returns the team's stored correct submission, or nil
// when the team has not answered correctly yet.
func (r *SubmissionRepository) FindCorrectByTeam(ctx context.Context, teamID int) (*models.Submission, error) {
	var sub models.Submission
	err := r.Col.FindOne(ctx, bson.M{"team_id": teamID, "is_correct": true}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepository) Insert(ctx context.Context, sub *models.Submission) (InsertStatus, error) {
	res, err := r.Col.InsertOne(ctx, sub)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return DuplicateTeam, nil
		}
		return 0, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = oid
	}
	return Inserted, nil
}

func (r *SubmissionRepository) CountCorrect(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"is_correct": true})
}

// ListByCreated returns every submission ordered by creation time ascending.
func (r *SubmissionRepository) ListByCreated(ctx context.Context) ([]models.Submission, error) {
	cur, err := r.Col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var subs []models.Submission
	for cur.Next(ctx) {
		var s models.Submission
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, cur.Err()
}

func (r *SubmissionRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.Col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
