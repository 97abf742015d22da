package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shivam-khode01/Faculty-appraisalSystem/config"
	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
)

type FeedbackRepository interface {
	UpsertDepartmentFeedback(ctx context.Context, department, feedback string) (*models.DepartmentFeedback, error)
	GetDepartmentFeedbacks(ctx context.Context, department string) ([]models.DepartmentFeedback, error)
	GetAllDepartmentFeedbacks(ctx context.Context) ([]models.DepartmentFeedback, error)
}

type feedbackRepository struct {
	collection *mongo.Collection
}

func NewFeedbackRepository() FeedbackRepository {
	return &feedbackRepository{
		collection: config.GetCollection(config.DepartmentFeedbackCollection),
	}
}

// UpsertDepartmentFeedback replaces the department's current feedback
// document wholesale, creating it if absent. At most one document exists per
// department; the unique index enforces it.
func (r *feedbackRepository) UpsertDepartmentFeedback(ctx context.Context, department, feedback string) (*models.DepartmentFeedback, error) {
	filter := bson.M{"department": department}
	replacement := models.DepartmentFeedback{
		Department:  department,
		Feedback:    feedback,
		GeneratedAt: time.Now(),
	}

	var saved models.DepartmentFeedback
	err := r.collection.FindOneAndReplace(ctx, filter, replacement,
		options.FindOneAndReplace().SetUpsert(true).SetReturnDocument(options.After)).Decode(&saved)
	if err != nil {
		return nil, fmt.Errorf("failed to save department feedback: %w", err)
	}
	return &saved, nil
}

func (r *feedbackRepository) GetDepartmentFeedbacks(ctx context.Context, department string) ([]models.DepartmentFeedback, error) {
	filter := bson.M{}
	if department != "" {
		filter["department"] = department
	}

	var feedbacks []models.DepartmentFeedback
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find department feedbacks: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &feedbacks); err != nil {
		return nil, fmt.Errorf("failed to decode department feedbacks: %w", err)
	}
	if feedbacks == nil {
		feedbacks = []models.DepartmentFeedback{}
	}
	return feedbacks, nil
}

func (r *feedbackRepository) GetAllDepartmentFeedbacks(ctx context.Context) ([]models.DepartmentFeedback, error) {
	return r.GetDepartmentFeedbacks(ctx, "")
}
