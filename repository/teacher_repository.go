package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shivam-khode01/Faculty-appraisalSystem/config"
	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
)

// ErrTeacherNotFound is returned when a profile lookup matches nothing.
var ErrTeacherNotFound = errors.New("teacher not found")

type TeacherRepository interface {
	CreateTeacher(ctx context.Context, teacher *models.Teacher) (*mongo.InsertOneResult, error)
	GetTeacherByID(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error)
	GetAllTeachers(ctx context.Context, department string) ([]models.Teacher, error)
	GetTeachersByDepartment(ctx context.Context, department string) ([]models.Teacher, error)
	UpdateTeacherRating(ctx context.Context, id primitive.ObjectID, adminRating, finalRating float64) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error)
	DistinctDepartments(ctx context.Context) ([]string, error)
}

type teacherRepository struct {
	collection *mongo.Collection
}

func NewTeacherRepository() TeacherRepository {
	return &teacherRepository{
		collection: config.GetCollection(config.TeacherCollection),
	}
}

func (r *teacherRepository) CreateTeacher(ctx context.Context, teacher *models.Teacher) (*mongo.InsertOneResult, error) {
	if teacher.ID.IsZero() {
		teacher.ID = primitive.NewObjectID()
	}

	result, err := r.collection.InsertOne(ctx, teacher)
	if err != nil {
		return nil, fmt.Errorf("failed to create teacher: %w", err)
	}
	return result, nil
}

func (r *teacherRepository) GetTeacherByID(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error) {
	var teacher models.Teacher
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&teacher)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTeacherNotFound
		}
		return nil, fmt.Errorf("failed to find teacher by ID: %w", err)
	}
	return &teacher, nil
}

// GetAllTeachers lists teachers, optionally filtered by department. An empty
// filter or the literal "ALL" returns everyone.
func (r *teacherRepository) GetAllTeachers(ctx context.Context, department string) ([]models.Teacher, error) {
	filter := bson.M{}
	if department != "" && department != "ALL" {
		filter["department"] = department
	}

	var teachers []models.Teacher
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find teachers: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &teachers); err != nil {
		return nil, fmt.Errorf("failed to decode teachers: %w", err)
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	return teachers, nil
}

func (r *teacherRepository) GetTeachersByDepartment(ctx context.Context, department string) ([]models.Teacher, error) {
	var teachers []models.Teacher
	cursor, err := r.collection.Find(ctx, bson.M{"department": department})
	if err != nil {
		return nil, fmt.Errorf("failed to find teachers by department: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &teachers); err != nil {
		return nil, fmt.Errorf("failed to decode teachers: %w", err)
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	return teachers, nil
}

// UpdateTeacherRating assigns both ratings in a single update, so a reader
// never observes one without the other. Last writer wins on concurrent
// updates.
func (r *teacherRepository) UpdateTeacherRating(ctx context.Context, id primitive.ObjectID, adminRating, finalRating float64) (*models.Teacher, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{
		"admin_rating": adminRating,
		"final_rating": finalRating,
		"updated_at":   time.Now(),
	}}

	var teacher models.Teacher
	err := r.collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&teacher)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTeacherNotFound
		}
		return nil, fmt.Errorf("failed to update teacher rating: %w", err)
	}
	return &teacher, nil
}

// DeleteTeacher removes the profile and returns the deleted document so the
// caller can react to what was removed.
func (r *teacherRepository) DeleteTeacher(ctx context.Context, id primitive.ObjectID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&teacher)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTeacherNotFound
		}
		return nil, fmt.Errorf("failed to delete teacher: %w", err)
	}
	return &teacher, nil
}

func (r *teacherRepository) DistinctDepartments(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "department", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct departments: %w", err)
	}

	departments := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			departments = append(departments, s)
		}
	}
	return departments, nil
}
