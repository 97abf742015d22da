package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shivam-khode01/Faculty-appraisalSystem/config"
	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) (*mongo.InsertOneResult, error)
	FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type adminRepository struct {
	collection *mongo.Collection
}

func NewAdminRepository() AdminRepository {
	return &adminRepository{
		collection: config.GetCollection(config.AdminCollection),
	}
}

func (r *adminRepository) CreateAdmin(ctx context.Context, admin *models.Admin) (*mongo.InsertOneResult, error) {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("admin email already exists")
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return result, nil
}

func (r *adminRepository) FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	return &admin, nil
}
