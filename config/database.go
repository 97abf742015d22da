package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoConn *mongo.Client

var DBName string = "faculty-appraisal-db"
var TeacherCollection string = "teachers"
var DepartmentFeedbackCollection string = "department_feedbacks"
var AdminCollection string = "admins"

func MongoConnect() {

	mongoURI := os.Getenv("MONGOSTRING")

	if mongoURI == "" {
		log.Fatal("MONGOSTRING is not set in env")
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB!")
	MongoConn = client
}

// InitDatabase creates the indexes the application relies on. Department
// feedback is keyed by department name, one current document per department.
func InitDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	feedbackIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "department", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := GetCollection(DepartmentFeedbackCollection).Indexes().CreateOne(ctx, feedbackIdx); err != nil {
		log.Fatalf("Failed to create department feedback index: %v", err)
	}

	adminIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := GetCollection(AdminCollection).Indexes().CreateOne(ctx, adminIdx); err != nil {
		log.Fatalf("Failed to create admin email index: %v", err)
	}

	teacherIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "department", Value: 1}},
	}
	if _, err := GetCollection(TeacherCollection).Indexes().CreateOne(ctx, teacherIdx); err != nil {
		log.Fatalf("Failed to create teacher department index: %v", err)
	}
}

func GetCollection(collectionName string) *mongo.Collection {
	if MongoConn == nil {
		log.Fatal("MongoDB client is not initialized. Call MongoConnect() first")
	}
	return MongoConn.Database(DBName).Collection(collectionName)
}

func DisconnectDB() {
	if MongoConn != nil {
		if err := MongoConn.Disconnect(context.Background()); err != nil {
			log.Fatalf("Error disconnecting from MongoDB: %v", err)
		}
		log.Println("Disconnected from MongoDB")
	}
}
