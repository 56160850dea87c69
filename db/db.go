package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"heartwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database
var AssessmentCollection *mongo.Collection

// GetCollection returns a collection by name
func GetCollection(collectionName string) *mongo.Collection {
	return MongoDatabase.Collection(collectionName)
}

// extractDBName parses the database name from the URI, defaulting to "heartwise"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "heartwise"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "heartwise"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
func ConnectMongoDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	MongoDatabase = client.Database(dbName)
	AssessmentCollection = MongoDatabase.Collection("assessments")
	return nil
}

// SaveAssessment stores a completed assessment and returns its ID
func SaveAssessment(ctx context.Context, assessment *models.Assessment) (string, error) {
	if AssessmentCollection == nil {
		return "", fmt.Errorf("database not initialized")
	}
	if assessment.ID.IsZero() {
		assessment.ID = primitive.NewObjectID()
	}
	result, err := AssessmentCollection.InsertOne(ctx, assessment)
	if err != nil {
		log.Printf("Error saving assessment: %v", err)
		return "", err
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type")
	}
	return id.Hex(), nil
}

// ListAssessments retrieves a user's assessments, newest first
func ListAssessments(ctx context.Context, email string, limit int64) ([]models.Assessment, error) {
	if AssessmentCollection == nil {
		return nil, fmt.Errorf("database not initialized")
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := AssessmentCollection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []models.Assessment
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

// UpdateAssessmentOutcome records outcome feedback on the user's assessment
// and returns the stamped document so callers can fold the original verdict
// into the pattern store.
func UpdateAssessmentOutcome(ctx context.Context, email, assessmentID, outcome string) (*models.Assessment, error) {
	if AssessmentCollection == nil {
		return nil, fmt.Errorf("database not initialized")
	}
	filter := bson.M{"email": email}
	if oid, err := primitive.ObjectIDFromHex(assessmentID); err == nil {
		filter["_id"] = oid
	}
	update := bson.M{"$set": bson.M{"outcome": outcome}}
	// Without an ID the feedback lands on the most recent assessment
	opts := options.FindOneAndUpdate().
		SetSort(bson.M{"createdAt": -1}).
		SetReturnDocument(options.After)
	var assessment models.Assessment
	if err := AssessmentCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&assessment); err != nil {
		log.Printf("Error updating assessment outcome: %v", err)
		return nil, err
	}
	return &assessment, nil
}
