package utils

import (
	"context"
	"time"

	"heartwise/db"
	"heartwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PopulateTestUsers inserts sample users into an empty database
func PopulateTestUsers() {
	collection := db.MongoDatabase.Collection("users")
	count, _ := collection.CountDocuments(context.Background(), bson.M{})
	if count > 0 {
		return
	}

	hash, _ := HashPassword("changeme123")

	users := []models.User{
		{
			ID:           primitive.NewObjectID(),
			Email:        "alice@example.com",
			DisplayName:  "Alice Johnson",
			PasswordHash: hash,
			Tier:         models.TierPremium,
			Profile: models.UserProfile{
				Age:        32,
				DatingGoal: "long-term",
				Bio:        "Close to my family, love to travel",
				Values: []models.ValueStatement{
					{Category: "values", Statement: "Wants kids someday", Importance: models.ImportanceHigh},
				},
			},
			CreatedAt: time.Now(),
		},
		{
			ID:           primitive.NewObjectID(),
			Email:        "bob@example.com",
			DisplayName:  "Bob Smith",
			PasswordHash: hash,
			Tier:         models.TierFree,
			Profile: models.UserProfile{
				Age:        24,
				DatingGoal: "casual",
				Bio:        "Here for good conversation",
			},
			CreatedAt: time.Now(),
		},
		{
			ID:           primitive.NewObjectID(),
			Email:        "carol@example.com",
			DisplayName:  "Carol Davis",
			PasswordHash: hash,
			Tier:         models.TierExclusive,
			Profile: models.UserProfile{
				Age:        38,
				DatingGoal: "marriage",
				Bio:        "Career-focused, family means everything",
				Values: []models.ValueStatement{
					{Category: "values", Statement: "Financial honesty", Importance: models.ImportanceDealbreaker},
				},
			},
			CreatedAt: time.Now(),
		},
	}

	for _, user := range users {
		collection.InsertOne(context.Background(), user)
	}
}
