package controllers

import (
	"context"
	"net/http"
	"time"

	"heartwise/db"
	"heartwise/models"
	"heartwise/structs"
	"heartwise/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetProfile retrieves and returns user profile data
func GetProfile(ctx *gin.Context) {
	email := ctx.GetString("email")
	if email == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := db.MongoDatabase.Collection("users").FindOne(dbCtx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// Avatar URL with DiceBear fallback
	avatarURL := user.AvatarURL
	if avatarURL == "" {
		name := user.DisplayName
		if name == "" {
			name = utils.ExtractNameFromEmail(email)
		}
		avatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + name
	}

	ctx.JSON(http.StatusOK, gin.H{
		"email":       user.Email,
		"displayName": user.DisplayName,
		"tier":        user.Tier,
		"profile":     user.Profile,
		"avatarUrl":   avatarURL,
		"createdAt":   user.CreatedAt,
	})
}

// UpdateProfile applies editable profile fields for the current user
func UpdateProfile(ctx *gin.Context) {
	email := ctx.GetString("email")
	if email == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request structs.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	update := bson.M{}
	if request.DisplayName != "" {
		update["displayName"] = request.DisplayName
	}
	if request.AvatarURL != "" {
		update["avatarUrl"] = request.AvatarURL
	}
	if request.Profile != nil {
		update["profile"] = *request.Profile
	}
	if len(update) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.MongoDatabase.Collection("users").UpdateOne(dbCtx,
		bson.M{"email": email}, bson.M{"$set": update})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
