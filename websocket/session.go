// Package websocket carries the live assessment session: a client streams
// answers one at a time and gets running category scores and newly fired red
// flags back, so the app can surface concerns while the questionnaire is
// still in progress.
package websocket

import (
	"log"
	"net/http"

	"heartwise/models"
	"heartwise/scoring"
	"heartwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// In production, adjust the CheckOrigin function to allow only trusted origins.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ClientMessage is what the session receives from the app
type ClientMessage struct {
	Type   string         `json:"type"` // "answer", "finish", "reset"
	Answer *models.Answer `json:"answer,omitempty"`
}

// ServerMessage is what the session sends back after each event
type ServerMessage struct {
	Type           string                      `json:"type"` // "progress", "result", "error"
	Answered       int                         `json:"answered,omitempty"`
	CategoryScores []models.CategoryScore      `json:"categoryScores,omitempty"`
	NewFlags       []models.RedFlag            `json:"newFlags,omitempty"`
	Result         *models.CompatibilityResult `json:"result,omitempty"`
	Error          string                      `json:"error,omitempty"`
}

// AssessmentSessionHandler upgrades the connection and drives one scoring
// session. All state is connection-local; nothing is persisted until the
// client submits through the HTTP endpoint.
func AssessmentSessionHandler(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		return
	}

	valid, email, err := utils.ValidateTokenAndFetchEmail(token)
	if err != nil || !valid || email == "" {
		log.Printf("WebSocket connection failed: invalid token - %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed for %s: %v", email, err)
		return
	}
	defer conn.Close()

	var answers []models.Answer
	flagged := make(map[string]bool)

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Session for %s closed unexpectedly: %v", email, err)
			}
			return
		}

		switch msg.Type {
		case "answer":
			if msg.Answer == nil || msg.Answer.QuestionID == "" {
				conn.WriteJSON(ServerMessage{Type: "error", Error: "answer payload required"})
				continue
			}
			answers = append(answers, *msg.Answer)
			deduped := scoring.Dedupe(answers)

			var newFlags []models.RedFlag
			for _, flag := range scoring.DetectRedFlags(deduped) {
				key := string(flag.Category) + "/" + flag.Signal
				if !flagged[key] {
					flagged[key] = true
					newFlags = append(newFlags, flag)
				}
			}

			conn.WriteJSON(ServerMessage{
				Type:           "progress",
				Answered:       len(deduped),
				CategoryScores: scoring.AggregateCategories(deduped),
				NewFlags:       newFlags,
			})

		case "finish":
			result := scoring.Evaluate(answers)
			conn.WriteJSON(ServerMessage{Type: "result", Result: &result})
			return

		case "reset":
			answers = nil
			flagged = make(map[string]bool)
			conn.WriteJSON(ServerMessage{Type: "progress", Answered: 0})

		default:
			conn.WriteJSON(ServerMessage{Type: "error", Error: "unknown message type"})
		}
	}
}
