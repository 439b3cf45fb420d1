package main

import (
	"net/http"
	"time"

	"cityscope/internal/types"

	"github.com/gin-gonic/gin"
)

// AskInput defines the request body for the assistant ask endpoint
type AskInput struct {
	Question string `json:"question" binding:"required" example:"Which city has better schools?"` // Question about the current comparison
}

// AskResponse represents the response for the assistant ask endpoint
type AskResponse struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
}

// HistoryResponse represents the chat history for a session
type HistoryResponse struct {
	SessionID string            `json:"session_id"`
	Chat      []types.ChatEntry `json:"chat"`
}

// handleAsk godoc
// @Summary Ask the comparison assistant
// @Description Answer a question about the session's current comparison. Requires a completed comparison; the exchange is appended to the session's chat history
// @Tags assistant
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param input body AskInput true "Question"
// @Success 200 {object} AskResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /assistant/ask [post]
func (app *App) handleAsk(c *gin.Context) {
	var input AskInput

	// Bind and validate request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.GetHeader(sessionHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + sessionHeader + " header"})
		return
	}

	sess, ok := app.sessions.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if !sess.Ready() {
		c.JSON(http.StatusConflict, gin.H{"error": "no completed comparison in this session; call /compare first"})
		return
	}

	answer := app.matcher.Answer(input.Question, sess.RecordOne, sess.RecordTwo)

	sess, ok = app.sessions.AppendChat(id, types.ChatEntry{
		Question: input.Question,
		Answer:   answer,
		AskedAt:  time.Now().UTC(),
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, AskResponse{
		SessionID: sess.ID,
		Question:  input.Question,
		Answer:    answer,
	})
}

// handleHistory godoc
// @Summary Get chat history
// @Description Return the session's full question/answer history in submission order
// @Tags assistant
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /assistant/history [get]
func (app *App) handleHistory(c *gin.Context) {
	id := c.GetHeader(sessionHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + sessionHeader + " header"})
		return
	}

	sess, ok := app.sessions.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{
		SessionID: sess.ID,
		Chat:      sess.Chat,
	})
}
