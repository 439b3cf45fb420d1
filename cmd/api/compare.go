package main

import (
	"errors"
	"net/http"

	"cityscope/internal/location"
	"cityscope/internal/session"
	"cityscope/internal/types"

	"github.com/gin-gonic/gin"
)

// sessionHeader carries the session ID between requests.
const sessionHeader = "X-Session-ID"

// CompareInput defines the request body for the compare endpoint
type CompareInput struct {
	LocationOne string `json:"location_one" binding:"required" example:"Seattle, WA"` // First location as "City, ST"
	LocationTwo string `json:"location_two" binding:"required" example:"Portland, OR"` // Second location as "City, ST"
}

// CompareResponse represents the response for the compare endpoint
type CompareResponse struct {
	SessionID string                `json:"session_id"`
	RecordOne *types.LocationRecord `json:"record_one"`
	RecordTwo *types.LocationRecord `json:"record_two"`
}

// handleCompare godoc
// @Summary Compare two locations
// @Description Resolve two "City, ST" inputs into full category records and store them in the session, replacing any previous comparison
// @Tags compare
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID from a previous response; omit to start a new session"
// @Param input body CompareInput true "Locations to compare"
// @Success 200 {object} CompareResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /compare [post]
func (app *App) handleCompare(c *gin.Context) {
	var input CompareInput

	// Bind and validate request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recordOne, ok := app.resolveInput(c, "location_one", input.LocationOne)
	if !ok {
		return
	}
	recordTwo, ok := app.resolveInput(c, "location_two", input.LocationTwo)
	if !ok {
		return
	}

	sess := app.sessionFor(c)
	sess, _ = app.sessions.SetComparison(sess.ID, input.LocationOne, input.LocationTwo, recordOne, recordTwo)

	c.Header(sessionHeader, sess.ID)
	c.JSON(http.StatusOK, CompareResponse{
		SessionID: sess.ID,
		RecordOne: sess.RecordOne,
		RecordTwo: sess.RecordTwo,
	})
}

// resolveInput resolves one raw location, writing the error response itself
// on failure. Parse errors name the offending field; resolution otherwise
// always succeeds because categories degrade to fallbacks internally.
func (app *App) resolveInput(c *gin.Context, field, raw string) (*types.LocationRecord, bool) {
	record, err := app.compareService.Resolve(c.Request.Context(), raw)
	if err == nil {
		return record, true
	}

	if errors.Is(err, location.ErrMissingComma) ||
		errors.Is(err, location.ErrEmptyCity) ||
		errors.Is(err, location.ErrEmptyState) ||
		errors.Is(err, location.ErrUnknownState) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": field})
		return nil, false
	}

	app.logger.Error("failed to resolve location",
		"field", field,
		"input", raw,
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve location"})
	return nil, false
}

// sessionFor returns the caller's session, creating one when the header is
// missing or names a session this process does not know.
func (app *App) sessionFor(c *gin.Context) session.Session {
	if id := c.GetHeader(sessionHeader); id != "" {
		if sess, ok := app.sessions.Get(id); ok {
			return sess
		}
	}
	return app.sessions.Create()
}
