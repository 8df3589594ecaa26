package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/india-resources/directory-api/internal/db"
	"github.com/india-resources/directory-api/internal/middleware"
	"github.com/india-resources/directory-api/internal/service"
)

// SubmitHandler places a new item on the moderation queue. The submitter is
// taken from the authenticated identity, never from the payload.
func SubmitHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		var req ItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid item format",
				"details": err.Error(),
			})
			return
		}

		fields, err := req.fields()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		submission, err := service.SubmitItem(dbConn, fields, user.Username)
		if err != nil {
			log.Error().Err(err).Msg("Failed to submit item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save submission"})
			return
		}

		log.Info().
			Uint("id", submission.ID).
			Str("kind", string(submission.Kind)).
			Str("submitted_by", submission.SubmittedBy).
			Msg("New submission")
		c.JSON(http.StatusCreated, submission)
	}
}

// ListPendingHandler returns the moderation queue for admin review.
func ListPendingHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := db.ItemKind(c.Query("kind"))
		if kind != "" && !kind.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be \"url\" or \"contact\""})
			return
		}

		submissions, err := service.ListPending(dbConn, kind)
		if err != nil {
			log.Error().Err(err).Msg("Failed to list submissions")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": submissions})
	}
}

// ApproveHandler publishes a pending submission.
func ApproveHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		item, err := service.ApproveSubmission(dbConn, id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
				return
			}
			log.Error().Err(err).Uint("id", id).Msg("Failed to approve submission")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		log.Info().Uint("submission_id", id).Uint("item_id", item.ID).Str("name", item.Name).Msg("Approved submission")
		c.JSON(http.StatusOK, item)
	}
}

// RejectHandler discards a pending submission.
func RejectHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := service.RejectSubmission(dbConn, id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
				return
			}
			log.Error().Err(err).Uint("id", id).Msg("Failed to reject submission")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		log.Info().Uint("submission_id", id).Msg("Rejected submission")
		c.Status(http.StatusNoContent)
	}
}

// MySubmissionsHandler returns the caller's pending and approved submissions.
func MySubmissionsHandler(dbConn *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		entries, err := service.ListUserSubmissions(dbConn, user.Username)
		if err != nil {
			log.Error().Err(err).Str("username", user.Username).Msg("Failed to list user submissions")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": entries})
	}
}
