package handlers

import (
	"net/http"
	"time"

	apperrors "rental-marketplace-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// dateLayout is the wire format for dates. Full RFC3339 timestamps are
// accepted too and truncated to their date part by the storage layer.
const dateLayout = "2006-01-02"

// respondError writes the HTTP response for a service error: validation
// failures map to 400, missing records to 404, duplicates to 409 and
// everything else to 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseDate parses a date in YYYY-MM-DD form, falling back to RFC3339
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
