package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyfare/api/internal/models"
)

// respondError is the single place where service failures become status
// codes: validation 400, not found 404, everything else 500 with the
// underlying detail attached as diagnostic text.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}

	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
		return
	}

	var persistenceErr *models.PersistenceError
	if errors.As(err, &persistenceErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error " + persistenceErr.Op,
			"details": persistenceErr.Err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"details": err.Error(),
	})
}
