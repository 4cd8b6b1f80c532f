package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthCheck reports liveness plus the current store connectivity. It always
// answers 200; the database field tells the two states apart.
func HealthCheck(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		database := "Connected"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if client == nil || client.Ping(ctx, nil) != nil {
			database = "Disconnected"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"message":  "Flight booking API is running",
			"database": database,
		})
	}
}
