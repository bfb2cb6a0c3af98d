package health

import (
	"context"
	"net/http"
	"time"

	"campus-teamup/internal/db"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Checker reports service liveness including the database connection.
type Checker struct {
	database *db.Database
	timeout  time.Duration
}

func NewChecker(database *db.Database, timeout time.Duration) *Checker {
	return &Checker{database: database, timeout: timeout}
}

func (h *Checker) Handler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	response := HealthResponse{Status: "ok", Database: "ok"}
	status := http.StatusOK

	if err := h.database.HealthCheck(ctx); err != nil {
		response.Status = "degraded"
		response.Database = err.Error()
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}
