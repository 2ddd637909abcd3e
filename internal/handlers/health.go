package handlers

import (
	"time"

	"github.com/crickhub-dev/crickhub/db"
	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	status := gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	var probe int

	if err := db.DB.Raw("SELECT 1").Scan(&probe).Error; err != nil {
		status["database"] = "error"
		status["database_error"] = err.Error()
	} else {
		status["database"] = "connected"
	}

	c.JSON(200, status)
}
