package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Debug controls whether database errors leak driver details to the client.
// Set once at startup from the config.
var Debug bool

// bindJSON decodes the request body and writes the 400 response itself when
// the payload is not valid JSON.
func bindJSON(ctx *gin.Context, out interface{}) bool {
	if err := ctx.ShouldBindJSON(out); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid JSON payload",
			"details": err.Error(),
		})
		return false
	}

	return true
}

func respondValidation(ctx *gin.Context, errors map[string]string) {
	ctx.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "Validation error",
		"details": errors,
	})
}

func respondDatabaseError(ctx *gin.Context, action string, err error) {
	log.Printf("Failed to %s: %v", action, err)

	if Debug {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Database error",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Database error. Check server logs."})
}

const requiredMessage = "This field is required."
