package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/crickhub-dev/crickhub/db"
	"github.com/crickhub-dev/crickhub/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateTeamRequest struct {
	Name    string  `json:"name"`
	City    *string `json:"city"`
	Coach   *string `json:"coach"`
	Captain *string `json:"captain"`
	Founded *int    `json:"founded"`
}

type UpdateTeamRequest struct {
	Name    *string `json:"name"`
	City    *string `json:"city"`
	Coach   *string `json:"coach"`
	Captain *string `json:"captain"`
	Founded *int    `json:"founded"`
}

func ListTeams(ctx *gin.Context) {
	search := strings.TrimSpace(ctx.Query("search"))

	query := db.DB.Model(&models.Team{})

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(city) LIKE ?)", like, like)
	}

	teams := []models.Team{}

	if err := query.Order("name ASC").Find(&teams).Error; err != nil {
		respondDatabaseError(ctx, "list teams", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": teams})
}

func GetTeam(ctx *gin.Context) {
	var team models.Team

	err := db.DB.First(&team, "id = ?", ctx.Param("id")).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
			return
		}
		respondDatabaseError(ctx, "fetch team", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": team})
}

func CreateTeam(ctx *gin.Context) {
	var req CreateTeamRequest

	if !bindJSON(ctx, &req) {
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondValidation(ctx, map[string]string{"name": requiredMessage})
		return
	}

	team := models.Team{
		Name:    req.Name,
		City:    req.City,
		Coach:   req.Coach,
		Captain: req.Captain,
		Founded: req.Founded,
	}

	if err := db.DB.Create(&team).Error; err != nil {
		respondDatabaseError(ctx, "create team", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": team})
}

func UpdateTeam(ctx *gin.Context) {
	id := ctx.Param("id")

	var req UpdateTeamRequest

	if !bindJSON(ctx, &req) {
		return
	}

	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	// Blank strings clear the optional columns.
	if req.City != nil {
		updates["city"] = nullableString(req.City)
	}

	if req.Coach != nil {
		updates["coach"] = nullableString(req.Coach)
	}

	if req.Captain != nil {
		updates["captain"] = nullableString(req.Captain)
	}

	if req.Founded != nil {
		updates["founded"] = *req.Founded
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	result := db.DB.Model(&models.Team{}).Where("id = ?", id).Updates(updates)

	if result.Error != nil {
		respondDatabaseError(ctx, "update team", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	var team models.Team

	if err := db.DB.First(&team, "id = ?", id).Error; err != nil {
		respondDatabaseError(ctx, "fetch team", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": team})
}

// DeleteTeam removes the team without touching players or matches that still
// reference it; those rows keep their dangling team id.
func DeleteTeam(ctx *gin.Context) {
	result := db.DB.Delete(&models.Team{}, "id = ?", ctx.Param("id"))

	if result.Error != nil {
		respondDatabaseError(ctx, "delete team", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// checkTeamRef validates a non-nil team reference against the teams table,
// writing the error response itself when the reference is bad.
func checkTeamRef(ctx *gin.Context, field string, teamID *string) bool {
	if teamID == nil {
		return true
	}

	exists, err := teamExists(*teamID)

	if err != nil {
		respondDatabaseError(ctx, "validate team", err)
		return false
	}

	if !exists {
		respondValidation(ctx, map[string]string{field: "Team not found."})
		return false
	}

	return true
}

func teamExists(id string) (bool, error) {
	var count int64

	if err := db.DB.Model(&models.Team{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func nullableString(v *string) interface{} {
	if v == nil || *v == "" {
		return nil
	}
	return *v
}
