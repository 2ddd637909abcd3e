package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/crickhub-dev/crickhub/db"
	"github.com/crickhub-dev/crickhub/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreatePlayerRequest struct {
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	TeamID     *string  `json:"team_id"`
	Matches    *int     `json:"matches"`
	Runs       *int     `json:"runs"`
	Average    *float64 `json:"average"`
	StrikeRate *float64 `json:"strike_rate"`
	Hundreds   *int     `json:"hundreds"`
	Fifties    *int     `json:"fifties"`
	Fours      *int     `json:"fours"`
	Sixes      *int     `json:"sixes"`
	Bio        *string  `json:"bio"`
}

// UpdatePlayerRequest is a patch: only fields present in the payload are
// written. An empty team_id detaches the player from their team.
type UpdatePlayerRequest struct {
	Name       *string  `json:"name"`
	Role       *string  `json:"role"`
	TeamID     *string  `json:"team_id"`
	Matches    *int     `json:"matches"`
	Runs       *int     `json:"runs"`
	Average    *float64 `json:"average"`
	StrikeRate *float64 `json:"strike_rate"`
	Hundreds   *int     `json:"hundreds"`
	Fifties    *int     `json:"fifties"`
	Fours      *int     `json:"fours"`
	Sixes      *int     `json:"sixes"`
	Bio        *string  `json:"bio"`
}

// PlayerRow is a player enriched with the joined team name for display.
type PlayerRow struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	TeamID     *string   `json:"team_id"`
	Matches    int       `json:"matches"`
	Runs       int       `json:"runs"`
	Average    float64   `json:"average"`
	StrikeRate float64   `json:"strike_rate"`
	Hundreds   int       `json:"hundreds"`
	Fifties    int       `json:"fifties"`
	Fours      int       `json:"fours"`
	Sixes      int       `json:"sixes"`
	Bio        *string   `json:"bio"`
	TeamName   *string   `json:"team_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func playerQuery() *gorm.DB {
	return db.DB.Table("players").
		Select("players.*, teams.name AS team_name").
		Joins("LEFT JOIN teams ON teams.id = players.team_id")
}

func fetchPlayer(id string) (*PlayerRow, error) {
	var row PlayerRow

	result := playerQuery().Where("players.id = ?", id).Limit(1).Scan(&row)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, nil
	}

	return &row, nil
}

func ListPlayers(ctx *gin.Context) {
	search := strings.TrimSpace(ctx.Query("search"))
	teamID := ctx.Query("team_id")

	query := playerQuery()

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(players.name) LIKE ? OR LOWER(teams.name) LIKE ?)", like, like)
	}

	if teamID != "" {
		query = query.Where("players.team_id = ?", teamID)
	}

	players := []PlayerRow{}

	if err := query.Order("players.name ASC").Scan(&players).Error; err != nil {
		respondDatabaseError(ctx, "list players", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": players})
}

func GetPlayer(ctx *gin.Context) {
	player, err := fetchPlayer(ctx.Param("id"))

	if err != nil {
		respondDatabaseError(ctx, "fetch player", err)
		return
	}

	if player == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": player})
}

func CreatePlayer(ctx *gin.Context) {
	var req CreatePlayerRequest

	if !bindJSON(ctx, &req) {
		return
	}

	fieldErrors := map[string]string{}

	if strings.TrimSpace(req.Name) == "" {
		fieldErrors["name"] = requiredMessage
	}

	if strings.TrimSpace(req.Role) == "" {
		fieldErrors["role"] = requiredMessage
	}

	if len(fieldErrors) > 0 {
		respondValidation(ctx, fieldErrors)
		return
	}

	teamID := normalizeTeamID(req.TeamID)

	if !checkTeamRef(ctx, "team_id", teamID) {
		return
	}

	player := models.Player{
		Name:       req.Name,
		Role:       req.Role,
		TeamID:     teamID,
		Matches:    intValue(req.Matches),
		Runs:       intValue(req.Runs),
		Average:    floatValue(req.Average),
		StrikeRate: floatValue(req.StrikeRate),
		Hundreds:   intValue(req.Hundreds),
		Fifties:    intValue(req.Fifties),
		Fours:      intValue(req.Fours),
		Sixes:      intValue(req.Sixes),
		Bio:        req.Bio,
	}

	if err := db.DB.Create(&player).Error; err != nil {
		respondDatabaseError(ctx, "create player", err)
		return
	}

	row, err := fetchPlayer(player.ID)

	if err != nil {
		respondDatabaseError(ctx, "fetch player", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": row})
}

func UpdatePlayer(ctx *gin.Context) {
	id := ctx.Param("id")

	var req UpdatePlayerRequest

	if !bindJSON(ctx, &req) {
		return
	}

	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if req.Role != nil {
		updates["role"] = *req.Role
	}

	if req.TeamID != nil {
		if teamID := normalizeTeamID(req.TeamID); teamID == nil {
			updates["team_id"] = nil
		} else if !checkTeamRef(ctx, "team_id", teamID) {
			return
		} else {
			updates["team_id"] = *teamID
		}
	}

	if req.Matches != nil {
		updates["matches"] = *req.Matches
	}

	if req.Runs != nil {
		updates["runs"] = *req.Runs
	}

	if req.Average != nil {
		updates["average"] = *req.Average
	}

	if req.StrikeRate != nil {
		updates["strike_rate"] = *req.StrikeRate
	}

	if req.Hundreds != nil {
		updates["hundreds"] = *req.Hundreds
	}

	if req.Fifties != nil {
		updates["fifties"] = *req.Fifties
	}

	if req.Fours != nil {
		updates["fours"] = *req.Fours
	}

	if req.Sixes != nil {
		updates["sixes"] = *req.Sixes
	}

	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	result := db.DB.Model(&models.Player{}).Where("id = ?", id).Updates(updates)

	if result.Error != nil {
		respondDatabaseError(ctx, "update player", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	row, err := fetchPlayer(id)

	if err != nil {
		respondDatabaseError(ctx, "fetch player", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": row})
}

func DeletePlayer(ctx *gin.Context) {
	result := db.DB.Delete(&models.Player{}, "id = ?", ctx.Param("id"))

	if result.Error != nil {
		respondDatabaseError(ctx, "delete player", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Player deleted successfully"})
}

// normalizeTeamID treats an empty or blank team reference as "no team".
func normalizeTeamID(teamID *string) *string {
	if teamID == nil || strings.TrimSpace(*teamID) == "" {
		return nil
	}
	return teamID
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
