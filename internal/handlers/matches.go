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

type CreateMatchRequest struct {
	Title      string  `json:"title"`
	HomeTeamID *string `json:"home_team_id"`
	AwayTeamID *string `json:"away_team_id"`
	Venue      *string `json:"venue"`
	MatchDate  *string `json:"match_date"`
	Status     string  `json:"status"`
	Result     *string `json:"result"`
	Summary    *string `json:"summary"`
}

type UpdateMatchRequest struct {
	Title      *string `json:"title"`
	HomeTeamID *string `json:"home_team_id"`
	AwayTeamID *string `json:"away_team_id"`
	Venue      *string `json:"venue"`
	MatchDate  *string `json:"match_date"`
	Status     *string `json:"status"`
	Result     *string `json:"result"`
	Summary    *string `json:"summary"`
}

// MatchRow is a match enriched with both joined team names.
type MatchRow struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	HomeTeamID   *string   `json:"home_team_id"`
	AwayTeamID   *string   `json:"away_team_id"`
	Venue        *string   `json:"venue"`
	MatchDate    *string   `json:"match_date"`
	Status       string    `json:"status"`
	Result       *string   `json:"result"`
	Summary      *string   `json:"summary"`
	HomeTeamName *string   `json:"home_team_name"`
	AwayTeamName *string   `json:"away_team_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func matchQuery() *gorm.DB {
	return db.DB.Table("matches").
		Select("matches.*, ht.name AS home_team_name, at.name AS away_team_name").
		Joins("LEFT JOIN teams ht ON ht.id = matches.home_team_id").
		Joins("LEFT JOIN teams at ON at.id = matches.away_team_id")
}

func fetchMatch(id string) (*MatchRow, error) {
	var row MatchRow

	result := matchQuery().Where("matches.id = ?", id).Limit(1).Scan(&row)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, nil
	}

	return &row, nil
}

func ListMatches(ctx *gin.Context) {
	search := strings.TrimSpace(ctx.Query("search"))

	query := matchQuery()

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(matches.title) LIKE ? OR LOWER(ht.name) LIKE ? OR LOWER(at.name) LIKE ?)", like, like, like)
	}

	matches := []MatchRow{}

	err := query.Order("matches.match_date DESC, matches.created_at DESC").Scan(&matches).Error

	if err != nil {
		respondDatabaseError(ctx, "list matches", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": matches})
}

func GetMatch(ctx *gin.Context) {
	match, err := fetchMatch(ctx.Param("id"))

	if err != nil {
		respondDatabaseError(ctx, "fetch match", err)
		return
	}

	if match == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": match})
}

func CreateMatch(ctx *gin.Context) {
	var req CreateMatchRequest

	if !bindJSON(ctx, &req) {
		return
	}

	fieldErrors := map[string]string{}

	if strings.TrimSpace(req.Title) == "" {
		fieldErrors["title"] = requiredMessage
	}

	if strings.TrimSpace(req.Status) == "" {
		fieldErrors["status"] = requiredMessage
	}

	if len(fieldErrors) > 0 {
		respondValidation(ctx, fieldErrors)
		return
	}

	homeTeamID := normalizeTeamID(req.HomeTeamID)
	awayTeamID := normalizeTeamID(req.AwayTeamID)

	if !checkTeamRef(ctx, "home_team_id", homeTeamID) || !checkTeamRef(ctx, "away_team_id", awayTeamID) {
		return
	}

	match := models.Match{
		Title:      req.Title,
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		Venue:      req.Venue,
		MatchDate:  req.MatchDate,
		Status:     req.Status,
		Result:     req.Result,
		Summary:    req.Summary,
	}

	if err := db.DB.Create(&match).Error; err != nil {
		respondDatabaseError(ctx, "create match", err)
		return
	}

	row, err := fetchMatch(match.ID)

	if err != nil {
		respondDatabaseError(ctx, "fetch match", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": row})
}

func UpdateMatch(ctx *gin.Context) {
	id := ctx.Param("id")

	var req UpdateMatchRequest

	if !bindJSON(ctx, &req) {
		return
	}

	updates := map[string]interface{}{}

	if req.Title != nil {
		updates["title"] = *req.Title
	}

	if req.HomeTeamID != nil {
		if normalized := normalizeTeamID(req.HomeTeamID); normalized == nil {
			updates["home_team_id"] = nil
		} else if !checkTeamRef(ctx, "home_team_id", normalized) {
			return
		} else {
			updates["home_team_id"] = *normalized
		}
	}

	if req.AwayTeamID != nil {
		if normalized := normalizeTeamID(req.AwayTeamID); normalized == nil {
			updates["away_team_id"] = nil
		} else if !checkTeamRef(ctx, "away_team_id", normalized) {
			return
		} else {
			updates["away_team_id"] = *normalized
		}
	}

	if req.Venue != nil {
		updates["venue"] = nullableString(req.Venue)
	}

	if req.MatchDate != nil {
		updates["match_date"] = nullableString(req.MatchDate)
	}

	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if req.Result != nil {
		updates["result"] = nullableString(req.Result)
	}

	if req.Summary != nil {
		updates["summary"] = nullableString(req.Summary)
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	result := db.DB.Model(&models.Match{}).Where("id = ?", id).Updates(updates)

	if result.Error != nil {
		respondDatabaseError(ctx, "update match", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}

	row, err := fetchMatch(id)

	if err != nil {
		respondDatabaseError(ctx, "fetch match", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": row})
}

func DeleteMatch(ctx *gin.Context) {
	result := db.DB.Delete(&models.Match{}, "id = ?", ctx.Param("id"))

	if result.Error != nil {
		respondDatabaseError(ctx, "delete match", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
