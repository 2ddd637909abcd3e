package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/crickhub-dev/crickhub/db"
	"github.com/crickhub-dev/crickhub/internal/models"
	"github.com/crickhub-dev/crickhub/internal/session"
	"github.com/crickhub-dev/crickhub/internal/types"
	"github.com/crickhub-dev/crickhub/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler owns the session store so login and logout can rotate tokens.
type AuthHandler struct {
	Sessions *session.Store
}

func NewAuthHandler(sessions *session.Store) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !bindJSON(ctx, &req) {
		return
	}

	fieldErrors := map[string]string{}

	if strings.TrimSpace(req.Email) == "" {
		fieldErrors["email"] = requiredMessage
	}

	if req.Password == "" {
		fieldErrors["password"] = requiredMessage
	}

	if len(fieldErrors) > 0 {
		respondValidation(ctx, fieldErrors)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User

	err := db.DB.Where("email = ? AND is_active = ?", email, true).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same response as a bad password so the endpoint does not reveal
			// which emails exist.
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		respondDatabaseError(ctx, "fetch user", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// Rotate any token the client already holds to prevent session fixation.
	if old, err := ctx.Cookie(types.SessionCookieName); err == nil && old != "" {
		h.Sessions.Destroy(old)
	}

	sessionUser := types.SessionUser{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}

	token := h.Sessions.Create(sessionUser)
	setSessionCookie(ctx, token, 0)

	log.Printf("User %s logged in", sessionUser.Email)

	ctx.JSON(http.StatusOK, gin.H{
		"data":    sessionUser,
		"message": "Login successful",
	})
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	if token, err := ctx.Cookie(types.SessionCookieName); err == nil && token != "" {
		h.Sessions.Destroy(token)
	}

	setSessionCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Me reports the session user, or null for anonymous clients. It never fails
// with 401 so the frontend can probe login state without error handling.
func (h *AuthHandler) Me(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": user})
}

func setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     types.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   !Debug,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
