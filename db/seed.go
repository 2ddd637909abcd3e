package db

import (
	"errors"
	"strings"

	"github.com/crickhub-dev/crickhub/internal/models"
	"github.com/crickhub-dev/crickhub/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdminUser creates the admin account on first boot. User records are
// otherwise only ever created out of band, so an existing account is left
// untouched except for reactivation.
func EnsureAdminUser(email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return nil
	}

	var existing models.User

	err := DB.Where("email = ?", email).First(&existing).Error

	if err == nil {
		if existing.IsActive {
			return nil
		}
		return DB.Model(&existing).Update("is_active", true).Error
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return err
	}

	admin := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         types.RoleAdmin,
		IsActive:     true,
	}

	return DB.Create(&admin).Error
}
