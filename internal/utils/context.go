package utils

import (
	"fmt"

	"github.com/crickhub-dev/crickhub/internal/types"
	"github.com/gin-gonic/gin"
)

func GetCurrentUser(ctx *gin.Context) (types.SessionUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return types.SessionUser{}, fmt.Errorf("user not authenticated")
	}

	sessionUser, ok := user.(types.SessionUser)

	if !ok {
		return types.SessionUser{}, fmt.Errorf("invalid user type in context")
	}

	return sessionUser, nil
}
