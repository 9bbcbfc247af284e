package utils

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/slmontgomery/bugtracking/pkg/types"
)

// GetUserIDFromContext reads the authenticated user id set by the JWT
// middleware. Declared as a var so tests can stub it.
var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return 0, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return 0, errors.New("invalid user claims type")
	}

	return claims.UserID, nil
}
