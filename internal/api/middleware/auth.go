package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/111KartoFan111/kurultai-project/internal/api/handler/v1/response"
	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/pkg/jwthelper"
)

const (
	// ContextKeyUserID and ContextKeyUserRole carry the authenticated
	// identity through the gin context.
	ContextKeyUserID   = "auth.userID"
	ContextKeyUserRole = "auth.userRole"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token and stores the
// token's identity in the context for handlers downstream.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, response.NewErr(http.StatusUnauthorized, "missing bearer token"))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, response.NewErr(http.StatusUnauthorized, "invalid bearer token"))

			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Set(ContextKeyUserRole, claims.Role)
		ctx.Next()
	}
}

// RequireAdmin guards the administration routes. VerifyJWT must run first.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetString(ContextKeyUserRole) != domain.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, response.NewErr(http.StatusForbidden, "admin role required"))

			return
		}

		ctx.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the gin context.
func CurrentUserID(ctx *gin.Context) uint {
	id, _ := ctx.Get(ContextKeyUserID)
	userID, _ := id.(uint)

	return userID
}
