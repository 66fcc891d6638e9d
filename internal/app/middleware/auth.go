package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Laminito/ameublement-market/internal/pkg/consts"
	"github.com/Laminito/ameublement-market/internal/pkg/log_messages"
	"github.com/Laminito/ameublement-market/internal/pkg/logger"
	"github.com/Laminito/ameublement-market/internal/pkg/models"
	"github.com/Laminito/ameublement-market/internal/service/interfaces"
	"github.com/Laminito/ameublement-market/internal/service/session"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth resolves the bearer token to a profile and stores both on
// the gin context. Requests without a valid token are rejected.
func RequireAuth(sessions interfaces.SessionResolverInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			logger.CtxWarn(c.Request.Context(), log_messages.MissingAuthenticationToken)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "authentification requise",
			})
			return
		}

		profile, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			status := http.StatusUnauthorized
			message := "session expirée, veuillez vous reconnecter"
			if !errors.Is(err, session.ErrInvalidToken) {
				status = http.StatusBadGateway
				message = "service momentanément indisponible"
			}
			c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
			return
		}

		c.Set(consts.ContextTokenKey, token)
		c.Set(consts.ContextUserKey, profile)
		c.Next()
	}
}

// RequireAdmin rejects authenticated requests whose profile lacks the
// admin role. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := CurrentUser(c)
		if profile == nil || !profile.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "accès réservé aux administrateurs",
			})
			return
		}
		c.Next()
	}
}

// CurrentToken returns the bearer token stored by RequireAuth.
func CurrentToken(c *gin.Context) string {
	return c.GetString(consts.ContextTokenKey)
}

// CurrentUser returns the profile stored by RequireAuth, nil when the
// request was not authenticated.
func CurrentUser(c *gin.Context) *models.UserProfile {
	v, ok := c.Get(consts.ContextUserKey)
	if !ok {
		return nil
	}
	profile, ok := v.(*models.UserProfile)
	if !ok {
		return nil
	}
	return profile
}
