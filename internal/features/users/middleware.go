package users

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agnesk/plantcare/internal/pkg/response"
)

// TokenFinder resolves an access token to a user
type TokenFinder interface {
	FindByToken(ctx context.Context, accessToken string) (*User, error)
}

// Authenticate gates protected routes. The Authorization header carries the
// raw access token (a "Bearer " prefix is tolerated) and is matched verbatim
// against the credential store. Rejections carry the loggedOut flag so
// clients can distinguish an expired session from other failures.
func Authenticate(finder TokenFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := c.GetHeader("Authorization")

		fields := strings.Fields(accessToken)
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			accessToken = fields[1]
		}

		if accessToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"loggedOut": true})
			return
		}

		user, err := finder.FindByToken(c.Request.Context(), accessToken)
		if err != nil {
			response.DatabaseError(c, "Could not verify session")
			c.Abort()
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"loggedOut": true})
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID.Hex())
		c.Next()
	}
}
