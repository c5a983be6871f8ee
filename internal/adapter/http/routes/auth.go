package routes

import (
	"net/http"
	"strings"

	"pizzamaster/internal/adapter/http/handlers"
	"pizzamaster/internal/usecase"
	"pizzamaster/pkg"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

var errMissingSession = pkg.NewDomainErrorSimple("MISSING_SESSION", "A valid session token is required", http.StatusUnauthorized)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/sign-in", authHandler.SignIn)
		auth.POST("/sign-out", authHandler.SignOut)
	}
}

// requireSession guards the POS surface: every request must carry the bearer
// token issued by sign-in.
func requireSession(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
			return
		}

		email, err := auth.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
			return
		}

		c.Set("session_email", email)
		c.Next()
	}
}
