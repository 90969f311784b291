package routes

import (
	"net/http"
	"strings"

	"home_cleaning/internal/adapter/http/handlers"
	"home_cleaning/internal/domain/entities"
	"home_cleaning/internal/usecase/interfaces"
	"home_cleaning/pkg"

	"github.com/gin-gonic/gin"
)

const PathDashboard = "/dashboard"

var (
	errMissingToken = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Authorization token is required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Authorization token is invalid or expired", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role for this resource", http.StatusForbidden)
)

// The reporting views expose cross-customer data, so the whole group sits
// behind an ADMIN-only token check.
func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler, tokens interfaces.ITokenManager) {
	dashboard := rg.Group(PathDashboard)
	dashboard.Use(authRequired(tokens, entities.RoleAdmin))
	{
		dashboard.GET("/frequent-customers", dashboardHandler.FrequentCustomers)
		dashboard.GET("/uncommitted-customers", dashboardHandler.UncommittedCustomers)
		dashboard.GET("/prospective-customers", dashboardHandler.ProspectiveCustomers)
		dashboard.GET("/accepted-quotes", dashboardHandler.AcceptedQuotesInMonth)
		dashboard.GET("/largest-job", dashboardHandler.LargestJob)
		dashboard.GET("/overdue-bills", dashboardHandler.OverdueBills)
		dashboard.GET("/bad-customers", dashboardHandler.BadCustomers)
		dashboard.GET("/good-customers", dashboardHandler.GoodCustomers)
	}
}

func authRequired(tokens interfaces.ITokenManager, role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		if claims.Role != role {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}

		c.Set("username", claims.Username)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}
