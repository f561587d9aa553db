package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "recipebox-backend/internal/auth"
	"recipebox-backend/internal/cart"
	"recipebox-backend/internal/invites"
	"recipebox-backend/internal/recipes"
	"recipebox-backend/internal/shared/config"
	"recipebox-backend/internal/shared/metrics"
	"recipebox-backend/internal/shared/server/middleware"
	"recipebox-backend/internal/shared/server/respond"
	"recipebox-backend/internal/shoppinglist"
	"recipebox-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up. Nil handlers are
// skipped, which keeps partial wiring possible in tests.
type RouterDeps struct {
	Config              config.Config
	RecipeHandler       *recipes.Handler
	ShoppingListHandler *shoppinglist.Handler
	CartHandler         *cart.Handler
	SharedCartHandler   *cart.SharedHandler
	UserHandler         *users.Handler
	InviteHandler       *invites.Handler
	GoogleAuth          *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.RecipeHandler != nil {
		deps.RecipeHandler.RegisterRoutes(api)
	}
	if deps.ShoppingListHandler != nil {
		deps.ShoppingListHandler.RegisterRoutes(api)
	}
	if deps.CartHandler != nil {
		deps.CartHandler.RegisterRoutes(api)
	}
	if deps.InviteHandler != nil {
		deps.InviteHandler.RegisterRoutes(api)
	}

	if deps.SharedCartHandler != nil {
		// Shared-link traffic is anonymous, so throttle it by client IP.
		shared := api.Group("")
		shared.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"shared": {Rate: 5, Burst: 20},
			},
			DefaultGroup: "shared",
		}))
		deps.SharedCartHandler.RegisterRoutes(shared)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
