package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "recipebox-backend/internal/auth"
	"recipebox-backend/internal/cart"
	"recipebox-backend/internal/invites"
	"recipebox-backend/internal/recipes"
	"recipebox-backend/internal/shared/config"
	"recipebox-backend/internal/shared/server"
	"recipebox-backend/internal/shared/storage/db"
	"recipebox-backend/internal/shoppinglist"
	"recipebox-backend/internal/users"
)

// App holds the wired application: config, database handle, repositories,
// services, handlers, and the HTTP router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	RecipesRepo recipes.Repo
	CartRepo    cart.Repo
	UsersRepo   users.Repo

	RecipesService *recipes.Service
	CartService    *cart.Service
	UsersService   *users.Service
	InvitesService *invites.Service

	RecipeHandler       *recipes.Handler
	ShoppingListHandler *shoppinglist.Handler
	CartHandler         *cart.Handler
	SharedCartHandler   *cart.SharedHandler
	UserHandler         *users.Handler
	InviteHandler       *invites.Handler
	GoogleAuth          *googleauth.GoogleService
}

// Build prepares all dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              app.Config,
		RecipeHandler:       app.RecipeHandler,
		ShoppingListHandler: app.ShoppingListHandler,
		CartHandler:         app.CartHandler,
		SharedCartHandler:   app.SharedCartHandler,
		UserHandler:         app.UserHandler,
		InviteHandler:       app.InviteHandler,
		GoogleAuth:          app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var recipeRepo recipes.Repo
	var cartRepo cart.Repo
	var userRepo users.Repo
	var inviteSvc *invites.Service

	if app.DB != nil {
		recipeRepo = &recipes.PGRepo{DB: app.DB}
		cartRepo = &cart.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
		inviteSvc = invites.NewPostgresService(invites.NewPGStore(app.DB))
	} else {
		recipeRepo = recipes.NewMemoryRepo()
		cartRepo = cart.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
		inviteSvc = invites.NewService()
	}

	userSvc := users.NewService(userRepo)
	recipeSvc := &recipes.Service{
		Repo:     recipeRepo,
		Clipper:  recipes.NewClipper(app.Config.ClipTimeout),
		Importer: recipes.NewImporter(),
	}
	cartSvc := &cart.Service{Repo: cartRepo, Names: userSvc}

	app.RecipesRepo = recipeRepo
	app.CartRepo = cartRepo
	app.UsersRepo = userRepo
	app.RecipesService = recipeSvc
	app.CartService = cartSvc
	app.UsersService = userSvc
	app.InvitesService = inviteSvc

	app.RecipeHandler = recipes.NewHandler(recipeSvc)
	app.ShoppingListHandler = shoppinglist.NewHandler(recipeSvc)
	app.CartHandler = cart.NewHandler(cartSvc)
	app.SharedCartHandler = cart.NewSharedHandler(cartSvc)
	app.UserHandler = users.NewHandler(userSvc)
	app.InviteHandler = invites.NewHandler(inviteSvc, app.Config.AdminEmails)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)
}
