package connection

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"smarttasks/config"
	"smarttasks/controller/auth"
	"smarttasks/controller/checklist"
	"smarttasks/controller/task"
	"smarttasks/middleware"
	"smarttasks/scheduler"
	"smarttasks/services"
)

const APIPrefix = "/api/v1"

// Dependencies are the services the router hands to its controllers.
type Dependencies struct {
	Store    *services.Store
	Accounts *services.AccountService
	Tokens   *services.TokenService
	Log      zerolog.Logger
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(deps.Log), cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Api is running!"})
	})

	api := router.Group(APIPrefix)
	auth.AuthController(api, deps.Accounts)
	checklist.ChecklistController(api, deps.Store, deps.Tokens)
	task.TaskController(api, deps.Store, deps.Tokens)

	return router
}

// StartServer connects every collaborator and serves until the listener
// fails.
func StartServer(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	gin.SetMode(cfg.Server.Mode)

	DB, err := DBConnection(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	FB, err := FBConnection(ctx, cfg.Firebase)
	if err != nil {
		return err
	}

	var mirror services.Mirror = services.NopMirror{}
	if FB != nil {
		defer FB.Close()
		mirror = services.NewFirestoreMirror(FB)
		log.Info().Str("project_id", cfg.Firebase.ProjectID).Msg("firestore mirror enabled")
	}

	tokens := services.NewTokenService(cfg.Auth)
	store := services.NewStore(DB, mirror, log)
	deps := Dependencies{
		Store:    store,
		Accounts: services.NewAccountService(DB, tokens, log),
		Tokens:   tokens,
		Log:      log,
	}

	if cfg.Scheduler.Spec != "" {
		cron, err := scheduler.Start(cfg.Scheduler.Spec, store, FB != nil, log)
		if err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer cron.Stop()
	}

	log.Info().Str("address", cfg.Server.Address).Msg("listening")
	return NewRouter(deps).Run(cfg.Server.Address)
}
