package setup

import (
	"context"
	"time"

	"github.com/learnhouse-dev/learnhouse/frontend/internal/apiclient"
	"github.com/learnhouse-dev/learnhouse/frontend/internal/handler"
	"github.com/learnhouse-dev/learnhouse/frontend/internal/middleware"
	"github.com/learnhouse-dev/learnhouse/frontend/internal/notify"
	"github.com/learnhouse-dev/learnhouse/shared/config"
	"github.com/learnhouse-dev/learnhouse/shared/jwt"
	"github.com/learnhouse-dev/learnhouse/shared/logger"
)

const sweepInterval = 30 * time.Second

type Dependencies struct {
	Handler    *handler.Handler
	Auth       *middleware.Auth
	Public     config.Public
	Board      *notify.Board
	CancelFunc context.CancelFunc
}

func SetupDependencies(cfg *config.Config) *Dependencies {
	// Create cancellable context for background tasks
	ctx, cancel := context.WithCancel(context.Background())

	board := notify.NewBoard(cfg.Public.Notifications.TTL)
	go board.Run(ctx, sweepInterval)

	apiClient := apiclient.New(cfg.Public.API.BaseURL, cfg.Public.API.Timeout)
	h := handler.New(apiClient, board)

	var jwtSvc jwt.JwtService
	if key := cfg.JwtKey(); key != "" {
		// ttl only matters for issuing; the frontend just verifies
		jwtSvc = jwt.New(key, 0)
	} else {
		logger.Log.Warn("jwt_key is empty, tokens are forwarded without verification")
	}

	return &Dependencies{
		Handler:    h,
		Auth:       middleware.NewAuth(jwtSvc),
		Public:     cfg.Public,
		Board:      board,
		CancelFunc: cancel,
	}
}
