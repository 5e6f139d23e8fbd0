package main

import (
	"log/slog"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"

	"api/config"
	"api/game"
	"api/questions"
)

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(ctx *gin.Context) { ctx.String(http.StatusOK, "healthy") })

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, "forbidden origin")
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func main() {
	cfg := config.Load()

	var logger *slog.Logger
	if cfg.Debug {
		logger = slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
		gin.SetMode(gin.ReleaseMode)
	}
	slog.SetDefault(logger)

	lobby := game.NewLobby(game.NewUuidGenerator(), game.NewTickerGen())
	started := make(chan struct{})
	go lobby.LobbyActor(started)
	<-started

	handler := game.NewGameHandler(lobby, questions.NewGenerator())

	r := CreateServer(cfg.AllowedOrigins)
	game.RegisterRoutes(r, handler)

	slog.Info("api listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("couldn't start server", "error", err)
		os.Exit(1)
	}
}
