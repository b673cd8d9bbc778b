package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"geobattle-service/internal/config"
	"geobattle-service/internal/game"
	"geobattle-service/internal/geo"
	"geobattle-service/internal/infra/memory"
	pgboard "geobattle-service/internal/infra/postgres"
	redisboard "geobattle-service/internal/infra/redis"
	transport "geobattle-service/internal/transport/http"
)

const defaultLeaderboardSize = 20

// NewServerCmd builds the CLI subcommand to start the server.
func NewServerCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start the game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	size := cfg.Leaderboard.Size
	if size < 1 {
		size = defaultLeaderboardSize
	}

	// Leaderboard backends in order of preference: Postgres when
	// configured, then Redis, then in-memory.
	var board game.LeaderboardStore = memory.NewLeaderboard(size)
	switch {
	case cfg.Postgres.URL != "":
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		board = pgboard.NewLeaderboard(pool, size)
	case cfg.Redis.Addr != "":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		board = redisboard.NewLeaderboard(client, size)
	}

	perTier := cfg.Game.QuestionsPerTier
	if perTier < 1 {
		perTier = 6
	}
	opts := game.Options{
		LobbyCountdown: config.Duration(cfg.Game.LobbyCountdown, 10*time.Second),
		GraceDelay:     config.Duration(cfg.Game.GraceDelay, 2*time.Second),
		EndCooldown:    config.Duration(cfg.Game.EndCooldown, 10*time.Second),
	}

	hub := transport.NewHub()
	registry := game.NewRegistry(func(roomID string) *game.Session {
		return game.NewSession(roomID, game.Deps{
			Broadcast: hub,
			Board:     board,
			Questions: geo.NewGenerator(perTier),
			Opts:      opts,
		})
	})
	wsHandler := transport.NewWSHandler(hub, registry)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting geobattle server on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
