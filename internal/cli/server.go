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

	"camp-portal/internal/app"
	"camp-portal/internal/config"
	"camp-portal/internal/content"
	"camp-portal/internal/infra/memory"
	pgloader "camp-portal/internal/infra/postgres"
	redisinfra "camp-portal/internal/infra/redis"
	"camp-portal/internal/offline"
	"camp-portal/internal/oracle"
	transport "camp-portal/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the portal server",
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

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	// The embedded bundle serves until Postgres-backed content is configured.
	var loader memory.ContentLoader = memory.NewStaticContentLoader(content.Camp())
	if pool != nil {
		loader = pgloader.NewContentLoader(pool)
	}

	contentTTL := config.TTLDuration(cfg.Content.TTL, 10*time.Minute)
	var contentRepo app.ContentRepository
	if redisClient != nil {
		contentRepo = redisinfra.NewContentCache(redisClient, loader, contentTTL)
	} else {
		contentRepo = memory.NewContentRepository(loader, contentTTL)
	}

	var sessions app.SessionRepository
	var quests app.QuestStore
	var assetStore offline.Store
	if redisClient != nil {
		sessions = redisinfra.NewSessionStore(redisClient, redisTTL)
		quests = redisinfra.NewQuestStore(redisClient)
		assetStore = redisinfra.NewAssetStore(redisClient)
	} else {
		sessions = memory.NewSessionStore()
		quests = memory.NewQuestStore()
		assetStore = memory.NewAssetStore()
	}

	var oracleClient app.OracleClient
	if cfg.Oracle.APIKey != "" {
		client, err := oracle.NewClient(ctx, cfg.Oracle.APIKey, cfg.Oracle.Model)
		if err != nil {
			return err
		}
		defer client.Close()
		oracleClient = client
	} else {
		log.Printf("oracle api key not configured, serving fallback replies")
	}

	service := app.NewPortalService(sessions, contentRepo, quests, oracleClient)

	var assetCache *offline.Cache
	if len(cfg.Assets.URLs) > 0 {
		name := cfg.Assets.Cache
		if name == "" {
			name = "portal-assets-v2"
		}
		assetCache = offline.NewCache(name, cfg.Assets.URLs, cfg.Assets.Origin, assetStore, nil)
		// startup pre-warm is best effort; the cache falls back to the network
		if err := assetCache.Install(ctx); err != nil {
			log.Printf("asset cache install: %v", err)
		} else if err := assetCache.Activate(ctx); err != nil {
			log.Printf("asset cache activate: %v", err)
		}
	}

	handler := transport.NewHandler(service, assetCache)
	wsHandler := transport.NewWSHandler(service)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting camp portal on :%s", finalPort)
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
