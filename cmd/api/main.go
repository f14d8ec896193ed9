package main

import (
	"context"
	"log"

	"github.com/acidpbl/homequest/config"
	"github.com/acidpbl/homequest/internal/auth"
	"github.com/acidpbl/homequest/internal/bootstrap"
	"github.com/acidpbl/homequest/internal/users"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	app, err := auth.InitializeFirebase(&cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}

	authClient, err := auth.AuthClient(app)
	if err != nil {
		log.Fatalf("firebase auth: %v", err)
	}

	st, closeStore, err := bootstrap.OpenStore(ctx, cfg, app)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer closeStore()

	cacheClient, err := bootstrap.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if cacheClient != nil {
		defer cacheClient.Close()
	}

	var cache *users.Cache
	if cacheClient != nil {
		cache = users.NewCache(cacheClient, cfg.Redis.ProfileCacheTTL)
	}
	resolver := users.NewResolver(users.NewRepo(st), cache)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "homequest-api",
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		RateRPS:     cfg.Server.RateLimitRPS,
		RateBurst:   cfg.Server.RateLimitBurst,
		Store:       st,
		Cache:       cacheClient,
		Verifier:    auth.NewFirebaseVerifier(authClient),
		Resolver:    resolver,
	})

	log.Printf("homequest-api listening on :%s (store=%s)", cfg.Server.Port, cfg.Store.Driver)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
