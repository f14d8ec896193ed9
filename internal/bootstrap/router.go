package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/acidpbl/homequest/internal/api/http"
	"github.com/acidpbl/homequest/internal/api/http/middleware"
	"github.com/acidpbl/homequest/internal/auth"
	"github.com/acidpbl/homequest/internal/metrics"
	"github.com/acidpbl/homequest/internal/missions"
	"github.com/acidpbl/homequest/internal/store"
	"github.com/acidpbl/homequest/internal/users"
	usershttp "github.com/acidpbl/homequest/internal/users/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	RateRPS     float64
	RateBurst   int
	Store       store.Store
	Cache       *redis.Client
	Verifier    auth.TokenVerifier
	Resolver    auth.ProfileResolver
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(metrics.GinMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins: dep.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store, dep.Cache)
	healthHandler.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	limiter := middleware.NewRateLimiter(dep.RateRPS, dep.RateBurst)

	api := r.Group("/api/v1")
	api.Use(auth.Authenticate(dep.Verifier, dep.Resolver))
	api.Use(limiter.Middleware())
	api.Use(auth.RequireUser())

	userRepo := users.NewRepo(dep.Store)
	usershttp.Register(api, userRepo)

	missionRepo := missions.NewRepo(dep.Store)
	missionSvc := missions.NewService(missionRepo)
	missions.Register(api.Group("/missions"), missionSvc)

	return r
}
