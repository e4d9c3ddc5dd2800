package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/ThaRealJozef/DimaVelo-sub000/cart"
	"github.com/ThaRealJozef/DimaVelo-sub000/config"
	bookingcontroller "github.com/ThaRealJozef/DimaVelo-sub000/controllers/booking"
	"github.com/ThaRealJozef/DimaVelo-sub000/imghost"
	"github.com/ThaRealJozef/DimaVelo-sub000/pkg/logx"
	"github.com/ThaRealJozef/DimaVelo-sub000/repository"
	"github.com/ThaRealJozef/DimaVelo-sub000/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}

	logx.Init(cfg.Environment.IsProduction())
	log.Info().Str("environment", string(cfg.Environment)).Msg("starting dimavelo api")

	ctx := context.Background()

	db, err := repository.Dial(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal().Err(err).Msg("document store connection failed")
	}

	redisClient, err := dialRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Cart-Session"},
		ExposeHeaders:    []string{"Content-Length", "X-Cart-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	deps := &routes.Deps{
		Products:      repository.NewProductRepository(db),
		Categories:    repository.NewCategoryRepository(db),
		Bookings:      repository.NewBookingRepository(db),
		Admins:        repository.NewAdminRepository(db),
		CartPersister: cart.NewRedisPersister(redisClient),
		Images:        imghost.NewClient(cfg.ImageHostURL, cfg.ImageHostKey),
		BookingHub:    bookingcontroller.NewHub(),
		JWTSecret:     cfg.JWTSecret,
		WhatsappPhone: cfg.WhatsappPhone,
	}
	routes.SetupRoutes(r, deps)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func dialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
