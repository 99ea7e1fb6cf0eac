package main

import (
	"os"
	"time"

	"canteen-service/internal/auth"
	"canteen-service/internal/config"
	httpctrl "canteen-service/internal/controllers/http"
	"canteen-service/internal/infra/imagehost"
	mmysql "canteen-service/internal/infra/mysql"
	"canteen-service/internal/infra/push"
	"canteen-service/internal/infra/rabbitmq"
	"canteen-service/internal/infra/realtime"
	mysqlrepo "canteen-service/internal/repository/mysql"
	"canteen-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(os.Stdout)

	cfg := config.Load()

	db, err := mmysql.NewMySQL(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("db: connect")
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	userRepo := mysqlrepo.NewUserRepository(db)
	menuRepo := mysqlrepo.NewMenuRepository(db)
	cartRepo := mysqlrepo.NewCartRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)
	statusRepo := mysqlrepo.NewStatusRepository(db)
	pushRepo := mysqlrepo.NewPushSubscriptionRepository(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisHost + ":6379",
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, "canteen.orders")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init publisher")
	}
	defer publisher.Close()

	feed := realtime.NewFeed(redisClient)
	sender := push.NewWebPushSender(cfg.VAPIDSubject, cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey)
	uploader := imagehost.NewClient(cfg.ImageHostURL, cfg.ImageHostKey, 10*time.Second)
	tokens := auth.NewTokenMaker(cfg.JWTSecret)

	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	menuService := services.NewMenuService(menuRepo)
	menuService.SetRedisClient(redisClient)
	cartService := services.NewCartService(cartRepo, menuRepo)
	notificationService := services.NewNotificationService(pushRepo, sender)
	orderService := services.NewOrderService(orderRepo, menuRepo, cartRepo, statusRepo, publisher, feed, notificationService)

	handler := httpctrl.NewHandler(
		authService,
		userService,
		menuService,
		cartService,
		orderService,
		notificationService,
		feed,
		uploader,
		tokens,
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpctrl.RequestLogger())

	handler.RegisterRoutes(r)

	log.Info().Str("port", cfg.Port).Msg("starting canteen service")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server run")
	}
}
