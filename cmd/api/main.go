package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filmorate-go/internal/api/handler"
	"filmorate-go/internal/api/middleware"
	"filmorate-go/internal/api/router"
	"filmorate-go/internal/api/validation"
	"filmorate-go/internal/cache"
	"filmorate-go/internal/config"
	"filmorate-go/internal/infra/database"
	infraES "filmorate-go/internal/infra/elasticsearch"
	infraKafka "filmorate-go/internal/infra/kafka"
	infraMinio "filmorate-go/internal/infra/minio"
	infraRedis "filmorate-go/internal/infra/redis"
	"filmorate-go/internal/repository"
	"filmorate-go/internal/service"
	"filmorate-go/pkg/logger"

	_ "filmorate-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Filmorate-Go API
// @version 1.0
// @description 电影目录与社交互动 API 服务
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8080
// @BasePath /api/v1

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表并写入类型与分级
	if err := database.AutoMigrate(database.Get()); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化 Redis（可选，失败则关闭排行缓存，限流使用内存存储）
	var rankingCache service.RankingCache
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis init failed, ranking cache disabled", zap.Error(err))
	} else {
		defer infraRedis.Close()
		if cfg.Cache.Enabled {
			rankingCache = cache.NewRankingCache(infraRedis.Get(), cfg.Cache.TTLDuration())
		}
	}

	// 初始化 Kafka 生产者（可选，失败则不投递动态和同步任务）
	var publisher service.Publisher
	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Warn("Kafka producer init failed, events will not be published", zap.Error(err))
	} else {
		defer infraKafka.CloseProducer()
		publisher = infraKafka.NewPublisher(&cfg.Kafka)
	}

	// 初始化 Elasticsearch（可选，失败则搜索降级到 DB）
	var filmIndex service.FilmIndex
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
	} else {
		defer infraES.Close()
		indexName := cfg.Elasticsearch.IndexName(infraES.FilmsIndex)
		if err := infraES.InitIndexes(indexName); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
		filmIndex = infraES.NewFilmIndex(indexName)
	}

	// 初始化 MinIO（可选，失败则海报上传不可用）
	var posterStore service.PosterStore
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Warn("MinIO init failed, poster upload disabled", zap.Error(err))
	} else {
		posterStore = infraMinio.NewPosterStore(&cfg.MinIO)
	}

	if err := validation.Register(); err != nil {
		logger.Fatal("Failed to register validators", zap.Error(err))
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	filmRepo := repository.NewFilmRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	eventRepo := repository.NewEventRepository(db)

	userService := service.NewUserService(txManager, userRepo, likeRepo, friendshipRepo, reviewRepo, eventRepo, rankingCache, publisher)
	filmService := service.NewFilmService(txManager, filmRepo, catalogRepo, likeRepo, reviewRepo, eventRepo, rankingCache, publisher)
	catalogService := service.NewCatalogService(txManager, catalogRepo, filmRepo, rankingCache, publisher)
	likeService := service.NewLikeService(txManager, likeRepo, filmRepo, userRepo, eventRepo, rankingCache, publisher)
	rankingService := service.NewRankingService(likeRepo, filmRepo, userRepo, catalogRepo, rankingCache)
	recommendService := service.NewRecommendService(likeRepo, filmRepo, userRepo, rankingCache,
		cfg.Recommend.NeighborLimit, cfg.Recommend.CandidateLimit)
	friendshipService := service.NewFriendshipService(txManager, friendshipRepo, userRepo, eventRepo, rankingCache, publisher)
	reviewService := service.NewReviewService(txManager, reviewRepo, filmRepo, userRepo, eventRepo, rankingCache, publisher)
	feedService := service.NewFeedService(userRepo, eventRepo)
	searchService := service.NewSearchService(filmRepo, likeRepo, filmIndex)
	posterService := service.NewPosterService(filmRepo, posterStore)

	userHandler := handler.NewUserHandler(userService, friendshipService, recommendService, feedService)
	filmHandler := handler.NewFilmHandler(filmService, likeService, rankingService, searchService, posterService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// 业务路由中间件
	var apiMiddlewares []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		limit, err := middleware.RateLimit(infraRedis.Get(), cfg.RateLimit.RPS)
		if err != nil {
			logger.Fatal("Failed to init rate limiter", zap.Error(err))
		}
		apiMiddlewares = append(apiMiddlewares, limit)
	}

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, userHandler, filmHandler, reviewHandler, catalogHandler, apiMiddlewares...)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
		zap.Strings("kafka", cfg.Kafka.Brokers),
		zap.Bool("ranking_cache", rankingCache != nil),
		zap.Bool("search_index", filmIndex != nil),
	)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

// healthCheckHandler 健康检查接口
// 数据库不可用时返回 503，Redis 只作为附加信息
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	dbStatus := "up"
	if err := database.Ping(ctx); err != nil {
		logger.Warn("Health check: database unavailable", zap.Error(err))
		status, code, dbStatus = "degraded", http.StatusServiceUnavailable, "down"
	}
	redisStatus := "up"
	if err := infraRedis.Ping(ctx); err != nil {
		redisStatus = "down"
	}

	logger.Debug("Health check requested", zap.String("ip", c.ClientIP()))

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
		"database":  dbStatus,
		"redis":     redisStatus,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
