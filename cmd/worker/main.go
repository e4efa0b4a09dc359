package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"filmorate-go/internal/config"
	"filmorate-go/internal/infra/database"
	infraES "filmorate-go/internal/infra/elasticsearch"
	infraKafka "filmorate-go/internal/infra/kafka"
	"filmorate-go/internal/repository"
	"filmorate-go/internal/service"
	"filmorate-go/pkg/logger"

	"go.uber.org/zap"
)

// worker 消费电影同步任务，把数据库中的电影写入 Elasticsearch
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()
	log := logger.Named("film-sync-worker")

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// worker 的唯一职责是写索引，ES 不可用时直接退出
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		log.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	indexName := cfg.Elasticsearch.IndexName(infraES.FilmsIndex)
	if err := infraES.InitIndexes(indexName); err != nil {
		log.Fatal("Failed to init elasticsearch index", zap.Error(err))
	}

	db := database.Get()
	searchService := service.NewSearchService(
		repository.NewFilmRepository(db),
		repository.NewLikeRepository(db),
		infraES.NewFilmIndex(indexName),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	if cfg.Worker.ReindexOnStart {
		success, failed, err := searchService.ReindexAll(ctx)
		if err != nil {
			log.Error("Full reindex failed", zap.Error(err))
		} else {
			log.Info("Full reindex completed", zap.Int("success", success), zap.Int("failed", failed))
		}
	}

	topic := cfg.Kafka.Topic(infraKafka.TopicFilmSync)
	log.Info("Film sync worker started",
		zap.String("topic", topic),
		zap.String("group", cfg.Worker.GroupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("index", indexName),
	)

	infraKafka.StartFilmSyncConsumer(ctx, cfg.Kafka.Brokers, topic, cfg.Worker.GroupID,
		func(ctx context.Context, task *infraKafka.FilmSyncTask) error {
			return searchService.SyncFilm(ctx, task.FilmID, task.Action)
		},
	)

	log.Info("Film sync worker stopped")
}
