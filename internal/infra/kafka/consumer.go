package kafka

import (
	"context"
	"encoding/json"
	"time"

	"filmorate-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// FilmSyncHandler 处理电影同步任务的回调函数
type FilmSyncHandler func(ctx context.Context, task *FilmSyncTask) error

// StartFilmSyncConsumer 启动电影同步任务消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartFilmSyncConsumer(ctx context.Context, brokers []string, topic, groupID string, handler FilmSyncHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka film sync consumer stopped")
	}()

	logger.Info("Kafka film sync consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		handleFilmSyncMessage(ctx, msg.Value, handler)
	}
}

func handleFilmSyncMessage(ctx context.Context, value []byte, handler FilmSyncHandler) bool {
	var task FilmSyncTask
	if err := json.Unmarshal(value, &task); err != nil {
		logger.Error("Failed to unmarshal film sync task",
			zap.Error(err),
			zap.ByteString("value", value),
		)
		return false
	}

	logger.Debug("Received film sync task",
		zap.Int64("film_id", task.FilmID),
		zap.String("action", task.Action),
	)

	if err := handler(ctx, &task); err != nil {
		logger.Error("Failed to handle film sync task",
			zap.Int64("film_id", task.FilmID),
			zap.Error(err),
		)
		return false
	}
	return true
}
