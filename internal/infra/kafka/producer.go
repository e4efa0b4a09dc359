package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"filmorate-go/internal/config"
	"filmorate-go/internal/model"
	"filmorate-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// 逻辑 topic 名，实际名称见 kafka.topics 配置
const (
	TopicActivityEvents = "activity_events"
	TopicFilmSync       = "film_sync"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var producer messageWriter

var errProducerNotInitialized = errors.New("kafka producer not initialized")

// ActivityMessage 用户动态消息体
type ActivityMessage struct {
	EventID   int64  `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	UserID    int64  `json:"user_id"`
	EventType string `json:"event_type"`
	Operation string `json:"operation"`
	EntityID  int64  `json:"entity_id"`
}

// FilmSyncTask 电影索引同步任务消息体
type FilmSyncTask struct {
	FilmID int64  `json:"film_id"`
	Action string `json:"action"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	if len(cfg.Brokers) == 0 {
		return errors.New("kafka brokers is empty")
	}
	producer = &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendRaw 发送原始消息到指定 topic
func SendRaw(ctx context.Context, topic, key string, value []byte) error {
	if producer == nil {
		return errProducerNotInitialized
	}
	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send kafka message: %w", err)
	}
	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}

// Publisher 把动态和电影同步任务写入 Kafka
// 同一用户的动态使用相同 key，保证分区内有序
type Publisher struct {
	activityTopic string
	filmSyncTopic string
}

func NewPublisher(cfg *config.KafkaConfig) *Publisher {
	return &Publisher{
		activityTopic: cfg.Topic(TopicActivityEvents),
		filmSyncTopic: cfg.Topic(TopicFilmSync),
	}
}

// PublishActivity 发送用户动态
func (p *Publisher) PublishActivity(ctx context.Context, e *model.Event) error {
	payload, err := json.Marshal(&ActivityMessage{
		EventID:   e.ID,
		Timestamp: e.Timestamp,
		UserID:    e.UserID,
		EventType: string(e.EventType),
		Operation: string(e.Operation),
		EntityID:  e.EntityID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal activity event: %w", err)
	}
	return SendRaw(ctx, p.activityTopic, fmt.Sprintf("user-%d", e.UserID), payload)
}

// PublishFilmSync 发送电影索引同步任务
func (p *Publisher) PublishFilmSync(ctx context.Context, filmID int64, action string) error {
	payload, err := json.Marshal(&FilmSyncTask{FilmID: filmID, Action: action})
	if err != nil {
		return fmt.Errorf("failed to marshal film sync task: %w", err)
	}
	if err := SendRaw(ctx, p.filmSyncTopic, fmt.Sprintf("film-%d", filmID), payload); err != nil {
		return err
	}

	logger.Debug("Film sync task sent",
		zap.Int64("film_id", filmID),
		zap.String("action", action),
		zap.String("topic", p.filmSyncTopic),
	)
	return nil
}
