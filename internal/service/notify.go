package service

import (
	"context"
	"time"

	"filmorate-go/internal/model"
	"filmorate-go/pkg/logger"

	"go.uber.org/zap"
)

// 电影同步动作
const (
	FilmSyncUpsert = "upsert"
	FilmSyncDelete = "delete"
)

// Publisher 事务提交后的消息投递（kafka）
type Publisher interface {
	PublishActivity(ctx context.Context, event *model.Event) error
	PublishFilmSync(ctx context.Context, filmID int64, action string) error
}

const publishTimeout = 3 * time.Second

// notifier 尽力投递，失败只记录日志
type notifier struct {
	pub Publisher
}

func (n notifier) activity(events ...*model.Event) {
	if n.pub == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	for _, e := range events {
		if err := n.pub.PublishActivity(ctx, e); err != nil {
			logger.Warn("Failed to publish activity event",
				zap.Int64("event_id", e.ID),
				zap.String("event_type", string(e.EventType)),
				zap.Error(err),
			)
		}
	}
}

func (n notifier) filmSync(action string, filmIDs ...int64) {
	if n.pub == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	for _, id := range filmIDs {
		if err := n.pub.PublishFilmSync(ctx, id, action); err != nil {
			logger.Warn("Failed to publish film sync task",
				zap.Int64("film_id", id),
				zap.String("action", action),
				zap.Error(err),
			)
		}
	}
}

func newEvent(userID int64, eventType model.EventType, op model.EventOperation, entityID int64) *model.Event {
	return &model.Event{
		Timestamp: time.Now().UnixMilli(),
		EventType: eventType,
		Operation: op,
		UserID:    userID,
		EntityID:  entityID,
	}
}
