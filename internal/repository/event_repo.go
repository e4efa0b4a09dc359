package repository

import (
	"filmorate-go/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *EventRepository) WithTx(tx *gorm.DB) *EventRepository {
	return &EventRepository{db: tx}
}

func (r *EventRepository) Create(event *model.Event) error {
	return r.db.Create(event).Error
}

// ListByUser 用户动态，按时间升序，同一时间按 ID 升序
func (r *EventRepository) ListByUser(userID int64) ([]model.Event, error) {
	var events []model.Event
	err := r.db.Where("user_id = ?", userID).
		Order("event_time ASC, id ASC").
		Find(&events).Error
	return events, err
}

// DeleteByReviews 删除引用这些影评的动态
func (r *EventRepository) DeleteByReviews(reviewIDs []int64) error {
	if len(reviewIDs) == 0 {
		return nil
	}
	return r.db.Where("event_type = ? AND entity_id IN ?", model.EventTypeReview, reviewIDs).
		Delete(&model.Event{}).Error
}

// DeleteByUser 删除用户产生的全部动态
func (r *EventRepository) DeleteByUser(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Event{}).Error
}
