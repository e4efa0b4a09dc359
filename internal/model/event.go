package model

// EventType 动态类型
type EventType string

const (
	EventTypeLike   EventType = "LIKE"
	EventTypeFriend EventType = "FRIEND"
	EventTypeReview EventType = "REVIEW"
)

// EventOperation 动态操作
type EventOperation string

const (
	OperationAdd    EventOperation = "ADD"
	OperationRemove EventOperation = "REMOVE"
	OperationUpdate EventOperation = "UPDATE"
)

// Event 用户动态，写入后不可修改
type Event struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;comment:动态ID" json:"eventId"`
	Timestamp int64          `gorm:"column:event_time;not null;index:idx_events_user_time,priority:2;comment:发生时间（毫秒）" json:"timestamp"`
	EventType EventType      `gorm:"size:16;not null;index:idx_events_type_entity,priority:1;comment:类型" json:"eventType"`
	Operation EventOperation `gorm:"size:16;not null;comment:操作" json:"operation"`
	UserID    int64          `gorm:"not null;index:idx_events_user_time,priority:1;comment:操作用户ID" json:"userId"`
	EntityID  int64          `gorm:"not null;index:idx_events_type_entity,priority:2;comment:关联实体ID" json:"entityId"`
}

func (Event) TableName() string {
	return "events"
}
