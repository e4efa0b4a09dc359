package dto

// EventInfo 用户动态
type EventInfo struct {
	EventID   int64  `json:"eventId"`
	Timestamp int64  `json:"timestamp"`
	UserID    int64  `json:"userId"`
	EventType string `json:"eventType"`
	Operation string `json:"operation"`
	EntityID  int64  `json:"entityId"`
}
