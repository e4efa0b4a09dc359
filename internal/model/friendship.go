package model

import "time"

// Friendship 好友关系（有向边：UserID 添加了 FriendID）
// Confirmed 目前不参与任何查询
type Friendship struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:好友关系ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_friend;index:idx_friendships_user_id;comment:发起用户ID" json:"user_id"`
	FriendID  int64     `gorm:"not null;uniqueIndex:uq_user_friend;index:idx_friendships_friend_id;comment:被添加用户ID" json:"friend_id"`
	Confirmed bool      `gorm:"not null;default:false;comment:是否已确认" json:"confirmed"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:添加时间" json:"created_at"`
}

func (Friendship) TableName() string {
	return "friendships"
}
