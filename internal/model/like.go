package model

import "time"

// Like 用户对电影的喜欢
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:喜欢记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_film_like;index:idx_likes_user_id;comment:用户ID" json:"user_id"`
	FilmID    int64     `gorm:"not null;uniqueIndex:uq_user_film_like;index:idx_likes_film_id;comment:电影ID" json:"film_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:喜欢时间" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
