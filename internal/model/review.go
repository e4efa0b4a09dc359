package model

import "time"

// Review 影评
// Useful 由评价状态迁移维护，等于所有评价的带符号和
type Review struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;comment:影评ID" json:"reviewId"`
	FilmID     int64     `gorm:"not null;index:idx_reviews_film_id;comment:电影ID" json:"filmId"`
	UserID     int64     `gorm:"not null;index:idx_reviews_user_id;comment:作者ID" json:"userId"`
	Content    string    `gorm:"type:text;not null;comment:内容" json:"content"`
	IsPositive bool      `gorm:"not null;comment:正面/负面" json:"isPositive"`
	Useful     int64     `gorm:"not null;default:0;index:idx_reviews_useful;comment:有用度" json:"useful"`
	CreatedAt  time.Time `gorm:"autoCreateTime;comment:创建时间" json:"-"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewReaction 用户对影评的评价，每个 (影评, 用户) 最多一条
type ReviewReaction struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ReviewID   int64     `gorm:"not null;uniqueIndex:uq_review_user_reaction;index:idx_reactions_review_id;comment:影评ID" json:"review_id"`
	UserID     int64     `gorm:"not null;uniqueIndex:uq_review_user_reaction;index:idx_reactions_user_id;comment:用户ID" json:"user_id"`
	IsPositive bool      `gorm:"not null;comment:有用/没用" json:"is_positive"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ReviewReaction) TableName() string {
	return "review_reactions"
}
