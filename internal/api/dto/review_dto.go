package dto

// CreateReviewRequest 发表影评请求
type CreateReviewRequest struct {
	Content    string `json:"content" binding:"required"`
	IsPositive *bool  `json:"isPositive" binding:"required"`
	UserID     int64  `json:"userId" binding:"required"`
	FilmID     int64  `json:"filmId" binding:"required"`
}

// UpdateReviewRequest 更新影评请求，只修改内容与正负面
type UpdateReviewRequest struct {
	ReviewID   int64  `json:"reviewId" binding:"required"`
	Content    string `json:"content" binding:"required"`
	IsPositive *bool  `json:"isPositive" binding:"required"`
}

// ReviewListQuery 影评列表查询参数
type ReviewListQuery struct {
	FilmID *int64 `form:"filmId"`
	Count  int    `form:"count,default=10" binding:"gte=0"`
}

// ReviewInfo 影评信息
type ReviewInfo struct {
	ReviewID   int64  `json:"reviewId"`
	Content    string `json:"content"`
	IsPositive bool   `json:"isPositive"`
	UserID     int64  `json:"userId"`
	FilmID     int64  `json:"filmId"`
	Useful     int64  `json:"useful"`
}
