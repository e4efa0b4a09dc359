package dto

// DirectorRequest 创建/更新导演请求，更新时 ID 必填
type DirectorRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required,max=255"`
}
