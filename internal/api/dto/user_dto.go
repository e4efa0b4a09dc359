package dto

// UserRequest 创建/更新用户请求，更新时 ID 必填
type UserRequest struct {
	ID       int64  `json:"id"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Login    string `json:"login" binding:"required,max=255"`
	Name     string `json:"name" binding:"max=255"`
	Birthday *Date  `json:"birthday" binding:"omitempty,notfuture"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday *Date  `json:"birthday"`
}
