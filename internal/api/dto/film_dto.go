package dto

// IDRef 按 ID 引用的分级、类型或导演
type IDRef struct {
	ID int64 `json:"id" binding:"required,gt=0"`
}

// FilmRequest 创建/更新电影请求，更新时 ID 必填
type FilmRequest struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description" binding:"max=200"`
	ReleaseDate Date    `json:"releaseDate" binding:"releasedate"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
	Mpa         *IDRef  `json:"mpa" binding:"required"`
	Genres      []IDRef `json:"genres" binding:"omitempty,dive"`
	Directors   []IDRef `json:"directors" binding:"omitempty,dive"`
}

// NamedInfo 分级、类型、导演
type NamedInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FilmInfo 电影详情
type FilmInfo struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ReleaseDate Date        `json:"releaseDate"`
	Duration    int         `json:"duration"`
	Mpa         NamedInfo   `json:"mpa"`
	Genres      []NamedInfo `json:"genres"`
	Directors   []NamedInfo `json:"directors"`
	PosterURL   string      `json:"posterUrl,omitempty"`
}

// PopularFilmsQuery 热门电影查询参数
type PopularFilmsQuery struct {
	Count   int    `form:"count,default=10"`
	GenreID *int64 `form:"genreId"`
	Year    *int   `form:"year"`
}

// CommonFilmsQuery 共同喜欢查询参数
type CommonFilmsQuery struct {
	UserID   int64 `form:"userId" binding:"required"`
	FriendID int64 `form:"friendId" binding:"required"`
}

// DirectorFilmsQuery 导演电影查询参数
type DirectorFilmsQuery struct {
	SortBy string `form:"sortBy" binding:"omitempty,oneof=year likes"`
}

// SearchFilmsQuery 电影搜索参数，by 为逗号分隔的 title / director
type SearchFilmsQuery struct {
	Query string `form:"query" binding:"required"`
	By    string `form:"by"`
}

// PosterInfo 海报上传结果
type PosterInfo struct {
	FilmID    int64  `json:"filmId"`
	PosterURL string `json:"posterUrl"`
}
