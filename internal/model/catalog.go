package model

// Genre 电影类型
type Genre struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

func (Genre) TableName() string {
	return "genres"
}

// Mpa 美国电影协会分级
type Mpa struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:20;not null;uniqueIndex" json:"name"`
}

func (Mpa) TableName() string {
	return "mpa"
}

// Director 导演
type Director struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

func (Director) TableName() string {
	return "directors"
}

// DefaultGenres 初始类型数据
var DefaultGenres = []Genre{
	{ID: 1, Name: "Комедия"},
	{ID: 2, Name: "Драма"},
	{ID: 3, Name: "Мультфильм"},
	{ID: 4, Name: "Триллер"},
	{ID: 5, Name: "Документальный"},
	{ID: 6, Name: "Боевик"},
}

// DefaultMpa 初始分级数据
var DefaultMpa = []Mpa{
	{ID: 1, Name: "G"},
	{ID: 2, Name: "PG"},
	{ID: 3, Name: "PG-13"},
	{ID: 4, Name: "R"},
	{ID: 5, Name: "NC-17"},
}
