package model

import "time"

// Film 电影模型
type Film struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:电影标识" json:"id"`
	Name        string    `gorm:"size:255;not null;comment:片名" json:"name"`
	Description string    `gorm:"size:200;comment:简介" json:"description"`
	ReleaseDate time.Time `gorm:"not null;index:idx_films_release_date;comment:上映日期" json:"release_date"`
	Duration    int       `gorm:"not null;comment:时长（分钟）" json:"duration"`
	MpaID       int64     `gorm:"not null;index:idx_films_mpa_id;comment:分级ID" json:"-"`
	PosterURL   string    `gorm:"size:500;comment:海报地址" json:"poster_url,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:创建时间" json:"-"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"-"`

	// 关联关系
	Mpa       Mpa        `gorm:"foreignKey:MpaID" json:"mpa"`
	Genres    []Genre    `gorm:"many2many:film_genres;" json:"genres"`
	Directors []Director `gorm:"many2many:film_directors;" json:"directors"`
}

func (Film) TableName() string {
	return "films"
}

// GenreIDs 返回电影所属类型 ID
func (f *Film) GenreIDs() []int64 {
	ids := make([]int64, 0, len(f.Genres))
	for _, g := range f.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

// DirectorNames 返回导演姓名列表
func (f *Film) DirectorNames() []string {
	names := make([]string, 0, len(f.Directors))
	for _, d := range f.Directors {
		names = append(names, d.Name)
	}
	return names
}
