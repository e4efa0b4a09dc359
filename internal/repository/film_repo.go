package repository

import (
	"strings"

	"filmorate-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FilmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *FilmRepository) WithTx(tx *gorm.DB) *FilmRepository {
	return &FilmRepository{db: tx}
}

func (r *FilmRepository) withAssociations() *gorm.DB {
	return r.db.
		Preload("Mpa").
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.id ASC") }).
		Preload("Directors", func(db *gorm.DB) *gorm.DB { return db.Order("directors.id ASC") })
}

// GetByID 根据 ID 获取电影（含分级、类型、导演）
func (r *FilmRepository) GetByID(id int64) (*model.Film, error) {
	var film model.Film
	if err := r.withAssociations().First(&film, id).Error; err != nil {
		return nil, err
	}
	return &film, nil
}

// Exists 检查电影是否存在
func (r *FilmRepository) Exists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Film{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetByIDs 批量获取电影，按 ids 的顺序返回，不存在的 ID 被跳过
func (r *FilmRepository) GetByIDs(ids []int64) ([]model.Film, error) {
	if len(ids) == 0 {
		return []model.Film{}, nil
	}
	var films []model.Film
	if err := r.withAssociations().Where("id IN ?", ids).Find(&films).Error; err != nil {
		return nil, err
	}

	filmMap := make(map[int64]model.Film, len(films))
	for _, f := range films {
		filmMap[f.ID] = f
	}

	ordered := make([]model.Film, 0, len(ids))
	for _, id := range ids {
		if f, ok := filmMap[id]; ok {
			ordered = append(ordered, f)
		}
	}
	return ordered, nil
}

// List 全部电影，按 ID 升序
func (r *FilmRepository) List() ([]model.Film, error) {
	var films []model.Film
	err := r.withAssociations().Order("id ASC").Find(&films).Error
	return films, err
}

// Create 创建电影及其类型、导演关联
func (r *FilmRepository) Create(film *model.Film) error {
	genreIDs := film.GenreIDs()
	directorIDs := directorIDs(film.Directors)

	if err := r.db.Omit(clause.Associations).Create(film).Error; err != nil {
		return err
	}
	if err := r.insertGenres(film.ID, genreIDs); err != nil {
		return err
	}
	return r.insertDirectors(film.ID, directorIDs)
}

// Update 更新电影基础字段
func (r *FilmRepository) Update(id int64, updates map[string]interface{}) error {
	result := r.db.Model(&model.Film{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceGenres 以 genreIDs 覆盖电影的类型
func (r *FilmRepository) ReplaceGenres(filmID int64, genreIDs []int64) error {
	if err := r.db.Exec("DELETE FROM film_genres WHERE film_id = ?", filmID).Error; err != nil {
		return err
	}
	return r.insertGenres(filmID, genreIDs)
}

// ReplaceDirectors 以 directorIDs 覆盖电影的导演
func (r *FilmRepository) ReplaceDirectors(filmID int64, ids []int64) error {
	if err := r.db.Exec("DELETE FROM film_directors WHERE film_id = ?", filmID).Error; err != nil {
		return err
	}
	return r.insertDirectors(filmID, ids)
}

// UpdatePoster 更新海报地址
func (r *FilmRepository) UpdatePoster(filmID int64, posterURL string) error {
	result := r.db.Model(&model.Film{}).Where("id = ?", filmID).
		UpdateColumn("poster_url", posterURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 删除电影及其类型、导演关联
func (r *FilmRepository) Delete(id int64) (bool, error) {
	if err := r.db.Exec("DELETE FROM film_genres WHERE film_id = ?", id).Error; err != nil {
		return false, err
	}
	if err := r.db.Exec("DELETE FROM film_directors WHERE film_id = ?", id).Error; err != nil {
		return false, err
	}
	result := r.db.Where("id = ?", id).Delete(&model.Film{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListIDsByDirector 导演的电影 ID
// sortBy 为 year 时按上映日期升序；为 likes 时按喜欢数降序，再按上映日期升序
func (r *FilmRepository) ListIDsByDirector(directorID int64, sortBy string) ([]int64, error) {
	query := r.db.Table("films").
		Joins("INNER JOIN film_directors fd ON fd.film_id = films.id AND fd.director_id = ?", directorID)

	switch sortBy {
	case "year":
		query = query.Order("films.release_date ASC, films.id ASC")
	default:
		query = query.
			Joins("LEFT JOIN likes ON likes.film_id = films.id").
			Group("films.id, films.release_date").
			Order("COUNT(likes.id) DESC, films.release_date ASC, films.id ASC")
	}

	var ids []int64
	err := query.Pluck("films.id", &ids).Error
	return ids, err
}

// SearchIDs 按片名和/或导演姓名做不区分大小写的子串匹配
func (r *FilmRepository) SearchIDs(query string, byTitle, byDirector bool) ([]int64, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	q := r.db.Table("films").Distinct("films.id")
	var conds []string
	var args []interface{}
	if byTitle {
		conds = append(conds, "LOWER(films.name) LIKE ?")
		args = append(args, pattern)
	}
	if byDirector {
		q = q.Joins("LEFT JOIN film_directors fd ON fd.film_id = films.id").
			Joins("LEFT JOIN directors d ON d.id = fd.director_id")
		conds = append(conds, "LOWER(d.name) LIKE ?")
		args = append(args, pattern)
	}
	if len(conds) == 0 {
		return []int64{}, nil
	}

	var ids []int64
	err := q.Where(strings.Join(conds, " OR "), args...).Pluck("films.id", &ids).Error
	return ids, err
}

func (r *FilmRepository) insertGenres(filmID int64, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}
	rows := make([]map[string]interface{}, 0, len(genreIDs))
	for _, id := range genreIDs {
		rows = append(rows, map[string]interface{}{"film_id": filmID, "genre_id": id})
	}
	return r.db.Table("film_genres").Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error
}

func (r *FilmRepository) insertDirectors(filmID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	rows := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, map[string]interface{}{"film_id": filmID, "director_id": id})
	}
	return r.db.Table("film_directors").Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error
}

func directorIDs(directors []model.Director) []int64 {
	ids := make([]int64, 0, len(directors))
	for _, d := range directors {
		ids = append(ids, d.ID)
	}
	return ids
}
