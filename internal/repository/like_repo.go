package repository

import (
	"time"

	"filmorate-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FilmLikeCount 电影及其喜欢数
type FilmLikeCount struct {
	FilmID    int64
	LikeCount int64
}

// UserOverlap 与目标用户共同喜欢的电影数
type UserOverlap struct {
	UserID  int64
	Overlap int64
}

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *LikeRepository) WithTx(tx *gorm.DB) *LikeRepository {
	return &LikeRepository{db: tx}
}

// Create 添加喜欢，已存在时不做任何修改；返回是否新插入
func (r *LikeRepository) Create(userID, filmID int64) (bool, error) {
	like := &model.Like{UserID: userID, FilmID: filmID}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *LikeRepository) Delete(userID, filmID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND film_id = ?", userID, filmID).Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *LikeRepository) CountByUserAndFilm(userID, filmID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("user_id = ? AND film_id = ?", userID, filmID).Count(&count).Error
	return count, err
}

// ListFilmIDsByUser 用户喜欢的全部电影 ID
func (r *LikeRepository) ListFilmIDsByUser(userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Like{}).Where("user_id = ?", userID).
		Order("film_id ASC").Pluck("film_id", &ids).Error
	return ids, err
}

// ListByUsers 批量获取多个用户的喜欢记录
func (r *LikeRepository) ListByUsers(userIDs []int64) ([]model.Like, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var likes []model.Like
	err := r.db.Where("user_id IN ?", userIDs).Find(&likes).Error
	return likes, err
}

// CountByFilm 统计电影的喜欢数
func (r *LikeRepository) CountByFilm(filmID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).Where("film_id = ?", filmID).Count(&count).Error
	return count, err
}

// CountByFilms 批量统计喜欢数，没有喜欢的电影不出现在结果中
func (r *LikeRepository) CountByFilms(filmIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(filmIDs))
	if len(filmIDs) == 0 {
		return counts, nil
	}

	var rows []FilmLikeCount
	err := r.db.Model(&model.Like{}).
		Select("film_id, COUNT(*) AS like_count").
		Where("film_id IN ?", filmIDs).
		Group("film_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.FilmID] = row.LikeCount
	}
	return counts, nil
}

// TopLiked 按喜欢数降序取前 limit 部电影，喜欢数相同按电影 ID 升序
// genreID、year 为可选过滤条件，没有喜欢的电影计为 0
func (r *LikeRepository) TopLiked(limit int, genreID *int64, year *int) ([]FilmLikeCount, error) {
	query := r.db.Table("films").
		Select("films.id AS film_id, COUNT(likes.id) AS like_count").
		Joins("LEFT JOIN likes ON likes.film_id = films.id")

	if genreID != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM film_genres fg WHERE fg.film_id = films.id AND fg.genre_id = ?)",
			*genreID,
		)
	}
	if year != nil {
		from := time.Date(*year, time.January, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("films.release_date >= ? AND films.release_date < ?", from, from.AddDate(1, 0, 0))
	}

	var rows []FilmLikeCount
	err := query.Group("films.id").
		Order("like_count DESC, films.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// CommonFilmIDs 两个用户都喜欢的电影 ID
func (r *LikeRepository) CommonFilmIDs(userID, otherID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Table("likes AS l1").
		Joins("INNER JOIN likes AS l2 ON l2.film_id = l1.film_id AND l2.user_id = ?", otherID).
		Where("l1.user_id = ?", userID).
		Order("l1.film_id ASC").
		Pluck("l1.film_id", &ids).Error
	return ids, err
}

// OverlapCounts 统计其他用户与 filmIDs 的重合数（不含 excludeUserID）
func (r *LikeRepository) OverlapCounts(filmIDs []int64, excludeUserID int64) ([]UserOverlap, error) {
	if len(filmIDs) == 0 {
		return nil, nil
	}
	var rows []UserOverlap
	err := r.db.Model(&model.Like{}).
		Select("user_id, COUNT(*) AS overlap").
		Where("film_id IN ? AND user_id <> ?", filmIDs, excludeUserID).
		Group("user_id").
		Scan(&rows).Error
	return rows, err
}

// DeleteByUser 删除用户的全部喜欢
func (r *LikeRepository) DeleteByUser(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Like{}).Error
}

// DeleteByFilm 删除电影的全部喜欢
func (r *LikeRepository) DeleteByFilm(filmID int64) error {
	return r.db.Where("film_id = ?", filmID).Delete(&model.Like{}).Error
}
