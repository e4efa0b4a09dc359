package repository

import (
	"filmorate-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogRepository 类型、分级、导演
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *CatalogRepository) WithTx(tx *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: tx}
}

// SeedDefaults 写入初始类型与分级，已存在的记录保持不变
func (r *CatalogRepository) SeedDefaults() error {
	genres := make([]model.Genre, len(model.DefaultGenres))
	copy(genres, model.DefaultGenres)
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&genres).Error; err != nil {
		return err
	}

	mpa := make([]model.Mpa, len(model.DefaultMpa))
	copy(mpa, model.DefaultMpa)
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&mpa).Error
}

func (r *CatalogRepository) ListGenres() ([]model.Genre, error) {
	var genres []model.Genre
	err := r.db.Order("id ASC").Find(&genres).Error
	return genres, err
}

func (r *CatalogRepository) GetGenre(id int64) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.First(&genre, id).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *CatalogRepository) ListMpa() ([]model.Mpa, error) {
	var ratings []model.Mpa
	err := r.db.Order("id ASC").Find(&ratings).Error
	return ratings, err
}

func (r *CatalogRepository) GetMpa(id int64) (*model.Mpa, error) {
	var mpa model.Mpa
	if err := r.db.First(&mpa, id).Error; err != nil {
		return nil, err
	}
	return &mpa, nil
}

// ExistingGenreIDs 返回 ids 中实际存在的类型 ID
func (r *CatalogRepository) ExistingGenreIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	var found []int64
	err := r.db.Model(&model.Genre{}).Where("id IN ?", ids).Pluck("id", &found).Error
	return found, err
}

// ExistingDirectorIDs 返回 ids 中实际存在的导演 ID
func (r *CatalogRepository) ExistingDirectorIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	var found []int64
	err := r.db.Model(&model.Director{}).Where("id IN ?", ids).Pluck("id", &found).Error
	return found, err
}

func (r *CatalogRepository) ListDirectors() ([]model.Director, error) {
	var directors []model.Director
	err := r.db.Order("id ASC").Find(&directors).Error
	return directors, err
}

func (r *CatalogRepository) GetDirector(id int64) (*model.Director, error) {
	var director model.Director
	if err := r.db.First(&director, id).Error; err != nil {
		return nil, err
	}
	return &director, nil
}

func (r *CatalogRepository) DirectorExists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Director{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CatalogRepository) CreateDirector(director *model.Director) error {
	return r.db.Create(director).Error
}

func (r *CatalogRepository) UpdateDirector(id int64, name string) error {
	result := r.db.Model(&model.Director{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteDirector 删除导演及其电影关联
func (r *CatalogRepository) DeleteDirector(id int64) (bool, error) {
	if err := r.db.Exec("DELETE FROM film_directors WHERE director_id = ?", id).Error; err != nil {
		return false, err
	}
	result := r.db.Where("id = ?", id).Delete(&model.Director{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
