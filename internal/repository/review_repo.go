package repository

import (
	"errors"

	"filmorate-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *ReviewRepository) WithTx(tx *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: tx}
}

func (r *ReviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepository) GetByID(id int64) (*model.Review, error) {
	var review model.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// LockByID 读取影评并加行锁（SELECT ... FOR UPDATE），需在事务中调用
func (r *ReviewRepository) LockByID(id int64) (*model.Review, error) {
	var review model.Review
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Update 只更新内容与正负面，useful 不受影响
func (r *ReviewRepository) Update(id int64, content string, isPositive bool) error {
	result := r.db.Model(&model.Review{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"content":     content,
			"is_positive": isPositive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(id int64) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&model.Review{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List 按 useful 降序、ID 升序列出影评，filmID 为空时不过滤电影
func (r *ReviewRepository) List(filmID *int64, limit int) ([]model.Review, error) {
	query := r.db.Model(&model.Review{})
	if filmID != nil {
		query = query.Where("film_id = ?", *filmID)
	}

	var reviews []model.Review
	err := query.Order("useful DESC, id ASC").Limit(limit).Find(&reviews).Error
	return reviews, err
}

// ListIDsByFilm 电影下全部影评 ID
func (r *ReviewRepository) ListIDsByFilm(filmID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Review{}).Where("film_id = ?", filmID).Pluck("id", &ids).Error
	return ids, err
}

// ListIDsByUser 用户写的全部影评 ID
func (r *ReviewRepository) ListIDsByUser(userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Review{}).Where("user_id = ?", userID).Pluck("id", &ids).Error
	return ids, err
}

// DeleteByIDs 批量删除影评
func (r *ReviewRepository) DeleteByIDs(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Where("id IN ?", ids).Delete(&model.Review{}).Error
}

// AddUseful 原子地调整 useful
func (r *ReviewRepository) AddUseful(id int64, delta int64) error {
	return r.db.Model(&model.Review{}).Where("id = ?", id).
		UpdateColumn("useful", gorm.Expr("useful + ?", delta)).Error
}

// GetReaction 查询用户对影评的评价，不存在时返回 nil
func (r *ReviewRepository) GetReaction(reviewID, userID int64) (*model.ReviewReaction, error) {
	var reaction model.ReviewReaction
	err := r.db.Where("review_id = ? AND user_id = ?", reviewID, userID).First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

func (r *ReviewRepository) CreateReaction(reviewID, userID int64, isPositive bool) error {
	return r.db.Create(&model.ReviewReaction{
		ReviewID:   reviewID,
		UserID:     userID,
		IsPositive: isPositive,
	}).Error
}

func (r *ReviewRepository) UpdateReaction(reviewID, userID int64, isPositive bool) error {
	result := r.db.Model(&model.ReviewReaction{}).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Update("is_positive", isPositive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) DeleteReaction(reviewID, userID int64) error {
	return r.db.Where("review_id = ? AND user_id = ?", reviewID, userID).
		Delete(&model.ReviewReaction{}).Error
}

// ListReactions 影评的全部评价
func (r *ReviewRepository) ListReactions(reviewID int64) ([]model.ReviewReaction, error) {
	var reactions []model.ReviewReaction
	err := r.db.Where("review_id = ?", reviewID).Order("id ASC").Find(&reactions).Error
	return reactions, err
}

// ListReactionsByUser 用户做出的全部评价
func (r *ReviewRepository) ListReactionsByUser(userID int64) ([]model.ReviewReaction, error) {
	var reactions []model.ReviewReaction
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&reactions).Error
	return reactions, err
}

// DeleteReactionsByReviews 删除这些影评下的全部评价
func (r *ReviewRepository) DeleteReactionsByReviews(reviewIDs []int64) error {
	if len(reviewIDs) == 0 {
		return nil
	}
	return r.db.Where("review_id IN ?", reviewIDs).Delete(&model.ReviewReaction{}).Error
}

// DeleteReactionsByUser 删除用户的全部评价
func (r *ReviewRepository) DeleteReactionsByUser(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.ReviewReaction{}).Error
}
