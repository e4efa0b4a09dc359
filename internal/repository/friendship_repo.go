package repository

import (
	"filmorate-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FriendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *FriendshipRepository) WithTx(tx *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: tx}
}

// Create 创建 userID -> friendID 的有向边，已存在时保持不变；返回是否新插入
func (r *FriendshipRepository) Create(userID, friendID int64) (bool, error) {
	friendship := &model.Friendship{UserID: userID, FriendID: friendID}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(friendship)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete 删除 userID -> friendID，返回是否存在过
func (r *FriendshipRepository) Delete(userID, friendID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND friend_id = ?", userID, friendID).
		Delete(&model.Friendship{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查 userID 是否添加了 friendID
func (r *FriendshipRepository) Exists(userID, friendID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error
	return count > 0, err
}

// ListFriendIDs 用户添加的好友 ID（出边目标）
func (r *FriendshipRepository) ListFriendIDs(userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Friendship{}).
		Where("user_id = ?", userID).
		Order("friend_id ASC").
		Pluck("friend_id", &ids).Error
	return ids, err
}

// CommonFriendIDs 两个用户都添加了的好友 ID
func (r *FriendshipRepository) CommonFriendIDs(userID, otherID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Table("friendships AS f1").
		Joins("INNER JOIN friendships AS f2 ON f2.friend_id = f1.friend_id AND f2.user_id = ?", otherID).
		Where("f1.user_id = ?", userID).
		Order("f1.friend_id ASC").
		Pluck("f1.friend_id", &ids).Error
	return ids, err
}

// DeleteByUser 删除用户相关的全部好友边（双向）
func (r *FriendshipRepository) DeleteByUser(userID int64) error {
	return r.db.Where("user_id = ? OR friend_id = ?", userID, userID).
		Delete(&model.Friendship{}).Error
}
