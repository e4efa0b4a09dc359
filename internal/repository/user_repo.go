package repository

import (
	"filmorate-go/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

// GetByID 根据 ID 查询用户
func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Exists 检查用户是否存在
func (r *UserRepository) Exists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail 检查邮箱是否被其他用户占用
func (r *UserRepository) ExistsByEmail(email string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Create 创建用户
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// Update 更新用户字段
func (r *UserRepository) Update(id int64, updates map[string]interface{}) (*model.User, error) {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// List 全部用户，按 ID 升序
func (r *UserRepository) List() ([]model.User, error) {
	var users []model.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, err
}

// GetByIDs 批量查询用户，按 ids 的顺序返回，不存在的 ID 被跳过
func (r *UserRepository) GetByIDs(ids []int64) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}
	var users []model.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}

	userMap := make(map[int64]model.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	ordered := make([]model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := userMap[id]; ok {
			ordered = append(ordered, u)
		}
	}
	return ordered, nil
}

// Delete 删除用户记录（关联数据由调用方在同一事务中清理）
func (r *UserRepository) Delete(id int64) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&model.User{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
