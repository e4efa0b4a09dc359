package service

import (
	"fmt"
	"strings"
	"time"

	"filmorate-go/internal/api/dto"
	"filmorate-go/internal/model"
	"filmorate-go/internal/repository"

	"gorm.io/gorm"
)

type UserService struct {
	txManager      *repository.TxManager
	userRepo       *repository.UserRepository
	likeRepo       *repository.LikeRepository
	friendshipRepo *repository.FriendshipRepository
	reviewRepo     *repository.ReviewRepository
	eventRepo      *repository.EventRepository
	cache          rankingCache
	notify         notifier
}

func NewUserService(
	txManager *repository.TxManager,
	userRepo *repository.UserRepository,
	likeRepo *repository.LikeRepository,
	friendshipRepo *repository.FriendshipRepository,
	reviewRepo *repository.ReviewRepository,
	eventRepo *repository.EventRepository,
	cache RankingCache,
	pub Publisher,
) *UserService {
	return &UserService{
		txManager:      txManager,
		userRepo:       userRepo,
		likeRepo:       likeRepo,
		friendshipRepo: friendshipRepo,
		reviewRepo:     reviewRepo,
		eventRepo:      eventRepo,
		cache:          rankingCache{c: cache},
		notify:         notifier{pub: pub},
	}
}

// CreateUser 创建用户，name 为空时使用 login
func (s *UserService) CreateUser(req *dto.UserRequest) (*model.User, error) {
	user, err := buildUser(req)
	if err != nil {
		return nil, err
	}

	taken, err := s.userRepo.ExistsByEmail(user.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailExists
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// UpdateUser 更新用户
func (s *UserService) UpdateUser(req *dto.UserRequest) (*model.User, error) {
	if req.ID <= 0 {
		return nil, validationError("用户ID不能为空")
	}
	user, err := buildUser(req)
	if err != nil {
		return nil, err
	}
	if err := checkUser(s.userRepo, req.ID); err != nil {
		return nil, err
	}

	taken, err := s.userRepo.ExistsByEmail(user.Email, req.ID)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailExists
	}

	updated, err := s.userRepo.Update(req.ID, map[string]interface{}{
		"email":    user.Email,
		"login":    user.Login,
		"name":     user.Name,
		"birthday": user.Birthday,
	})
	if err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, "update user")
	}
	return updated, nil
}

// GetUser 获取用户
func (s *UserService) GetUser(id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, "get user")
	}
	return user, nil
}

// ListUsers 全部用户
func (s *UserService) ListUsers() ([]model.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser 删除用户及其喜欢、双向好友关系、评价（回滚 useful）、影评和动态
func (s *UserService) DeleteUser(id int64) error {
	if err := checkUser(s.userRepo, id); err != nil {
		return err
	}

	liked, err := s.likeRepo.ListFilmIDsByUser(id)
	if err != nil {
		return fmt.Errorf("list liked films: %w", err)
	}

	err = s.txManager.Transaction(func(tx *gorm.DB) error {
		reviews := s.reviewRepo.WithTx(tx)
		events := s.eventRepo.WithTx(tx)

		if err := compensateUserReactionsTx(reviews, id); err != nil {
			return err
		}
		reviewIDs, err := reviews.ListIDsByUser(id)
		if err != nil {
			return fmt.Errorf("list user reviews: %w", err)
		}
		if err := deleteReviewsTx(reviews, events, reviewIDs, nil); err != nil {
			return err
		}
		if err := s.likeRepo.WithTx(tx).DeleteByUser(id); err != nil {
			return fmt.Errorf("delete likes: %w", err)
		}
		if err := s.friendshipRepo.WithTx(tx).DeleteByUser(id); err != nil {
			return fmt.Errorf("delete friendships: %w", err)
		}
		if err := events.DeleteByUser(id); err != nil {
			return fmt.Errorf("delete events: %w", err)
		}
		if _, err := s.userRepo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.invalidate()
	s.notify.filmSync(FilmSyncUpsert, liked...)
	return nil
}

func buildUser(req *dto.UserRequest) (*model.User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, validationError("邮箱格式不正确")
	}
	login := req.Login
	if strings.TrimSpace(login) == "" || strings.ContainsAny(login, " \t\r\n") {
		return nil, validationError("登录名不能为空且不能包含空格")
	}
	birthday := req.Birthday.Ptr()
	if birthday != nil && birthday.After(time.Now()) {
		return nil, validationError("生日不能晚于今天")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = login
	}

	return &model.User{
		Email:    email,
		Login:    login,
		Name:     name,
		Birthday: birthday,
	}, nil
}
