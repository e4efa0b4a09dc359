package service

import (
	"fmt"

	"filmorate-go/internal/model"
	"filmorate-go/internal/repository"

	"gorm.io/gorm"
)

type LikeService struct {
	txManager *repository.TxManager
	likeRepo  *repository.LikeRepository
	filmRepo  *repository.FilmRepository
	userRepo  *repository.UserRepository
	eventRepo *repository.EventRepository
	cache     rankingCache
	notify    notifier
}

func NewLikeService(
	txManager *repository.TxManager,
	likeRepo *repository.LikeRepository,
	filmRepo *repository.FilmRepository,
	userRepo *repository.UserRepository,
	eventRepo *repository.EventRepository,
	cache RankingCache,
	pub Publisher,
) *LikeService {
	return &LikeService{
		txManager: txManager,
		likeRepo:  likeRepo,
		filmRepo:  filmRepo,
		userRepo:  userRepo,
		eventRepo: eventRepo,
		cache:     rankingCache{c: cache},
		notify:    notifier{pub: pub},
	}
}

// AddLike 喜欢电影，重复喜欢不会重复计数
func (s *LikeService) AddLike(filmID, userID int64) error {
	if err := s.checkFilmAndUser(filmID, userID); err != nil {
		return err
	}

	event := newEvent(userID, model.EventTypeLike, model.OperationAdd, filmID)
	err := s.txManager.Transaction(func(tx *gorm.DB) error {
		if _, err := s.likeRepo.WithTx(tx).Create(userID, filmID); err != nil {
			return fmt.Errorf("create like: %w", err)
		}
		if err := s.eventRepo.WithTx(tx).Create(event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.invalidate()
	s.notify.activity(event)
	s.notify.filmSync(FilmSyncUpsert, filmID)
	return nil
}

// RemoveLike 取消喜欢，未喜欢时不做修改
func (s *LikeService) RemoveLike(filmID, userID int64) error {
	if err := s.checkFilmAndUser(filmID, userID); err != nil {
		return err
	}

	event := newEvent(userID, model.EventTypeLike, model.OperationRemove, filmID)
	err := s.txManager.Transaction(func(tx *gorm.DB) error {
		if _, err := s.likeRepo.WithTx(tx).Delete(userID, filmID); err != nil {
			return fmt.Errorf("delete like: %w", err)
		}
		if err := s.eventRepo.WithTx(tx).Create(event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.invalidate()
	s.notify.activity(event)
	s.notify.filmSync(FilmSyncUpsert, filmID)
	return nil
}

// LikeCount 电影的喜欢数
func (s *LikeService) LikeCount(filmID int64) (int64, error) {
	exists, err := s.filmRepo.Exists(filmID)
	if err != nil {
		return 0, fmt.Errorf("check film: %w", err)
	}
	if !exists {
		return 0, ErrFilmNotFound
	}
	return s.likeRepo.CountByFilm(filmID)
}

func (s *LikeService) checkFilmAndUser(filmID, userID int64) error {
	exists, err := s.filmRepo.Exists(filmID)
	if err != nil {
		return fmt.Errorf("check film: %w", err)
	}
	if !exists {
		return ErrFilmNotFound
	}
	return checkUser(s.userRepo, userID)
}

func checkUser(userRepo *repository.UserRepository, userID int64) error {
	exists, err := userRepo.Exists(userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}
