package service

import (
	"fmt"
	"strings"

	"filmorate-go/internal/api/dto"
	"filmorate-go/internal/model"
	"filmorate-go/internal/repository"

	"gorm.io/gorm"
)

// DefaultReviewCount 影评列表默认条数
const DefaultReviewCount = 10

type ReviewService struct {
	txManager  *repository.TxManager
	reviewRepo *repository.ReviewRepository
	filmRepo   *repository.FilmRepository
	userRepo   *repository.UserRepository
	eventRepo  *repository.EventRepository
	cache      rankingCache
	notify     notifier
}

func NewReviewService(
	txManager *repository.TxManager,
	reviewRepo *repository.ReviewRepository,
	filmRepo *repository.FilmRepository,
	userRepo *repository.UserRepository,
	eventRepo *repository.EventRepository,
	cache RankingCache,
	pub Publisher,
) *ReviewService {
	return &ReviewService{
		txManager:  txManager,
		reviewRepo: reviewRepo,
		filmRepo:   filmRepo,
		userRepo:   userRepo,
		eventRepo:  eventRepo,
		cache:      rankingCache{c: cache},
		notify:     notifier{pub: pub},
	}
}

// AddReview 发表影评，useful 从 0 开始
func (s *ReviewService) AddReview(req *dto.CreateReviewRequest) (*model.Review, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, validationError("影评内容不能为空")
	}
	if req.IsPositive == nil {
		return nil, validationError("isPositive 不能为空")
	}
	if err := checkUser(s.userRepo, req.UserID); err != nil {
		return nil, err
	}
	exists, err := s.filmRepo.Exists(req.FilmID)
	if err != nil {
		return nil, fmt.Errorf("check film: %w", err)
	}
	if !exists {
		return nil, ErrFilmNotFound
	}

	review := &model.Review{
		FilmID:     req.FilmID,
		UserID:     req.UserID,
		Content:    content,
		IsPositive: *req.IsPositive,
	}
	var event *model.Event
	err = s.txManager.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.WithTx(tx).Create(review); err != nil {
			return fmt.Errorf("create review: %w", err)
		}
		event = newEvent(review.UserID, model.EventTypeReview, model.OperationAdd, review.ID)
		if err := s.eventRepo.WithTx(tx).Create(event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.activity(event)
	return review, nil
}

// UpdateReview 只修改内容和正负面，作者、电影与 useful 保持不变
// 动态记在影评作者名下
func (s *ReviewService) UpdateReview(req *dto.UpdateReviewRequest) (*model.Review, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, validationError("影评内容不能为空")
	}
	if req.IsPositive == nil {
		return nil, validationError("isPositive 不能为空")
	}

	existing, err := s.reviewRepo.GetByID(req.ReviewID)
	if err != nil {
		return nil, notFoundOr(err, ErrReviewNotFound, "get review")
	}

	var updated *model.Review
	event := newEvent(existing.UserID, model.EventTypeReview, model.OperationUpdate, existing.ID)
	err = s.txManager.Transaction(func(tx *gorm.DB) error {
		repo := s.reviewRepo.WithTx(tx)
		if err := repo.Update(existing.ID, content, *req.IsPositive); err != nil {
			return notFoundOr(err, ErrReviewNotFound, "update review")
		}
		if err := s.eventRepo.WithTx(tx).Create(event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		r, err := repo.GetByID(existing.ID)
		if err != nil {
			return notFoundOr(err, ErrReviewNotFound, "get review")
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.activity(event)
	return updated, nil
}

// DeleteReview 删除影评及其全部评价和相关动态，再记录一条删除动态，整体在一个事务内完成
func (s *ReviewService) DeleteReview(reviewID int64) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, notFoundOr(err, ErrReviewNotFound, "get review")
	}

	event := newEvent(review.UserID, model.EventTypeReview, model.OperationRemove, review.ID)
	err = s.txManager.Transaction(func(tx *gorm.DB) error {
		return deleteReviewsTx(s.reviewRepo.WithTx(tx), s.eventRepo.WithTx(tx), []int64{review.ID}, event)
	})
	if err != nil {
		return nil, err
	}

	s.cache.invalidate()
	s.notify.activity(event)
	return review, nil
}

// deleteReviewsTx 删除评价、相关 REVIEW 动态和影评本身；removal 不为空时最后写入
func deleteReviewsTx(repo *repository.ReviewRepository, events *repository.EventRepository, reviewIDs []int64, removal *model.Event) error {
	if err := repo.DeleteReactionsByReviews(reviewIDs); err != nil {
		return fmt.Errorf("delete reactions: %w", err)
	}
	if err := events.DeleteByReviews(reviewIDs); err != nil {
		return fmt.Errorf("delete review events: %w", err)
	}
	if err := repo.DeleteByIDs(reviewIDs); err != nil {
		return fmt.Errorf("delete reviews: %w", err)
	}
	if removal != nil {
		if err := events.Create(removal); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
	}
	return nil
}

// GetReview 获取影评
func (s *ReviewService) GetReview(reviewID int64) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, notFoundOr(err, ErrReviewNotFound, "get review")
	}
	return review, nil
}

// ListReviews 影评列表，按 useful 降序、ID 升序
// filmID 为空时返回全部电影的影评，count 非正时取默认值
func (s *ReviewService) ListReviews(filmID *int64, count int) ([]model.Review, error) {
	if count <= 0 {
		count = DefaultReviewCount
	}
	if filmID != nil {
		exists, err := s.filmRepo.Exists(*filmID)
		if err != nil {
			return nil, fmt.Errorf("check film: %w", err)
		}
		if !exists {
			return nil, ErrFilmNotFound
		}
	}

	reviews, err := s.reviewRepo.List(filmID, count)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// AddReviewLike 点赞影评
func (s *ReviewService) AddReviewLike(reviewID, userID int64) error {
	return s.react(reviewID, userID, ActionAddLike)
}

// AddReviewDislike 点踩影评
func (s *ReviewService) AddReviewDislike(reviewID, userID int64) error {
	return s.react(reviewID, userID, ActionAddDislike)
}

// RemoveReviewLike 取消点赞
func (s *ReviewService) RemoveReviewLike(reviewID, userID int64) error {
	return s.react(reviewID, userID, ActionRemoveLike)
}

// RemoveReviewDislike 取消点踩
func (s *ReviewService) RemoveReviewDislike(reviewID, userID int64) error {
	return s.react(reviewID, userID, ActionRemoveDislike)
}

// react 在锁住影评行的事务内推进评价状态并调整 useful
func (s *ReviewService) react(reviewID, userID int64, action ReactionAction) error {
	if _, err := s.reviewRepo.GetByID(reviewID); err != nil {
		return notFoundOr(err, ErrReviewNotFound, "get review")
	}
	if err := checkUser(s.userRepo, userID); err != nil {
		return err
	}

	var changed bool
	err := s.txManager.Transaction(func(tx *gorm.DB) error {
		repo := s.reviewRepo.WithTx(tx)
		if _, err := repo.LockByID(reviewID); err != nil {
			return notFoundOr(err, ErrReviewNotFound, "lock review")
		}

		reaction, err := repo.GetReaction(reviewID, userID)
		if err != nil {
			return fmt.Errorf("get reaction: %w", err)
		}
		current := ReactionNone
		if reaction != nil {
			current = stateOf(reaction.IsPositive)
		}

		next, delta, err := Transition(current, action)
		if err != nil {
			return err
		}
		if next == current {
			return nil
		}

		switch {
		case next == ReactionNone:
			err = repo.DeleteReaction(reviewID, userID)
		case current == ReactionNone:
			err = repo.CreateReaction(reviewID, userID, next == ReactionLiked)
		default:
			err = repo.UpdateReaction(reviewID, userID, next == ReactionLiked)
		}
		if err != nil {
			return fmt.Errorf("write reaction: %w", err)
		}

		if err := repo.AddUseful(reviewID, delta); err != nil {
			return fmt.Errorf("update useful: %w", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return err
	}

	if changed {
		s.cache.invalidate()
	}
	return nil
}

// compensateUserReactionsTx 撤销用户的全部评价并回滚对应影评的 useful
func compensateUserReactionsTx(repo *repository.ReviewRepository, userID int64) error {
	reactions, err := repo.ListReactionsByUser(userID)
	if err != nil {
		return fmt.Errorf("list user reactions: %w", err)
	}
	for _, r := range reactions {
		if err := repo.AddUseful(r.ReviewID, -signOf(stateOf(r.IsPositive))); err != nil {
			return fmt.Errorf("compensate useful: %w", err)
		}
	}
	if err := repo.DeleteReactionsByUser(userID); err != nil {
		return fmt.Errorf("delete user reactions: %w", err)
	}
	return nil
}
