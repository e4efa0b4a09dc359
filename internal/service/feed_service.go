package service

import (
	"fmt"

	"filmorate-go/internal/model"
	"filmorate-go/internal/repository"
)

type FeedService struct {
	userRepo  *repository.UserRepository
	eventRepo *repository.EventRepository
}

func NewFeedService(userRepo *repository.UserRepository, eventRepo *repository.EventRepository) *FeedService {
	return &FeedService{userRepo: userRepo, eventRepo: eventRepo}
}

// UserFeed 用户动态，按时间升序（同一时间按 ID 升序）
func (s *FeedService) UserFeed(userID int64) ([]model.Event, error) {
	if err := checkUser(s.userRepo, userID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
