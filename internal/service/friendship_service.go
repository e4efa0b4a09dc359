package service

import (
	"fmt"

	"filmorate-go/internal/model"
	"filmorate-go/internal/repository"

	"gorm.io/gorm"
)

// FriendshipService 好友关系为有向边：Friends(a) 只包含 a 主动添加的用户
type FriendshipService struct {
	txManager      *repository.TxManager
	friendshipRepo *repository.FriendshipRepository
	userRepo       *repository.UserRepository
	eventRepo      *repository.EventRepository
	cache          rankingCache
	notify         notifier
}

func NewFriendshipService(
	txManager *repository.TxManager,
	friendshipRepo *repository.FriendshipRepository,
	userRepo *repository.UserRepository,
	eventRepo *repository.EventRepository,
	cache RankingCache,
	pub Publisher,
) *FriendshipService {
	return &FriendshipService{
		txManager:      txManager,
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		cache:          rankingCache{c: cache},
		notify:         notifier{pub: pub},
	}
}

// AddFriend 添加好友（userID → friendID），重复添加不产生重复边
func (s *FriendshipService) AddFriend(userID, friendID int64) error {
	if userID == friendID {
		return ErrCannotFriendSelf
	}
	if err := s.checkUsers(userID, friendID); err != nil {
		return err
	}

	event := newEvent(userID, model.EventTypeFriend, model.OperationAdd, friendID)
	err := s.txManager.Transaction(func(tx *gorm.DB) error {
		if _, err := s.friendshipRepo.WithTx(tx).Create(userID, friendID); err != nil {
			return fmt.Errorf("create friendship: %w", err)
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
	return nil
}

// RemoveFriend 删除好友，边不存在时不做任何修改也不记录动态
func (s *FriendshipService) RemoveFriend(userID, friendID int64) error {
	if err := s.checkUsers(userID, friendID); err != nil {
		return err
	}

	var event *model.Event
	err := s.txManager.Transaction(func(tx *gorm.DB) error {
		deleted, err := s.friendshipRepo.WithTx(tx).Delete(userID, friendID)
		if err != nil {
			return fmt.Errorf("delete friendship: %w", err)
		}
		if !deleted {
			return nil
		}
		event = newEvent(userID, model.EventTypeFriend, model.OperationRemove, friendID)
		if err := s.eventRepo.WithTx(tx).Create(event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if event == nil {
		return nil
	}

	s.cache.invalidate()
	s.notify.activity(event)
	return nil
}

// Friends 用户添加的好友，按用户 ID 升序
func (s *FriendshipService) Friends(userID int64) ([]model.User, error) {
	if err := checkUser(s.userRepo, userID); err != nil {
		return nil, err
	}

	ids, err := s.friendshipRepo.ListFriendIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	return s.userRepo.GetByIDs(ids)
}

// CommonFriends 两个用户都添加了的好友，按用户 ID 升序
func (s *FriendshipService) CommonFriends(userID, otherID int64) ([]model.User, error) {
	if err := s.checkUsers(userID, otherID); err != nil {
		return nil, err
	}

	ids, err := s.friendshipRepo.CommonFriendIDs(userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("common friends: %w", err)
	}
	return s.userRepo.GetByIDs(ids)
}

func (s *FriendshipService) checkUsers(userID, otherID int64) error {
	if err := checkUser(s.userRepo, userID); err != nil {
		return err
	}
	return checkUser(s.userRepo, otherID)
}
