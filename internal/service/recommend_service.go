package service

import (
	"fmt"

	"filmorate-go/internal/model"
	"filmorate-go/internal/recommend"
	"filmorate-go/internal/repository"
)

const (
	DefaultNeighborLimit  = 5
	DefaultCandidateLimit = 20
)

type RecommendService struct {
	likeRepo       *repository.LikeRepository
	filmRepo       *repository.FilmRepository
	userRepo       *repository.UserRepository
	cache          rankingCache
	neighborLimit  int
	candidateLimit int
}

// NewRecommendService 非正数的上限使用默认值
func NewRecommendService(
	likeRepo *repository.LikeRepository,
	filmRepo *repository.FilmRepository,
	userRepo *repository.UserRepository,
	cache RankingCache,
	neighborLimit, candidateLimit int,
) *RecommendService {
	if neighborLimit <= 0 {
		neighborLimit = DefaultNeighborLimit
	}
	if candidateLimit <= 0 {
		candidateLimit = DefaultCandidateLimit
	}
	return &RecommendService{
		likeRepo:       likeRepo,
		filmRepo:       filmRepo,
		userRepo:       userRepo,
		cache:          rankingCache{c: cache},
		neighborLimit:  neighborLimit,
		candidateLimit: candidateLimit,
	}
}

// Recommend 为用户推荐电影
// 取与用户共同喜欢最多的若干用户，推荐他们喜欢而该用户未喜欢的电影
func (s *RecommendService) Recommend(userID int64) ([]model.Film, error) {
	if err := checkUser(s.userRepo, userID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("recommend:%d:k%d:n%d", userID, s.neighborLimit, s.candidateLimit)
	ids, err := s.cache.load(key, func() ([]int64, error) {
		return s.recommendIDs(userID)
	})
	if err != nil {
		return nil, err
	}
	return s.filmRepo.GetByIDs(ids)
}

func (s *RecommendService) recommendIDs(userID int64) ([]int64, error) {
	liked, err := s.likeRepo.ListFilmIDsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list liked films: %w", err)
	}
	if len(liked) == 0 {
		return []int64{}, nil
	}

	overlaps, err := s.likeRepo.OverlapCounts(liked, userID)
	if err != nil {
		return nil, fmt.Errorf("overlap counts: %w", err)
	}

	candidates := make([]recommend.Neighbor, 0, len(overlaps))
	for _, o := range overlaps {
		candidates = append(candidates, recommend.Neighbor{UserID: o.UserID, Overlap: o.Overlap})
	}
	neighbors := recommend.SelectNeighbors(candidates, userID, s.neighborLimit)
	if len(neighbors) == 0 {
		return []int64{}, nil
	}

	neighborIDs := make([]int64, 0, len(neighbors))
	for _, n := range neighbors {
		neighborIDs = append(neighborIDs, n.UserID)
	}
	rows, err := s.likeRepo.ListByUsers(neighborIDs)
	if err != nil {
		return nil, fmt.Errorf("list neighbour likes: %w", err)
	}

	likes := make([]recommend.Like, 0, len(rows))
	for _, l := range rows {
		likes = append(likes, recommend.Like{UserID: l.UserID, FilmID: l.FilmID})
	}

	scored := recommend.ScoreCandidates(likes, neighbors, liked, s.candidateLimit)
	return recommend.CandidateIDs(scored), nil
}
