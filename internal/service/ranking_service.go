package service

import (
	"fmt"

	"filmorate-go/internal/model"
	"filmorate-go/internal/recommend"
	"filmorate-go/internal/repository"
)

// 导演电影排序方式
const (
	SortByYear  = "year"
	SortByLikes = "likes"
)

type RankingService struct {
	likeRepo    *repository.LikeRepository
	filmRepo    *repository.FilmRepository
	userRepo    *repository.UserRepository
	catalogRepo *repository.CatalogRepository
	cache       rankingCache
}

func NewRankingService(
	likeRepo *repository.LikeRepository,
	filmRepo *repository.FilmRepository,
	userRepo *repository.UserRepository,
	catalogRepo *repository.CatalogRepository,
	cache RankingCache,
) *RankingService {
	return &RankingService{
		likeRepo:    likeRepo,
		filmRepo:    filmRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		cache:       rankingCache{c: cache},
	}
}

// TopLiked 最受欢迎的电影，可按类型和年份过滤
// 喜欢数降序，相同时电影 ID 升序；没有喜欢的电影计为 0
func (s *RankingService) TopLiked(count int, genreID *int64, year *int) ([]model.Film, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if genreID != nil && *genreID <= 0 {
		return nil, ErrInvalidGenreFilter
	}
	if year != nil && *year <= 0 {
		return nil, ErrInvalidYearFilter
	}

	key := fmt.Sprintf("popular:%d:g%s:y%s", count, optionalKey(genreID), optionalKey(year))
	ids, err := s.cache.load(key, func() ([]int64, error) {
		rows, err := s.likeRepo.TopLiked(count, genreID, year)
		if err != nil {
			return nil, fmt.Errorf("top liked: %w", err)
		}
		ids := make([]int64, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.FilmID)
		}
		return ids, nil
	})
	if err != nil {
		return nil, err
	}
	return s.filmRepo.GetByIDs(ids)
}

// CommonFilms 两个用户都喜欢的电影，按全站喜欢数降序、电影 ID 升序
func (s *RankingService) CommonFilms(userID, friendID int64) ([]model.Film, error) {
	if err := checkUser(s.userRepo, userID); err != nil {
		return nil, err
	}
	if err := checkUser(s.userRepo, friendID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("common:%d:%d", userID, friendID)
	ids, err := s.cache.load(key, func() ([]int64, error) {
		common, err := s.likeRepo.CommonFilmIDs(userID, friendID)
		if err != nil {
			return nil, fmt.Errorf("common films: %w", err)
		}
		counts, err := s.likeRepo.CountByFilms(common)
		if err != nil {
			return nil, fmt.Errorf("count likes: %w", err)
		}
		return recommend.SortByPopularity(common, counts), nil
	})
	if err != nil {
		return nil, err
	}
	return s.filmRepo.GetByIDs(ids)
}

// DirectorFilms 导演的电影
// sortBy 为 year 时按上映日期升序，为 likes（默认）时按喜欢数降序
func (s *RankingService) DirectorFilms(directorID int64, sortBy string) ([]model.Film, error) {
	if sortBy == "" {
		sortBy = SortByLikes
	}
	if sortBy != SortByYear && sortBy != SortByLikes {
		return nil, ErrInvalidSortBy
	}

	exists, err := s.catalogRepo.DirectorExists(directorID)
	if err != nil {
		return nil, fmt.Errorf("check director: %w", err)
	}
	if !exists {
		return nil, ErrDirectorNotFound
	}

	key := fmt.Sprintf("director:%d:%s", directorID, sortBy)
	ids, err := s.cache.load(key, func() ([]int64, error) {
		ids, err := s.filmRepo.ListIDsByDirector(directorID, sortBy)
		if err != nil {
			return nil, fmt.Errorf("director films: %w", err)
		}
		return ids, nil
	})
	if err != nil {
		return nil, err
	}
	return s.filmRepo.GetByIDs(ids)
}

func optionalKey[T int | int64](v *T) string {
	if v == nil {
		return "*"
	}
	return fmt.Sprint(*v)
}
