package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"filmorate-go/internal/model"
	"filmorate-go/internal/recommend"
	"filmorate-go/internal/repository"
	"filmorate-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 搜索字段
const (
	SearchByTitle    = "title"
	SearchByDirector = "director"
)

const searchLimit = 100

// FilmIndex 电影搜索索引（Elasticsearch）
type FilmIndex interface {
	Search(ctx context.Context, query string, fields []string, limit int) ([]int64, error)
	Upsert(ctx context.Context, film *model.Film, likeCount int64) error
	Delete(ctx context.Context, filmID int64) error
}

type SearchService struct {
	filmRepo *repository.FilmRepository
	likeRepo *repository.LikeRepository
	index    FilmIndex
}

func NewSearchService(filmRepo *repository.FilmRepository, likeRepo *repository.LikeRepository, index FilmIndex) *SearchService {
	return &SearchService{filmRepo: filmRepo, likeRepo: likeRepo, index: index}
}

// SearchFilms 按片名和/或导演搜索，结果按喜欢数降序、电影 ID 升序
// ES 不可用时降级到数据库子串匹配
func (s *SearchService) SearchFilms(query, by string) ([]model.Film, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validationError("搜索关键词不能为空")
	}
	fields, err := parseSearchBy(by)
	if err != nil {
		return nil, err
	}

	ids, err := s.searchFromES(query, fields)
	if err != nil {
		logger.Warn("ES search failed, fallback to DB", zap.Error(err))
		ids, err = s.searchFromDB(query, fields)
		if err != nil {
			return nil, err
		}
	}

	counts, err := s.likeRepo.CountByFilms(ids)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	return s.filmRepo.GetByIDs(recommend.SortByPopularity(ids, counts))
}

func (s *SearchService) searchFromES(query string, fields []string) ([]int64, error) {
	if s.index == nil {
		return nil, fmt.Errorf("film index not configured")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.index.Search(ctx, query, fields, searchLimit)
}

func (s *SearchService) searchFromDB(query string, fields []string) ([]int64, error) {
	var byTitle, byDirector bool
	for _, f := range fields {
		switch f {
		case SearchByTitle:
			byTitle = true
		case SearchByDirector:
			byDirector = true
		}
	}
	ids, err := s.filmRepo.SearchIDs(query, byTitle, byDirector)
	if err != nil {
		return nil, fmt.Errorf("search films: %w", err)
	}
	return ids, nil
}

// SyncFilm 把电影的最新状态写入索引，电影已删除时从索引移除
func (s *SearchService) SyncFilm(ctx context.Context, filmID int64, action string) error {
	if s.index == nil {
		return fmt.Errorf("film index not configured")
	}
	if action == FilmSyncDelete {
		return s.index.Delete(ctx, filmID)
	}

	film, err := s.filmRepo.GetByID(filmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.index.Delete(ctx, filmID)
		}
		return fmt.Errorf("get film: %w", err)
	}
	likes, err := s.likeRepo.CountByFilm(filmID)
	if err != nil {
		return fmt.Errorf("count likes: %w", err)
	}
	return s.index.Upsert(ctx, film, likes)
}

// ReindexAll 全量重建索引，返回成功与失败数
func (s *SearchService) ReindexAll(ctx context.Context) (success, failed int, err error) {
	films, err := s.filmRepo.List()
	if err != nil {
		return 0, 0, fmt.Errorf("list films: %w", err)
	}
	if s.index == nil {
		return 0, len(films), fmt.Errorf("film index not configured")
	}

	ids := make([]int64, 0, len(films))
	for i := range films {
		ids = append(ids, films[i].ID)
	}
	counts, err := s.likeRepo.CountByFilms(ids)
	if err != nil {
		return 0, 0, fmt.Errorf("count likes: %w", err)
	}

	for i := range films {
		if err := s.index.Upsert(ctx, &films[i], counts[films[i].ID]); err != nil {
			logger.Warn("Failed to index film", zap.Int64("film_id", films[i].ID), zap.Error(err))
			failed++
			continue
		}
		success++
	}
	return success, failed, nil
}

// parseSearchBy 解析逗号分隔的搜索字段，为空时按片名搜索
func parseSearchBy(by string) ([]string, error) {
	if strings.TrimSpace(by) == "" {
		return []string{SearchByTitle}, nil
	}

	seen := make(map[string]bool, 2)
	fields := make([]string, 0, 2)
	for _, part := range strings.Split(by, ",") {
		f := strings.ToLower(strings.TrimSpace(part))
		if f != SearchByTitle && f != SearchByDirector {
			return nil, ErrInvalidSearchBy
		}
		if !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}
	return fields, nil
}
