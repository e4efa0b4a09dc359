package service

import (
	"fmt"
	"strings"

	"filmorate-go/internal/api/dto"
	"filmorate-go/internal/model"
	"filmorate-go/internal/repository"

	"gorm.io/gorm"
)

// CatalogService 类型、分级与导演
type CatalogService struct {
	txManager   *repository.TxManager
	catalogRepo *repository.CatalogRepository
	filmRepo    *repository.FilmRepository
	cache       rankingCache
	notify      notifier
}

func NewCatalogService(
	txManager *repository.TxManager,
	catalogRepo *repository.CatalogRepository,
	filmRepo *repository.FilmRepository,
	cache RankingCache,
	pub Publisher,
) *CatalogService {
	return &CatalogService{
		txManager:   txManager,
		catalogRepo: catalogRepo,
		filmRepo:    filmRepo,
		cache:       rankingCache{c: cache},
		notify:      notifier{pub: pub},
	}
}

func (s *CatalogService) ListGenres() ([]model.Genre, error) {
	return s.catalogRepo.ListGenres()
}

func (s *CatalogService) GetGenre(id int64) (*model.Genre, error) {
	genre, err := s.catalogRepo.GetGenre(id)
	if err != nil {
		return nil, notFoundOr(err, ErrGenreNotFound, "get genre")
	}
	return genre, nil
}

func (s *CatalogService) ListMpa() ([]model.Mpa, error) {
	return s.catalogRepo.ListMpa()
}

func (s *CatalogService) GetMpa(id int64) (*model.Mpa, error) {
	mpa, err := s.catalogRepo.GetMpa(id)
	if err != nil {
		return nil, notFoundOr(err, ErrMpaNotFound, "get mpa")
	}
	return mpa, nil
}

func (s *CatalogService) ListDirectors() ([]model.Director, error) {
	return s.catalogRepo.ListDirectors()
}

func (s *CatalogService) GetDirector(id int64) (*model.Director, error) {
	director, err := s.catalogRepo.GetDirector(id)
	if err != nil {
		return nil, notFoundOr(err, ErrDirectorNotFound, "get director")
	}
	return director, nil
}

// CreateDirector 创建导演
func (s *CatalogService) CreateDirector(req *dto.DirectorRequest) (*model.Director, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("导演姓名不能为空")
	}
	director := &model.Director{Name: name}
	if err := s.catalogRepo.CreateDirector(director); err != nil {
		return nil, fmt.Errorf("create director: %w", err)
	}
	return director, nil
}

// UpdateDirector 修改导演姓名，相关电影重新同步到搜索索引
func (s *CatalogService) UpdateDirector(req *dto.DirectorRequest) (*model.Director, error) {
	if req.ID <= 0 {
		return nil, validationError("导演ID不能为空")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("导演姓名不能为空")
	}
	if err := s.catalogRepo.UpdateDirector(req.ID, name); err != nil {
		return nil, notFoundOr(err, ErrDirectorNotFound, "update director")
	}

	filmIDs, err := s.filmRepo.ListIDsByDirector(req.ID, SortByYear)
	if err != nil {
		return nil, fmt.Errorf("list director films: %w", err)
	}
	s.notify.filmSync(FilmSyncUpsert, filmIDs...)

	return s.GetDirector(req.ID)
}

// DeleteDirector 删除导演并解除其与电影的关联
func (s *CatalogService) DeleteDirector(id int64) error {
	exists, err := s.catalogRepo.DirectorExists(id)
	if err != nil {
		return fmt.Errorf("check director: %w", err)
	}
	if !exists {
		return ErrDirectorNotFound
	}

	filmIDs, err := s.filmRepo.ListIDsByDirector(id, SortByYear)
	if err != nil {
		return fmt.Errorf("list director films: %w", err)
	}

	err = s.txManager.Transaction(func(tx *gorm.DB) error {
		if _, err := s.catalogRepo.WithTx(tx).DeleteDirector(id); err != nil {
			return fmt.Errorf("delete director: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.invalidate()
	s.notify.filmSync(FilmSyncUpsert, filmIDs...)
	return nil
}
