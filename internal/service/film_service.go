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

// EarliestReleaseDate 最早允许的上映日期（卢米埃尔兄弟首映）
var EarliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

const maxDescriptionLength = 200

type FilmService struct {
	txManager   *repository.TxManager
	filmRepo    *repository.FilmRepository
	catalogRepo *repository.CatalogRepository
	likeRepo    *repository.LikeRepository
	reviewRepo  *repository.ReviewRepository
	eventRepo   *repository.EventRepository
	cache       rankingCache
	notify      notifier
}

func NewFilmService(
	txManager *repository.TxManager,
	filmRepo *repository.FilmRepository,
	catalogRepo *repository.CatalogRepository,
	likeRepo *repository.LikeRepository,
	reviewRepo *repository.ReviewRepository,
	eventRepo *repository.EventRepository,
	cache RankingCache,
	pub Publisher,
) *FilmService {
	return &FilmService{
		txManager:   txManager,
		filmRepo:    filmRepo,
		catalogRepo: catalogRepo,
		likeRepo:    likeRepo,
		reviewRepo:  reviewRepo,
		eventRepo:   eventRepo,
		cache:       rankingCache{c: cache},
		notify:      notifier{pub: pub},
	}
}

// filmInput 校验后的电影字段
type filmInput struct {
	film        *model.Film
	genreIDs    []int64
	directorIDs []int64
}

// CreateFilm 创建电影
func (s *FilmService) CreateFilm(req *dto.FilmRequest) (*model.Film, error) {
	in, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	film := in.film
	film.Genres = make([]model.Genre, 0, len(in.genreIDs))
	for _, id := range in.genreIDs {
		film.Genres = append(film.Genres, model.Genre{ID: id})
	}
	film.Directors = make([]model.Director, 0, len(in.directorIDs))
	for _, id := range in.directorIDs {
		film.Directors = append(film.Directors, model.Director{ID: id})
	}

	err = s.txManager.Transaction(func(tx *gorm.DB) error {
		if err := s.filmRepo.WithTx(tx).Create(film); err != nil {
			return fmt.Errorf("create film: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.invalidate()
	s.notify.filmSync(FilmSyncUpsert, film.ID)
	return s.GetFilm(film.ID)
}

// UpdateFilm 更新电影，类型与导演整体覆盖
func (s *FilmService) UpdateFilm(req *dto.FilmRequest) (*model.Film, error) {
	if req.ID <= 0 {
		return nil, validationError("电影ID不能为空")
	}
	in, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	exists, err := s.filmRepo.Exists(req.ID)
	if err != nil {
		return nil, fmt.Errorf("check film: %w", err)
	}
	if !exists {
		return nil, ErrFilmNotFound
	}

	err = s.txManager.Transaction(func(tx *gorm.DB) error {
		repo := s.filmRepo.WithTx(tx)
		err := repo.Update(req.ID, map[string]interface{}{
			"name":         in.film.Name,
			"description":  in.film.Description,
			"release_date": in.film.ReleaseDate,
			"duration":     in.film.Duration,
			"mpa_id":       in.film.MpaID,
		})
		if err != nil {
			return notFoundOr(err, ErrFilmNotFound, "update film")
		}
		if err := repo.ReplaceGenres(req.ID, in.genreIDs); err != nil {
			return fmt.Errorf("replace genres: %w", err)
		}
		if err := repo.ReplaceDirectors(req.ID, in.directorIDs); err != nil {
			return fmt.Errorf("replace directors: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.invalidate()
	s.notify.filmSync(FilmSyncUpsert, req.ID)
	return s.GetFilm(req.ID)
}

// GetFilm 获取电影
func (s *FilmService) GetFilm(id int64) (*model.Film, error) {
	film, err := s.filmRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, ErrFilmNotFound, "get film")
	}
	return film, nil
}

// ListFilms 全部电影
func (s *FilmService) ListFilms() ([]model.Film, error) {
	films, err := s.filmRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	return films, nil
}

// DeleteFilm 删除电影及其喜欢、影评（含评价与影评动态）和关联
func (s *FilmService) DeleteFilm(id int64) error {
	exists, err := s.filmRepo.Exists(id)
	if err != nil {
		return fmt.Errorf("check film: %w", err)
	}
	if !exists {
		return ErrFilmNotFound
	}

	err = s.txManager.Transaction(func(tx *gorm.DB) error {
		reviews := s.reviewRepo.WithTx(tx)
		reviewIDs, err := reviews.ListIDsByFilm(id)
		if err != nil {
			return fmt.Errorf("list film reviews: %w", err)
		}
		if err := deleteReviewsTx(reviews, s.eventRepo.WithTx(tx), reviewIDs, nil); err != nil {
			return err
		}
		if err := s.likeRepo.WithTx(tx).DeleteByFilm(id); err != nil {
			return fmt.Errorf("delete likes: %w", err)
		}
		if _, err := s.filmRepo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("delete film: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.invalidate()
	s.notify.filmSync(FilmSyncDelete, id)
	return nil
}

func (s *FilmService) validate(req *dto.FilmRequest) (*filmInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("片名不能为空")
	}
	if len([]rune(req.Description)) > maxDescriptionLength {
		return nil, validationError("简介不能超过 %d 个字符", maxDescriptionLength)
	}
	if req.ReleaseDate.IsZero() {
		return nil, validationError("上映日期不能为空")
	}
	releaseDate := dto.NewDate(req.ReleaseDate.Time).Time
	if releaseDate.Before(EarliestReleaseDate) {
		return nil, validationError("上映日期不能早于 %s", EarliestReleaseDate.Format(dto.DateLayout))
	}
	if req.Duration <= 0 {
		return nil, validationError("时长必须为正数")
	}
	if req.Mpa == nil || req.Mpa.ID <= 0 {
		return nil, validationError("分级不能为空")
	}

	if _, err := s.catalogRepo.GetMpa(req.Mpa.ID); err != nil {
		return nil, notFoundOr(err, ErrMpaNotFound, "get mpa")
	}

	genreIDs := uniqueIDs(req.Genres)
	found, err := s.catalogRepo.ExistingGenreIDs(genreIDs)
	if err != nil {
		return nil, fmt.Errorf("check genres: %w", err)
	}
	if len(found) != len(genreIDs) {
		return nil, ErrGenreNotFound
	}

	directorIDs := uniqueIDs(req.Directors)
	found, err = s.catalogRepo.ExistingDirectorIDs(directorIDs)
	if err != nil {
		return nil, fmt.Errorf("check directors: %w", err)
	}
	if len(found) != len(directorIDs) {
		return nil, ErrDirectorNotFound
	}

	return &filmInput{
		film: &model.Film{
			Name:        name,
			Description: req.Description,
			ReleaseDate: releaseDate,
			Duration:    req.Duration,
			MpaID:       req.Mpa.ID,
		},
		genreIDs:    genreIDs,
		directorIDs: directorIDs,
	}, nil
}

// uniqueIDs 去重并保持首次出现的顺序
func uniqueIDs(refs []dto.IDRef) []int64 {
	seen := make(map[int64]struct{}, len(refs))
	ids := make([]int64, 0, len(refs))
	for _, r := range refs {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		ids = append(ids, r.ID)
	}
	return ids
}
