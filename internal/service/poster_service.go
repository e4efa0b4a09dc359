package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"filmorate-go/internal/repository"

	"github.com/google/uuid"
)

// MaxPosterSize 海报文件大小上限
const MaxPosterSize = 10 << 20

// PosterStore 海报对象存储（MinIO）
type PosterStore interface {
	UploadPoster(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

type PosterService struct {
	filmRepo *repository.FilmRepository
	store    PosterStore
}

func NewPosterService(filmRepo *repository.FilmRepository, store PosterStore) *PosterService {
	return &PosterService{filmRepo: filmRepo, store: store}
}

// UploadPoster 上传电影海报并更新海报地址
func (s *PosterService) UploadPoster(filmID int64, filename, contentType string, size int64, reader io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", validationError("海报必须是图片")
	}
	if size <= 0 || size > MaxPosterSize {
		return "", validationError("海报大小必须在 1B 到 %dMB 之间", MaxPosterSize>>20)
	}
	exists, err := s.filmRepo.Exists(filmID)
	if err != nil {
		return "", fmt.Errorf("check film: %w", err)
	}
	if !exists {
		return "", ErrFilmNotFound
	}
	if s.store == nil {
		return "", fmt.Errorf("poster store not configured")
	}

	objectName := fmt.Sprintf("films/%d/%s%s", filmID, uuid.NewString(), strings.ToLower(path.Ext(filename)))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	url, err := s.store.UploadPoster(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", fmt.Errorf("upload poster: %w", err)
	}
	if err := s.filmRepo.UpdatePoster(filmID, url); err != nil {
		return "", notFoundOr(err, ErrFilmNotFound, "update poster")
	}
	return url, nil
}
