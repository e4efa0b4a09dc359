package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"filmorate-go/internal/api/dto"
	"filmorate-go/internal/infra/database"
	"filmorate-go/internal/model"
	"filmorate-go/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv 基于内存 SQLite 组装的全部服务
type testEnv struct {
	db  *gorm.DB
	pub *recordingPublisher

	users       *UserService
	films       *FilmService
	catalog     *CatalogService
	likes       *LikeService
	ranking     *RankingService
	recommender *RecommendService
	friends     *FriendshipService
	reviews     *ReviewService
	feed        *FeedService
	search      *SearchService
	posters     *PosterService

	reviewRepo *repository.ReviewRepository
	likeRepo   *repository.LikeRepository
}

type envOptions struct {
	cache RankingCache
	index FilmIndex
	store PosterStore
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// 内存库每个连接各自独立，必须只用一个连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, envOptions{})
}

func newTestEnvWith(t *testing.T, opts envOptions) *testEnv {
	t.Helper()
	db := newTestDB(t)
	pub := &recordingPublisher{}

	tx := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	filmRepo := repository.NewFilmRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	eventRepo := repository.NewEventRepository(db)

	return &testEnv{
		db:          db,
		pub:         pub,
		users:       NewUserService(tx, userRepo, likeRepo, friendshipRepo, reviewRepo, eventRepo, opts.cache, pub),
		films:       NewFilmService(tx, filmRepo, catalogRepo, likeRepo, reviewRepo, eventRepo, opts.cache, pub),
		catalog:     NewCatalogService(tx, catalogRepo, filmRepo, opts.cache, pub),
		likes:       NewLikeService(tx, likeRepo, filmRepo, userRepo, eventRepo, opts.cache, pub),
		ranking:     NewRankingService(likeRepo, filmRepo, userRepo, catalogRepo, opts.cache),
		recommender: NewRecommendService(likeRepo, filmRepo, userRepo, opts.cache, DefaultNeighborLimit, DefaultCandidateLimit),
		friends:     NewFriendshipService(tx, friendshipRepo, userRepo, eventRepo, opts.cache, pub),
		reviews:     NewReviewService(tx, reviewRepo, filmRepo, userRepo, eventRepo, opts.cache, pub),
		feed:        NewFeedService(userRepo, eventRepo),
		search:      NewSearchService(filmRepo, likeRepo, opts.index),
		posters:     NewPosterService(filmRepo, opts.store),
		reviewRepo:  reviewRepo,
		likeRepo:    likeRepo,
	}
}

func (e *testEnv) createUser(t *testing.T, login string) int64 {
	t.Helper()
	u, err := e.users.CreateUser(&dto.UserRequest{
		Email: login + "@example.com",
		Login: login,
	})
	if err != nil {
		t.Fatalf("CreateUser(%s) error = %v", login, err)
	}
	return u.ID
}

func (e *testEnv) createUsers(t *testing.T, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, e.createUser(t, fmt.Sprintf("user%d", i+1)))
	}
	return ids
}

type filmOpts struct {
	name      string
	released  time.Time
	genres    []int64
	directors []int64
}

func (e *testEnv) createFilm(t *testing.T, opts filmOpts) int64 {
	t.Helper()
	if opts.name == "" {
		opts.name = "film"
	}
	if opts.released.IsZero() {
		opts.released = time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
	req := &dto.FilmRequest{
		Name:        opts.name,
		Description: "description",
		ReleaseDate: dto.NewDate(opts.released),
		Duration:    120,
		Mpa:         &dto.IDRef{ID: 1},
	}
	for _, g := range opts.genres {
		req.Genres = append(req.Genres, dto.IDRef{ID: g})
	}
	for _, d := range opts.directors {
		req.Directors = append(req.Directors, dto.IDRef{ID: d})
	}

	f, err := e.films.CreateFilm(req)
	if err != nil {
		t.Fatalf("CreateFilm(%s) error = %v", opts.name, err)
	}
	return f.ID
}

func (e *testEnv) createFilms(t *testing.T, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, e.createFilm(t, filmOpts{name: fmt.Sprintf("film%d", i+1)}))
	}
	return ids
}

func (e *testEnv) like(t *testing.T, filmID, userID int64) {
	t.Helper()
	if err := e.likes.AddLike(filmID, userID); err != nil {
		t.Fatalf("AddLike(%d, %d) error = %v", filmID, userID, err)
	}
}

func (e *testEnv) createReview(t *testing.T, filmID, userID int64) *model.Review {
	t.Helper()
	positive := true
	r, err := e.reviews.AddReview(&dto.CreateReviewRequest{
		Content:    "worth watching",
		IsPositive: &positive,
		UserID:     userID,
		FilmID:     filmID,
	})
	if err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}
	return r
}

func filmIDs(films []model.Film) []int64 {
	ids := make([]int64, 0, len(films))
	for _, f := range films {
		ids = append(ids, f.ID)
	}
	return ids
}

func userIDs(users []model.User) []int64 {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

// recordingPublisher 记录投递的消息
type recordingPublisher struct {
	mu        sync.Mutex
	events    []model.Event
	filmSyncs []string
	err       error
}

func (p *recordingPublisher) PublishActivity(_ context.Context, e *model.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, *e)
	return nil
}

func (p *recordingPublisher) PublishFilmSync(_ context.Context, filmID int64, action string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.filmSyncs = append(p.filmSyncs, fmt.Sprintf("%s:%d", action, filmID))
	return nil
}

func (p *recordingPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
	p.filmSyncs = nil
}

// fakeIndex 内存中的电影索引
type fakeIndex struct {
	hits    []int64
	err     error
	upserts map[int64]int64
	deletes []int64
}

func (x *fakeIndex) Search(_ context.Context, _ string, _ []string, _ int) ([]int64, error) {
	return x.hits, x.err
}

func (x *fakeIndex) Upsert(_ context.Context, f *model.Film, likeCount int64) error {
	if x.upserts == nil {
		x.upserts = make(map[int64]int64)
	}
	x.upserts[f.ID] = likeCount
	return nil
}

func (x *fakeIndex) Delete(_ context.Context, filmID int64) error {
	x.deletes = append(x.deletes, filmID)
	return nil
}

// fakeStore 内存中的海报存储
type fakeStore struct {
	objects map[string][]byte
	err     error
}

func (s *fakeStore) UploadPoster(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if s.objects == nil {
		s.objects = make(map[string][]byte)
	}
	s.objects[objectName] = data
	return "http://posters.local/" + objectName, nil
}
