package service

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"filmorate-go/internal/api/dto"
	"filmorate-go/internal/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func int64Ptr(v int64) *int64 { return &v }

func intPtr(v int) *int { return &v }

func released(year int) time.Time {
	return time.Date(year, time.March, 15, 0, 0, 0, 0, time.UTC)
}

func TestRankingService_TopLiked(t *testing.T) {
	env := newTestEnv(t)
	users := env.createUsers(t, 3)

	comedy2000 := env.createFilm(t, filmOpts{name: "comedy 2000", released: released(2000), genres: []int64{1}})
	drama2000 := env.createFilm(t, filmOpts{name: "drama 2000", released: released(2000), genres: []int64{2}})
	comedy2010 := env.createFilm(t, filmOpts{name: "comedy 2010", released: released(2010), genres: []int64{1, 2}})
	unliked := env.createFilm(t, filmOpts{name: "nobody", released: released(2010)})

	env.like(t, drama2000, users[0])
	env.like(t, drama2000, users[1])
	env.like(t, drama2000, users[2])
	env.like(t, comedy2010, users[0])
	env.like(t, comedy2010, users[1])
	env.like(t, comedy2000, users[2])

	tests := []struct {
		name    string
		count   int
		genreID *int64
		year    *int
		want    []int64
	}{
		{name: "all films by likes", count: 10, want: []int64{drama2000, comedy2010, comedy2000, unliked}},
		{name: "count limits result", count: 2, want: []int64{drama2000, comedy2010}},
		{name: "genre filter", count: 10, genreID: int64Ptr(1), want: []int64{comedy2010, comedy2000}},
		{name: "year filter", count: 10, year: intPtr(2000), want: []int64{drama2000, comedy2000}},
		{name: "genre and year", count: 10, genreID: int64Ptr(1), year: intPtr(2010), want: []int64{comedy2010}},
		{name: "no match", count: 10, genreID: int64Ptr(6), want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			films, err := env.ranking.TopLiked(tt.count, tt.genreID, tt.year)
			if err != nil {
				t.Fatalf("TopLiked() error = %v", err)
			}
			if got := filmIDs(films); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopLiked() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRankingService_TopLikedTieBreak(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	films := env.createFilms(t, 3)
	env.like(t, films[2], user)
	env.like(t, films[1], user)

	got, err := env.ranking.TopLiked(10, nil, nil)
	if err != nil {
		t.Fatalf("TopLiked() error = %v", err)
	}
	want := []int64{films[1], films[2], films[0]}
	if !reflect.DeepEqual(filmIDs(got), want) {
		t.Errorf("TopLiked() = %v, want %v", filmIDs(got), want)
	}
}

func TestRankingService_TopLikedValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		count   int
		genreID *int64
		year    *int
		wantErr error
	}{
		{name: "zero count", count: 0, wantErr: ErrInvalidCount},
		{name: "negative count", count: -1, wantErr: ErrInvalidCount},
		{name: "non-positive genre", count: 10, genreID: int64Ptr(0), wantErr: ErrInvalidGenreFilter},
		{name: "non-positive year", count: 10, year: intPtr(-2000), wantErr: ErrInvalidYearFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.ranking.TopLiked(tt.count, tt.genreID, tt.year)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("TopLiked() error = %v, want %v", err, tt.wantErr)
			}
			if KindOf(err) != KindValidation {
				t.Errorf("KindOf() = %s, want %s", KindOf(err), KindValidation)
			}
		})
	}
}

func TestRankingService_CommonFilms(t *testing.T) {
	env := newTestEnv(t)
	users := env.createUsers(t, 3)
	a, b, c := users[0], users[1], users[2]
	films := env.createFilms(t, 3)
	f10, f20, f30 := films[0], films[1], films[2]

	env.like(t, f10, a)
	env.like(t, f20, a)
	env.like(t, f20, b)
	env.like(t, f30, b)

	got, err := env.ranking.CommonFilms(a, b)
	if err != nil {
		t.Fatalf("CommonFilms() error = %v", err)
	}
	if !reflect.DeepEqual(filmIDs(got), []int64{f20}) {
		t.Errorf("CommonFilms(a, b) = %v, want [%d]", filmIDs(got), f20)
	}

	t.Run("ordered by overall popularity", func(t *testing.T) {
		env.like(t, f10, b)
		env.like(t, f10, c)

		got, err := env.ranking.CommonFilms(a, b)
		if err != nil {
			t.Fatalf("CommonFilms() error = %v", err)
		}
		want := []int64{f10, f20}
		if !reflect.DeepEqual(filmIDs(got), want) {
			t.Errorf("CommonFilms(a, b) = %v, want %v", filmIDs(got), want)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if _, err := env.ranking.CommonFilms(a, 999); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("CommonFilms() error = %v, want %v", err, ErrUserNotFound)
		}
	})
}

func TestRankingService_DirectorFilms(t *testing.T) {
	env := newTestEnv(t)
	users := env.createUsers(t, 2)
	director, err := env.catalog.CreateDirector(&dto.DirectorRequest{Name: "Terry Gilliam"})
	if err != nil {
		t.Fatalf("CreateDirector() error = %v", err)
	}
	other, err := env.catalog.CreateDirector(&dto.DirectorRequest{Name: "Someone Else"})
	if err != nil {
		t.Fatalf("CreateDirector() error = %v", err)
	}

	brazil := env.createFilm(t, filmOpts{name: "Brazil", released: released(1985), directors: []int64{director.ID}})
	monkeys := env.createFilm(t, filmOpts{name: "12 Monkeys", released: released(1995), directors: []int64{director.ID}})
	fisher := env.createFilm(t, filmOpts{name: "The Fisher King", released: released(1991), directors: []int64{director.ID}})
	env.createFilm(t, filmOpts{name: "unrelated", released: released(1990), directors: []int64{other.ID}})

	env.like(t, monkeys, users[0])
	env.like(t, monkeys, users[1])
	env.like(t, fisher, users[0])

	tests := []struct {
		name   string
		sortBy string
		want   []int64
	}{
		{name: "by year", sortBy: SortByYear, want: []int64{brazil, fisher, monkeys}},
		{name: "by likes", sortBy: SortByLikes, want: []int64{monkeys, fisher, brazil}},
		{name: "default is likes", sortBy: "", want: []int64{monkeys, fisher, brazil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.ranking.DirectorFilms(director.ID, tt.sortBy)
			if err != nil {
				t.Fatalf("DirectorFilms() error = %v", err)
			}
			if !reflect.DeepEqual(filmIDs(got), tt.want) {
				t.Errorf("DirectorFilms() = %v, want %v", filmIDs(got), tt.want)
			}
		})
	}

	t.Run("invalid sort", func(t *testing.T) {
		if _, err := env.ranking.DirectorFilms(director.ID, "rating"); !errors.Is(err, ErrInvalidSortBy) {
			t.Errorf("DirectorFilms() error = %v, want %v", err, ErrInvalidSortBy)
		}
	})

	t.Run("unknown director", func(t *testing.T) {
		if _, err := env.ranking.DirectorFilms(999, SortByYear); !errors.Is(err, ErrDirectorNotFound) {
			t.Errorf("DirectorFilms() error = %v, want %v", err, ErrDirectorNotFound)
		}
	})
}

func newMiniredisCache(t *testing.T) (*cache.RankingCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRankingCache(client, time.Minute), mr
}

func TestRankingService_CacheFollowsWrites(t *testing.T) {
	rc, _ := newMiniredisCache(t)
	env := newTestEnvWith(t, envOptions{cache: rc})
	users := env.createUsers(t, 2)
	films := env.createFilms(t, 2)

	env.like(t, films[0], users[0])
	first, err := env.ranking.TopLiked(10, nil, nil)
	if err != nil {
		t.Fatalf("TopLiked() error = %v", err)
	}
	if want := []int64{films[0], films[1]}; !reflect.DeepEqual(filmIDs(first), want) {
		t.Fatalf("TopLiked() = %v, want %v", filmIDs(first), want)
	}

	env.like(t, films[1], users[0])
	env.like(t, films[1], users[1])

	second, err := env.ranking.TopLiked(10, nil, nil)
	if err != nil {
		t.Fatalf("TopLiked() error = %v", err)
	}
	if want := []int64{films[1], films[0]}; !reflect.DeepEqual(filmIDs(second), want) {
		t.Errorf("TopLiked() after likes = %v, want %v", filmIDs(second), want)
	}
}

func TestRankingService_CacheUnavailable(t *testing.T) {
	rc, mr := newMiniredisCache(t)
	env := newTestEnvWith(t, envOptions{cache: rc})
	user := env.createUser(t, "alice")
	films := env.createFilms(t, 2)
	env.like(t, films[1], user)

	mr.Close()

	got, err := env.ranking.TopLiked(10, nil, nil)
	if err != nil {
		t.Fatalf("TopLiked() error = %v, want fallback to database", err)
	}
	if want := []int64{films[1], films[0]}; !reflect.DeepEqual(filmIDs(got), want) {
		t.Errorf("TopLiked() = %v, want %v", filmIDs(got), want)
	}
}
