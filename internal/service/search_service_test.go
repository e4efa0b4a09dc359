package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"filmorate-go/internal/api/dto"
)

func TestParseSearchBy(t *testing.T) {
	tests := []struct {
		by      string
		want    []string
		wantErr bool
	}{
		{by: "", want: []string{SearchByTitle}},
		{by: "title", want: []string{SearchByTitle}},
		{by: "director", want: []string{SearchByDirector}},
		{by: "director,title", want: []string{SearchByDirector, SearchByTitle}},
		{by: " Title , DIRECTOR ,title", want: []string{SearchByTitle, SearchByDirector}},
		{by: "year", wantErr: true},
		{by: "title,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.by, func(t *testing.T) {
			got, err := parseSearchBy(tt.by)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSearchBy) {
					t.Errorf("parseSearchBy(%q) error = %v, want %v", tt.by, err, ErrInvalidSearchBy)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSearchBy(%q) error = %v", tt.by, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSearchBy(%q) = %v, want %v", tt.by, got, tt.want)
			}
		})
	}
}

// searchFixture 两位导演、三部电影，Brazil 最受欢迎
type searchFixture struct {
	env                      *testEnv
	brazil, monkeys, crazies int64
}

func newSearchFixture(t *testing.T, index FilmIndex) *searchFixture {
	t.Helper()
	env := newTestEnvWith(t, envOptions{index: index})
	users := env.createUsers(t, 2)
	gilliam, err := env.catalog.CreateDirector(&dto.DirectorRequest{Name: "Terry Gilliam"})
	if err != nil {
		t.Fatalf("CreateDirector() error = %v", err)
	}
	romero, err := env.catalog.CreateDirector(&dto.DirectorRequest{Name: "George Romero"})
	if err != nil {
		t.Fatalf("CreateDirector() error = %v", err)
	}

	f := &searchFixture{env: env}
	f.monkeys = env.createFilm(t, filmOpts{name: "12 Monkeys", directors: []int64{gilliam.ID}})
	f.crazies = env.createFilm(t, filmOpts{name: "The Crazies", directors: []int64{romero.ID}})
	f.brazil = env.createFilm(t, filmOpts{name: "Brazil", directors: []int64{gilliam.ID}})
	env.like(t, f.brazil, users[0])
	env.like(t, f.brazil, users[1])
	env.like(t, f.crazies, users[0])
	return f
}

func TestSearchService_DatabaseFallback(t *testing.T) {
	f := newSearchFixture(t, nil)

	tests := []struct {
		name  string
		query string
		by    string
		want  []int64
	}{
		{name: "title substring ignores case", query: "CRAZ", by: "title", want: []int64{f.crazies}},
		{name: "default searches title", query: "brazil", want: []int64{f.brazil}},
		{name: "director", query: "gilliam", by: "director", want: []int64{f.brazil, f.monkeys}},
		{name: "title and director ranked by likes", query: "r", by: "title,director", want: []int64{f.brazil, f.crazies, f.monkeys}},
		{name: "no match", query: "kubrick", by: "director", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			films, err := f.env.search.SearchFilms(tt.query, tt.by)
			if err != nil {
				t.Fatalf("SearchFilms() error = %v", err)
			}
			if got := filmIDs(films); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SearchFilms(%q, %q) = %v, want %v", tt.query, tt.by, got, tt.want)
			}
		})
	}

	t.Run("blank query", func(t *testing.T) {
		if _, err := f.env.search.SearchFilms("  ", "title"); !errors.Is(err, ErrValidation) {
			t.Errorf("SearchFilms() error = %v, want validation error", err)
		}
	})
}

func TestSearchService_UsesIndex(t *testing.T) {
	index := &fakeIndex{}
	f := newSearchFixture(t, index)
	index.hits = []int64{f.monkeys, f.brazil}

	films, err := f.env.search.SearchFilms("anything", "title")
	if err != nil {
		t.Fatalf("SearchFilms() error = %v", err)
	}
	want := []int64{f.brazil, f.monkeys}
	if got := filmIDs(films); !reflect.DeepEqual(got, want) {
		t.Errorf("SearchFilms() = %v, want %v", got, want)
	}
}

func TestSearchService_IndexErrorFallsBack(t *testing.T) {
	index := &fakeIndex{err: errors.New("cluster red")}
	f := newSearchFixture(t, index)

	films, err := f.env.search.SearchFilms("monkeys", "title")
	if err != nil {
		t.Fatalf("SearchFilms() error = %v", err)
	}
	if got := filmIDs(films); !reflect.DeepEqual(got, []int64{f.monkeys}) {
		t.Errorf("SearchFilms() = %v, want [%d]", got, f.monkeys)
	}
}

func TestSearchService_SyncFilm(t *testing.T) {
	index := &fakeIndex{}
	f := newSearchFixture(t, index)
	ctx := context.Background()

	if err := f.env.search.SyncFilm(ctx, f.brazil, FilmSyncUpsert); err != nil {
		t.Fatalf("SyncFilm(upsert) error = %v", err)
	}
	if got := index.upserts[f.brazil]; got != 2 {
		t.Errorf("indexed like count = %d, want 2", got)
	}

	if err := f.env.search.SyncFilm(ctx, 999, FilmSyncUpsert); err != nil {
		t.Fatalf("SyncFilm(missing) error = %v", err)
	}
	if err := f.env.search.SyncFilm(ctx, f.crazies, FilmSyncDelete); err != nil {
		t.Fatalf("SyncFilm(delete) error = %v", err)
	}
	if want := []int64{999, f.crazies}; !reflect.DeepEqual(index.deletes, want) {
		t.Errorf("deleted from index = %v, want %v", index.deletes, want)
	}

	success, failed, err := f.env.search.ReindexAll(ctx)
	if err != nil {
		t.Fatalf("ReindexAll() error = %v", err)
	}
	if success != 3 || failed != 0 {
		t.Errorf("ReindexAll() = %d, %d, want 3, 0", success, failed)
	}
	if index.upserts[f.monkeys] != 0 || index.upserts[f.crazies] != 1 {
		t.Errorf("indexed like counts = %v", index.upserts)
	}
}

func TestSearchService_SyncWithoutIndex(t *testing.T) {
	env := newTestEnv(t)
	if err := env.search.SyncFilm(context.Background(), 1, FilmSyncUpsert); err == nil {
		t.Error("SyncFilm() error = nil, want error when no index is configured")
	}
}
