package service

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"filmorate-go/internal/api/dto"
)

func validFilmRequest() dto.FilmRequest {
	return dto.FilmRequest{
		Name:        "Brazil",
		Description: "A bureaucrat tries to correct an administrative error",
		ReleaseDate: dto.NewDate(time.Date(1985, time.February, 20, 0, 0, 0, 0, time.UTC)),
		Duration:    142,
		Mpa:         &dto.IDRef{ID: 4},
	}
}

func TestFilmService_CreateFilmValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		modify  func(r *dto.FilmRequest)
		wantErr error
	}{
		{name: "valid", modify: func(r *dto.FilmRequest) {}},
		{name: "blank name", modify: func(r *dto.FilmRequest) { r.Name = "  " }, wantErr: ErrValidation},
		{name: "description of 200 runes", modify: func(r *dto.FilmRequest) { r.Description = strings.Repeat("ж", 200) }},
		{name: "description too long", modify: func(r *dto.FilmRequest) { r.Description = strings.Repeat("a", 201) }, wantErr: ErrValidation},
		{
			name:   "earliest release date",
			modify: func(r *dto.FilmRequest) { r.ReleaseDate = dto.NewDate(EarliestReleaseDate) },
		},
		{
			name:    "release before cinema",
			modify:  func(r *dto.FilmRequest) { r.ReleaseDate = dto.NewDate(EarliestReleaseDate.AddDate(0, 0, -1)) },
			wantErr: ErrValidation,
		},
		{name: "zero duration", modify: func(r *dto.FilmRequest) { r.Duration = 0 }, wantErr: ErrValidation},
		{name: "missing mpa", modify: func(r *dto.FilmRequest) { r.Mpa = nil }, wantErr: ErrValidation},
		{name: "unknown mpa", modify: func(r *dto.FilmRequest) { r.Mpa = &dto.IDRef{ID: 99} }, wantErr: ErrMpaNotFound},
		{name: "unknown genre", modify: func(r *dto.FilmRequest) { r.Genres = []dto.IDRef{{ID: 1}, {ID: 99}} }, wantErr: ErrGenreNotFound},
		{name: "unknown director", modify: func(r *dto.FilmRequest) { r.Directors = []dto.IDRef{{ID: 5}} }, wantErr: ErrDirectorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validFilmRequest()
			tt.modify(&req)
			film, err := env.films.CreateFilm(&req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CreateFilm() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateFilm() error = %v", err)
			}
			if film.ID <= 0 || film.Mpa.ID != req.Mpa.ID || film.Mpa.Name == "" {
				t.Errorf("CreateFilm() = %+v, want persisted film with mpa", film)
			}
		})
	}
}

func TestFilmService_GenresAndDirectors(t *testing.T) {
	env := newTestEnv(t)
	d1, err := env.catalog.CreateDirector(&dto.DirectorRequest{Name: "Terry Gilliam"})
	if err != nil {
		t.Fatalf("CreateDirector() error = %v", err)
	}
	d2, err := env.catalog.CreateDirector(&dto.DirectorRequest{Name: "Terry Jones"})
	if err != nil {
		t.Fatalf("CreateDirector() error = %v", err)
	}

	req := validFilmRequest()
	req.Genres = []dto.IDRef{{ID: 2}, {ID: 1}, {ID: 2}}
	req.Directors = []dto.IDRef{{ID: d1.ID}, {ID: d1.ID}}
	film, err := env.films.CreateFilm(&req)
	if err != nil {
		t.Fatalf("CreateFilm() error = %v", err)
	}

	genreIDs := func() []int64 {
		ids := make([]int64, 0, len(film.Genres))
		for _, g := range film.Genres {
			ids = append(ids, g.ID)
		}
		return ids
	}
	if got := genreIDs(); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Errorf("genres = %v, want [1 2]", got)
	}
	if len(film.Directors) != 1 || film.Directors[0].ID != d1.ID {
		t.Errorf("directors = %+v, want only %d", film.Directors, d1.ID)
	}

	t.Run("update replaces associations", func(t *testing.T) {
		upd := validFilmRequest()
		upd.ID = film.ID
		upd.Name = "Brazil (director's cut)"
		upd.Genres = []dto.IDRef{{ID: 3}}
		upd.Directors = []dto.IDRef{{ID: d2.ID}}

		film, err = env.films.UpdateFilm(&upd)
		if err != nil {
			t.Fatalf("UpdateFilm() error = %v", err)
		}
		if film.Name != upd.Name {
			t.Errorf("Name = %q, want %q", film.Name, upd.Name)
		}
		if got := genreIDs(); !reflect.DeepEqual(got, []int64{3}) {
			t.Errorf("genres = %v, want [3]", got)
		}
		if len(film.Directors) != 1 || film.Directors[0].ID != d2.ID {
			t.Errorf("directors = %+v, want only %d", film.Directors, d2.ID)
		}
	})

	t.Run("update clears associations", func(t *testing.T) {
		upd := validFilmRequest()
		upd.ID = film.ID
		film, err = env.films.UpdateFilm(&upd)
		if err != nil {
			t.Fatalf("UpdateFilm() error = %v", err)
		}
		if len(film.Genres) != 0 || len(film.Directors) != 0 {
			t.Errorf("film = %+v, want no genres or directors", film)
		}
	})

	t.Run("update unknown film", func(t *testing.T) {
		upd := validFilmRequest()
		upd.ID = 999
		if _, err := env.films.UpdateFilm(&upd); !errors.Is(err, ErrFilmNotFound) {
			t.Errorf("UpdateFilm() error = %v, want %v", err, ErrFilmNotFound)
		}
	})
}

func TestFilmService_DeleteFilm(t *testing.T) {
	env := newTestEnv(t)
	users := env.createUsers(t, 2)
	film := env.createFilm(t, filmOpts{name: "Brazil", genres: []int64{1}})
	other := env.createFilm(t, filmOpts{name: "Jabberwocky"})

	env.like(t, film, users[0])
	env.like(t, other, users[0])
	review := env.createReview(t, film, users[1])
	if err := env.reviews.AddReviewLike(review.ID, users[0]); err != nil {
		t.Fatalf("AddReviewLike() error = %v", err)
	}
	env.pub.reset()

	if err := env.films.DeleteFilm(film); err != nil {
		t.Fatalf("DeleteFilm() error = %v", err)
	}

	if _, err := env.films.GetFilm(film); !errors.Is(err, ErrFilmNotFound) {
		t.Errorf("GetFilm() error = %v, want %v", err, ErrFilmNotFound)
	}
	if _, err := env.reviews.GetReview(review.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Errorf("GetReview() error = %v, want %v", err, ErrReviewNotFound)
	}
	top, err := env.ranking.TopLiked(10, nil, nil)
	if err != nil {
		t.Fatalf("TopLiked() error = %v", err)
	}
	if got := filmIDs(top); !reflect.DeepEqual(got, []int64{other}) {
		t.Errorf("TopLiked() = %v, want [%d]", got, other)
	}
	if len(env.pub.filmSyncs) != 1 || env.pub.filmSyncs[0] != FilmSyncDelete+":1" {
		t.Errorf("film sync tasks = %v, want delete of film %d", env.pub.filmSyncs, film)
	}

	if err := env.films.DeleteFilm(film); !errors.Is(err, ErrFilmNotFound) {
		t.Errorf("second DeleteFilm() error = %v, want %v", err, ErrFilmNotFound)
	}
}

func TestFilmService_ListFilms(t *testing.T) {
	env := newTestEnv(t)
	ids := env.createFilms(t, 3)

	films, err := env.films.ListFilms()
	if err != nil {
		t.Fatalf("ListFilms() error = %v", err)
	}
	if got := filmIDs(films); !reflect.DeepEqual(got, ids) {
		t.Errorf("ListFilms() = %v, want %v", got, ids)
	}
}
