package service

import (
	"errors"
	"testing"

	"filmorate-go/internal/model"
)

func TestLikeService_AddLike(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	film := env.createFilm(t, filmOpts{name: "Brazil"})

	t.Run("liking twice records one like", func(t *testing.T) {
		env.like(t, film, user)
		env.like(t, film, user)

		count, err := env.likes.LikeCount(film)
		if err != nil {
			t.Fatalf("LikeCount() error = %v", err)
		}
		if count != 1 {
			t.Errorf("LikeCount() = %d, want 1", count)
		}
	})

	t.Run("unknown film", func(t *testing.T) {
		if err := env.likes.AddLike(999, user); !errors.Is(err, ErrFilmNotFound) {
			t.Errorf("AddLike() error = %v, want %v", err, ErrFilmNotFound)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if err := env.likes.AddLike(film, 999); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("AddLike() error = %v, want %v", err, ErrUserNotFound)
		}
	})
}

func TestLikeService_RemoveLike(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	film := env.createFilm(t, filmOpts{name: "Brazil"})

	t.Run("removing an absent like is a no-op", func(t *testing.T) {
		if err := env.likes.RemoveLike(film, user); err != nil {
			t.Fatalf("RemoveLike() error = %v", err)
		}
		count, _ := env.likes.LikeCount(film)
		if count != 0 {
			t.Errorf("LikeCount() = %d, want 0", count)
		}
	})

	t.Run("removes an existing like", func(t *testing.T) {
		env.like(t, film, user)
		if err := env.likes.RemoveLike(film, user); err != nil {
			t.Fatalf("RemoveLike() error = %v", err)
		}
		count, _ := env.likes.LikeCount(film)
		if count != 0 {
			t.Errorf("LikeCount() = %d, want 0", count)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if err := env.likes.RemoveLike(film, 999); !errors.Is(err, ErrNotFound) {
			t.Errorf("RemoveLike() error = %v, want not found", err)
		}
	})
}

func TestLikeService_EventsAndNotifications(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	film := env.createFilm(t, filmOpts{name: "Brazil"})
	env.pub.reset()

	env.like(t, film, user)
	if err := env.likes.RemoveLike(film, user); err != nil {
		t.Fatalf("RemoveLike() error = %v", err)
	}

	feed, err := env.feed.UserFeed(user)
	if err != nil {
		t.Fatalf("UserFeed() error = %v", err)
	}
	want := []struct {
		op model.EventOperation
	}{{model.OperationAdd}, {model.OperationRemove}}
	if len(feed) != len(want) {
		t.Fatalf("feed has %d events, want %d", len(feed), len(want))
	}
	for i, e := range feed {
		if e.EventType != model.EventTypeLike || e.Operation != want[i].op || e.EntityID != film || e.UserID != user {
			t.Errorf("event %d = %+v, want LIKE/%s on film %d", i, e, want[i].op, film)
		}
	}

	if len(env.pub.events) != 2 {
		t.Errorf("published %d activity events, want 2", len(env.pub.events))
	}
	if len(env.pub.filmSyncs) != 2 || env.pub.filmSyncs[0] != FilmSyncUpsert+":1" {
		t.Errorf("film sync tasks = %v, want two upserts of film 1", env.pub.filmSyncs)
	}
}

func TestLikeService_PublisherFailureDoesNotFailWrite(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	film := env.createFilm(t, filmOpts{name: "Brazil"})
	env.pub.err = errors.New("broker unavailable")

	if err := env.likes.AddLike(film, user); err != nil {
		t.Fatalf("AddLike() error = %v, want nil when publishing fails", err)
	}
	count, _ := env.likes.LikeCount(film)
	if count != 1 {
		t.Errorf("LikeCount() = %d, want 1", count)
	}
}
