package service

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"filmorate-go/internal/api/dto"
	"filmorate-go/internal/model"
)

func boolPtr(v bool) *bool { return &v }

func (e *testEnv) useful(t *testing.T, reviewID int64) int64 {
	t.Helper()
	r, err := e.reviews.GetReview(reviewID)
	if err != nil {
		t.Fatalf("GetReview(%d) error = %v", reviewID, err)
	}
	return r.Useful
}

// reactionSum 影评全部评价的带符号和
func (e *testEnv) reactionSum(t *testing.T, reviewID int64) int64 {
	t.Helper()
	reactions, err := e.reviewRepo.ListReactions(reviewID)
	if err != nil {
		t.Fatalf("ListReactions(%d) error = %v", reviewID, err)
	}
	var sum int64
	for _, r := range reactions {
		sum += signOf(stateOf(r.IsPositive))
	}
	return sum
}

func TestReviewService_AddReview(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	film := env.createFilm(t, filmOpts{name: "Brazil"})

	tests := []struct {
		name    string
		req     dto.CreateReviewRequest
		wantErr error
	}{
		{name: "valid", req: dto.CreateReviewRequest{Content: "great", IsPositive: boolPtr(true), UserID: user, FilmID: film}},
		{name: "blank content", req: dto.CreateReviewRequest{Content: "  ", IsPositive: boolPtr(true), UserID: user, FilmID: film}, wantErr: ErrValidation},
		{name: "missing polarity", req: dto.CreateReviewRequest{Content: "great", UserID: user, FilmID: film}, wantErr: ErrValidation},
		{name: "unknown user", req: dto.CreateReviewRequest{Content: "great", IsPositive: boolPtr(false), UserID: 999, FilmID: film}, wantErr: ErrUserNotFound},
		{name: "unknown film", req: dto.CreateReviewRequest{Content: "great", IsPositive: boolPtr(false), UserID: user, FilmID: 999}, wantErr: ErrFilmNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			review, err := env.reviews.AddReview(&req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("AddReview() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddReview() error = %v", err)
			}
			if review.ID <= 0 || review.Useful != 0 {
				t.Errorf("AddReview() = %+v, want new review with useful 0", review)
			}
		})
	}
}

func TestReviewService_ReactionsKeepUsefulConsistent(t *testing.T) {
	env := newTestEnv(t)
	users := env.createUsers(t, 4)
	film := env.createFilm(t, filmOpts{name: "Brazil"})
	review := env.createReview(t, film, users[0])

	steps := []struct {
		name       string
		do         func(reviewID, userID int64) error
		user       int64
		wantErr    error
		wantUseful int64
	}{
		{name: "like", do: env.reviews.AddReviewLike, user: users[1], wantUseful: 1},
		{name: "second like rejected", do: env.reviews.AddReviewLike, user: users[1], wantErr: ErrReviewAlreadyLiked, wantUseful: 1},
		{name: "dislike by other user", do: env.reviews.AddReviewDislike, user: users[2], wantUseful: 0},
		{name: "second dislike rejected", do: env.reviews.AddReviewDislike, user: users[2], wantErr: ErrReviewAlreadyDisliked, wantUseful: 0},
		{name: "swap dislike to like", do: env.reviews.AddReviewLike, user: users[2], wantUseful: 2},
		{name: "swap like to dislike", do: env.reviews.AddReviewDislike, user: users[1], wantUseful: 0},
		{name: "remove mismatched is no-op", do: env.reviews.RemoveReviewLike, user: users[1], wantUseful: 0},
		{name: "remove dislike", do: env.reviews.RemoveReviewDislike, user: users[1], wantUseful: 1},
		{name: "remove absent is no-op", do: env.reviews.RemoveReviewDislike, user: users[3], wantUseful: 1},
		{name: "author may react", do: env.reviews.AddReviewDislike, user: users[0], wantUseful: 0},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			err := step.do(review.ID, step.user)
			if step.wantErr != nil {
				if !errors.Is(err, step.wantErr) {
					t.Fatalf("error = %v, want %v", err, step.wantErr)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error kind = %s, want Validation", KindOf(err))
				}
			} else if err != nil {
				t.Fatalf("error = %v", err)
			}

			if got := env.useful(t, review.ID); got != step.wantUseful {
				t.Errorf("useful = %d, want %d", got, step.wantUseful)
			}
			if sum := env.reactionSum(t, review.ID); sum != step.wantUseful {
				t.Errorf("reaction sum = %d, want %d", sum, step.wantUseful)
			}
		})
	}
}

func TestReviewService_DislikeThenLikeSwapsToPlusOne(t *testing.T) {
	env := newTestEnv(t)
	users := env.createUsers(t, 2)
	film := env.createFilm(t, filmOpts{name: "Brazil"})
	review := env.createReview(t, film, users[0])

	if err := env.reviews.AddReviewDislike(review.ID, users[1]); err != nil {
		t.Fatalf("AddReviewDislike() error = %v", err)
	}
	if got := env.useful(t, review.ID); got != -1 {
		t.Fatalf("useful = %d, want -1", got)
	}
	if err := env.reviews.AddReviewLike(review.ID, users[1]); err != nil {
		t.Fatalf("AddReviewLike() error = %v", err)
	}
	if got := env.useful(t, review.ID); got != 1 {
		t.Errorf("useful = %d, want 1", got)
	}
}

func TestReviewService_ReactionNotFound(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	film := env.createFilm(t, filmOpts{name: "Brazil"})
	review := env.createReview(t, film, user)

	if err := env.reviews.AddReviewLike(999, user); !errors.Is(err, ErrReviewNotFound) {
		t.Errorf("AddReviewLike(999) error = %v, want %v", err, ErrReviewNotFound)
	}
	if err := env.reviews.AddReviewLike(review.ID, 999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("AddReviewLike(user 999) error = %v, want %v", err, ErrUserNotFound)
	}
}

func TestReviewService_ConcurrentLikes(t *testing.T) {
	env := newTestEnv(t)
	users := env.createUsers(t, 9)
	film := env.createFilm(t, filmOpts{name: "Brazil"})
	review := env.createReview(t, film, users[0])

	var wg sync.WaitGroup
	errs := make(chan error, len(users)-1)
	for _, u := range users[1:] {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			errs <- env.reviews.AddReviewLike(review.ID, userID)
		}(u)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("AddReviewLike() error = %v", err)
		}
	}

	want := int64(len(users) - 1)
	if got := env.useful(t, review.ID); got != want {
		t.Errorf("useful = %d, want %d", got, want)
	}
}

func TestReviewService_UpdateReview(t *testing.T) {
	env := newTestEnv(t)
	users := env.createUsers(t, 2)
	film := env.createFilm(t, filmOpts{name: "Brazil"})
	review := env.createReview(t, film, users[0])
	if err := env.reviews.AddReviewLike(review.ID, users[1]); err != nil {
		t.Fatalf("AddReviewLike() error = %v", err)
	}

	updated, err := env.reviews.UpdateReview(&dto.UpdateReviewRequest{
		ReviewID:   review.ID,
		Content:    "changed my mind",
		IsPositive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("UpdateReview() error = %v", err)
	}
	if updated.Content != "changed my mind" || updated.IsPositive {
		t.Errorf("UpdateReview() = %+v, want new content and negative", updated)
	}
	if updated.Useful != 1 || updated.UserID != users[0] || updated.FilmID != film {
		t.Errorf("UpdateReview() = %+v, want useful, author and film unchanged", updated)
	}

	feed, err := env.feed.UserFeed(users[0])
	if err != nil {
		t.Fatalf("UserFeed() error = %v", err)
	}
	last := feed[len(feed)-1]
	if last.EventType != model.EventTypeReview || last.Operation != model.OperationUpdate || last.EntityID != review.ID {
		t.Errorf("last event = %+v, want REVIEW/UPDATE on %d", last, review.ID)
	}

	t.Run("unknown review", func(t *testing.T) {
		_, err := env.reviews.UpdateReview(&dto.UpdateReviewRequest{ReviewID: 999, Content: "x", IsPositive: boolPtr(true)})
		if !errors.Is(err, ErrReviewNotFound) {
			t.Errorf("UpdateReview() error = %v, want %v", err, ErrReviewNotFound)
		}
	})
}

func TestReviewService_DeleteReview(t *testing.T) {
	env := newTestEnv(t)
	users := env.createUsers(t, 4)
	film := env.createFilm(t, filmOpts{name: "Brazil"})
	review := env.createReview(t, film, users[0])

	_ = env.reviews.AddReviewLike(review.ID, users[1])
	_ = env.reviews.AddReviewLike(review.ID, users[2])
	_ = env.reviews.AddReviewDislike(review.ID, users[3])

	deleted, err := env.reviews.DeleteReview(review.ID)
	if err != nil {
		t.Fatalf("DeleteReview() error = %v", err)
	}
	if deleted.ID != review.ID {
		t.Errorf("DeleteReview() returned review %d, want %d", deleted.ID, review.ID)
	}

	if _, err := env.reviews.GetReview(review.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Errorf("GetReview() error = %v, want %v", err, ErrReviewNotFound)
	}
	reactions, err := env.reviewRepo.ListReactions(review.ID)
	if err != nil {
		t.Fatalf("ListReactions() error = %v", err)
	}
	if len(reactions) != 0 {
		t.Errorf("reactions left = %d, want 0", len(reactions))
	}

	feed, err := env.feed.UserFeed(users[0])
	if err != nil {
		t.Fatalf("UserFeed() error = %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("feed has %d events, want only the removal", len(feed))
	}
	if feed[0].EventType != model.EventTypeReview || feed[0].Operation != model.OperationRemove || feed[0].EntityID != review.ID {
		t.Errorf("feed[0] = %+v, want REVIEW/REMOVE on %d", feed[0], review.ID)
	}

	if _, err := env.reviews.DeleteReview(review.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Errorf("second DeleteReview() error = %v, want %v", err, ErrReviewNotFound)
	}
}

func TestReviewService_ListReviews(t *testing.T) {
	env := newTestEnv(t)
	users := env.createUsers(t, 3)
	films := env.createFilms(t, 2)

	r1 := env.createReview(t, films[0], users[0])
	r2 := env.createReview(t, films[0], users[1])
	r3 := env.createReview(t, films[1], users[2])
	r4 := env.createReview(t, films[0], users[2])

	_ = env.reviews.AddReviewLike(r2.ID, users[0])
	_ = env.reviews.AddReviewLike(r2.ID, users[2])
	_ = env.reviews.AddReviewLike(r3.ID, users[0])
	_ = env.reviews.AddReviewDislike(r4.ID, users[0])

	tests := []struct {
		name   string
		filmID *int64
		count  int
		want   []int64
	}{
		{name: "all films", count: 10, want: []int64{r2.ID, r3.ID, r1.ID, r4.ID}},
		{name: "one film", filmID: &films[0], count: 10, want: []int64{r2.ID, r1.ID, r4.ID}},
		{name: "limited", count: 2, want: []int64{r2.ID, r3.ID}},
		{name: "default count", count: 0, want: []int64{r2.ID, r3.ID, r1.ID, r4.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews, err := env.reviews.ListReviews(tt.filmID, tt.count)
			if err != nil {
				t.Fatalf("ListReviews() error = %v", err)
			}
			got := make([]int64, 0, len(reviews))
			for _, r := range reviews {
				got = append(got, r.ID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ListReviews() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("unknown film", func(t *testing.T) {
		missing := int64(999)
		if _, err := env.reviews.ListReviews(&missing, 10); !errors.Is(err, ErrFilmNotFound) {
			t.Errorf("ListReviews() error = %v, want %v", err, ErrFilmNotFound)
		}
	})
}
