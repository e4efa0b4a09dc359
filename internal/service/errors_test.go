package service

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{name: "same sentinel", err: ErrUserNotFound, target: ErrUserNotFound, want: true},
		{name: "sentinel matches its kind", err: ErrUserNotFound, target: ErrNotFound, want: true},
		{name: "different sentinel of same kind", err: ErrUserNotFound, target: ErrFilmNotFound, want: false},
		{name: "different kind", err: ErrCannotFriendSelf, target: ErrNotFound, want: false},
		{name: "validation kind", err: ErrReviewAlreadyLiked, target: ErrValidation, want: true},
		{name: "wrapped sentinel", err: fmt.Errorf("add like: %w", ErrFilmNotFound), target: ErrNotFound, want: true},
		{name: "formatted validation error", err: validationError("bad %s", "input"), target: ErrValidation, want: true},
		{name: "plain error", err: errors.New("db down"), target: ErrInternal, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{err: ErrReviewNotFound, want: KindNotFound},
		{err: fmt.Errorf("wrapped: %w", ErrEmailExists), want: KindConflict},
		{err: ErrInvalidCount, want: KindValidation},
		{err: errors.New("connection refused"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %s, want %s", got, tt.want)
			}
		})
	}
}
