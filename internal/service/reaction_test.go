package service

import (
	"errors"
	"testing"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from      ReactionState
		action    ReactionAction
		wantState ReactionState
		wantDelta int64
		wantErr   error
	}{
		{from: ReactionNone, action: ActionAddLike, wantState: ReactionLiked, wantDelta: 1},
		{from: ReactionNone, action: ActionAddDislike, wantState: ReactionDisliked, wantDelta: -1},
		{from: ReactionLiked, action: ActionAddDislike, wantState: ReactionDisliked, wantDelta: -2},
		{from: ReactionDisliked, action: ActionAddLike, wantState: ReactionLiked, wantDelta: 2},
		{from: ReactionLiked, action: ActionRemoveLike, wantState: ReactionNone, wantDelta: -1},
		{from: ReactionDisliked, action: ActionRemoveDislike, wantState: ReactionNone, wantDelta: 1},
		{from: ReactionLiked, action: ActionAddLike, wantState: ReactionLiked, wantErr: ErrReviewAlreadyLiked},
		{from: ReactionDisliked, action: ActionAddDislike, wantState: ReactionDisliked, wantErr: ErrReviewAlreadyDisliked},
		{from: ReactionNone, action: ActionRemoveLike, wantState: ReactionNone},
		{from: ReactionNone, action: ActionRemoveDislike, wantState: ReactionNone},
		{from: ReactionDisliked, action: ActionRemoveLike, wantState: ReactionDisliked},
		{from: ReactionLiked, action: ActionRemoveDislike, wantState: ReactionLiked},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+" "+tt.action.String(), func(t *testing.T) {
			state, delta, err := Transition(tt.from, tt.action)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Transition() error = %v, want %v", err, tt.wantErr)
			}
			if state != tt.wantState {
				t.Errorf("Transition() state = %s, want %s", state, tt.wantState)
			}
			if delta != tt.wantDelta {
				t.Errorf("Transition() delta = %d, want %d", delta, tt.wantDelta)
			}
		})
	}
}

// 任意操作序列下，累计的变化量始终等于当前状态的符号
func TestTransition_DeltaMatchesSign(t *testing.T) {
	actions := []ReactionAction{ActionAddLike, ActionAddDislike, ActionRemoveLike, ActionRemoveDislike}

	// 枚举长度为 4 的全部操作序列
	var walk func(state ReactionState, sum int64, depth int)
	walk = func(state ReactionState, sum int64, depth int) {
		if sum != signOf(state) {
			t.Fatalf("sum of deltas = %d, want sign of %s = %d", sum, state, signOf(state))
		}
		if depth == 0 {
			return
		}
		for _, a := range actions {
			next, delta, err := Transition(state, a)
			if err != nil {
				if next != state || delta != 0 {
					t.Fatalf("rejected %s from %s changed state to %s (delta %d)", a, state, next, delta)
				}
				continue
			}
			walk(next, sum+delta, depth-1)
		}
	}
	walk(ReactionNone, 0, 4)
}
