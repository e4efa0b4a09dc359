package service

// ReactionState 用户对某条影评的评价状态
type ReactionState int

const (
	ReactionNone ReactionState = iota
	ReactionLiked
	ReactionDisliked
)

func (s ReactionState) String() string {
	switch s {
	case ReactionLiked:
		return "LIKED"
	case ReactionDisliked:
		return "DISLIKED"
	default:
		return "NONE"
	}
}

// ReactionAction 对影评评价的操作
type ReactionAction int

const (
	ActionAddLike ReactionAction = iota
	ActionAddDislike
	ActionRemoveLike
	ActionRemoveDislike
)

func (a ReactionAction) String() string {
	switch a {
	case ActionAddLike:
		return "addLike"
	case ActionAddDislike:
		return "addDislike"
	case ActionRemoveLike:
		return "removeLike"
	case ActionRemoveDislike:
		return "removeDislike"
	default:
		return "unknown"
	}
}

// Transition 计算评价状态迁移及 useful 的变化量
//
//	NONE     addLike    -> LIKED     +1
//	NONE     addDislike -> DISLIKED  -1
//	LIKED    addDislike -> DISLIKED  -2
//	DISLIKED addLike    -> LIKED     +2
//	LIKED    removeLike -> NONE      -1
//	DISLIKED removeDislike -> NONE   +1
//
// 重复点赞或点踩返回校验错误；移除不存在或不匹配的评价时状态不变，变化量为 0
func Transition(current ReactionState, action ReactionAction) (ReactionState, int64, error) {
	switch action {
	case ActionAddLike:
		switch current {
		case ReactionLiked:
			return current, 0, ErrReviewAlreadyLiked
		case ReactionDisliked:
			return ReactionLiked, 2, nil
		default:
			return ReactionLiked, 1, nil
		}
	case ActionAddDislike:
		switch current {
		case ReactionDisliked:
			return current, 0, ErrReviewAlreadyDisliked
		case ReactionLiked:
			return ReactionDisliked, -2, nil
		default:
			return ReactionDisliked, -1, nil
		}
	case ActionRemoveLike:
		if current == ReactionLiked {
			return ReactionNone, -1, nil
		}
		return current, 0, nil
	case ActionRemoveDislike:
		if current == ReactionDisliked {
			return ReactionNone, 1, nil
		}
		return current, 0, nil
	}
	return current, 0, validationError("未知的评价操作: %s", action)
}

// signOf 单条评价对 useful 的贡献
func signOf(state ReactionState) int64 {
	switch state {
	case ReactionLiked:
		return 1
	case ReactionDisliked:
		return -1
	default:
		return 0
	}
}

func stateOf(isPositive bool) ReactionState {
	if isPositive {
		return ReactionLiked
	}
	return ReactionDisliked
}
