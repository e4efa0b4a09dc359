package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrorKind 业务错误类别，handler 据此映射 HTTP 状态码
type ErrorKind string

const (
	KindNotFound   ErrorKind = "NotFound"
	KindValidation ErrorKind = "Validation"
	KindConflict   ErrorKind = "Conflict"
	KindInternal   ErrorKind = "Internal"
)

// Error 业务错误
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is 不带消息的错误只比较类别，errors.Is(ErrUserNotFound, ErrNotFound) 为 true
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message == "" {
		return t.Kind == e.Kind
	}
	return t == e
}

// 按类别匹配用
var (
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrValidation = &Error{Kind: KindValidation}
	ErrConflict   = &Error{Kind: KindConflict}
	ErrInternal   = &Error{Kind: KindInternal}
)

var (
	ErrUserNotFound     = &Error{Kind: KindNotFound, Message: "用户不存在"}
	ErrFilmNotFound     = &Error{Kind: KindNotFound, Message: "电影不存在"}
	ErrReviewNotFound   = &Error{Kind: KindNotFound, Message: "影评不存在"}
	ErrDirectorNotFound = &Error{Kind: KindNotFound, Message: "导演不存在"}
	ErrGenreNotFound    = &Error{Kind: KindNotFound, Message: "类型不存在"}
	ErrMpaNotFound      = &Error{Kind: KindNotFound, Message: "分级不存在"}

	ErrCannotFriendSelf      = &Error{Kind: KindValidation, Message: "不能添加自己为好友"}
	ErrReviewAlreadyLiked    = &Error{Kind: KindValidation, Message: "不能重复点赞影评"}
	ErrReviewAlreadyDisliked = &Error{Kind: KindValidation, Message: "不能重复点踩影评"}
	ErrInvalidCount          = &Error{Kind: KindValidation, Message: "count 必须为正数"}
	ErrInvalidGenreFilter    = &Error{Kind: KindValidation, Message: "genreId 必须为正数"}
	ErrInvalidYearFilter     = &Error{Kind: KindValidation, Message: "year 必须为正数"}
	ErrInvalidSortBy         = &Error{Kind: KindValidation, Message: "sortBy 只能是 year 或 likes"}
	ErrInvalidSearchBy       = &Error{Kind: KindValidation, Message: "by 只能包含 title 或 director"}

	ErrEmailExists = &Error{Kind: KindConflict, Message: "邮箱已被使用"}
)

func validationError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// KindOf 返回错误类别，非业务错误视为 Internal
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// notFoundOr 把 gorm 的 ErrRecordNotFound 转换为 notFound，其他错误原样包装
func notFoundOr(err error, notFound *Error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
