package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// 入力不備。ストアに触る前に検出する。
	KindValidation Kind = iota + 1
	// 対象が存在しない。
	KindNotFound
	// 書き込みが参照する相手（商品など）が存在しない。
	KindReference
	// 一意制約違反。
	KindConflict
	// プール枯渇・取得タイムアウト。
	KindResourceExhausted
	// ストア接続不可などの内部障害。
	KindInfrastructure
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func As(err error) (*Error, bool) {
	var ae *Error
	ok := errors.As(err, &ae)
	return ae, ok
}

// KindOf は未分類のエラーをKindInfrastructure扱いにする。
func KindOf(err error) Kind {
	if ae, ok := As(err); ok {
		return ae.Kind
	}
	return KindInfrastructure
}
