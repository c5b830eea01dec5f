package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

// 一意制約（username / email の重複）を統一
var ErrConflict = errors.New("conflict")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成。重複は ErrConflict
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (model.User, error)
	//作成順（id昇順）でページング取得
	List(ctx context.Context, limit int, offset int) ([]model.User, error)
}
