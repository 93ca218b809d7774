package repository

import (
	"context"
	"errors"

	"cartlab/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// Todoの永続化だけを約束。
type TodoRepository interface {
	List(ctx context.Context) ([]model.Todo, error)
	FindByID(ctx context.Context, id int64) (model.Todo, error)
	Create(ctx context.Context, t model.Todo) (model.Todo, error)
	// IDが無ければそのIDで作成する
	Save(ctx context.Context, t model.Todo) (model.Todo, error)
	// 存在しないIDでもエラーにしない
	DeleteByID(ctx context.Context, id int64) error
}
