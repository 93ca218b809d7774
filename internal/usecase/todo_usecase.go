package usecase

import (
	"context"
	"net/http"
	"strings"

	"cartlab/internal/domain/model"
	repo "cartlab/internal/repository"
	"cartlab/internal/platform/logger"
)

// TodoUsecase は /api/todos の業務ロジックです。
type TodoUsecase struct {
	todos repo.TodoRepository
	log   *logger.Logger
}

func NewTodoUsecase(todos repo.TodoRepository, log *logger.Logger) *TodoUsecase {
	if log == nil {
		log = logger.NewNop()
	}
	return &TodoUsecase{todos: todos, log: log}
}

type TodoInput struct {
	Title string
}

func (u *TodoUsecase) List(ctx context.Context) ([]model.Todo, error) {
	todos, err := u.todos.List(ctx)
	if err != nil {
		u.log.Error("list todos failed", "error", err)
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return todos, nil
}

func (u *TodoUsecase) Create(ctx context.Context, in TodoInput) (model.Todo, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return model.Todo{}, err
	}

	t, err := u.todos.Create(ctx, model.Todo{Title: title})
	if err != nil {
		u.log.Error("create todo failed", "error", err)
		return model.Todo{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return t, nil
}

// 無いIDならそのIDで作成する
func (u *TodoUsecase) Update(ctx context.Context, id int64, in TodoInput) (model.Todo, error) {
	if id <= 0 {
		return model.Todo{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return model.Todo{}, err
	}

	t, err := u.todos.Save(ctx, model.Todo{ID: id, Title: title})
	if err != nil {
		u.log.Error("update todo failed", "todo_id", id, "error", err)
		return model.Todo{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return t, nil
}

// 無いIDでも成功
func (u *TodoUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.todos.DeleteByID(ctx, id); err != nil {
		u.log.Error("delete todo failed", "todo_id", id, "error", err)
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func normalizeTitle(s string) (string, error) {
	title := strings.TrimSpace(s)
	if title == "" || len(title) > 255 {
		return "", NewHTTPError(http.StatusBadRequest, "invalid title")
	}
	return title, nil
}
