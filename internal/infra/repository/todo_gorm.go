package repository

import (
	"context"
	"errors"

	"cartlab/internal/domain/model"
	repo "cartlab/internal/repository"

	"gorm.io/gorm"
)

type TodoGormRepository struct {
	db *gorm.DB
}

// DI
func NewTodoGormRepository(db *gorm.DB) *TodoGormRepository {
	return &TodoGormRepository{db: db}
}

// ID昇順で全件
func (r *TodoGormRepository) List(ctx context.Context) ([]model.Todo, error) {
	todos := []model.Todo{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *TodoGormRepository) FindByID(ctx context.Context, id int64) (model.Todo, error) {
	var t model.Todo
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Todo{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Todo{}, err
	}
	return t, nil
}

func (r *TodoGormRepository) Create(ctx context.Context, t model.Todo) (model.Todo, error) {
	t.ID = 0
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.Todo{}, err
	}
	return t, nil
}

// 既存ならtitleを更新、無ければ指定IDで作成
func (r *TodoGormRepository) Save(ctx context.Context, t model.Todo) (model.Todo, error) {
	var out model.Todo
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur model.Todo
		err := tx.First(&cur, t.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
			out = t
			return syncSequence(tx)
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&cur).Update("title", t.Title).Error; err != nil {
			return err
		}
		cur.Title = t.Title
		out = cur
		return nil
	})
	if err != nil {
		return model.Todo{}, err
	}
	return out, nil
}

func (r *TodoGormRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Todo{}, id).Error
}

// ID指定で作成した後、postgresの連番を最大IDに合わせる
func syncSequence(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SELECT setval(pg_get_serial_sequence('todos', 'id'), (SELECT MAX(id) FROM todos))").Error
}
