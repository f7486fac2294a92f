package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the uniform CRUD surface shared by every entity repository.
// Reads go straight to the database; writes (Add, Update, Delete) are staged
// and applied together by SaveChanges inside a single transaction, so a unit
// of work either commits completely or not at all.
type Repository[T any] interface {
	// GetByID returns the stored entity, or (nil, nil) when no row matches.
	GetByID(ctx context.Context, id uint) (*T, error)
	// GetAll returns every row, unfiltered and unpaginated.
	GetAll(ctx context.Context) ([]T, error)
	// Add stages an insert.
	Add(entity *T)
	// Update stages a full-row save. Last writer wins.
	Update(entity *T)
	// Delete stages a delete-if-exists. A missing row is a no-op.
	Delete(id uint)
	// SaveChanges applies all staged operations. Storage errors propagate
	// untranslated; the staged queue is kept so a retry is possible.
	SaveChanges(ctx context.Context) error
}

// GormRepository implements Repository on top of GORM.
type GormRepository[T any] struct {
	db      *gorm.DB
	pending []func(tx *gorm.DB) error
}

func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

func (r *GormRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *GormRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *GormRepository[T]) Add(entity *T) {
	r.stage(func(tx *gorm.DB) error {
		return tx.Create(entity).Error
	})
}

func (r *GormRepository[T]) Update(entity *T) {
	r.stage(func(tx *gorm.DB) error {
		return tx.Save(entity).Error
	})
}

func (r *GormRepository[T]) Delete(id uint) {
	r.stage(func(tx *gorm.DB) error {
		var entity T
		err := tx.First(&entity, id).Error
		if err == gorm.ErrRecordNotFound {
			// Deleting a row that is already gone is not an error.
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Delete(&entity).Error
	})
}

func (r *GormRepository[T]) SaveChanges(ctx context.Context) error {
	if len(r.pending) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range r.pending {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.pending = nil
	return nil
}

func (r *GormRepository[T]) stage(op func(tx *gorm.DB) error) {
	r.pending = append(r.pending, op)
}
