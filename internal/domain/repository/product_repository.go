package repository

import (
	"context"

	"campuscart/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, category string, limit, offset int) ([]*entity.Product, int64, error)
	SearchByName(ctx context.Context, query string, limit, offset int) ([]*entity.Product, int64, error)
	ListByDonor(ctx context.Context, donorID string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
