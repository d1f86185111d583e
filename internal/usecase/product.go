package usecase

import (
	"context"

	"go-scales-backend/internal/domain"
)

type productUsecase struct {
	repo domain.ProductRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(repo domain.ProductRepository) domain.ProductUsecase {
	return &productUsecase{repo: repo}
}

func (uc *productUsecase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return uc.repo.ListAll(ctx), nil
}

func (uc *productUsecase) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	p, ok := uc.repo.FindBySlug(ctx, slug)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (uc *productUsecase) ListCategories(ctx context.Context) ([]string, error) {
	return uc.repo.Categories(ctx), nil
}
