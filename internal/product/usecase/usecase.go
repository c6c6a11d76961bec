package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-scm-service/internal/auth"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/product"
	"github.com/fekuna/omnipos-scm-service/internal/product/dto"
	"go.uber.org/zap"
)

var (
	errSKURequired     = fmt.Errorf("%w: sku is required", model.ErrValidation)
	errNameRequired    = fmt.Errorf("%w: name is required", model.ErrValidation)
	errNegativeReorder = fmt.Errorf("%w: threshold must not be negative", model.ErrValidation)
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	p := &model.Product{
		SKU:         model.NormalizeSKU(input.SKU),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Threshold:   input.Threshold,
	}
	if err := validate(p); err != nil {
		return nil, err
	}

	unique, err := uc.repo.IsSKUUnique(ctx, p.SKU)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, model.ErrSKUExists
	}

	if err := uc.repo.Create(ctx, p, auth.ActorID(ctx)); err != nil {
		return nil, err
	}
	uc.logger.Info("product created", zap.String("sku", p.SKU))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, sku string) (*model.Product, error) {
	p, err := uc.repo.FindBySKU(ctx, model.NormalizeSKU(sku))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.ErrProductNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p := &model.Product{
		SKU:         model.NormalizeSKU(input.SKU),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Threshold:   input.Threshold,
	}
	if err := validate(p); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, p, auth.ActorID(ctx)); err != nil {
		return nil, err
	}
	uc.logger.Info("product updated", zap.String("sku", p.SKU), zap.Int("threshold", p.Threshold))
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, sku string) error {
	sku = model.NormalizeSKU(sku)
	if err := uc.repo.Delete(ctx, sku, auth.ActorID(ctx)); err != nil {
		if !errors.Is(err, model.ErrProductNotFound) {
			uc.logger.Error("failed to delete product", zap.String("sku", sku), zap.Error(err))
		}
		return err
	}
	uc.logger.Info("product deleted", zap.String("sku", sku))
	return nil
}

func validate(p *model.Product) error {
	switch {
	case p.SKU == "":
		return errSKURequired
	case p.Name == "":
		return errNameRequired
	case p.Threshold < 0:
		return errNegativeReorder
	}
	return nil
}
