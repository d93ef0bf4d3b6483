package services

import (
	"context"
	"fmt"

	"github.com/you/shopsvc/domain"
)

// ProductServiceImpl implements domain.ProductService
type ProductServiceImpl struct {
	productRepo domain.ProductRepository
	imageRepo   domain.ProductImageRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo domain.ProductRepository, imageRepo domain.ProductImageRepository) domain.ProductService {
	return &ProductServiceImpl{
		productRepo: productRepo,
		imageRepo:   imageRepo,
	}
}

// Create implements domain.ProductService
func (s *ProductServiceImpl) Create(ctx context.Context, product *domain.Product) (uint, error) {
	if err := s.productRepo.Create(ctx, product); err != nil {
		return 0, err
	}
	return product.ID, nil
}

// List implements domain.ProductService. All rows, unfiltered.
func (s *ProductServiceImpl) List(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.FindAll(ctx)
}

// GetByID implements domain.ProductService
func (s *ProductServiceImpl) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// Update implements domain.ProductService. Overwrites the full row; a missing
// ID is a silent no-op.
func (s *ProductServiceImpl) Update(ctx context.Context, product *domain.Product) error {
	return s.productRepo.Update(ctx, product)
}

// Delete implements domain.ProductService
func (s *ProductServiceImpl) Delete(ctx context.Context, id uint) error {
	return s.productRepo.Delete(ctx, id)
}

// UploadImage implements domain.ProductService. Bytes and declared MIME type
// are stored verbatim.
func (s *ProductServiceImpl) UploadImage(ctx context.Context, image *domain.ProductImage) (uint, error) {
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return 0, fmt.Errorf("failed to store image: %w", err)
	}
	return image.ID, nil
}

// DownloadImage implements domain.ProductService
func (s *ProductServiceImpl) DownloadImage(ctx context.Context, id uint) (*domain.ProductImage, error) {
	return s.imageRepo.FindByID(ctx, id)
}
