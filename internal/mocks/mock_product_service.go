package mocks

import (
	"context"

	"github.com/you/shopsvc/domain"
)

// MockProductService implements domain.ProductService interface for testing
type MockProductService struct {
	CreateFunc        func(ctx context.Context, product *domain.Product) (uint, error)
	ListFunc          func(ctx context.Context) ([]domain.Product, error)
	GetByIDFunc       func(ctx context.Context, id uint) (*domain.Product, error)
	UpdateFunc        func(ctx context.Context, product *domain.Product) error
	DeleteFunc        func(ctx context.Context, id uint) error
	UploadImageFunc   func(ctx context.Context, image *domain.ProductImage) (uint, error)
	DownloadImageFunc func(ctx context.Context, id uint) (*domain.ProductImage, error)
}

// NewMockProductService creates a new MockProductService with default behaviors
func NewMockProductService() *MockProductService {
	return &MockProductService{}
}

func (m *MockProductService) Create(ctx context.Context, product *domain.Product) (uint, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return 1, nil
}

func (m *MockProductService) List(ctx context.Context) ([]domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Product{}, nil
}

func (m *MockProductService) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrProductNotFound
}

func (m *MockProductService) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	return nil
}

func (m *MockProductService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProductService) UploadImage(ctx context.Context, image *domain.ProductImage) (uint, error) {
	if m.UploadImageFunc != nil {
		return m.UploadImageFunc(ctx, image)
	}
	return 1, nil
}

func (m *MockProductService) DownloadImage(ctx context.Context, id uint) (*domain.ProductImage, error) {
	if m.DownloadImageFunc != nil {
		return m.DownloadImageFunc(ctx, id)
	}
	return nil, domain.ErrImageNotFound
}

// Compile-time interface compliance verification
var _ domain.ProductService = (*MockProductService)(nil)
