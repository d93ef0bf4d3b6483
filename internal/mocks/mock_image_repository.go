package mocks

import (
	"context"

	"github.com/you/shopsvc/domain"
)

// MockProductImageRepository implements domain.ProductImageRepository interface for testing
type MockProductImageRepository struct {
	CreateFunc   func(ctx context.Context, image *domain.ProductImage) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.ProductImage, error)
}

// NewMockProductImageRepository creates a new MockProductImageRepository with default behaviors
func NewMockProductImageRepository() *MockProductImageRepository {
	return &MockProductImageRepository{}
}

// Create stores an image row
func (m *MockProductImageRepository) Create(ctx context.Context, image *domain.ProductImage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, image)
	}
	// Default behavior: success with a generated ID
	image.ID = 1
	return nil
}

// FindByID finds an image by ID
func (m *MockProductImageRepository) FindByID(ctx context.Context, id uint) (*domain.ProductImage, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrImageNotFound
}

// Compile-time interface compliance verification
var _ domain.ProductImageRepository = (*MockProductImageRepository)(nil)
