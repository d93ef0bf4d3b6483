package mocks

import (
	"context"

	"github.com/you/shopsvc/domain"
)

// MockProductRepository implements domain.ProductRepository interface for testing
type MockProductRepository struct {
	CreateFunc   func(ctx context.Context, product *domain.Product) error
	FindAllFunc  func(ctx context.Context) ([]domain.Product, error)
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Product, error)
	UpdateFunc   func(ctx context.Context, product *domain.Product) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

// NewMockProductRepository creates a new MockProductRepository with default behaviors
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// Create creates a new product
func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	// Default behavior: success with a generated ID
	product.ID = 1
	return nil
}

// FindAll returns all products
func (m *MockProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	// Default behavior: empty catalog
	return []domain.Product{}, nil
}

// FindByID finds a product by ID
func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrProductNotFound
}

// Update overwrites a product row
func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	// Default behavior: success
	return nil
}

// Delete removes a product row
func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ProductRepository = (*MockProductRepository)(nil)
