package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/you/shopsvc/domain"
)

// ProductRepositoryImpl implements domain.ProductRepository using GORM
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// DBProduct represents the database model for Product
type DBProduct struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:255;not null"`
	Description   string
	Price         float64 `gorm:"type:decimal(10,2)"`
	StockQuantity int
	Rating        float64
	Size          string `gorm:"size:64"`
	Color         string `gorm:"size:64"`
	// Opaque serialized tagging text, stored verbatim
	AITagging  string `gorm:"column:ai_tagging"`
	CategoryID uint   `gorm:"index"`
	BrandID    uint   `gorm:"index"`
	SellerID   uint   `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBProduct) TableName() string {
	return "products"
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// Create implements domain.ProductRepository
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	dbProduct := r.domainToDB(product)
	if err := r.db.WithContext(ctx).Create(dbProduct).Error; err != nil {
		return err
	}
	product.ID = dbProduct.ID
	return nil
}

// FindAll implements domain.ProductRepository. No pagination, no scoping.
func (r *ProductRepositoryImpl) FindAll(ctx context.Context) ([]domain.Product, error) {
	var dbProducts []DBProduct
	if err := r.db.WithContext(ctx).Find(&dbProducts).Error; err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(dbProducts))
	for i := range dbProducts {
		products = append(products, *r.dbToDomain(&dbProducts[i]))
	}
	return products, nil
}

// FindByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var dbProduct DBProduct
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProduct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProduct), nil
}

// Update implements domain.ProductRepository. Full-row overwrite by ID; a
// missing row is a silent no-op.
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	dbProduct := r.domainToDB(product)
	return r.db.WithContext(ctx).Model(&DBProduct{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":           dbProduct.Name,
		"description":    dbProduct.Description,
		"price":          dbProduct.Price,
		"stock_quantity": dbProduct.StockQuantity,
		"rating":         dbProduct.Rating,
		"size":           dbProduct.Size,
		"color":          dbProduct.Color,
		"ai_tagging":     dbProduct.AITagging,
		"category_id":    dbProduct.CategoryID,
		"brand_id":       dbProduct.BrandID,
		"seller_id":      dbProduct.SellerID,
	}).Error
}

// Delete implements domain.ProductRepository. Idempotent by design of DELETE.
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBProduct{}).Error
}

func (r *ProductRepositoryImpl) domainToDB(product *domain.Product) *DBProduct {
	return &DBProduct{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		Rating:        product.Rating,
		Size:          product.Size,
		Color:         product.Color,
		AITagging:     product.AITagging,
		CategoryID:    product.CategoryID,
		BrandID:       product.BrandID,
		SellerID:      product.SellerID,
	}
}

func (r *ProductRepositoryImpl) dbToDomain(dbProduct *DBProduct) *domain.Product {
	return &domain.Product{
		ID:            dbProduct.ID,
		Name:          dbProduct.Name,
		Description:   dbProduct.Description,
		Price:         dbProduct.Price,
		StockQuantity: dbProduct.StockQuantity,
		Rating:        dbProduct.Rating,
		Size:          dbProduct.Size,
		Color:         dbProduct.Color,
		AITagging:     dbProduct.AITagging,
		CategoryID:    dbProduct.CategoryID,
		BrandID:       dbProduct.BrandID,
		SellerID:      dbProduct.SellerID,
	}
}
