package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/you/shopsvc/domain"
)

// ProductImageRepositoryImpl implements domain.ProductImageRepository using GORM
type ProductImageRepositoryImpl struct {
	db *gorm.DB
}

// DBProductImage stores the image bytes as a row, not a file
type DBProductImage struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"index"`
	Color     string `gorm:"size:64"`
	Data      []byte `gorm:"column:image_data"`
	MimeType  string `gorm:"size:128"`
}

// TableName returns the table name for GORM
func (DBProductImage) TableName() string {
	return "product_images"
}

// NewProductImageRepository creates a new product image repository
func NewProductImageRepository(db *gorm.DB) domain.ProductImageRepository {
	return &ProductImageRepositoryImpl{db: db}
}

// Create implements domain.ProductImageRepository
func (r *ProductImageRepositoryImpl) Create(ctx context.Context, image *domain.ProductImage) error {
	dbImage := &DBProductImage{
		ProductID: image.ProductID,
		Color:     image.Color,
		Data:      image.Data,
		MimeType:  image.MimeType,
	}
	if err := r.db.WithContext(ctx).Create(dbImage).Error; err != nil {
		return err
	}
	image.ID = dbImage.ID
	return nil
}

// FindByID implements domain.ProductImageRepository
func (r *ProductImageRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.ProductImage, error) {
	var dbImage DBProductImage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbImage).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrImageNotFound
		}
		return nil, err
	}
	return &domain.ProductImage{
		ID:        dbImage.ID,
		ProductID: dbImage.ProductID,
		Color:     dbImage.Color,
		Data:      dbImage.Data,
		MimeType:  dbImage.MimeType,
	}, nil
}
