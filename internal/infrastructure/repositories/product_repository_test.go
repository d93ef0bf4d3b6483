package repositories

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/you/shopsvc/domain"
)

func newTestProduct() *domain.Product {
	return &domain.Product{
		Name:          "Canvas Sneaker",
		Description:   "Low-top canvas sneaker",
		Price:         49.99,
		StockQuantity: 120,
		Rating:        4.2,
		Size:          "42",
		Color:         "white",
		AITagging:     `{"style":"casual","season":"summer"}`,
		CategoryID:    3,
		BrandID:       7,
		SellerID:      11,
	}
}

func TestProductRepositoryImpl_CreateAndFind(t *testing.T) {
	repo := NewProductRepository(setupTestDB(t))
	ctx := context.Background()

	product := newTestProduct()
	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.ID == 0 {
		t.Fatal("expected generated ID to be backfilled")
	}

	found, err := repo.FindByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Name != "Canvas Sneaker" || found.Price != 49.99 {
		t.Errorf("unexpected product: %+v", found)
	}
	// Tagging text round-trips verbatim
	if found.AITagging != `{"style":"casual","season":"summer"}` {
		t.Errorf("expected tagging to round-trip, got %q", found.AITagging)
	}
}

func TestProductRepositoryImpl_FindAll(t *testing.T) {
	repo := NewProductRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, newTestProduct()); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	products, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(products) != 3 {
		t.Errorf("expected 3 products, got %d", len(products))
	}
}

func TestProductRepositoryImpl_FindMissing(t *testing.T) {
	repo := NewProductRepository(setupTestDB(t))

	if _, err := repo.FindByID(context.Background(), 404); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepositoryImpl_Update(t *testing.T) {
	repo := NewProductRepository(setupTestDB(t))
	ctx := context.Background()

	product := newTestProduct()
	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("create: %v", err)
	}

	product.Name = "Leather Boot"
	product.Price = 129.00
	product.StockQuantity = 0
	if err := repo.Update(ctx, product); err != nil {
		t.Fatalf("update: %v", err)
	}

	reloaded, err := repo.FindByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Name != "Leather Boot" || reloaded.Price != 129.00 || reloaded.StockQuantity != 0 {
		t.Errorf("expected full overwrite, got %+v", reloaded)
	}
}

func TestProductRepositoryImpl_UpdateMissingIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	existing := newTestProduct()
	if err := repo.Create(ctx, existing); err != nil {
		t.Fatalf("create: %v", err)
	}

	ghost := newTestProduct()
	ghost.ID = 9999
	ghost.Name = "Ghost Product"
	if err := repo.Update(ctx, ghost); err != nil {
		t.Fatalf("update missing: %v", err)
	}

	// Nothing changed
	reloaded, err := repo.FindByID(ctx, existing.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Name != "Canvas Sneaker" {
		t.Errorf("expected existing row untouched, got %q", reloaded.Name)
	}
	if _, err := repo.FindByID(ctx, 9999); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected no row created, got %v", err)
	}
}

func TestProductRepositoryImpl_DeleteIsIdempotent(t *testing.T) {
	repo := NewProductRepository(setupTestDB(t))
	ctx := context.Background()

	product := newTestProduct()
	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, product.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, product.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected product gone, got %v", err)
	}

	// Deleting again, or deleting an ID that never existed, does not error
	if err := repo.Delete(ctx, product.ID); err != nil {
		t.Errorf("expected idempotent delete, got %v", err)
	}
	if err := repo.Delete(ctx, 424242); err != nil {
		t.Errorf("expected delete of missing ID to succeed, got %v", err)
	}
}

func TestProductImageRepositoryImpl_RoundTrip(t *testing.T) {
	repo := NewProductImageRepository(setupTestDB(t))
	ctx := context.Background()

	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46}
	image := &domain.ProductImage{
		ProductID: 1,
		Color:     "white",
		Data:      payload,
		MimeType:  "image/jpeg",
	}
	if err := repo.Create(ctx, image); err != nil {
		t.Fatalf("create: %v", err)
	}
	if image.ID == 0 {
		t.Fatal("expected generated image ID")
	}

	found, err := repo.FindByID(ctx, image.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !bytes.Equal(found.Data, payload) {
		t.Error("expected byte-identical image data")
	}
	if found.MimeType != "image/jpeg" {
		t.Errorf("expected stored MIME type, got %q", found.MimeType)
	}
}

func TestProductImageRepositoryImpl_FindMissing(t *testing.T) {
	repo := NewProductImageRepository(setupTestDB(t))

	if _, err := repo.FindByID(context.Background(), 404); !errors.Is(err, domain.ErrImageNotFound) {
		t.Errorf("expected ErrImageNotFound, got %v", err)
	}
}
