package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/you/shopsvc/domain"
	"github.com/you/shopsvc/internal/mocks"
)

func TestProductHandlers_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockProductService)
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name: "product created",
			body: `{"Name":"Sneaker","Description":"Running shoe","Price":199.9,"Stock_Quantity":10,"Rating":4.5,"Size":"42","Color":"white","AI_Tagging":{"tags":["sport"]},"Category_ID":2,"Brand_ID":3,"Seller_ID":4}`,
			setupMocks: func(productSvc *mocks.MockProductService) {
				productSvc.CreateFunc = func(ctx context.Context, product *domain.Product) (uint, error) {
					if product.Name != "Sneaker" {
						t.Errorf("expected name forwarded, got %q", product.Name)
					}
					if product.AITagging != `{"tags":["sport"]}` {
						t.Errorf("expected tagging serialized verbatim, got %q", product.AITagging)
					}
					return 42, nil
				}
			},
			expectedStatus: http.StatusCreated,
			expectedBody: map[string]interface{}{
				"message":   "Product created",
				"productId": float64(42),
			},
		},
		{
			name: "storage failure surfaces the driver message",
			body: `{"Name":"Sneaker","Price":199.9}`,
			setupMocks: func(productSvc *mocks.MockProductService) {
				productSvc.CreateFunc = func(ctx context.Context, product *domain.Product) (uint, error) {
					return 0, errors.New(`null value in column "seller_id" violates not-null constraint`)
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: map[string]interface{}{
				"error": `null value in column "seller_id" violates not-null constraint`,
			},
		},
		{
			name:           "malformed body",
			body:           `{"Name":`,
			setupMocks:     func(productSvc *mocks.MockProductService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productSvc := mocks.NewMockProductService()
			tt.setupMocks(productSvc)

			handler := NewProductHandlers(productSvc)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.Create(c)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			assertBodyContains(t, w, tt.expectedBody)
		})
	}
}

func TestProductHandlers_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	productSvc := mocks.NewMockProductService()
	productSvc.ListFunc = func(ctx context.Context) ([]domain.Product, error) {
		return []domain.Product{
			{ID: 1, Name: "Sneaker", Price: 199.9, AITagging: `{"tags":["sport"]}`},
			{ID: 2, Name: "Boot", Price: 349.0},
		}, nil
	}

	handler := NewProductHandlers(productSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/products", nil)

	handler.List(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body []ProductResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 products, got %d", len(body))
	}
	if body[0].ID != 1 || body[0].Name != "Sneaker" {
		t.Errorf("unexpected first product: %+v", body[0])
	}
	if body[0].AITagging != `{"tags":["sport"]}` {
		t.Errorf("expected tagging as stored text, got %q", body[0].AITagging)
	}
}

func TestProductHandlers_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		id             string
		setupMocks     func(*mocks.MockProductService)
		expectedStatus int
	}{
		{
			name: "found",
			id:   "7",
			setupMocks: func(productSvc *mocks.MockProductService) {
				productSvc.GetByIDFunc = func(ctx context.Context, id uint) (*domain.Product, error) {
					if id != 7 {
						t.Errorf("expected id 7, got %d", id)
					}
					return &domain.Product{ID: 7, Name: "Sneaker"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing",
			id:   "999",
			setupMocks: func(productSvc *mocks.MockProductService) {
				productSvc.GetByIDFunc = func(ctx context.Context, id uint) (*domain.Product, error) {
					return nil, domain.ErrProductNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non numeric id",
			id:             "abc",
			setupMocks:     func(productSvc *mocks.MockProductService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productSvc := mocks.NewMockProductService()
			tt.setupMocks(productSvc)

			handler := NewProductHandlers(productSvc)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/products/"+tt.id, nil)
			c.Params = gin.Params{{Key: "id", Value: tt.id}}

			handler.Get(c)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestProductHandlers_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	productSvc := mocks.NewMockProductService()
	var updated *domain.Product
	productSvc.UpdateFunc = func(ctx context.Context, product *domain.Product) error {
		updated = product
		return nil
	}

	handler := NewProductHandlers(productSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/products/5", bytes.NewBufferString(`{"Name":"Renamed","Price":99.0}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	handler.Update(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if updated == nil || updated.ID != 5 || updated.Name != "Renamed" {
		t.Errorf("unexpected update payload: %+v", updated)
	}
	assertBodyContains(t, w, map[string]interface{}{"message": "Product updated"})
}

func TestProductHandlers_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	productSvc := mocks.NewMockProductService()
	var deletedID uint
	productSvc.DeleteFunc = func(ctx context.Context, id uint) error {
		deletedID = id
		return nil
	}

	handler := NewProductHandlers(productSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/products/9", nil)
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	handler.Delete(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if deletedID != 9 {
		t.Errorf("expected id 9 deleted, got %d", deletedID)
	}
	assertBodyContains(t, w, map[string]interface{}{"message": "Product deleted"})
}

func TestProductHandlers_UploadImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		fields         map[string]string
		withFile       bool
		setupMocks     func(*mocks.MockProductService)
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name:     "image stored with declared mime type",
			fields:   map[string]string{"Product_ID": "7", "Color": "white"},
			withFile: true,
			setupMocks: func(productSvc *mocks.MockProductService) {
				productSvc.UploadImageFunc = func(ctx context.Context, image *domain.ProductImage) (uint, error) {
					if image.ProductID != 7 {
						t.Errorf("expected product 7, got %d", image.ProductID)
					}
					if image.Color != "white" {
						t.Errorf("expected color 'white', got %q", image.Color)
					}
					if image.MimeType != "image/png" {
						t.Errorf("expected mime image/png, got %q", image.MimeType)
					}
					if !bytes.Equal(image.Data, []byte("fake-png-bytes")) {
						t.Errorf("image bytes altered in transit")
					}
					return 11, nil
				}
			},
			expectedStatus: http.StatusCreated,
			expectedBody: map[string]interface{}{
				"message": "Image uploaded",
				"imageId": float64(11),
			},
		},
		{
			name:           "missing file part",
			fields:         map[string]string{"Product_ID": "7"},
			withFile:       false,
			setupMocks:     func(productSvc *mocks.MockProductService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non numeric product id",
			fields:         map[string]string{"Product_ID": "abc"},
			withFile:       true,
			setupMocks:     func(productSvc *mocks.MockProductService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productSvc := mocks.NewMockProductService()
			tt.setupMocks(productSvc)

			handler := NewProductHandlers(productSvc)

			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			for k, v := range tt.fields {
				mw.WriteField(k, v)
			}
			if tt.withFile {
				hdr := make(map[string][]string)
				hdr["Content-Disposition"] = []string{`form-data; name="image"; filename="shoe.png"`}
				hdr["Content-Type"] = []string{"image/png"}
				part, err := mw.CreatePart(hdr)
				if err != nil {
					t.Fatalf("create part: %v", err)
				}
				part.Write([]byte("fake-png-bytes"))
			}
			mw.Close()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/products/upload-image", &buf)
			c.Request.Header.Set("Content-Type", mw.FormDataContentType())

			handler.UploadImage(c)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			assertBodyContains(t, w, tt.expectedBody)
		})
	}
}

func TestProductHandlers_DownloadImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("streams stored bytes and content type", func(t *testing.T) {
		productSvc := mocks.NewMockProductService()
		productSvc.DownloadImageFunc = func(ctx context.Context, id uint) (*domain.ProductImage, error) {
			return &domain.ProductImage{
				ID:       3,
				Data:     []byte("fake-png-bytes"),
				MimeType: "image/png",
			}, nil
		}

		handler := NewProductHandlers(productSvc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/products/image/3", nil)
		c.Params = gin.Params{{Key: "id", Value: "3"}}

		handler.DownloadImage(c)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("expected Content-Type image/png, got %q", ct)
		}
		if !bytes.Equal(w.Body.Bytes(), []byte("fake-png-bytes")) {
			t.Errorf("image bytes altered in transit")
		}
	})

	t.Run("missing image", func(t *testing.T) {
		productSvc := mocks.NewMockProductService()
		productSvc.DownloadImageFunc = func(ctx context.Context, id uint) (*domain.ProductImage, error) {
			return nil, domain.ErrImageNotFound
		}

		handler := NewProductHandlers(productSvc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/products/image/999", nil)
		c.Params = gin.Params{{Key: "id", Value: "999"}}

		handler.DownloadImage(c)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}
