package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/shopsvc/domain"
)

// ProductHandlers handles catalog HTTP requests. The same handlers back both
// the products and the sellers route groups.
type ProductHandlers struct {
	productSvc domain.ProductService
}

// NewProductHandlers creates new product handlers
func NewProductHandlers(productSvc domain.ProductService) *ProductHandlers {
	return &ProductHandlers{productSvc: productSvc}
}

// ProductRequest mirrors the catalog wire format. AITagging accepts any JSON
// value and is stored as serialized text.
type ProductRequest struct {
	Name          string          `json:"Name"`
	Description   string          `json:"Description"`
	Price         float64         `json:"Price"`
	StockQuantity int             `json:"Stock_Quantity"`
	Rating        float64         `json:"Rating"`
	Size          string          `json:"Size"`
	Color         string          `json:"Color"`
	AITagging     json.RawMessage `json:"AI_Tagging"`
	CategoryID    uint            `json:"Category_ID"`
	BrandID       uint            `json:"Brand_ID"`
	SellerID      uint            `json:"Seller_ID"`
}

// ProductResponse is the outbound catalog representation
type ProductResponse struct {
	ID            uint    `json:"Product_ID"`
	Name          string  `json:"Name"`
	Description   string  `json:"Description"`
	Price         float64 `json:"Price"`
	StockQuantity int     `json:"Stock_Quantity"`
	Rating        float64 `json:"Rating"`
	Size          string  `json:"Size"`
	Color         string  `json:"Color"`
	AITagging     string  `json:"AI_Tagging"`
	CategoryID    uint    `json:"Category_ID"`
	BrandID       uint    `json:"Brand_ID"`
	SellerID      uint    `json:"Seller_ID"`
}

func (r *ProductRequest) toDomain() *domain.Product {
	return &domain.Product{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		Rating:        r.Rating,
		Size:          r.Size,
		Color:         r.Color,
		AITagging:     string(r.AITagging),
		CategoryID:    r.CategoryID,
		BrandID:       r.BrandID,
		SellerID:      r.SellerID,
	}
}

func toResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Rating:        p.Rating,
		Size:          p.Size,
		Color:         p.Color,
		AITagging:     p.AITagging,
		CategoryID:    p.CategoryID,
		BrandID:       p.BrandID,
		SellerID:      p.SellerID,
	}
}

// Create handles product creation
func (h *ProductHandlers) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.productSvc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		// Driver message surfaced as-is
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "productId": id})
}

// List handles the unfiltered catalog listing
func (h *ProductHandlers) List(c *gin.Context) {
	products, err := h.productSvc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toResponse(&products[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// Get handles a single product lookup
func (h *ProductHandlers) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.productSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toResponse(product))
}

// Update handles a full-row product overwrite. A missing ID is a no-op.
func (h *ProductHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := req.toDomain()
	product.ID = id
	if err := h.productSvc.Update(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// Delete handles product deletion. Deleting a missing ID succeeds.
func (h *ProductHandlers) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.productSvc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// UploadImage stores the multipart image bytes and declared MIME type verbatim
func (h *ProductHandlers) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	productID, err := strconv.ParseUint(c.PostForm("Product_ID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product_ID must be numeric"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	image := &domain.ProductImage{
		ProductID: uint(productID),
		Color:     c.PostForm("Color"),
		Data:      data,
		MimeType:  fileHeader.Header.Get("Content-Type"),
	}

	id, err := h.productSvc.UploadImage(c.Request.Context(), image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Image uploaded", "imageId": id})
}

// DownloadImage streams stored image bytes with the stored content type
func (h *ProductHandlers) DownloadImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	image, err := h.productSvc.DownloadImage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, image.MimeType, image.Data)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be numeric"})
		return 0, false
	}
	return uint(id), true
}
