package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sticker-shop/models"
	"sticker-shop/repositories"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// ProductStore is the storage collaborator behind the catalog endpoints.
type ProductStore interface {
	Find(ctx context.Context, filter models.ProductFilter) ([]models.Product, int, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int) error
}

type MediaStore interface {
	GetByID(ctx context.Context, id int) (*models.Media, error)
}

type ProductController struct {
	store ProductStore
	media MediaStore
	cache *redis.Client
}

// NewProductController wires the catalog handlers to their storage. The
// cache client may be nil; listing then always hits the database.
func NewProductController(store ProductStore, media MediaStore, cache *redis.Client) *ProductController {
	return &ProductController{store: store, media: media, cache: cache}
}

const cacheTTL = 5 * time.Minute

func (ctrl *ProductController) cached(c *gin.Context, key string) bool {
	if ctrl.cache == nil {
		return false
	}
	cached, err := ctrl.cache.Get(c.Request.Context(), key).Result()
	if err != nil {
		return false
	}
	c.Data(http.StatusOK, "application/json", []byte(cached))
	return true
}

func (ctrl *ProductController) storeCache(ctx context.Context, key string, payload interface{}) {
	if ctrl.cache == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	ctrl.cache.Set(ctx, key, string(data), cacheTTL)
}

func (ctrl *ProductController) invalidateCache(ctx context.Context) {
	if ctrl.cache == nil {
		return
	}
	iter := ctrl.cache.Scan(ctx, 0, "products:*", 0).Iterator()
	for iter.Next(ctx) {
		ctrl.cache.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("cache invalidation scan failed: %v", err)
	}
}

// @Summary List products
// @Description List all published products, optionally filtered by stock state and price range
// @Tags Products
// @Produce json
// @Param inStock query string false "Stock filter" Enums(true, false)
// @Param priceFrom query number false "Minimum price (inclusive)"
// @Param priceTo query number false "Maximum price (inclusive)"
// @Success 200 {object} models.ProductListResponse
// @Router /products/list [get]
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	cacheKey := "products:list:" + c.Request.URL.RawQuery
	if ctrl.cached(c, cacheKey) {
		return
	}

	filter := models.BuildProductFilter(models.FilterParams{
		InStock:   c.Query("inStock"),
		PriceFrom: c.Query("priceFrom"),
		PriceTo:   c.Query("priceTo"),
	})

	docs, total, err := ctrl.store.Find(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to list products"})
		return
	}

	response := models.ProductListResponse{Docs: docs, Total: total}
	ctrl.storeCache(c.Request.Context(), cacheKey, response)
	c.JSON(http.StatusOK, response)
}

// @Summary List products by category
// @Description List published products of one category, optionally filtered by stock state and price range
// @Tags Products
// @Produce json
// @Param type path string true "Product category" Enums(stickers, flavours, merch, frames)
// @Param inStock query string false "Stock filter" Enums(true, false)
// @Param priceFrom query number false "Minimum price (inclusive)"
// @Param priceTo query number false "Maximum price (inclusive)"
// @Success 200 {object} models.CategoryListResponse
// @Failure 404 {object} models.MessageResponse
// @Router /products/{type} [get]
func (ctrl *ProductController) ListProductsByType(c *gin.Context) {
	productType := c.Param("type")
	if !models.ValidProductType(productType) {
		c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Unknown product type"})
		return
	}

	cacheKey := fmt.Sprintf("products:type:%s:%s", productType, c.Request.URL.RawQuery)
	if ctrl.cached(c, cacheKey) {
		return
	}

	filter := models.BuildProductFilter(models.FilterParams{
		InStock:   c.Query("inStock"),
		PriceFrom: c.Query("priceFrom"),
		PriceTo:   c.Query("priceTo"),
	})
	filter.Type = productType

	docs, total, err := ctrl.store.Find(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to list products"})
		return
	}

	response := models.CategoryListResponse{Type: productType, Docs: docs, Total: total}
	ctrl.storeCache(c.Request.Context(), cacheKey, response)
	c.JSON(http.StatusOK, response)
}

// @Summary Get product by slug
// @Description Get a single published product by its URL slug
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.Product
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /products/i/{slug} [get]
func (ctrl *ProductController) GetProductBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Slug is required"})
		return
	}

	product, err := ctrl.store.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to get product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// MissingSlug answers requests to the slug route without a slug segment.
func (ctrl *ProductController) MissingSlug(c *gin.Context) {
	c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Slug is required"})
}

// @Summary Create product
// @Description Create a new product (Admin). An empty slug is generated from the name.
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param product body models.SaveProductRequest true "Product"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request body", Error: err.Error()})
		return
	}

	if req.Pricing == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Pricing is required"})
		return
	}

	product := models.Product{
		Type: models.TypeStickers,
		Name: strings.TrimSpace(req.Name),
	}
	if msg := ctrl.applyRequest(c.Request.Context(), &product, &req); msg != "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: msg})
		return
	}

	if err := ctrl.store.Create(c.Request.Context(), &product); err != nil {
		if errors.Is(err, repositories.ErrSlugTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to create product"})
		return
	}

	ctrl.invalidateCache(c.Request.Context())
	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Product created successfully", Data: product})
}

// @Summary Update product
// @Description Update a product (Admin). Clearing the slug regenerates it from the name.
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.SaveProductRequest true "Product"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return
	}

	product, err := ctrl.store.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	var req models.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request body", Error: err.Error()})
		return
	}

	if req.Name != "" {
		product.Name = strings.TrimSpace(req.Name)
	}
	if msg := ctrl.applyRequest(c.Request.Context(), product, &req); msg != "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: msg})
		return
	}

	if err := ctrl.store.Update(c.Request.Context(), product); err != nil {
		if errors.Is(err, repositories.ErrSlugTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: "Slug already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update product"})
		return
	}

	ctrl.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product updated successfully", Data: product})
}

// @Summary Delete product
// @Description Delete a product permanently (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return
	}

	if err := ctrl.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to delete product"})
		return
	}

	ctrl.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product deleted permanently"})
}

// applyRequest merges a write request into the draft and validates it.
// It returns a user-facing message on invalid input, empty on success.
func (ctrl *ProductController) applyRequest(ctx context.Context, product *models.Product, req *models.SaveProductRequest) string {
	if req.Type != "" {
		if !models.ValidProductType(req.Type) {
			return "Unknown product type"
		}
		product.Type = req.Type
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if product.Name == "" {
		return "Name is required"
	}
	if req.Slug != nil {
		product.Slug = strings.TrimSpace(*req.Slug)
	}
	if req.Pricing != nil {
		product.Pricing = *req.Pricing
	}
	if product.Pricing.Price.IsNegative() {
		return "Price must not be negative"
	}
	if product.Pricing.OldPrice != nil && product.Pricing.OldPrice.IsNegative() {
		return "Old price must not be negative"
	}
	if req.Characteristics != nil {
		product.Characteristics = req.Characteristics
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.SeoText != "" {
		product.SeoText = req.SeoText
	}
	if req.SEO != nil {
		product.SEO = *req.SEO
	}

	if req.MainImageID != 0 {
		media, err := ctrl.media.GetByID(ctx, req.MainImageID)
		if err != nil {
			return "Main image not found"
		}
		product.MainImage = media
	}
	if product.MainImage == nil {
		return "Main image is required"
	}

	if req.GalleryIDs != nil {
		gallery := make([]models.Media, 0, len(req.GalleryIDs))
		for _, mediaID := range req.GalleryIDs {
			media, err := ctrl.media.GetByID(ctx, mediaID)
			if err != nil {
				return "Gallery image not found"
			}
			gallery = append(gallery, *media)
		}
		product.Gallery = gallery
	}

	return ""
}
