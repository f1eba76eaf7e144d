package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sticker-shop/models"
	"sticker-shop/repositories"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock store ---

// mockProductStore applies ProductFilter in memory the way the Postgres
// repository does, including the implied active gate.
type mockProductStore struct {
	products []models.Product
	err      error

	lastFilter models.ProductFilter
	lastSlug   string
}

func (m *mockProductStore) Find(_ context.Context, filter models.ProductFilter) ([]models.Product, int, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, 0, m.err
	}

	matched := []models.Product{}
	for _, p := range m.products {
		if !p.Active || filter.Unsatisfiable {
			continue
		}
		if filter.InStock != nil && p.InStock != *filter.InStock {
			continue
		}
		if filter.PriceFrom != nil && p.Pricing.Price.LessThan(*filter.PriceFrom) {
			continue
		}
		if filter.PriceTo != nil && p.Pricing.Price.GreaterThan(*filter.PriceTo) {
			continue
		}
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		matched = append(matched, p)
	}
	return matched, len(matched), nil
}

func (m *mockProductStore) GetBySlug(_ context.Context, slug string) (*models.Product, error) {
	m.lastSlug = slug
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.Slug == slug && p.Active {
			product := p
			return &product, nil
		}
	}
	return nil, repositories.ErrProductNotFound
}

func (m *mockProductStore) GetByID(_ context.Context, id int) (*models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, repositories.ErrProductNotFound
}

func (m *mockProductStore) Create(_ context.Context, p *models.Product) error { return m.err }
func (m *mockProductStore) Update(_ context.Context, p *models.Product) error { return m.err }
func (m *mockProductStore) Delete(_ context.Context, id int) error            { return m.err }

type mockMediaStore struct{}

func (m *mockMediaStore) GetByID(_ context.Context, id int) (*models.Media, error) {
	return &models.Media{ID: id, Alt: "alt"}, nil
}

// --- Helpers ---

func newTestProduct(id int, productType, name, slug string, active, inStock bool, price float64) models.Product {
	return models.Product{
		ID:      id,
		Type:    productType,
		Active:  active,
		InStock: inStock,
		Name:    name,
		Slug:    slug,
		Pricing: models.Pricing{Price: decimal.NewFromFloat(price)},
	}
}

func newTestRouter(store *mockProductStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewProductController(store, &mockMediaStore{}, nil)

	router := gin.New()
	router.GET("/products/list", ctrl.ListProducts)
	router.GET("/products/i/:slug", ctrl.GetProductBySlug)
	router.GET("/products/i", ctrl.MissingSlug)
	router.GET("/products/i/", ctrl.MissingSlug)
	router.GET("/products/:type", ctrl.ListProductsByType)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func catalogFixture() []models.Product {
	return []models.Product{
		newTestProduct(1, models.TypeStickers, "Стикер №1", "stiker-1", true, true, 100),
		newTestProduct(2, models.TypeStickers, "Стикер №2", "stiker-2", true, false, 250),
		newTestProduct(3, models.TypeMerch, "Футболка", "futbolka", true, true, 1500),
		newTestProduct(4, models.TypeFrames, "Рамка", "ramka", false, true, 500),
		newTestProduct(5, models.TypeFlavours, "Ароматизатор", "aromatizator", true, false, 80),
	}
}

// --- List-all ---

func TestListProducts(t *testing.T) {
	router := newTestRouter(&mockProductStore{products: catalogFixture()})

	rec := doRequest(t, router, "/products/list")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProductListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 4, resp.Total)
	assert.Len(t, resp.Docs, 4)
}

func TestListProductsNeverReturnsInactive(t *testing.T) {
	router := newTestRouter(&mockProductStore{products: catalogFixture()})

	urls := []string{
		"/products/list",
		"/products/list?inStock=true",
		"/products/list?inStock=false",
		"/products/list?priceFrom=0&priceTo=100000",
		"/products/frames",
		"/products/frames?inStock=true",
	}
	for _, url := range urls {
		rec := doRequest(t, router, url)
		require.Equal(t, http.StatusOK, rec.Code, url)

		var resp struct {
			Docs []models.Product `json:"docs"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp), url)
		for _, doc := range resp.Docs {
			assert.True(t, doc.Active, "inactive product leaked via %s", url)
		}
	}
}

func TestListProductsStockFilter(t *testing.T) {
	store := &mockProductStore{products: catalogFixture()}
	router := newTestRouter(store)

	rec := doRequest(t, router, "/products/list?inStock=true")
	var resp models.ProductListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Total)

	rec = doRequest(t, router, "/products/list?inStock=false")
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Total)
}

func TestListProductsInvalidStockValueIsIgnored(t *testing.T) {
	router := newTestRouter(&mockProductStore{products: catalogFixture()})

	withJunk := doRequest(t, router, "/products/list?inStock=maybe")
	omitted := doRequest(t, router, "/products/list")

	require.Equal(t, http.StatusOK, withJunk.Code)
	assert.JSONEq(t, omitted.Body.String(), withJunk.Body.String())
}

func TestListProductsPriceBoundsInclusive(t *testing.T) {
	store := &mockProductStore{products: []models.Product{
		newTestProduct(1, models.TypeStickers, "Товар", "tovar", true, true, 100),
	}}
	router := newTestRouter(store)

	cases := []struct {
		url  string
		want int
	}{
		{"/products/list?priceFrom=100", 1},
		{"/products/list?priceFrom=101", 0},
		{"/products/list?priceTo=100", 1},
		{"/products/list?priceTo=99", 0},
		{"/products/list?priceFrom=100&priceTo=100", 1},
	}
	for _, tc := range cases {
		rec := doRequest(t, router, tc.url)
		require.Equal(t, http.StatusOK, rec.Code, tc.url)

		var resp models.ProductListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp), tc.url)
		assert.Equal(t, tc.want, resp.Total, tc.url)
	}
}

func TestListProductsMalformedPriceMatchesNothing(t *testing.T) {
	router := newTestRouter(&mockProductStore{products: catalogFixture()})

	rec := doRequest(t, router, "/products/list?priceFrom=abc")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProductListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Docs)
}

// --- List-by-category ---

func TestListProductsByType(t *testing.T) {
	router := newTestRouter(&mockProductStore{products: catalogFixture()})

	rec := doRequest(t, router, "/products/stickers")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CategoryListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "stickers", resp.Type)
	assert.Equal(t, 2, resp.Total)
}

func TestListProductsByTypeUnknownCategory(t *testing.T) {
	store := &mockProductStore{products: catalogFixture()}
	router := newTestRouter(store)

	rec := doRequest(t, router, "/products/unknown-type")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Message)
	// the filter must never have been built for an invalid category
	assert.Empty(t, store.lastFilter.Type)
}

func TestListProductsByTypeEmptyCategoryIsOK(t *testing.T) {
	router := newTestRouter(&mockProductStore{products: []models.Product{
		newTestProduct(1, models.TypeStickers, "Стикер", "stiker", true, true, 100),
	}})

	rec := doRequest(t, router, "/products/merch")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CategoryListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "merch", resp.Type)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Docs)
}

// --- Fetch-by-slug ---

func TestGetProductBySlug(t *testing.T) {
	router := newTestRouter(&mockProductStore{products: catalogFixture()})

	rec := doRequest(t, router, "/products/i/stiker-2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "stiker-2", resp.Slug)
	assert.Equal(t, "Стикер №2", resp.Name)
}

func TestGetProductBySlugInactiveIsNotFound(t *testing.T) {
	router := newTestRouter(&mockProductStore{products: catalogFixture()})

	// slug "ramka" exists but the product is not published
	rec := doRequest(t, router, "/products/i/ramka")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Message)
}

func TestGetProductBySlugUnknownIsNotFound(t *testing.T) {
	router := newTestRouter(&mockProductStore{products: catalogFixture()})

	rec := doRequest(t, router, "/products/i/no-such-slug")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductBySlugMissingSegment(t *testing.T) {
	router := newTestRouter(&mockProductStore{products: catalogFixture()})

	// Both forms answer 400 themselves rather than redirecting.
	for _, url := range []string{"/products/i", "/products/i/"} {
		rec := doRequest(t, router, url)
		require.Equal(t, http.StatusBadRequest, rec.Code, url)

		var resp models.MessageResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp), url)
		assert.NotEmpty(t, resp.Message, url)
	}
}

// --- Cache ---

func TestInvalidateCacheReportsScanFailure(t *testing.T) {
	cache := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	ctrl := NewProductController(&mockProductStore{}, &mockMediaStore{}, cache)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	ctrl.invalidateCache(context.Background())
	assert.Contains(t, buf.String(), "cache invalidation scan failed")
}
