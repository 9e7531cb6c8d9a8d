package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/javajoker/product-catalog/internal/config"
	"github.com/javajoker/product-catalog/internal/database"
	"github.com/javajoker/product-catalog/internal/i18n"
	"github.com/javajoker/product-catalog/internal/middleware"
	"github.com/javajoker/product-catalog/internal/models"
	"github.com/javajoker/product-catalog/internal/router"
	"github.com/javajoker/product-catalog/internal/utils"
)

type ProductAPITestSuite struct {
	suite.Suite
	db      *gorm.DB
	router  *gin.Engine
	limiter *middleware.RateLimiter
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			Path:         ":memory:",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			LogLevel:     "silent",
		},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
		I18n:      config.I18nConfig{DefaultLocale: "en"},
	}
}

func (suite *ProductAPITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(i18n.Initialize("en"))
}

func (suite *ProductAPITestSuite) SetupTest() {
	cfg := testConfig()

	db, err := database.Initialize(cfg.Database)
	suite.Require().NoError(err)
	suite.Require().NoError(database.RunMigrations(db))

	logger, _ := logtest.NewNullLogger()
	suite.db = db
	suite.router, suite.limiter = router.Initialize(db, cfg, logger)
}

func (suite *ProductAPITestSuite) TearDownTest() {
	suite.limiter.Stop()
	database.Close(suite.db)
}

func (suite *ProductAPITestSuite) request(method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		suite.Require().NoError(json.NewEncoder(&buf).Encode(b))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProductAPITestSuite) createProduct(name, description string, price float64) models.Product {
	w := suite.request(http.MethodPost, "/api/products", map[string]interface{}{
		"name":        name,
		"description": description,
		"price":       price,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var product models.Product
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &product))
	return product
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.APIError {
	var response utils.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	if response.Error == nil {
		t.Fatalf("expected error body, got %s", w.Body.String())
	}
	return *response.Error
}

func (suite *ProductAPITestSuite) TestCreateProduct() {
	w := suite.request(http.MethodPost, "/api/products",
		`{"id": 99, "name": "Widget", "description": "A widget", "price": 9.99}`)

	suite.Equal(http.StatusCreated, w.Code)

	var product models.Product
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &product))
	suite.True(product.IsPersisted())
	suite.NotEqual(uint64(99), product.ID, "client supplied ids are ignored")
	suite.Equal("/api/products/"+strconv.FormatUint(product.ID, 10), w.Header().Get("Location"))
	suite.True(product.ToDTO().Equal(models.NewProductDTO("Widget", "A widget", decimal.RequireFromString("9.99"))))
	suite.JSONEq(`{"id":`+strconv.FormatUint(product.ID, 10)+`,"name":"Widget","description":"A widget","price":9.99}`, w.Body.String())
}

func (suite *ProductAPITestSuite) TestCreateProductMalformedBody() {
	for _, body := range []string{``, `{"name": `, `{"name":"Widget","price":"cheap"}`} {
		w := suite.request(http.MethodPost, "/api/products", body)

		suite.Equal(http.StatusBadRequest, w.Code, "body %q", body)
		suite.Equal("BAD_REQUEST", decodeError(suite.T(), w).Code)
	}
}

func (suite *ProductAPITestSuite) TestMalformedBodyMessageIsLocalised() {
	w := suite.request(http.MethodPost, "/api/products", `{"name": `, "Accept-Language", "pt-BR")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Dados de entrada inválidos", decodeError(suite.T(), w).Message)
}

func (suite *ProductAPITestSuite) TestListProducts() {
	first := suite.createProduct("Caneca", "Caneca de cerâmica", 25)
	second := suite.createProduct("Mouse", "Mouse sem fio", 89.9)

	w := suite.request(http.MethodGet, "/api/products", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("2", w.Header().Get("X-Total-Count"))

	var products []models.Product
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &products))
	suite.Require().Len(products, 2)
	suite.True(first.Equal(products[0]))
	suite.True(second.Equal(products[1]))
}

func (suite *ProductAPITestSuite) TestListProductsEmptyIsArray() {
	w := suite.request(http.MethodGet, "/api/products", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *ProductAPITestSuite) TestListProductsFilters() {
	suite.createProduct("Mouse", "Mouse sem fio", 89.9)
	suite.createProduct("Teclado", "Teclado mecânico", 249.9)
	suite.createProduct("Mousepad", "Tapete", 30)

	w := suite.request(http.MethodGet, "/api/products?search=mouse&price_max=50", nil)
	suite.Equal(http.StatusOK, w.Code)

	var products []models.Product
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &products))
	suite.Require().Len(products, 1)
	suite.Equal("Mousepad", products[0].Name)
}

func (suite *ProductAPITestSuite) TestListProductsRejectsMalformedPriceFilter() {
	suite.createProduct("Mouse", "Mouse sem fio", 89.9)

	for _, query := range []string{"price_min=cheap", "price_max=1.2.3", "price_min=1&price_max=abc"} {
		w := suite.request(http.MethodGet, "/api/products?"+query, nil)

		suite.Equal(http.StatusBadRequest, w.Code, query)
		apiErr := decodeError(suite.T(), w)
		suite.Equal("BAD_REQUEST", apiErr.Code, query)
		suite.Equal("Invalid price filter", apiErr.Message, query)
	}

	w := suite.request(http.MethodGet, "/api/products?price_min=abc", nil, "Accept-Language", "pt-BR")
	suite.Equal("Filtro de preço inválido", decodeError(suite.T(), w).Message)
}

func (suite *ProductAPITestSuite) TestGetProduct() {
	created := suite.createProduct("Widget", "A widget", 9.99)

	w := suite.request(http.MethodGet, "/api/products/"+strconv.FormatUint(created.ID, 10), nil)
	suite.Equal(http.StatusOK, w.Code)

	var product models.Product
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &product))
	suite.True(created.Equal(product))
}

func (suite *ProductAPITestSuite) TestGetProductNotFound() {
	w := suite.request(http.MethodGet, "/api/products/12345", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	apiErr := decodeError(suite.T(), w)
	suite.Equal("NOT_FOUND", apiErr.Code)
	suite.Equal("Product not found", apiErr.Message)

	w = suite.request(http.MethodGet, "/api/products/12345", nil, "Accept-Language", "pt-BR,pt;q=0.9")
	suite.Equal("Produto não encontrado", decodeError(suite.T(), w).Message)
}

func (suite *ProductAPITestSuite) TestInvalidID() {
	w := suite.request(http.MethodGet, "/api/products/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	apiErr := decodeError(suite.T(), w)
	suite.Equal("BAD_REQUEST", apiErr.Code)
	suite.Equal("Invalid product ID", apiErr.Message)

	w = suite.request(http.MethodDelete, "/api/products/0", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION_ERROR", decodeError(suite.T(), w).Code)
}

func (suite *ProductAPITestSuite) TestUpdateProduct() {
	created := suite.createProduct("Widget", "A widget", 9.99)
	path := "/api/products/" + strconv.FormatUint(created.ID, 10)

	w := suite.request(http.MethodPut, path, map[string]interface{}{
		"name":        "Widget v2",
		"description": "A better widget",
		"price":       12.5,
	})
	suite.Equal(http.StatusOK, w.Code)

	var updated models.Product
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.True(models.NewProduct(created.ID, "Widget v2", "A better widget", decimal.RequireFromString("12.5")).Equal(updated))

	w = suite.request(http.MethodGet, path, nil)
	var loaded models.Product
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &loaded))
	suite.True(updated.Equal(loaded))
}

func (suite *ProductAPITestSuite) TestUpdateProductNotFound() {
	w := suite.request(http.MethodPut, "/api/products/777", map[string]interface{}{
		"name": "Ghost", "description": "", "price": 1,
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("NOT_FOUND", decodeError(suite.T(), w).Code)
}

func (suite *ProductAPITestSuite) TestDeleteProduct() {
	created := suite.createProduct("Widget", "A widget", 9.99)
	path := "/api/products/" + strconv.FormatUint(created.ID, 10)

	w := suite.request(http.MethodDelete, path, nil)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())

	suite.Equal(http.StatusNotFound, suite.request(http.MethodGet, path, nil).Code)
	suite.Equal(http.StatusNotFound, suite.request(http.MethodDelete, path, nil).Code)
}

func (suite *ProductAPITestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"healthy","version":"1.0.0"}`, w.Body.String())
	suite.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (suite *ProductAPITestSuite) TestHealthDatabaseDown() {
	database.Close(suite.db)

	w := suite.request(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("UNAVAILABLE", decodeError(suite.T(), w).Code)
}

func (suite *ProductAPITestSuite) TestCORSPreflight() {
	w := suite.request(http.MethodOptions, "/api/products", nil,
		"Origin", "http://localhost:5173",
		"Access-Control-Request-Method", "PUT",
	)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Equal("http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestProductAPISuite(t *testing.T) {
	suite.Run(t, new(ProductAPITestSuite))
}
