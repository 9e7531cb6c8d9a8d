// internal/handlers/product.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/javajoker/product-catalog/internal/i18n"
	"github.com/javajoker/product-catalog/internal/models"
	"github.com/javajoker/product-catalog/internal/services"
	"github.com/javajoker/product-catalog/internal/utils"
)

const productsPath = "/api/products"

type ProductHandler struct {
	productService *services.ProductService
}

type productURI struct {
	ID uint64 `uri:"id" binding:"required,min=1"`
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	searchParams := services.ProductSearchParams{
		PaginationParams: params,
	}

	var ok bool
	if searchParams.PriceMin, ok = h.bindPrice(c, "price_min"); !ok {
		return
	}
	if searchParams.PriceMax, ok = h.bindPrice(c, "price_max"); !ok {
		return
	}

	products, total, err := h.productService.ListProducts(c.Request.Context(), searchParams)
	if err != nil {
		h.internalError(c, err)
		return
	}

	utils.SetPaginationHeaders(c, utils.CreatePaginationResult(total, params))
	utils.OKResponse(c, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	utils.OKResponse(c, product)
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.ProductDTO
	if !h.bindBody(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.internalError(c, err)
		return
	}

	location := productsPath + "/" + strconv.FormatUint(product.ID, 10)
	utils.CreatedResponse(c, location, product)
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req models.ProductDTO
	if !h.bindBody(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	utils.OKResponse(c, product)
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		h.serviceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ProductHandler) bindID(c *gin.Context) (uint64, bool) {
	var uri productURI
	if err := c.ShouldBindUri(&uri); err != nil {
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return 0, false
		}
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductInvalidID), nil)
		return 0, false
	}
	return uri.ID, true
}

// bindPrice reads an optional decimal query parameter. A present but
// malformed value aborts the request.
func (h *ProductHandler) bindPrice(c *gin.Context, name string) (*decimal.Decimal, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductInvalidPrice), gin.H{name: raw})
		return nil, false
	}
	return &price, true
}

func (h *ProductHandler) bindBody(c *gin.Context, req *models.ProductDTO) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return false
	}
	return true
}

func (h *ProductHandler) serviceError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrProductNotFound) {
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
		return
	}
	h.internalError(c, err)
}

// internalError records err for the request logger and hides it from the caller.
func (h *ProductHandler) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	utils.InternalErrorResponse(c)
}
