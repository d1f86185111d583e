package v1

import (
	"errors"
	"net/http"

	"go-scales-backend/internal/delivery/http/response"
	"go-scales-backend/internal/domain"
	"go-scales-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productUC domain.ProductUsecase
}

// NewProductHandler registers the catalog routes (public, read-only)
func NewProductHandler(public *gin.RouterGroup, productUC domain.ProductUsecase) {
	handler := &ProductHandler{
		productUC: productUC,
	}

	public.GET("/products", handler.ListProducts)
	public.GET("/products/:slug", handler.GetProduct)
	public.GET("/categories", handler.ListCategories)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productUC.ListProducts(c.Request.Context())
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productUC.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.Error(apperror.NotFound("Product not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.productUC.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
}
