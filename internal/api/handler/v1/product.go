package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acme/product-api/internal/api/handler/v1/request"
	"github.com/acme/product-api/internal/api/handler/v1/response"
	"github.com/acme/product-api/internal/config"
	"github.com/acme/product-api/internal/domain"
	"github.com/acme/product-api/internal/service"
)

type ProductService interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id uint) (domain.Product, error)
	Update(ctx context.Context, id uint, product domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id uint) (domain.Product, error)
}

type ProductHandler struct {
	svc  ProductService
	opts request.Options
}

func NewProductHandler(svc ProductService, conf *config.ValidationConfig) *ProductHandler {
	return &ProductHandler{
		svc: svc,
		opts: request.Options{
			StrictPrice:          conf.StrictPrice,
			CheckDescriptionType: conf.CheckDescriptionType,
		},
	}
}

// HandleCreateProduct godoc
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request  body      request.ProductRequest true "request body"
// @Success      201      {object}  domain.Product
// @Failure      400      {object}  object
// @Security     TokenAuth
// @Router       /product [post]
func (h *ProductHandler) HandleCreateProduct(ctx *gin.Context) {
	var req request.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrInvalidJSON())

		return
	}

	payload, errs := req.ValidateCreate(h.opts)
	if len(errs) > 0 {
		response.RenderErr(ctx, response.ErrValidation(request.Messages(errs)))

		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), domain.Product{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Qty:         payload.Qty,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNameExists) {
			response.RenderErr(ctx, response.ErrDuplicateProduct())

			return
		}

		err = fmt.Errorf("v1.HandleCreateProduct -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListProducts godoc
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Security     TokenAuth
// @Router       /product [get]
func (h *ProductHandler) HandleListProducts(ctx *gin.Context) {
	products, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListProducts -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	if products == nil {
		products = []domain.Product{}
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleGetProduct godoc
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        productID  path      int true "product ID"
// @Success      200        {object}  domain.Product
// @Failure      404        {object}  string
// @Security     TokenAuth
// @Router       /product/{productID} [get]
func (h *ProductHandler) HandleGetProduct(ctx *gin.Context) {
	id, ok := parseProductID(ctx)
	if !ok {
		return
	}

	product, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrProductNotFound())

			return
		}

		err = fmt.Errorf("v1.HandleGetProduct -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleUpdateProduct godoc
// @Summary      Replace all fields of a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        productID  path      int true "product ID"
// @Param        request    body      request.ProductRequest true "request body"
// @Success      200        {object}  domain.Product
// @Failure      400        {object}  object
// @Failure      404        {object}  string
// @Security     TokenAuth
// @Router       /product/{productID} [put]
func (h *ProductHandler) HandleUpdateProduct(ctx *gin.Context) {
	id, ok := parseProductID(ctx)
	if !ok {
		return
	}

	var req request.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrInvalidJSON())

		return
	}

	payload, errs := req.ValidateUpdate(h.opts)
	if len(errs) > 0 {
		response.RenderErr(ctx, response.ErrValidation(request.Messages(errs)))

		return
	}

	updated, err := h.svc.Update(ctx.Request.Context(), id, domain.Product{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Qty:         payload.Qty,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrProductNotFound())

			return
		}
		if errors.Is(err, service.ErrProductNameExists) {
			response.RenderErr(ctx, response.ErrDuplicateProduct())

			return
		}

		err = fmt.Errorf("v1.HandleUpdateProduct -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteProduct godoc
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        productID  path      int true "product ID"
// @Success      200        {object}  domain.Product
// @Failure      404        {object}  string
// @Security     TokenAuth
// @Router       /product/{productID} [delete]
func (h *ProductHandler) HandleDeleteProduct(ctx *gin.Context) {
	id, ok := parseProductID(ctx)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrProductNotFound())

			return
		}

		err = fmt.Errorf("v1.HandleDeleteProduct -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, deleted)
}

func parseProductID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("productID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrInvalidProductID())

		return 0, false
	}

	return uint(id), true
}
