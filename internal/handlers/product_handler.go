package handlers

import (
	"errors"
	"strconv"

	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Response texts shared with clients.
const (
	MsgProductNotFound = "Product not found"
	MsgProductDeleted  = "Product deleted"
)

// ProductResponse wraps a single product.
type ProductResponse struct {
	Data models.Product `json:"data"`
}

// ProductListResponse wraps a list of products.
type ProductListResponse struct {
	Data []models.Product `json:"data"`
}

// MessageResponse wraps a plain confirmation text.
type MessageResponse struct {
	Data string `json:"data" example:"Product deleted"`
}

// ErrorResponse is returned for missing products and server faults.
type ErrorResponse struct {
	Error string `json:"error" example:"Product not found"`
}

// ValidationErrorResponse lists every failed validation rule.
type ValidationErrorResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

// CreateProductRequest documents the body of POST /api/products.
type CreateProductRequest struct {
	Name  string  `json:"name" example:"Keyboard"`
	Price float64 `json:"price" example:"101"`
}

// ReplaceProductRequest documents the body of PUT /api/products/{id}.
type ReplaceProductRequest struct {
	Name         string  `json:"name" example:"Keyboard"`
	Price        float64 `json:"price" example:"101"`
	Availability bool    `json:"availability" example:"true"`
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes, each behind its validation gate.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", middleware.Validate(validation.ProductIDRules), h.HandleGetProductByID)
	productRoutes.Post("/", middleware.Validate(validation.CreateProductRules), h.HandleCreateProduct)
	productRoutes.Put("/:id", middleware.Validate(validation.ReplaceProductRules), h.HandleReplaceProduct)
	productRoutes.Patch("/:id", middleware.Validate(validation.ProductIDRules), h.HandleToggleAvailability)
	productRoutes.Delete("/:id", middleware.Validate(validation.ProductIDRules), h.HandleDeleteProduct)
}

// HandleGetProducts godoc
// @Summary Get a list of products
// @Description Get a list of products, most expensive first
// @Tags Products
// @Produce json
// @Success 200 {object} ProductListResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(ProductListResponse{Data: products})
}

// HandleGetProductByID godoc
// @Summary Get a product by ID
// @Description Return a product based on unique ID
// @Tags Products
// @Produce json
// @Param id path int true "The ID of the product to retrieve"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ValidationErrorResponse "Bad Request - Invalid ID"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Router /api/products/{id} [get]
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return notFound(c)
	}

	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		return h.handleLookupError(c, err)
	}
	return c.JSON(ProductResponse{Data: *product})
}

// HandleCreateProduct godoc
// @Summary Create a new product
// @Description Create a new product; availability starts as true
// @Tags Products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product to create"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ValidationErrorResponse "Bad Request - Invalid input"
// @Router /api/products [post]
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	in, _ := middleware.ValidatedInput(c)
	body := validation.NewCreateProductBody(in.Body)

	product, err := h.service.CreateProduct(c.UserContext(), body.Name, body.Price)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(ProductResponse{Data: *product})
}

// HandleReplaceProduct godoc
// @Summary Update a product with user input
// @Description Overwrite name, price and availability of a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "The ID of the product to update"
// @Param product body ReplaceProductRequest true "New product values"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ValidationErrorResponse "Bad Request - Invalid ID or invalid input data"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Router /api/products/{id} [put]
func (h *ProductHandler) HandleReplaceProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return notFound(c)
	}
	in, _ := middleware.ValidatedInput(c)
	body := validation.NewReplaceProductBody(in.Body)

	product, err := h.service.ReplaceProduct(c.UserContext(), id, body.Name, body.Price, body.Availability)
	if err != nil {
		return h.handleLookupError(c, err)
	}
	return c.JSON(ProductResponse{Data: *product})
}

// HandleToggleAvailability godoc
// @Summary Update availability of a product
// @Description Flip the availability flag and return the updated product
// @Tags Products
// @Produce json
// @Param id path int true "The ID of the product to update"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ValidationErrorResponse "Bad Request - Invalid ID"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Router /api/products/{id} [patch]
func (h *ProductHandler) HandleToggleAvailability(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return notFound(c)
	}

	product, err := h.service.ToggleAvailability(c.UserContext(), id)
	if err != nil {
		return h.handleLookupError(c, err)
	}
	return c.JSON(ProductResponse{Data: *product})
}

// HandleDeleteProduct godoc
// @Summary Delete a product by ID
// @Description Return a confirmation message
// @Tags Products
// @Produce json
// @Param id path int true "The ID of the product to delete"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ValidationErrorResponse "Bad Request - Invalid ID"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Router /api/products/{id} [delete]
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return notFound(c)
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return h.handleLookupError(c, err)
	}
	return c.JSON(MessageResponse{Data: MsgProductDeleted})
}

// handleLookupError answers 404 for a missing product and hands every other
// error to the application error handler.
func (h *ProductHandler) handleLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrProductNotFound) {
		return notFound(c)
	}
	return err
}

// productID reads the already validated :id parameter. Integers that do not
// fit in int64 cannot name a stored product.
func productID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: MsgProductNotFound})
}
