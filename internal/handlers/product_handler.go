package handlers

import (
	"candela/internal/apperrors"
	"candela/internal/models"
	"candela/internal/services"
	"candela/pkg/money"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers catalog routes. Reads are public, mutations are
// admin-gated.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authRequired, adminRequired fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", authRequired, adminRequired, h.HandleCreateProduct)
	productRoutes.Put("/:id", authRequired, adminRequired, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", authRequired, adminRequired, h.HandleDeleteProduct)
}

// productResponse renders a product with its price in major units.
type productResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	FragranceNotes string  `json:"fragrance_notes,omitempty"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	ImageURL       string  `json:"image_url,omitempty"`
}

func toProductResponse(p *models.Product) productResponse {
	return productResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		FragranceNotes: p.FragranceNotes,
		Price:          p.Price.Major(),
		Stock:          p.Stock,
		ImageURL:       p.ImageURL,
	}
}

// ProductRequest is the admin create/update body. Price arrives as a
// decimal and is converted to minor units exactly once, here.
type ProductRequest struct {
	Name           string  `json:"name" validate:"required,min=3,max=200"`
	Description    string  `json:"description" validate:"omitempty,max=2000"`
	FragranceNotes string  `json:"fragrance_notes" validate:"omitempty,max=500"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	Stock          int     `json:"stock" validate:"gte=0"`
	ImageURL       string  `json:"image_url" validate:"omitempty,url"`
}

func (req *ProductRequest) toModel() *models.Product {
	return &models.Product{
		Name:           req.Name,
		Description:    req.Description,
		FragranceNotes: req.FragranceNotes,
		Price:          money.FromMajor(req.Price),
		Stock:          req.Stock,
		ImageURL:       req.ImageURL,
	}
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return apperrors.Internal("could not retrieve products", err)
	}

	responses := make([]productResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toProductResponse(&products[i]))
	}
	return c.JSON(responses)
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return apperrors.NotFound("product not found")
	}
	return c.JSON(toProductResponse(product))
}

// HandleCreateProduct adds a product to the catalog.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.Validation(validationMessage(err))
	}

	product := req.toModel()
	if err := h.service.CreateProduct(product); err != nil {
		return apperrors.Internal("could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
}

// HandleUpdateProduct updates an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.Validation(validationMessage(err))
	}

	product := req.toModel()
	product.ID = c.Params("id")
	if err := h.service.UpdateProduct(product); err != nil {
		return apperrors.NotFound("product not found")
	}
	return c.JSON(toProductResponse(product))
}

// HandleDeleteProduct removes a product from the catalog.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return apperrors.NotFound("product not found")
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
