package services

import (
	"candela/internal/models"
	"candela/internal/repositories"
)

// ProductService handles business logic related to the catalog.
type ProductService struct {
	productRepo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// CreateProduct adds a product to the catalog.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.productRepo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.productRepo.Update(product)
}

// DeleteProduct removes a product from the catalog.
func (s *ProductService) DeleteProduct(id string) error {
	return s.productRepo.Delete(id)
}
