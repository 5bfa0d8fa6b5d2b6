package services

import (
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

// EventPublisher publishes product change events. A nil publisher disables
// event publishing entirely.
type EventPublisher interface {
	PublishProductEvent(event string, product models.Product) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetInStockProducts retrieves the products currently in stock.
func (s *ProductService) GetInStockProducts() ([]models.Product, error) {
	return s.repo.GetInStock()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. The repository assigns the ID.
func (s *ProductService) CreateProduct(req models.CreateProductRequest) (*models.Product, error) {
	product := req.Product()
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	s.publish("product.created", product)
	return &product, nil
}

// UpdateProduct overlays the present fields of req onto the stored product
// and persists the result. Absent fields are left unchanged.
func (s *ProductService) UpdateProduct(id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	req.Apply(product)
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.publish("product.updated", *product)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id int) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("product.deleted", *product)
	return nil
}

// publish sends a product event when a publisher is configured. Publish
// failures are logged, not propagated: the mutation already succeeded.
func (s *ProductService) publish(event string, product models.Product) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProductEvent(event, product); err != nil {
		log.Printf("Failed to publish %s event for product %d: %v", event, product.ID, err)
	}
}
