package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetInStock() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id int) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductEvent(event string, product models.Product) error {
	args := m.Called(event, product)
	return args.Error(0)
}

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
func strPtr(s string) *string     { return &s }

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: 1, Name: "Product A", Price: 10.0, InStock: true},
		{ID: 2, Name: "Product B", Price: 20.0, InStock: false},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetInStockProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: 1, Name: "Product A", Price: 10.0, InStock: true},
	}

	mockRepo.On("GetInStock").Return(expectedProducts, nil).Once()

	products, err := service.GetInStockProducts()

	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProduct := &models.Product{ID: 1, Name: "Product A", Price: 10.0, InStock: true}

	// Test successful retrieval
	mockRepo.On("GetByID", 1).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", 99).Return(nil, fmt.Errorf("product with ID 99: %w", repositories.ErrProductNotFound)).Once()
	product, err = service.GetProductByID(99)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	req := models.CreateProductRequest{Name: "New Product", Price: floatPtr(50.0), InStock: boolPtr(true)}

	// Test successful creation
	mockRepo.On("Create", &models.Product{Name: "New Product", Price: 50.0, InStock: true}).Return(nil).Once()
	product, err := service.CreateProduct(req)
	assert.NoError(t, err)
	assert.Equal(t, "New Product", product.Name)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., disk error)
	mockRepo.On("Create", mock.Anything).Return(fmt.Errorf("disk error")).Once()
	product, err = service.CreateProduct(req)
	assert.Error(t, err)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProductPublishesEvent(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	req := models.CreateProductRequest{Name: "New Product", Price: floatPtr(50.0), InStock: boolPtr(true)}
	created := models.Product{Name: "New Product", Price: 50.0, InStock: true}

	mockRepo.On("Create", &created).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.created", created).Return(nil).Once()

	_, err := service.CreateProduct(req)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_UpdateProductPartialFields(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	stored := &models.Product{ID: 1, Name: "Product A", Price: 10.0, InStock: true}

	// Only the price is provided; name and inStock must carry over.
	mockRepo.On("GetByID", 1).Return(stored, nil).Once()
	mockRepo.On("Update", &models.Product{ID: 1, Name: "Product A", Price: 12.0, InStock: true}).Return(nil).Once()

	updated, err := service.UpdateProduct(1, models.UpdateProductRequest{Price: floatPtr(12.0)})
	assert.NoError(t, err)
	assert.Equal(t, "Product A", updated.Name)
	assert.Equal(t, 12.0, updated.Price)
	assert.True(t, updated.InStock)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProductAllFields(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	stored := &models.Product{ID: 1, Name: "Product A", Price: 10.0, InStock: true}

	mockRepo.On("GetByID", 1).Return(stored, nil).Once()
	mockRepo.On("Update", &models.Product{ID: 1, Name: "Product B", Price: 20.0, InStock: false}).Return(nil).Once()

	updated, err := service.UpdateProduct(1, models.UpdateProductRequest{
		Name:    strPtr("Product B"),
		Price:   floatPtr(20.0),
		InStock: boolPtr(false),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Product B", updated.Name)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProductNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetByID", 99).Return(nil, fmt.Errorf("product with ID 99: %w", repositories.ErrProductNotFound)).Once()

	updated, err := service.UpdateProduct(99, models.UpdateProductRequest{Price: floatPtr(1.0)})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	stored := &models.Product{ID: 1, Name: "Product A", Price: 10.0, InStock: true}

	// Test successful deletion, with the deleted event carrying the product.
	mockRepo.On("GetByID", 1).Return(stored, nil).Once()
	mockRepo.On("Delete", 1).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.deleted", *stored).Return(nil).Once()

	err := service.DeleteProduct(1)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Test deletion of a missing product
	mockRepo.On("GetByID", 99).Return(nil, fmt.Errorf("product with ID 99: %w", repositories.ErrProductNotFound)).Once()
	err = service.DeleteProduct(99)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_PublishFailureDoesNotFailMutation(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	req := models.CreateProductRequest{Name: "New Product", Price: floatPtr(50.0), InStock: boolPtr(true)}

	mockRepo.On("Create", mock.Anything).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.created", mock.Anything).Return(fmt.Errorf("broker unavailable")).Once()

	product, err := service.CreateProduct(req)
	assert.NoError(t, err)
	assert.NotNil(t, product)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}
