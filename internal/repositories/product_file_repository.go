package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/afero"

	"katalog/internal/models"
)

// FileProductRepository persists the whole collection as a pretty-printed
// JSON array in a single file. Every operation reads the entire file,
// works on the slice in memory, and (for mutations) writes the entire
// file back. An in-process mutex serializes access; there is no
// cross-process locking.
type FileProductRepository struct {
	fs   afero.Fs
	path string
	mu   sync.RWMutex
}

// NewFileProductRepository creates a repository backed by the given file.
// The file is created with an empty array on first access.
func NewFileProductRepository(fs afero.Fs, path string) *FileProductRepository {
	return &FileProductRepository{
		fs:   fs,
		path: path,
	}
}

// load reads the full collection from disk. A missing file is treated as
// an empty collection. Callers must hold the lock.
func (r *FileProductRepository) load() ([]models.Product, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Product{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// save writes the full collection back, pretty-printed.
func (r *FileProductRepository) save(products []models.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}
	if err := afero.WriteFile(r.fs, r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}
	return nil
}

// Init makes sure the data file exists, creating it with an empty array.
func (r *FileProductRepository) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	exists, err := afero.Exists(r.fs, r.path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", r.path, err)
	}
	if exists {
		return nil
	}
	return r.save([]models.Product{})
}

// GetAll returns all products.
func (r *FileProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.load()
}

// GetInStock returns the products with inStock set.
func (r *FileProductRepository) GetInStock() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}

	inStock := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.InStock {
			inStock = append(inStock, p)
		}
	}
	return inStock, nil
}

// GetByID returns a product by its ID.
func (r *FileProductRepository) GetByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
}

// Create appends a new product, assigning it the next ID
// (max existing ID + 1, or 1 for an empty collection).
func (r *FileProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return err
	}

	maxID := 0
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product.ID = maxID + 1

	products = append(products, *product)
	return r.save(products)
}

// Update replaces the stored product that has product.ID.
func (r *FileProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = *product
			return r.save(products)
		}
	}
	return fmt.Errorf("product with ID %d: %w", product.ID, ErrProductNotFound)
}

// Delete removes a product by its ID.
func (r *FileProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return r.save(products)
		}
	}
	return fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
}
