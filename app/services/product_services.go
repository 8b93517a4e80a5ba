package services

import (
	"fmt"

	"github.com/shashiranjanraj/shopeasy/app/models"
	"github.com/shashiranjanraj/shopeasy/app/state"
	"github.com/shashiranjanraj/shopeasy/config"
	"github.com/shashiranjanraj/shopeasy/pkg/http"
)

// ProductService fetches the catalogue. No pagination, no filtering, no
// caching discipline beyond full replacement of the local product list.
type ProductService struct {
	state *state.State
}

func NewProductService(st *state.State) *ProductService {
	return &ProductService{state: st}
}

// List fetches all products and replaces the local cache wholesale.
// Network and parsing errors propagate to the caller.
func (s *ProductService) List() ([]models.Product, error) {
	resp, err := http.Get(config.APIBaseURL() + "/api/products").Send()
	if err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}

	var products []models.Product
	if err := resp.JSON(&products); err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}

	s.state.Products = products
	return products, nil
}

// Details fetches a single product. Stateless — nothing is cached.
func (s *ProductService) Details(id uint) (models.Product, error) {
	resp, err := http.Get(fmt.Sprintf("%s/api/products/%d", config.APIBaseURL(), id)).Send()
	if err != nil {
		return models.Product{}, fmt.Errorf("products: details %d: %w", id, err)
	}

	var product models.Product
	if err := resp.JSON(&product); err != nil {
		return models.Product{}, fmt.Errorf("products: details %d: %w", id, err)
	}
	return product, nil
}
