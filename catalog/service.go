package catalog

import (
	"context"
	"fmt"
	"time"

	"comparehubapi/models"
)

const (
	keyProducts = "catalog:products"
	keyMetadata = "catalog:metadata"
)

// Service is the cached view of the catalog source that handlers
// consume.
type Service struct {
	client *Client
	cache  *Cache
	ttl    time.Duration
}

func NewService(client *Client, cache *Cache, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Service{
		client: client,
		cache:  cache,
		ttl:    ttl,
	}
}

// Products returns the full catalog listing, at most one source fetch
// per cache window.
func (s *Service) Products(ctx context.Context) ([]models.Product, error) {
	v, err := s.cache.GetOrFetch(keyProducts, s.ttl, func() (interface{}, error) {
		return s.client.Products(ctx)
	})
	if err != nil {
		return nil, err
	}

	return v.([]models.Product), nil
}

// Metadata returns the derived filter metadata, cached under its own
// key.
func (s *Service) Metadata(ctx context.Context) (models.Metadata, error) {
	v, err := s.cache.GetOrFetch(keyMetadata, s.ttl, func() (interface{}, error) {
		products, err := s.Products(ctx)
		if err != nil {
			return nil, err
		}
		return DeriveMetadata(products), nil
	})
	if err != nil {
		return models.Metadata{}, err
	}

	return v.(models.Metadata), nil
}

// ProductByID returns one catalog record, cached per id.
func (s *Service) ProductByID(ctx context.Context, id int) (models.Product, error) {
	key := fmt.Sprintf("catalog:product:%d", id)

	v, err := s.cache.GetOrFetch(key, s.ttl, func() (interface{}, error) {
		return s.client.ProductByID(ctx, id)
	})
	if err != nil {
		return models.Product{}, err
	}

	return v.(models.Product), nil
}

// ProductsByIDs hydrates an id sequence in order, used by the
// comparison view.
func (s *Service) ProductsByIDs(ctx context.Context, ids []int) ([]models.Product, error) {
	products := make([]models.Product, 0, len(ids))

	for _, id := range ids {
		product, err := s.ProductByID(ctx, id)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}
