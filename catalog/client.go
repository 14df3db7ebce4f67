package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"comparehubapi/models"

	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("product-not-found")

// Client talks to the remote catalog source.
type Client struct {
	baseURL    string
	limit      int
	httpClient *http.Client
}

func NewClient(baseURL string, limit int, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if limit < 1 {
		limit = 100
	}
	return &Client{
		baseURL:    baseURL,
		limit:      limit,
		httpClient: httpClient,
	}
}

// Products fetches the bulk catalog listing.
func (cl *Client) Products(ctx context.Context) ([]models.Product, error) {
	url := fmt.Sprintf("%s/products?limit=%d", cl.baseURL, cl.limit)

	var catalogResp models.CatalogResponse
	if err := cl.getJSON(ctx, url, &catalogResp); err != nil {
		return nil, err
	}

	return catalogResp.Products, nil
}

// ProductByID fetches a single catalog record.
func (cl *Client) ProductByID(ctx context.Context, id int) (models.Product, error) {
	url := fmt.Sprintf("%s/products/%d", cl.baseURL, id)

	var product models.Product
	if err := cl.getJSON(ctx, url, &product); err != nil {
		return models.Product{}, err
	}

	return product, nil
}

func (cl *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		log.Println(err)
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected-status-%d", resp.StatusCode)
		log.Println(err)
		return err
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
