package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"comparehubapi/catalog"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func parsePayload(p interface{}) *bytes.Buffer {
	data, _ := json.Marshal(p)
	return bytes.NewBuffer(data)
}

// newCatalogBackend fakes the remote catalog source: a bulk listing
// plus by-id lookups over the same fixture.
func newCatalogBackend(listing string, byID map[int]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/products" {
			w.Write([]byte(listing))
			return
		}

		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/products/"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		body, ok := byID[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	}))
}

func newCatalogService(baseURL string) *catalog.Service {
	return catalog.NewService(catalog.NewClient(baseURL, 100, nil), catalog.NewCache(nil), 0)
}
