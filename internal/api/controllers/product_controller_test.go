package controllers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"prodfeedback/internal/api/controllers"
	"prodfeedback/internal/models/response_models"
	"prodfeedback/pkg/utils"
)

type fakeCatalog struct {
	products []response_models.Product
	err      error
	gotFirst int
}

func (f *fakeCatalog) ListProducts(ctx context.Context, first int) ([]response_models.Product, error) {
	f.gotFirst = first
	return f.products, f.err
}

func newProductRouter(catalog *fakeCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	pc := controllers.NewProductController(catalog, zap.NewNop())
	r := gin.New()
	r.GET("/products", pc.ListProducts)
	return r
}

func TestListProductsSuccess(t *testing.T) {
	catalog := &fakeCatalog{products: []response_models.Product{
		{ID: "111", Title: "Mug", Handle: "mug", Status: "ACTIVE"},
	}}
	r := newProductRouter(catalog)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 25, catalog.gotFirst)

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "success", body.Status)
}

func TestListProductsGatewayFailure(t *testing.T) {
	catalog := &fakeCatalog{err: fmt.Errorf("%w: upstream down", utils.ErrGateway)}
	r := newProductRouter(catalog)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Failed to fetch products")
}
