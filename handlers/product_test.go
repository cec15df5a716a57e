package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lojinha/models"
	productService "lojinha/services/product"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products   map[uint]*models.Product
	categories map[uint]bool
	nextID     uint
}

func newFakeProductRepo(categoryIDs ...uint) *fakeProductRepo {
	f := &fakeProductRepo{
		products:   map[uint]*models.Product{},
		categories: map[uint]bool{},
	}
	for _, id := range categoryIDs {
		f.categories[id] = true
	}
	return f
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uint) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) List(_ context.Context, page, perPage int) ([]models.Product, int64, error) {
	out := []models.Product{}
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(f.products)), nil
}

func (f *fakeProductRepo) Create(_ context.Context, p *models.Product) error {
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *models.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) CategoryExists(_ context.Context, id uint) (bool, error) {
	return f.categories[id], nil
}

func newProductRouter(repo *fakeProductRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(&productService.DefaultProductService{Repo: repo})

	r := gin.New()
	r.GET("/api/products/:id", h.GetProduct)
	r.POST("/api/products", h.CreateProduct)
	return r
}

func TestCreateProductValidationEnvelope(t *testing.T) {
	r := newProductRouter(newFakeProductRepo())

	w := postJSON(r, "/api/products", `{"description":"sem nada"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Status  bool                `json:"status"`
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Equal(t, "Erro de validação.", body.Message)
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "price")
	assert.Contains(t, body.Errors, "stock")
}

func TestCreateProductUnknownCategoryEnvelope(t *testing.T) {
	r := newProductRouter(newFakeProductRepo())

	w := postJSON(r, "/api/products", `{"name":"Camiseta","price":59.9,"stock":10,"category_id":42}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"A categoria selecionada não existe."}, body.Errors["category_id"])
}

func TestCreateProductSuccess(t *testing.T) {
	r := newProductRouter(newFakeProductRepo(1))

	w := postJSON(r, "/api/products", `{"name":"Camiseta","price":59.9,"stock":10,"category_id":1}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Status  bool           `json:"status"`
		Message string         `json:"message"`
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, "Produto criado com sucesso!", body.Message)
	assert.NotZero(t, body.Product.ID)
}

func TestGetProductNotFound(t *testing.T) {
	r := newProductRouter(newFakeProductRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/products/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Produto não encontrado")
}
