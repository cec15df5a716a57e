package product

import (
	"context"
	"errors"
	"testing"

	"lojinha/models"
	"lojinha/utils"

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
	var out []models.Product
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

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }
func ptrU(v uint) *uint       { return &v }

func validInput() ProductInput {
	return ProductInput{
		Name:  "Camiseta",
		Price: ptrF(59.9),
		Stock: ptrI(10),
	}
}

func TestCreateProductValidation(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*ProductInput)
		field string
	}{
		{"missing name", func(in *ProductInput) { in.Name = "  " }, "name"},
		{"name too long", func(in *ProductInput) {
			for len(in.Name) <= 255 {
				in.Name += "Camiseta"
			}
		}, "name"},
		{"missing price", func(in *ProductInput) { in.Price = nil }, "price"},
		{"missing stock", func(in *ProductInput) { in.Stock = nil }, "stock"},
		{"negative stock", func(in *ProductInput) { in.Stock = ptrI(-1) }, "stock"},
		{"bad main image", func(in *ProductInput) { in.MainImage = "nao-e-url" }, "main_image"},
		{"bad image entry", func(in *ProductInput) { in.Images = []string{"https://cdn.example.com/a.jpg", "x"} }, "images"},
		{"unknown category", func(in *ProductInput) { in.CategoryID = ptrU(99) }, "category_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &DefaultProductService{Repo: newFakeProductRepo(1)}
			in := validInput()
			tc.mut(&in)

			_, err := svc.CreateProduct(context.Background(), in)
			var fe utils.FieldErrors
			require.True(t, errors.As(err, &fe), "expected field errors, got %v", err)
			assert.Contains(t, fe, tc.field)
		})
	}
}

func TestCreateProductUnknownCategoryMessage(t *testing.T) {
	svc := &DefaultProductService{Repo: newFakeProductRepo()}
	in := validInput()
	in.CategoryID = ptrU(7)

	_, err := svc.CreateProduct(context.Background(), in)
	var fe utils.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{"A categoria selecionada não existe."}, fe["category_id"])
}

func TestCreateProduct(t *testing.T) {
	svc := &DefaultProductService{Repo: newFakeProductRepo(1)}
	in := validInput()
	in.CategoryID = ptrU(1)

	p, err := svc.CreateProduct(context.Background(), in)
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Camiseta", p.Name)
	assert.Equal(t, 59.9, p.Price)
	assert.Equal(t, 10, p.Stock)
	// Nil image slices are stored as an empty list, not NULL.
	assert.NotNil(t, p.Images)
	assert.Empty(t, p.Images)
}

func TestUpdateProduct(t *testing.T) {
	repo := newFakeProductRepo(1)
	svc := &DefaultProductService{Repo: repo}
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Name = "Camiseta Azul"
	in.Stock = ptrI(3)
	updated, err := svc.UpdateProduct(ctx, p.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Camiseta Azul", updated.Name)
	assert.Equal(t, 3, updated.Stock)

	_, err = svc.UpdateProduct(ctx, 999, validInput())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc := &DefaultProductService{Repo: newFakeProductRepo()}
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, p.ID))
	_, err = svc.GetProductByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, svc.DeleteProduct(ctx, p.ID), ErrProductNotFound)
}
