package product

import (
	"context"
	"errors"
	"net/url"
	"strings"

	productRepo "lojinha/database/repository/product"
	"lojinha/models"
	"lojinha/utils"
)

// ErrProductNotFound is returned when the referenced product does not exist.
var ErrProductNotFound = errors.New("Produto não encontrado")

// ProductInput carries the fields accepted on create and update.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	MainImage   string   `json:"main_image"`
	Images      []string `json:"images"`
	Stock       *int     `json:"stock"`
	CategoryID  *uint    `json:"category_id"`
}

// ProductService defines business logic for catalog operations.
type ProductService interface {
	// CreateProduct validates input and persists a new product.
	CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error)
	// UpdateProduct validates input and updates an existing product.
	UpdateProduct(ctx context.Context, id uint, in ProductInput) (*models.Product, error)
	// GetProductByID retrieves a product by its unique ID.
	GetProductByID(ctx context.Context, id uint) (*models.Product, error)
	// ListProducts retrieves one page of products plus the total count.
	ListProducts(ctx context.Context, page, perPage int) ([]models.Product, int64, error)
	// DeleteProduct removes a product record.
	DeleteProduct(ctx context.Context, id uint) error
}

// DefaultProductService is the production implementation.
type DefaultProductService struct {
	Repo productRepo.ProductRepository
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (s *DefaultProductService) validate(ctx context.Context, in ProductInput) (utils.FieldErrors, error) {
	fe := utils.FieldErrors{}

	if strings.TrimSpace(in.Name) == "" {
		fe.Add("name", "O nome do produto é obrigatório.")
	} else if len(in.Name) > 255 {
		fe.Add("name", "O nome do produto não pode ter mais de 255 caracteres.")
	}
	if in.Price == nil {
		fe.Add("price", "O preço do produto é obrigatório.")
	}
	if in.MainImage != "" && !isValidURL(in.MainImage) {
		fe.Add("main_image", "A imagem principal deve ser uma URL válida.")
	}
	for _, img := range in.Images {
		if !isValidURL(img) {
			fe.Add("images", "Cada imagem deve ser uma URL válida.")
			break
		}
	}
	if in.Stock == nil {
		fe.Add("stock", "A quantidade em estoque é obrigatória.")
	} else if *in.Stock < 0 {
		fe.Add("stock", "A quantidade em estoque não pode ser menor que 0.")
	}
	if in.CategoryID != nil {
		exists, err := s.Repo.CategoryExists(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			fe.Add("category_id", "A categoria selecionada não existe.")
		}
	}
	return fe, nil
}

func (s *DefaultProductService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	fe, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	if fe.HasErrors() {
		return nil, fe
	}

	images := models.ImageList(in.Images)
	if images == nil {
		images = models.ImageList{}
	}
	p := &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		MainImage:   in.MainImage,
		Images:      images,
		Stock:       *in.Stock,
		CategoryID:  in.CategoryID,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultProductService) UpdateProduct(ctx context.Context, id uint, in ProductInput) (*models.Product, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	fe, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	if fe.HasErrors() {
		return nil, fe
	}

	images := models.ImageList(in.Images)
	if images == nil {
		images = models.ImageList{}
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = *in.Price
	p.MainImage = in.MainImage
	p.Images = images
	p.Stock = *in.Stock
	p.CategoryID = in.CategoryID

	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultProductService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *DefaultProductService) ListProducts(ctx context.Context, page, perPage int) ([]models.Product, int64, error) {
	return s.Repo.List(ctx, page, perPage)
}

func (s *DefaultProductService) DeleteProduct(ctx context.Context, id uint) error {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}
	return s.Repo.Delete(ctx, id)
}
