package usecase

import (
	"fmt"

	"github.com/invorya/ims-backend/internal/application/dto"
	"github.com/invorya/ims-backend/internal/domain"
	"github.com/invorya/ims-backend/internal/domain/entity"
	"github.com/invorya/ims-backend/internal/domain/repository"
)

// DefaultActor usuario atribuido cuando el llamador no indica uno.
const DefaultActor = "system"

// ProductUseCase casos de uso de productos: creación validada, lecturas y
// búsqueda. Cada creación exitosa deja una entrada de auditoría.
type ProductUseCase struct {
	store repository.Store
	audit *AuditUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.Store, audit *AuditUseCase) *ProductUseCase {
	return &ProductUseCase{store: store, audit: audit}
}

// Create crea un producto. Devuelve (nil, nil) si el SKU ya existe: la
// colisión de SKU es un resultado esperado, no un error. Precio o stock
// negativos fallan con domain.ErrInvalidInput antes de escribir nada.
//
// El chequeo de SKU corre ANTES de la validación: un SKU duplicado con
// precio inválido responde "duplicado", no "inválido". El orden se conserva
// por compatibilidad de comportamiento aunque parezca incidental.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest, user string) (*dto.ProductResponse, error) {
	if user == "" {
		user = DefaultActor
	}

	existing, err := uc.store.GetProductBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nil
	}

	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}

	id, err := uc.store.AddProduct(in.SKU, in.Name, in.Price, in.Category, in.Stock, in.Description)
	if err != nil {
		return nil, err
	}

	if err := uc.audit.LogAction(user, entity.ActionAddProduct, fmt.Sprintf("Added product: %s (SKU: %s)", in.Name, in.SKU)); err != nil {
		return nil, err
	}

	created, err := uc.store.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(created), nil
}

// GetAll devuelve todos los productos ordenados por nombre.
func (uc *ProductUseCase) GetAll() (*dto.ProductListResponse, error) {
	list, err := uc.store.GetAllProducts()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene un producto por id. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.store.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(p), nil
}

// Search busca por subcadena en nombre, SKU o categoría (delegado al almacén).
func (uc *ProductUseCase) Search(term string) (*dto.ProductListResponse, error) {
	list, err := uc.store.SearchProducts(term)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}
