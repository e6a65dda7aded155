package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
)

// CreateProductRequest payload de POST /api/productos.
// Precio y Stock son punteros para distinguir ausente de cero.
type CreateProductRequest struct {
	Nombre      string           `json:"nombre"`
	Descripcion string           `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	IDCategoria *int64           `json:"id_categoria"`
	Temporada   string           `json:"temporada"`
	ImagenURL   string           `json:"imagen_url"`
	Stock       *int64           `json:"stock"`
}

// UpdateProductRequest payload de PUT /api/productos/:id.
// Todos los campos son opcionales; solo se tocan los presentes.
type UpdateProductRequest struct {
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	IDCategoria *int64           `json:"id_categoria"`
	Temporada   *string          `json:"temporada"`
	ImagenURL   *string          `json:"imagen_url"`
	Activo      *bool            `json:"activo"`
	Stock       *int64           `json:"stock"`
}

// ProductResponse producto con categoría y stock, como lo ve la API.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	IDCategoria *int64          `json:"id_categoria"`
	Categoria   string          `json:"categoria"`
	Temporada   string          `json:"temporada"`
	ImagenURL   string          `json:"imagen_url"`
	Activo      bool            `json:"activo"`
	Stock       int64           `json:"stock"`
	CreadoEn    time.Time       `json:"creado_en"`
}

// ToProductResponse convierte la vista de lectura al DTO de salida.
func ToProductResponse(p *entity.ProductWithStock) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Nombre:      p.Name,
		Descripcion: p.Description,
		Precio:      p.Price,
		IDCategoria: p.CategoryID,
		Categoria:   p.CategoryName,
		Temporada:   p.Temporada,
		ImagenURL:   p.ImagenURL,
		Activo:      p.Activo,
		Stock:       p.Stock,
		CreadoEn:    p.CreatedAt,
	}
}

// CreateCategoryRequest payload de POST /api/productos/categorias.
type CreateCategoryRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CategoryResponse categoría como la ve la API.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}
