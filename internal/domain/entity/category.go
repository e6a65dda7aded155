package entity

// Category representa una categoría de productos (pan dulce, pasteles, ...).
type Category struct {
	ID          int64
	Name        string
	Description string
}
