package entity

import "time"

// Category representa una categoría de productos. Referencia débil desde Product
// (category_id nullable); el borrado lo gobierna la base de datos, no este núcleo.
type Category struct {
	ID          string
	Name        string // requerido, no vacío
	Description string
	CreatedAt   time.Time
}
