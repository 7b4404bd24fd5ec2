package entity

import "time"

// Category representa una categoría de productos (agrupación por nombre).
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
