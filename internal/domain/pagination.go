package domain

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage mantiene (MaxPage-1)*MaxPageSize dentro de int.
	MaxPage = math.MaxInt / MaxPageSize
)

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	Total       int64 `json:"total"`
}

// Normalize devuelve una copia con pagina en 1..MaxPage y tamano en 1..MaxPageSize.
func (p Pagination) Normalize() Pagination {
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if p.CurrentPage > MaxPage {
		p.CurrentPage = MaxPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.Total < 0 {
		p.Total = 0
	}
	return p
}

// Offset calcula el desplazamiento SQL de la pagina actual.
func (p Pagination) Offset() int {
	n := p.Normalize()
	return (n.CurrentPage - 1) * n.PageSize
}

// Pages devuelve el numero total de paginas para Total.
func (p Pagination) Pages() int {
	n := p.Normalize()
	if n.Total == 0 {
		return 0
	}
	return int((n.Total + int64(n.PageSize) - 1) / int64(n.PageSize))
}

// Page agrupa los elementos de una pagina con su paginacion.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}
