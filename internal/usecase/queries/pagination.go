package queries

import (
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/patch"
)

var (
	ErrNegativeFrom    = errs.BadRequest("from must not be negative")
	ErrNonPositiveSize = errs.BadRequest("size must be positive")
)

// Page is an offset window: skip From rows, return at most Size.
type Page struct {
	From int
	Size int
}

// NewPage fills in defaults for absent values and clamps Size to the configured maximum.
func NewPage(from, size *int, cfg config.BookingConfig) (Page, error) {
	p := Page{
		From: patch.Coalesce(from, 0),
		Size: patch.Coalesce(size, cfg.DefaultPageSize),
	}
	if p.From < 0 {
		return Page{}, ErrNegativeFrom
	}
	if p.Size <= 0 {
		return Page{}, ErrNonPositiveSize
	}
	if cfg.MaxPageSize > 0 && p.Size > cfg.MaxPageSize {
		p.Size = cfg.MaxPageSize
	}
	return p, nil
}
