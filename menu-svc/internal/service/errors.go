package service

import (
	"errors"
	"fmt"
)

// ErrConflict is matched by every referential-integrity failure.
var ErrConflict = errors.New("referential integrity conflict")

type CategoryNotFoundError struct {
	CategoryID int
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category with id %d does not exist", e.CategoryID)
}

func (e *CategoryNotFoundError) Unwrap() error { return ErrConflict }

type CategoryInUseError struct {
	CategoryID int
	ItemCount  int
}

func (e *CategoryInUseError) Error() string {
	if e.ItemCount <= 0 {
		return fmt.Sprintf("cannot delete category with id %d because menu items still reference it", e.CategoryID)
	}
	return fmt.Sprintf("cannot delete category with id %d because it has %d menu items; delete the menu items first",
		e.CategoryID, e.ItemCount)
}

func (e *CategoryInUseError) Unwrap() error { return ErrConflict }
