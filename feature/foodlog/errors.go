package foodlog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFoodNotFound    = errors.New("food not found")
	ErrLogNotFound     = errors.New("food log not found")
	ErrInvalidServings = errors.New("servings consumed must be a positive number")
	ErrInvalidPeriod   = errors.New("days must be between 1 and 365")
)

// ValidationError carries every rule a submitted food violates.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid food: " + strings.Join(e.Errors, "; ")
}

// DuplicateError rejects a food that matches one already stored.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("food %q already exists", e.Name)
}
