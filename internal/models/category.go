package models

import (
	"fmt"
	"strings"
)

type Category string

const (
	Positive Category = "Positive"
	Negative Category = "Negative"
	Neutral  Category = "Neutral"
)

// Categories returns every category in report order.
func Categories() []Category {
	return []Category{Positive, Negative, Neutral}
}

// ParseCategory matches a category name in any letter case.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown sentiment category %q", s)
}

// ByCategory holds one value per category. It serialises with fixed keys in
// Positive, Negative, Neutral order.
type ByCategory[T any] struct {
	Positive T `json:"Positive" yaml:"Positive"`
	Negative T `json:"Negative" yaml:"Negative"`
	Neutral  T `json:"Neutral" yaml:"Neutral"`
}

// At returns a pointer to the slot for c. Unknown categories land in Neutral.
func (b *ByCategory[T]) At(c Category) *T {
	switch c {
	case Positive:
		return &b.Positive
	case Negative:
		return &b.Negative
	default:
		return &b.Neutral
	}
}

// Get returns the value stored for c.
func (b ByCategory[T]) Get(c Category) T {
	return *b.At(c)
}
