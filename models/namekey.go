package models

import (
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// FoldName returns the case-folded form of a name used for searching.
// Folding happens in Go so every backend compares the same bytes, whatever
// its own LOWER does with non-ASCII text.
func FoldName(name string) string {
	return cases.Fold().String(name)
}

// BeforeSave keeps the search key in step with the name.
func (v *Venue) BeforeSave(*gorm.DB) error {
	v.NameKey = FoldName(v.Name)
	return nil
}

// BeforeSave keeps the search key in step with the name.
func (a *Artist) BeforeSave(*gorm.DB) error {
	a.NameKey = FoldName(a.Name)
	return nil
}
