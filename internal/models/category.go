package models

import "fmt"

// Category tags an expense. The set mirrors the categories offered by the app.
type Category int

const (
	// CategoryUnspecified is the zero value; it matches any category in filters.
	CategoryUnspecified Category = iota
	CategoryUtilities
	CategoryGroceries
	CategoryHousehold
	CategoryRent
	CategoryEntertainment
	CategoryOther
)

var categoryNames = map[Category]string{
	CategoryUtilities:     "utilities",
	CategoryGroceries:     "groceries",
	CategoryHousehold:     "household",
	CategoryRent:          "rent",
	CategoryEntertainment: "entertainment",
	CategoryOther:         "other",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unspecified"
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory converts the wire name of a category.
// An empty string maps to CategoryOther.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryOther, nil
	}
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return CategoryUnspecified, fmt.Errorf("unknown category %q", s)
}
