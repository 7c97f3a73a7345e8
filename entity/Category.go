package entity

import "fmt"

// Category classifies a menu item. The set is closed.
type Category string

const (
	CategorySalad   Category = "SALADA"
	CategoryProtein Category = "PROTEINA"
	CategorySide    Category = "ACOMPANHAMENTO"
	CategoryDrink   Category = "BEBIDA"
	CategoryBowl    Category = "BOWL"
)

// Categories fixes the display order used when grouping the menu.
var Categories = []Category{CategorySalad, CategoryProtein, CategorySide, CategoryDrink, CategoryBowl}

var categoryLabels = map[Category]string{
	CategorySalad:   "Salada",
	CategoryProtein: "Proteína",
	CategorySide:    "Acompanhamento",
	CategoryDrink:   "Bebida",
	CategoryBowl:    "Bowl",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) Label() string {
	return categoryLabels[c]
}

func ParseCategory(v string) (Category, error) {
	c := Category(v)
	if !c.Valid() {
		return "", fmt.Errorf("invalid category: %q", v)
	}
	return c, nil
}
