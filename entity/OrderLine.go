package entity

type OrderLine struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	OrderID uint `json:"-" gorm:"index;not null"`

	// ItemID is an optional back-reference to the menu item. Name and
	// UnitPrice are snapshots taken at order time: later price or
	// availability changes never rewrite history.
	ItemID    *uint   `json:"itemId"`
	Name      string  `json:"nome" gorm:"size:200;not null"`
	Quantity  int     `json:"quantidade" gorm:"not null"`
	UnitPrice float64 `json:"precoUnit" gorm:"not null"`
	Notes     string  `json:"observacoes,omitempty"`
}

func (l OrderLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
