package entity

import "time"

type Order struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	CustomerID uint     `json:"clienteId" gorm:"index;not null"`
	Customer   Customer `json:"-" gorm:"foreignKey:CustomerID"`

	Lines []OrderLine `json:"itens" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	Total   float64 `json:"valorTotal"`
	Status  Status  `json:"status" gorm:"size:50;index"`
	Channel Channel `json:"canal" gorm:"size:50"`
	Notes   string  `json:"observacoes"`

	CreatedAt time.Time `json:"dataCriacao" gorm:"index"`
	UpdatedAt time.Time `json:"dataAtualizacao"`

	// DeliveredAt is set once, on the first transition to ENTREGUE.
	// Its presence is what counts the order as realized revenue.
	DeliveredAt *time.Time `json:"dataEntrega"`
}

// RecalcTotal overwrites Total with the sum of line subtotals. Call it
// whenever lines change; the stored value is never trusted on its own.
func (o *Order) RecalcTotal() {
	var total float64
	for _, l := range o.Lines {
		total += l.Subtotal()
	}
	o.Total = total
}
