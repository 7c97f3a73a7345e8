package entity

import "time"

type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome" gorm:"size:200;not null"`
	Phones    string    `json:"telefones" gorm:"size:500"`
	Email     string    `json:"email" gorm:"size:200"`
	Address   string    `json:"endereco" gorm:"size:500"`
	Notes     string    `json:"observacoes"`
	Active    bool      `json:"ativo" gorm:"index"`
	CreatedAt time.Time `json:"dataCriacao"`
	UpdatedAt time.Time `json:"dataAtualizacao"`

	// Last-order date is not stored; it is derived from the order
	// collection wherever it is needed.
	Orders []Order `json:"-" gorm:"foreignKey:CustomerID"`
}
