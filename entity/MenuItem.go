package entity

import "time"

type MenuItem struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	Category    Category `json:"categoria" gorm:"size:50;index;not null"`
	Name        string   `json:"nome" gorm:"size:200;not null"`
	Price       float64  `json:"preco" gorm:"not null"`
	Description string   `json:"descricao"`
	// Active toggles visibility in the menu; historical order lines keep
	// their own name/price snapshot and still display after deactivation.
	Active    bool      `json:"ativo" gorm:"index"`
	Ordering  int       `json:"ordem"`
	CreatedAt time.Time `json:"dataCriacao"`
	UpdatedAt time.Time `json:"dataAtualizacao"`
}
