package entity

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:200;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"size:200;not null"`
	Name      string    `json:"nome" gorm:"size:200"`
	Role      string    `json:"role" gorm:"size:50"`
	CreatedAt time.Time `json:"dataCriacao"`
	UpdatedAt time.Time `json:"dataAtualizacao"`
}
