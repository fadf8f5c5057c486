package models

import (
	"time"

	"gorm.io/gorm"
)

// User representa o dono da conta. Cada usuario possui exatamente um
// PerfilEmpresa, uma PreferenciaUsuario e seus proprios lancamentos.
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password  string         `json:"-" gorm:"size:255;not null"`
	Email     string         `json:"email" gorm:"size:100"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName define o nome da tabela.
func (User) TableName() string {
	return "users"
}
