package models

import "gorm.io/gorm"

// PreferenciaUsuario guarda preferencias de interface e de alertas, uma por
// usuario, criada sob demanda no primeiro acesso.
type PreferenciaUsuario struct {
	ID                       uint `json:"id" gorm:"primaryKey"`
	UserID                   uint `json:"user_id" gorm:"uniqueIndex;not null"`
	TemaEscuro               bool `json:"tema_escuro" gorm:"default:false"`
	ItensPorPagina           int  `json:"itens_por_pagina" gorm:"default:25"`
	AlertasAtivos            bool `json:"alertas_ativos" gorm:"default:true"`
	AlertaPercentualDespesas int  `json:"alerta_percentual_despesas" gorm:"default:80"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName define o nome da tabela.
func (PreferenciaUsuario) TableName() string {
	return "preferencias_usuario"
}

// GetOrCreatePreferencias busca as preferencias do usuario, criando o
// registro com os valores padrao na primeira consulta.
func GetOrCreatePreferencias(db *gorm.DB, userID uint) (*PreferenciaUsuario, error) {
	var pref PreferenciaUsuario
	err := db.Where(PreferenciaUsuario{UserID: userID}).
		Attrs(PreferenciaUsuario{ItensPorPagina: 25, AlertasAtivos: true, AlertaPercentualDespesas: 80}).
		FirstOrCreate(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}
