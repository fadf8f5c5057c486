package models

import (
	"time"

	"gorm.io/gorm"
)

// DeclaracaoAnual registra que o perfil confirmou a entrega da declaracao
// de um ano. Unica por (perfil, ano) e imutavel depois de criada; nao ha
// caminho de atualizacao.
type DeclaracaoAnual struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	PerfilEmpresaID uint      `json:"perfil_empresa_id" gorm:"index;not null;uniqueIndex:idx_declaracao_perfil_ano"`
	Ano             int       `json:"ano" gorm:"not null;uniqueIndex:idx_declaracao_perfil_ano"`
	DataConfirmacao time.Time `json:"data_confirmacao" gorm:"autoCreateTime"`

	PerfilEmpresa PerfilEmpresa `json:"-" gorm:"foreignKey:PerfilEmpresaID"`
}

// TableName define o nome da tabela.
func (DeclaracaoAnual) TableName() string {
	return "declaracoes_anuais"
}

// ConfirmarDeclaracao cria a confirmacao do ano caso ainda nao exista
// (create-if-absent). Confirmar duas vezes o mesmo ano e um no-op.
func ConfirmarDeclaracao(db *gorm.DB, perfilID uint, ano int) (*DeclaracaoAnual, error) {
	var decl DeclaracaoAnual
	err := db.Where(DeclaracaoAnual{PerfilEmpresaID: perfilID, Ano: ano}).
		FirstOrCreate(&decl).Error
	if err != nil {
		return nil, err
	}
	return &decl, nil
}
