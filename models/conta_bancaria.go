package models

import "gorm.io/gorm"

// ContaBancaria pertence a um PerfilEmpresa. No maximo uma conta por perfil
// pode ser a preferencial.
type ContaBancaria struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	PerfilEmpresaID uint   `json:"perfil_empresa_id" gorm:"index;not null"`
	NomeBanco       string `json:"nome_banco" gorm:"size:100;not null"`
	CodigoBanco     string `json:"codigo_banco" gorm:"size:10"`
	Agencia         string `json:"agencia" gorm:"size:10"`
	ContaCorrente   string `json:"conta_corrente" gorm:"size:20"`
	Preferencial    bool   `json:"preferencial" gorm:"default:false"`
}

// TableName define o nome da tabela.
func (ContaBancaria) TableName() string {
	return "contas_bancarias"
}

// SetPreferencial marca a conta como preferencial do perfil, desmarcando as
// demais. Limpar e marcar acontecem na mesma transacao, de modo que o
// invariante "uma preferencial por perfil" vale mesmo com gravacoes
// concorrentes no mesmo conjunto de contas.
func SetPreferencial(db *gorm.DB, perfilID, contaID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ContaBancaria{}).
			Where("perfil_empresa_id = ? AND id <> ?", perfilID, contaID).
			Update("preferencial", false).Error; err != nil {
			return err
		}
		res := tx.Model(&ContaBancaria{}).
			Where("id = ? AND perfil_empresa_id = ?", contaID, perfilID).
			Update("preferencial", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
