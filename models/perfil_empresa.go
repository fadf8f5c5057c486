package models

import "gorm.io/gorm"

// PerfilEmpresa guarda os dados cadastrais da empresa, um por usuario.
// E criado sob demanda no primeiro acesso (get-or-create), nao no cadastro.
type PerfilEmpresa struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	UserID        uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Cnpj          string `json:"cnpj" gorm:"size:18"`
	RazaoSocial   string `json:"razao_social" gorm:"size:255"`
	NomeFantasia  string `json:"nome_fantasia" gorm:"size:255"`
	RamoAtividade string `json:"ramo_atividade" gorm:"size:255"`
	Logradouro    string `json:"logradouro" gorm:"size:255"`
	Numero        string `json:"numero" gorm:"size:30"`
	Complemento   string `json:"complemento" gorm:"size:100"`
	Bairro        string `json:"bairro" gorm:"size:100"`
	Municipio     string `json:"municipio" gorm:"size:100"`
	UF            string `json:"uf" gorm:"size:2"`
	CEP           string `json:"cep" gorm:"size:9"`

	Contas []ContaBancaria `json:"contas,omitempty" gorm:"foreignKey:PerfilEmpresaID"`
	User   User            `json:"-" gorm:"foreignKey:UserID"`
}

// TableName define o nome da tabela.
func (PerfilEmpresa) TableName() string {
	return "perfis_empresa"
}

// GetOrCreatePerfil busca o perfil do usuario, criando um registro vazio na
// primeira consulta.
func GetOrCreatePerfil(db *gorm.DB, userID uint) (*PerfilEmpresa, error) {
	var perfil PerfilEmpresa
	err := db.Where(PerfilEmpresa{UserID: userID}).FirstOrCreate(&perfil).Error
	if err != nil {
		return nil, err
	}
	return &perfil, nil
}
