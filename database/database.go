package database

import (
	"fmt"
	"log"

	"contabil/config"
	"contabil/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init abre a conexao com o banco, configura o pool, roda as migracoes e
// semeia as categorias padrao do sistema.
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("conectando ao banco: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Categoria{},
		&models.Fornecedor{},
		&models.Receita{},
		&models.Despesa{},
		&models.PerfilEmpresa{},
		&models.ContaBancaria{},
		&models.DeclaracaoAnual{},
		&models.PreferenciaUsuario{},
	); err != nil {
		return err
	}

	// Semeia as categorias padrao do sistema (somente se a tabela estiver
	// vazia; categorias padrao tem usuario nulo e sao compartilhadas).
	var catCount int64
	DB.Model(&models.Categoria{}).Count(&catCount)
	if catCount == 0 {
		cats := models.CategoriasPadrao()
		if len(cats) > 0 {
			_ = DB.Create(&cats).Error
		}
	}

	log.Println("banco de dados inicializado")
	return nil
}

// GetDB devolve a conexao com o banco.
func GetDB() *gorm.DB {
	return DB
}
