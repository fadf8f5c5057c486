package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"contabil/config"
	"contabil/database"
	"contabil/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func cfgTeste() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.JWT.Secret = "segredo-de-teste"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

// routerAutenticado injeta um usuario fixo no contexto, dispensando o
// token nos testes de handler.
func routerAutenticado(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})
	return r
}

func TestAuthHandlerRegister(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := cfgTeste()
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	defer func() { config.GlobalConfig = nil }()

	// Usuario inexistente, o INSERT acontece dentro de transacao.
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("maria").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(cfg)
	r.POST("/register", h.Register)

	body := `{"username":"maria","password":"senha123","email":"maria@exemplo.com.br"}`
	req := httptest.NewRequest("POST", "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(200), resp["code"])
	assert.Equal(t, "cadastro realizado", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandlerRegisterUsuarioDuplicado(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := cfgTeste()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("maria").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "maria", "hash", "maria@exemplo.com.br", time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(cfg)
	r.POST("/register", h.Register)

	body := `{"username":"maria","password":"senha123"}`
	req := httptest.NewRequest("POST", "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "já cadastrado")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandlerLogin(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := cfgTeste()
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	defer func() { config.GlobalConfig = nil }()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("maria", "maria").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email"}).
			AddRow(1, "maria", string(hash), "maria@exemplo.com.br"))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(cfg)
	r.POST("/login", h.Login)

	body := `{"username":"maria","password":"senha123"}`
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	// O token emitido e valido e aponta para o usuario certo.
	claims, err := middleware.ParseToken(data["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandlerLoginSenhaErrada(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := cfgTeste()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	hash, _ := bcrypt.GenerateFromPassword([]byte("senha-certa"), bcrypt.DefaultCost)
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}).
			AddRow(1, "maria", string(hash)))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(cfg)
	r.POST("/login", h.Login)

	body := `{"username":"maria","password":"senha-errada"}`
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "usuário ou senha incorretos")
}
