package api

import (
	"contabil/config"
	"contabil/database"
	"contabil/middleware"
	"contabil/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler cuida de cadastro, login e conta do usuario.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler cria o handler de autenticacao.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// RegisterRequest e o corpo do cadastro.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"maria"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"senha123"`
	Email    string `json:"email" binding:"omitempty,email" example:"maria@exemplo.com.br"`
}

// LoginRequest e o corpo do login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"maria"`
	Password string `json:"password" binding:"required" example:"senha123"`
}

// LoginResponse devolve o token e os dados do usuario.
type LoginResponse struct {
	Token    string      `json:"token"`
	UserInfo models.User `json:"user_info"`
}

// ChangePasswordRequest e o corpo da troca de senha.
type ChangePasswordRequest struct {
	SenhaAtual string `json:"senha_atual" binding:"required"`
	SenhaNova  string `json:"senha_nova" binding:"required,min=6,max=50"`
}

// Register cadastra um usuario
// @Summary Cadastro de usuário
// @Description Cria uma nova conta de usuário
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Dados do cadastro"
// @Success 200 {object} Response{data=models.User} "Cadastro realizado"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 500 {object} Response "Erro interno"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}

	var existente models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existente).Error; err == nil {
		BadRequest(c, "nome de usuário já cadastrado")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "falha ao proteger a senha")
		return
	}

	user := models.User{
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao criar o usuário"))
		return
	}

	SuccessWithMessage(c, "cadastro realizado", user)
}

// Login autentica o usuario
// @Summary Login
// @Description Autentica o usuário e devolve um token JWT
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credenciais"
// @Success 200 {object} Response{data=LoginResponse} "Login realizado"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 401 {object} Response "Usuário ou senha incorretos"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}

	// Aceita login por usuario ou por email.
	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Username).First(&user).Error; err != nil {
		Unauthorized(c, "usuário ou senha incorretos")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "usuário ou senha incorretos")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "falha ao gerar o token")
		return
	}

	SuccessWithMessage(c, "login realizado", LoginResponse{Token: token, UserInfo: user})
}

// Profile devolve o usuario autenticado
// @Summary Perfil do usuário
// @Description Devolve os dados do usuário autenticado
// @Tags Autenticação
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "Dados do usuário"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "usuário não encontrado")
		return
	}
	Success(c, user)
}

// ChangePassword troca a senha do usuario
// @Summary Troca de senha
// @Description Troca a senha do usuário autenticado
// @Tags Autenticação
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Senha atual e nova"
// @Success 200 {object} Response "Senha alterada"
// @Failure 400 {object} Response "Senha atual incorreta"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "usuário não encontrado")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.SenhaAtual)); err != nil {
		BadRequest(c, "senha atual incorreta")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.SenhaNova), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "falha ao proteger a senha")
		return
	}

	if err := database.DB.Model(&user).Update("password", string(hash)).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao alterar a senha"))
		return
	}
	SuccessWithMessage(c, "senha alterada", nil)
}
