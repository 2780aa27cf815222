package usuario

import (
	"encoding/json"
	"net/http"

	"github.com/GMcontrol/api-pneus/internal/auth"
	"github.com/GMcontrol/api-pneus/internal/erros"
	"github.com/GMcontrol/api-pneus/internal/permissao"
	"github.com/GMcontrol/api-pneus/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// request DTOs
type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type criarUsuarioRequest struct {
	Nome  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
	Nivel string `json:"nivel" validate:"required,oneof=JUNIOR PLENO SENIOR"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB       *gorm.DB
	Repo     Repository
	Log      *logrus.Logger
	validate *validator.Validate
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, log *logrus.Logger) *Handler {
	return &Handler{
		DB:       db,
		Repo:     NewRepository(),
		Log:      log,
		validate: validator.New(),
	}
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}
	if !utils.VerificarSenha(u.Senha, req.Senha) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(u.ID, u.Nivel)
	if err != nil {
		h.Log.WithError(err).Error("erro ao gerar token")
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	utils.ResponderJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"nivel": u.Nivel,
	})
}

// Criar cadastra uma conta de acesso (SENIOR)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpCriarUsuario); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	var req criarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: "payload inválido"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: err.Error()})
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}

	u := Usuario{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: hash,
		Nivel: req.Nivel,
	}
	if err := h.Repo.Salvar(h.DB, &u); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	h.Log.WithFields(logrus.Fields{"email": u.Email, "nivel": u.Nivel}).Info("usuário criado")
	utils.ResponderJSON(w, http.StatusCreated, u)
}

// ListarTodos devolve as contas cadastradas (SENIOR)
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpCriarUsuario); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	usuarios, err := h.Repo.ListarTodos(h.DB)
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, usuarios)
}
