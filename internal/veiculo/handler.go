package veiculo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/GMcontrol/api-pneus/internal/auth"
	"github.com/GMcontrol/api-pneus/internal/erros"
	"github.com/GMcontrol/api-pneus/internal/permissao"
	"github.com/GMcontrol/api-pneus/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// request DTOs
type veiculoRequest struct {
	Placa     string  `json:"placa" validate:"required"`
	Modelo    string  `json:"modelo" validate:"required"`
	Eixos     int     `json:"eixos" validate:"required,oneof=2 3 4"`
	Tipo      string  `json:"tipo" validate:"required,oneof=CAVALO CARRETA"`
	Hodometro float64 `json:"hodometro" validate:"gte=0"`
}

type hodometroRequest struct {
	Hodometro float64 `json:"hodometro" validate:"gte=0"`
}

// ContadorMontados conta pneus atualmente montados no veículo. Injetado
// pelo main a partir do repository de pneus para evitar dependência
// circular entre os pacotes.
type ContadorMontados func(db *gorm.DB, veiculoID uint) (int64, error)

// Handler encapsula DB e repository das rotas de veículo
type Handler struct {
	DB       *gorm.DB
	Repo     Repository
	Montados ContadorMontados
	Log      *logrus.Logger
	validate *validator.Validate
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, montados ContadorMontados, log *logrus.Logger) *Handler {
	return &Handler{
		DB:       db,
		Repo:     NewRepository(),
		Montados: montados,
		Log:      log,
		validate: validator.New(),
	}
}

// Criar registra um veículo novo (PLENO+)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpCadastrarVeiculo); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	var req veiculoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: "payload inválido"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: err.Error()})
		return
	}

	v := Veiculo{
		Placa:     req.Placa,
		Modelo:    req.Modelo,
		Eixos:     req.Eixos,
		Tipo:      req.Tipo,
		Hodometro: req.Hodometro,
	}
	if err := h.Repo.Salvar(h.DB, &v); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	h.Log.WithField("placa", v.Placa).Info("veículo cadastrado")
	utils.ResponderJSON(w, http.StatusCreated, v)
}

// ListarTodos devolve a frota
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	veiculos, err := h.Repo.ListarTodos(h.DB)
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, veiculos)
}

// BuscarPorID devolve um veículo pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	v, ok := h.carregar(w, r)
	if !ok {
		return
	}
	utils.ResponderJSON(w, http.StatusOK, v)
}

// Atualizar edita os dados do veículo (PLENO+). Regressão de hodômetro é
// aceita com aviso no log.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpEditarVeiculo); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	v, ok := h.carregar(w, r)
	if !ok {
		return
	}

	var req veiculoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: "payload inválido"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: err.Error()})
		return
	}

	v.Placa = req.Placa
	v.Modelo = req.Modelo
	v.Eixos = req.Eixos
	v.Tipo = req.Tipo
	if regrediu := v.AtualizarHodometro(req.Hodometro); regrediu {
		h.Log.WithFields(logrus.Fields{"placa": v.Placa, "hodometro": req.Hodometro}).
			Warn("hodômetro regrediu em correção manual")
	}

	if err := h.Repo.Salvar(h.DB, v); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, v)
}

// AtualizarHodometro grava somente a leitura do hodômetro (JUNIOR pode,
// faz parte do fluxo de inspeção)
func (h *Handler) AtualizarHodometro(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpInspecionar); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	v, ok := h.carregar(w, r)
	if !ok {
		return
	}

	var req hodometroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: "payload inválido"})
		return
	}

	if regrediu := v.AtualizarHodometro(req.Hodometro); regrediu {
		h.Log.WithFields(logrus.Fields{"placa": v.Placa, "hodometro": req.Hodometro}).
			Warn("hodômetro regrediu em correção manual")
	}
	if err := h.Repo.Salvar(h.DB, v); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, v)
}

// Remover exclui um veículo (SENIOR). Bloqueado para qualquer nível
// enquanto houver pneu montado nele.
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpRemoverVeiculo); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	v, ok := h.carregar(w, r)
	if !ok {
		return
	}

	montados, err := h.Montados(h.DB, v.ID)
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	if montados > 0 {
		utils.ResponderErro(w, &erros.ErroEstadoInvalido{
			Operacao: "remover-veiculo",
			Motivo:   fmt.Sprintf("veículo %s ainda tem %d pneu(s) montado(s)", v.Placa, montados),
		})
		return
	}

	if err := h.Repo.Remover(h.DB, v.ID); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"mensagem": "veículo removido"})
}

// ListarPosicoes devolve os códigos canônicos de posição do veículo
func (h *Handler) ListarPosicoes(w http.ResponseWriter, r *http.Request) {
	v, ok := h.carregar(w, r)
	if !ok {
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{
		"total":    v.TotalPosicoes(),
		"posicoes": v.Posicoes(),
	})
}

func (h *Handler) carregar(w http.ResponseWriter, r *http.Request) (*Veiculo, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Campo: "id", Motivo: "inválido"})
		return nil, false
	}
	v, err := h.Repo.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ResponderErro(w, &erros.ErroNaoEncontrado{Entidade: "veículo", ID: strconv.Itoa(id)})
			return nil, false
		}
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return nil, false
	}
	return v, true
}
