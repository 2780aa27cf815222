package relatorio

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/GMcontrol/api-pneus/internal/erros"
	"github.com/GMcontrol/api-pneus/internal/manutencao"
	"github.com/GMcontrol/api-pneus/internal/pneu"
	"github.com/GMcontrol/api-pneus/internal/utils"
	"github.com/GMcontrol/api-pneus/internal/veiculo"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler serve as rotas de painel e diagnóstico
type Handler struct {
	DB       *gorm.DB
	Pneus    pneu.Repository
	Veiculos veiculo.Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:       db,
		Pneus:    pneu.NewRepository(),
		Veiculos: veiculo.NewRepository(),
	}
}

// ResumoEstoque devolve os agregados do painel
func (h *Handler) ResumoEstoque(w http.ResponseWriter, r *http.Request) {
	pneus, err := h.Pneus.ListarTodos(h.DB)
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, MontarResumoEstoque(pneus))
}

// InspecaoDoVeiculo devolve a completude da inspeção do dia
func (h *Handler) InspecaoDoVeiculo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Campo: "id", Motivo: "inválido"})
		return
	}

	v, err := h.Veiculos.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ResponderErro(w, &erros.ErroNaoEncontrado{Entidade: "veículo", ID: strconv.Itoa(id)})
			return
		}
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	pneus, err := h.Pneus.ListarPorVeiculo(h.DB, v.ID)
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	utils.ResponderJSON(w, http.StatusOK, MontarInspecaoVeiculo(v, pneus, time.Now()))
}

// DiagnosticoDesgaste classifica o padrão de desgaste do pneu pelas últimas
// leituras de sulco
func (h *Handler) DiagnosticoDesgaste(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Campo: "id", Motivo: "inválido"})
		return
	}

	p, err := h.Pneus.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ResponderErro(w, &erros.ErroNaoEncontrado{Entidade: "pneu", ID: strconv.Itoa(id)})
			return
		}
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	if p.Leituras == nil {
		utils.ResponderErro(w, &erros.ErroEstadoInvalido{
			Operacao: "diagnostico",
			Motivo:   "pneu ainda não tem leituras de sulco registradas",
		})
		return
	}

	l := p.Leituras
	utils.ResponderJSON(w, http.StatusOK, manutencao.AnalisarDesgaste(l.Sulco1, l.Sulco2, l.Sulco3, l.Sulco4))
}
