package ia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GMcontrol/api-pneus/internal/erros"
	"github.com/GMcontrol/api-pneus/internal/pneu"
	"github.com/GMcontrol/api-pneus/internal/utils"
	"github.com/GMcontrol/api-pneus/internal/veiculo"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type chatRequest struct {
	Historico []string `json:"historico"`
	Mensagem  string   `json:"mensagem"`
}

// Handler serve as rotas de narrativa de IA
type Handler struct {
	DB       *gorm.DB
	Servico  *Servico
	Pneus    pneu.Repository
	Veiculos veiculo.Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, servico *Servico) *Handler {
	return &Handler{
		DB:       db,
		Servico:  servico,
		Pneus:    pneu.NewRepository(),
		Veiculos: veiculo.NewRepository(),
	}
}

// AnalisarEstoque devolve a análise executiva do inventário
func (h *Handler) AnalisarEstoque(w http.ResponseWriter, r *http.Request) {
	pneus, err := h.Pneus.ListarTodos(h.DB)
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	texto := h.Servico.AnalisarEstoque(r.Context(), pneus)
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"analise": texto})
}

// GerarLaudo devolve o laudo de inspeção do veículo
func (h *Handler) GerarLaudo(w http.ResponseWriter, r *http.Request) {
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

	montados, err := h.Pneus.ListarPorVeiculo(h.DB, v.ID)
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	texto := h.Servico.GerarLaudoInspecao(r.Context(), v, montados)
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"laudo": texto})
}

// Chat responde o assistente virtual com o inventário como contexto
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: "payload inválido"})
		return
	}
	if req.Mensagem == "" {
		utils.ResponderErro(w, &erros.ErroValidacao{Campo: "mensagem", Motivo: "é obrigatória"})
		return
	}

	pneus, err := h.Pneus.ListarTodos(h.DB)
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	texto := h.Servico.Chat(r.Context(), req.Historico, req.Mensagem, pneus)
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"resposta": texto})
}
