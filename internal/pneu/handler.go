package pneu

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/GMcontrol/api-pneus/internal/auth"
	"github.com/GMcontrol/api-pneus/internal/erros"
	"github.com/GMcontrol/api-pneus/internal/historico"
	"github.com/GMcontrol/api-pneus/internal/permissao"
	"github.com/GMcontrol/api-pneus/internal/utils"
	"github.com/GMcontrol/api-pneus/internal/veiculo"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler encapsula DB e repositories das rotas de pneu
type Handler struct {
	DB        *gorm.DB
	Repo      Repository
	Veiculos  veiculo.Repository
	Historico historico.Repository
	Log       *logrus.Logger

	// AposInspecao roda após cada inspeção persistida de pneu montado
	// (gancho para completude de inspeção do veículo e webhook).
	AposInspecao func(veiculoID uint)

	validate *validator.Validate
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, log *logrus.Logger) *Handler {
	return &Handler{
		DB:        db,
		Repo:      NewRepository(),
		Veiculos:  veiculo.NewRepository(),
		Historico: historico.NewRepository(),
		Log:       log,
		validate:  validator.New(),
	}
}

// Cadastrar registra um pneu novo (PLENO+)
func (h *Handler) Cadastrar(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpCadastrarPneu); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	var req cadastroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: "payload inválido"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: err.Error()})
		return
	}

	p, err := Cadastrar(Pneu{
		NumeroFogo:    req.NumeroFogo,
		Marca:         req.Marca,
		Modelo:        req.Modelo,
		Largura:       req.Largura,
		Perfil:        req.Perfil,
		Aro:           req.Aro,
		DOT:           req.DOT,
		Localizacao:   req.Localizacao,
		Quantidade:    req.Quantidade,
		Preco:         req.Preco,
		Observacoes:   req.Observacoes,
		SulcoOriginal: req.SulcoOriginal,
		PressaoIdeal:  req.PressaoIdeal,
	}, nivel)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}

	if err := h.Repo.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	h.Log.WithFields(logrus.Fields{"pneu": p.NumeroFogo, "codigo": p.Codigo}).Info("pneu cadastrado")
	utils.ResponderJSON(w, http.StatusCreated, p)
}

// ListarTodos retorna o inventário completo
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	pneus, err := h.Repo.ListarTodos(h.DB)
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, pneus)
}

// BuscarPorID retorna um pneu pelo ID interno
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	p, ok := h.carregar(w, r)
	if !ok {
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// BuscarPorFogo retorna um pneu pela numeração de fogo (fluxo de scanner)
func (h *Handler) BuscarPorFogo(w http.ResponseWriter, r *http.Request) {
	fogo := mux.Vars(r)["fogo"]
	p, err := h.Repo.BuscarPorFogo(h.DB, fogo)
	if err != nil {
		h.responderBusca(w, err, fogo)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// Atualizar edita os dados de cadastro de um pneu (PLENO+)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpEditarPneu); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	p, ok := h.carregar(w, r)
	if !ok {
		return
	}

	var req edicaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: "payload inválido"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: err.Error()})
		return
	}

	p.Marca = req.Marca
	p.Modelo = req.Modelo
	p.Largura = req.Largura
	p.Perfil = req.Perfil
	p.Aro = req.Aro
	p.DOT = req.DOT
	p.Quantidade = req.Quantidade
	p.Preco = req.Preco
	p.Observacoes = req.Observacoes
	p.SulcoOriginal = req.SulcoOriginal
	p.PressaoIdeal = req.PressaoIdeal
	if !p.Montado() {
		p.Localizacao = req.Localizacao
	}
	RegistrarEdicao(p, nivel)

	if err := h.Repo.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// Remover exclui um pneu permanentemente (SENIOR). Pneu montado ainda pode
// ser removido; fica apenas o aviso no log.
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpRemoverPneu); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	p, ok := h.carregar(w, r)
	if !ok {
		return
	}
	if p.Montado() {
		h.Log.WithField("pneu", p.NumeroFogo).Warn("removendo pneu ainda montado em veículo")
	}

	if err := h.Repo.Remover(h.DB, p.ID); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"mensagem": "pneu removido"})
}

// Montar instala o pneu em uma posição do veículo
func (h *Handler) Montar(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpMontar); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	p, ok := h.carregar(w, r)
	if !ok {
		return
	}

	var req montarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: "payload inválido"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: err.Error()})
		return
	}

	v, err := h.Veiculos.BuscarPorID(h.DB, req.VeiculoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ResponderErro(w, &erros.ErroNaoEncontrado{Entidade: "veículo", ID: strconv.Itoa(int(req.VeiculoID))})
			return
		}
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	montados, err := h.Repo.ListarPorVeiculo(h.DB, v.ID)
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	if err := Montar(p, v, req.Posicao, montados); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if err := h.Repo.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	h.Log.WithFields(logrus.Fields{"pneu": p.NumeroFogo, "veiculo": v.Placa, "posicao": req.Posicao}).Info("pneu montado")
	utils.ResponderJSON(w, http.StatusOK, p)
}

// Desmontar retira o pneu do veículo com a leitura final do hodômetro
func (h *Handler) Desmontar(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpDesmontar); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	p, ok := h.carregar(w, r)
	if !ok {
		return
	}

	var req desmontarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: "payload inválido"})
		return
	}

	kms, err := Desmontar(p, req.KMFinal)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if err := h.Repo.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	h.Log.WithFields(logrus.Fields{"pneu": p.NumeroFogo, "kmsRodados": kms}).Info("pneu desmontado")
	utils.ResponderJSON(w, http.StatusOK, p)
}

// EnviarRecapagem manda o pneu para a reformadora (PLENO+)
func (h *Handler) EnviarRecapagem(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpEnviarRecapagem); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	p, ok := h.carregar(w, r)
	if !ok {
		return
	}
	if err := EnviarRecapagem(p); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if err := h.Repo.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// ReceberRecapagem recebe o pneu reformado de volta (PLENO+)
func (h *Handler) ReceberRecapagem(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpReceberRecapagem); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	p, ok := h.carregar(w, r)
	if !ok {
		return
	}

	var req receberRecapagemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: "payload inválido"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: err.Error()})
		return
	}

	if err := ReceberRecapagem(p, req.Custo, req.NovoSulco); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if err := h.Repo.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// RegistrarInspecao grava as leituras dos quatro sulcos e a pressão
func (h *Handler) RegistrarInspecao(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpInspecionar); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	p, ok := h.carregar(w, r)
	if !ok {
		return
	}

	var req inspecaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: "payload inválido"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: err.Error()})
		return
	}

	leituras := LeituraSulcos{Sulco1: req.Sulco1, Sulco2: req.Sulco2, Sulco3: req.Sulco3, Sulco4: req.Sulco4}
	if err := RegistrarInspecao(p, leituras, req.Pressao); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if err := h.Repo.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	if p.Montado() && h.AposInspecao != nil {
		go h.AposInspecao(*p.VeiculoID)
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// RegistrarReparo anexa um registro de reparo ao histórico
func (h *Handler) RegistrarReparo(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpReparar); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	p, ok := h.carregar(w, r)
	if !ok {
		return
	}

	var req reparoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: "payload inválido"})
		return
	}

	if err := RegistrarReparo(p, req.Detalhes); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if err := h.Repo.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// ListarHistorico devolve o histórico do pneu em ordem cronológica
func (h *Handler) ListarHistorico(w http.ResponseWriter, r *http.Request) {
	p, ok := h.carregar(w, r)
	if !ok {
		return
	}
	registros, err := h.Historico.ListarPorPneu(h.DB, p.ID)
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, registros)
}

// ListarPorVeiculo devolve os pneus montados em um veículo
func (h *Handler) ListarPorVeiculo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Campo: "id", Motivo: "inválido"})
		return
	}
	pneus, err := h.Repo.ListarPorVeiculo(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	utils.ResponderJSON(w, http.StatusOK, pneus)
}

// carregar busca o pneu da rota e responde o erro adequado quando falha.
func (h *Handler) carregar(w http.ResponseWriter, r *http.Request) (*Pneu, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Campo: "id", Motivo: "inválido"})
		return nil, false
	}
	p, err := h.Repo.BuscarPorID(h.DB, uint(id))
	if err != nil {
		h.responderBusca(w, err, fmt.Sprint(id))
		return nil, false
	}
	return p, true
}

func (h *Handler) responderBusca(w http.ResponseWriter, err error, id string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.ResponderErro(w, &erros.ErroNaoEncontrado{Entidade: "pneu", ID: id})
		return
	}
	utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
}
