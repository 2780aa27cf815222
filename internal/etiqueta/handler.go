package etiqueta

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GMcontrol/api-pneus/internal/erros"
	"github.com/GMcontrol/api-pneus/internal/pneu"
	"github.com/GMcontrol/api-pneus/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler serve a etiqueta QR dos pneus
type Handler struct {
	DB    *gorm.DB
	Pneus pneu.Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Pneus: pneu.NewRepository()}
}

// Gerar devolve a etiqueta do pneu: PNG por padrão, payload JSON com
// ?formato=json. O tamanho em pixels pode ser ajustado com ?tamanho=N.
func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
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

	if r.URL.Query().Get("formato") == "json" {
		utils.ResponderJSON(w, http.StatusOK, Payload{ID: p.Codigo, Fire: p.NumeroFogo})
		return
	}

	tamanho, _ := strconv.Atoi(r.URL.Query().Get("tamanho"))
	png, err := GerarPNG(p.Codigo, p.NumeroFogo, tamanho)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
