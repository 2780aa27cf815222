package backup

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GMcontrol/api-pneus/internal/auth"
	"github.com/GMcontrol/api-pneus/internal/erros"
	"github.com/GMcontrol/api-pneus/internal/permissao"
	"github.com/GMcontrol/api-pneus/internal/pneu"
	"github.com/GMcontrol/api-pneus/internal/utils"
	"github.com/GMcontrol/api-pneus/internal/veiculo"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type importarRequest struct {
	Arquivo
	// Confirmar precisa vir explícito: a importação sobrescreve o estado
	// remoto via upsert em lote.
	Confirmar bool `json:"confirmar"`
}

// Handler serve as rotas de exportação/importação (SENIOR)
type Handler struct {
	DB       *gorm.DB
	Pneus    pneu.Repository
	Veiculos veiculo.Repository
	Log      *logrus.Logger
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, log *logrus.Logger) *Handler {
	return &Handler{
		DB:       db,
		Pneus:    pneu.NewRepository(),
		Veiculos: veiculo.NewRepository(),
		Log:      log,
	}
}

// Exportar devolve o envelope completo de backup
func (h *Handler) Exportar(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpExportar); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	pneus, err := h.Pneus.ListarTodos(h.DB)
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	veiculos, err := h.Veiculos.ListarTodos(h.DB)
	if err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	arquivo := Exportar(pneus, veiculos)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="GMcontrol_Backup_%s.json"`, time.Now().Format("2006-01-02")))
	json.NewEncoder(w).Encode(arquivo)
}

// Importar restaura um backup por upsert sequencial em lotes de até 450
// registros. Lotes já gravados permanecem se um lote posterior falhar.
func (h *Handler) Importar(w http.ResponseWriter, r *http.Request) {
	nivel := auth.NivelDoContexto(r.Context())
	if err := permissao.Autorizar(nivel, permissao.OpImportar); err != nil {
		utils.ResponderErro(w, err)
		return
	}

	var req importarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, &erros.ErroValidacao{Motivo: "payload inválido"})
		return
	}
	if err := Validar(&req.Arquivo); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if !req.Confirmar {
		utils.ResponderErro(w, &erros.ErroValidacao{
			Campo:  "confirmar",
			Motivo: "deve ser true: a importação sobrescreve os dados atuais",
		})
		return
	}

	if err := h.Veiculos.SalvarEmLotes(h.DB, req.Veiculos, TamanhoLote); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}
	if err := h.Pneus.SalvarEmLotes(h.DB, req.Pneus, TamanhoLote); err != nil {
		utils.ResponderErro(w, &erros.ErroArmazenamento{Err: err})
		return
	}

	h.Log.WithFields(logrus.Fields{
		"pneus":    len(req.Pneus),
		"veiculos": len(req.Veiculos),
		"versao":   req.Versao,
	}).Info("backup importado")
	utils.ResponderJSON(w, http.StatusOK, map[string]int{
		"pneusImportados":    len(req.Pneus),
		"veiculosImportados": len(req.Veiculos),
	})
}
