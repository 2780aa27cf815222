// Package backup implementa exportação e importação em massa do inventário.
package backup

import (
	"time"

	"github.com/GMcontrol/api-pneus/internal/erros"
	"github.com/GMcontrol/api-pneus/internal/pneu"
	"github.com/GMcontrol/api-pneus/internal/veiculo"
)

// Versao do formato de exportação.
const Versao = "3.0.0-postgres"

// TamanhoLote limita cada lote de escrita na importação em massa.
const TamanhoLote = 450

// Arquivo é o envelope de exportação/importação.
type Arquivo struct {
	Pneus       []pneu.Pneu       `json:"pneus"`
	Veiculos    []veiculo.Veiculo `json:"veiculos"`
	ExportadoEm time.Time         `json:"exportadoEm"`
	Versao      string            `json:"versao"`
}

// Exportar monta o envelope com o estado atual.
func Exportar(pneus []pneu.Pneu, veiculos []veiculo.Veiculo) Arquivo {
	return Arquivo{
		Pneus:       pneus,
		Veiculos:    veiculos,
		ExportadoEm: time.Now().UTC(),
		Versao:      Versao,
	}
}

// Validar exige os dois arrays presentes (vazios valem, ausentes não).
func Validar(a *Arquivo) error {
	if a.Pneus == nil {
		return &erros.ErroValidacao{Campo: "pneus", Motivo: "ausente no arquivo de importação"}
	}
	if a.Veiculos == nil {
		return &erros.ErroValidacao{Campo: "veiculos", Motivo: "ausente no arquivo de importação"}
	}
	return nil
}
