package historico

import "time"

// Ações registradas na vida de um pneu.
const (
	AcaoCadastrado       = "CADASTRADO"
	AcaoMontado          = "MONTADO"
	AcaoDesmontado       = "DESMONTADO"
	AcaoEditado          = "EDITADO"
	AcaoInspecao         = "INSPECAO"
	AcaoReparo           = "REPARO"
	AcaoEnviadoRecapagem = "ENVIADO_RECAPAGEM"
	AcaoRetornoRecapagem = "RETORNO_RECAPAGEM"
)

// Registro é uma entrada imutável do histórico de um pneu. Entradas são
// apenas inseridas, nunca alteradas ou removidas, em ordem cronológica.
type Registro struct {
	ID        uint      `gorm:"primaryKey" json:"ID"`
	CreatedAt time.Time `json:"data"`
	PneuID    uint      `gorm:"not null;index" json:"pneuId"`
	Acao      string    `gorm:"size:30;not null" json:"acao"`
	Detalhes  string    `gorm:"type:text" json:"detalhes"`
}
