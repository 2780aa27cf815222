package pneu

import (
	"time"

	"github.com/GMcontrol/api-pneus/internal/historico"
	"gorm.io/gorm"
)

// Status de vida do pneu. Os textos seguem o padrão dos relatórios da frota.
const (
	StatusNovo        = "Novo"
	StatusUsado       = "Usado"
	StatusEmRecapagem = "Em Recapagem"
	StatusRecapado    = "Recauchutado"
	StatusDanificado  = "Danificado/Descarte"
)

// Marcadores de localização usados pelo motor de movimentação.
const (
	LocalEstoqueRetorno  = "Estoque (Retorno)"
	LocalReformadora     = "Reformadora"
	LocalEstoqueRecapado = "Estoque (Recapado)"
)

// LeituraSulcos guarda a profundidade medida nos quatro sulcos, do externo
// para o interno.
type LeituraSulcos struct {
	Sulco1 float64 `json:"sulco1"` // externo
	Sulco2 float64 `json:"sulco2"` // central 1
	Sulco3 float64 `json:"sulco3"` // central 2
	Sulco4 float64 `json:"sulco4"` // interno
}

// Pneu é o ativo físico rastreado individualmente pela numeração de fogo.
type Pneu struct {
	gorm.Model
	Codigo     string `gorm:"size:36;uniqueIndex;not null" json:"codigo"` // id público (QR)
	NumeroFogo string `gorm:"size:30;uniqueIndex;not null" json:"numeroFogo"`

	Marca   string `gorm:"size:60;not null" json:"marca"`
	Modelo  string `gorm:"size:100;not null" json:"modelo"`
	Largura int    `json:"largura"`
	Perfil  int    `json:"perfil"`
	Aro     int    `json:"aro"`
	DOT     string `gorm:"size:20;not null" json:"dot"`

	Status      string  `gorm:"size:30;not null" json:"status"`
	Localizacao string  `gorm:"size:120" json:"localizacao"`
	Quantidade  int     `json:"quantidade"`
	Preco       float64 `json:"preco"`
	Observacoes string  `gorm:"type:text" json:"observacoes,omitempty"`

	// Montagem atual. VeiculoID e Posicao andam sempre juntos.
	VeiculoID    *uint    `gorm:"index" json:"veiculoId,omitempty"`
	Posicao      *string  `gorm:"size:5" json:"posicao,omitempty"`
	KMInstalacao *float64 `json:"kmInstalacao,omitempty"`

	// Acumuladores financeiros.
	KMTotal           float64 `json:"kmTotal"`
	InvestimentoTotal float64 `json:"investimentoTotal"` // compra + reformas
	CustoPorKM        float64 `json:"custoPorKm"`
	NumRecapagens     int     `json:"numRecapagens"` // 0 = primeira vida

	// Estado de desgaste.
	SulcoOriginal  float64        `json:"sulcoOriginal"` // mm
	SulcoAtual     float64        `json:"sulcoAtual"`    // mm (pior sulco)
	Leituras       *LeituraSulcos `gorm:"type:jsonb;serializer:json" json:"leituras,omitempty"`
	Pressao        float64        `json:"pressao"`      // PSI
	PressaoIdeal   float64        `json:"pressaoIdeal"` // PSI
	UltimaInspecao *time.Time     `json:"ultimaInspecao,omitempty"`

	Historico []historico.Registro `gorm:"foreignKey:PneuID;constraint:OnDelete:CASCADE" json:"historico"`
}

// Montado informa se o pneu está instalado em algum veículo.
func (p *Pneu) Montado() bool {
	return p.VeiculoID != nil
}

// Disponivel informa se o pneu pode ser montado: fora de veículo e fora de
// recapagem/descarte.
func (p *Pneu) Disponivel() bool {
	return !p.Montado() && p.Status != StatusEmRecapagem && p.Status != StatusDanificado
}
