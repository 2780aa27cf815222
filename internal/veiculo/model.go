package veiculo

import (
	"fmt"

	"gorm.io/gorm"
)

// Tipos de veículo da frota.
const (
	TipoCavalo  = "CAVALO"  // eixo dianteiro + eixos de tração
	TipoCarreta = "CARRETA" // somente grupos de eixos
)

// Veiculo representa um cavalo mecânico ou uma carreta.
type Veiculo struct {
	gorm.Model
	Placa     string  `gorm:"size:10;uniqueIndex;not null" json:"placa"`
	Modelo    string  `gorm:"size:100" json:"modelo"`
	Eixos     int     `json:"eixos"` // 2, 3 ou 4
	Tipo      string  `gorm:"size:10" json:"tipo"`
	Hodometro float64 `json:"hodometro"` // KM
}

// TotalPosicoes devolve o total de posições de pneu pelo número de eixos:
// 2 eixos -> 6, 3 -> 10, demais -> 14.
func (v *Veiculo) TotalPosicoes() int {
	switch v.Eixos {
	case 2:
		return 6
	case 3:
		return 10
	default:
		return 14
	}
}

// Posicoes devolve os códigos canônicos de posição para o veículo, na ordem
// eixo dianteiro (1E, 1D) seguido dos eixos duplos (nEO, nEI, nDI, nDO).
func (v *Veiculo) Posicoes() []string {
	posicoes := []string{"1E", "1D"}
	for eixo := 2; eixo <= v.Eixos; eixo++ {
		posicoes = append(posicoes,
			fmt.Sprintf("%dEO", eixo),
			fmt.Sprintf("%dEI", eixo),
			fmt.Sprintf("%dDI", eixo),
			fmt.Sprintf("%dDO", eixo),
		)
	}
	return posicoes
}

// AtualizarHodometro grava a nova leitura e informa se houve regressão.
// Leituras menores são aceitas (correção manual), mas o chamador deve
// registrar o aviso: distâncias calculadas sobre regressões zeram no
// desmonte.
func (v *Veiculo) AtualizarHodometro(novo float64) (regrediu bool) {
	regrediu = novo < v.Hodometro
	v.Hodometro = novo
	return regrediu
}
