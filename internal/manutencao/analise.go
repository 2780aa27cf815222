// Package manutencao classifica o padrão de desgaste a partir das quatro
// leituras de sulco de uma inspeção. O resultado é recalculado sob demanda
// e nunca persistido.
package manutencao

import "math"

// Classificações de desgaste.
const (
	DesgasteRegular          = "Desgaste Regular"
	DesgasteIrregularLeve    = "Desgaste Irregular Leve"
	DesgasteIrregularCritico = "Desgaste Irregular Crítico"
)

// Recomendações por padrão detectado.
const (
	AvisoRegular           = "Pneu desgastando uniformemente."
	AvisoCritico           = "Diferença acentuada entre sulcos. Verificar alinhamento/suspensão urgentemente."
	AvisoOmbros            = "Desgaste nos ombros (Baixa Pressão)."
	AvisoCentral           = "Desgaste central (Excesso de Pressão)."
	AvisoUnilateralExterno = "Desgaste unilateral externo (Camber/Convergência)."
	AvisoUnilateralInterno = "Desgaste unilateral interno (Camber/Divergência)."
)

// Analise é o diagnóstico de desgaste de um pneu.
type Analise struct {
	Status string  `json:"status"`
	Aviso  string  `json:"aviso"`
	Media  float64 `json:"media"`
	Delta  float64 `json:"delta"` // maior sulco - menor sulco
}

// AnalisarDesgaste aplica a tabela de decisão sobre as leituras d1..d4
// (sulco externo para o interno, em mm). A ordem dos testes é fixa:
// crítico primeiro, depois leve com os subcasos na ordem ombros, centro,
// unilateral externo, unilateral interno. O primeiro que casar vence.
func AnalisarDesgaste(d1, d2, d3, d4 float64) Analise {
	media := (d1 + d2 + d3 + d4) / 4
	maior := math.Max(math.Max(d1, d2), math.Max(d3, d4))
	menor := math.Min(math.Min(d1, d2), math.Min(d3, d4))
	delta := maior - menor

	a := Analise{Status: DesgasteRegular, Aviso: AvisoRegular, Media: media, Delta: delta}

	if delta > 3 {
		a.Status = DesgasteIrregularCritico
		a.Aviso = AvisoCritico
		return a
	}
	if delta > 1.5 {
		a.Status = DesgasteIrregularLeve
		switch {
		case d1 < d2 && d4 < d3:
			a.Aviso = AvisoOmbros
		case d2 < d1 && d3 < d4:
			a.Aviso = AvisoCentral
		case d1 < d4:
			a.Aviso = AvisoUnilateralExterno
		default:
			a.Aviso = AvisoUnilateralInterno
		}
	}
	return a
}
