package manutencao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalisarDesgaste(t *testing.T) {
	tests := []struct {
		nome           string
		d1, d2, d3, d4 float64
		status         string
		aviso          string
	}{
		{
			nome: "uniforme é regular",
			d1:   10, d2: 10, d3: 10, d4: 10,
			status: DesgasteRegular,
			aviso:  AvisoRegular,
		},
		{
			nome: "delta acima de 3 é crítico",
			d1:   10, d2: 10, d3: 10, d4: 2,
			status: DesgasteIrregularCritico,
			aviso:  AvisoCritico,
		},
		{
			nome: "delta 4 é crítico mesmo com padrão de ombros",
			d1:   9, d2: 8, d3: 7, d4: 5,
			status: DesgasteIrregularCritico,
			aviso:  AvisoCritico,
		},
		{
			nome: "centro baixo indica excesso de pressão",
			d1:   8, d2: 6, d3: 6, d4: 8,
			status: DesgasteIrregularLeve,
			aviso:  AvisoCentral,
		},
		{
			nome: "ombros baixos indicam pressão baixa",
			d1:   6, d2: 8, d3: 8, d4: 6,
			status: DesgasteIrregularLeve,
			aviso:  AvisoOmbros,
		},
		{
			nome: "externo mais baixo indica desgaste unilateral externo",
			d1:   6, d2: 7, d3: 7.5, d4: 8,
			status: DesgasteIrregularLeve,
			aviso:  AvisoUnilateralExterno,
		},
		{
			nome: "interno mais baixo indica desgaste unilateral interno",
			d1:   8, d2: 7.5, d3: 7, d4: 6,
			status: DesgasteIrregularLeve,
			aviso:  AvisoUnilateralInterno,
		},
		{
			nome: "delta exatamente 3 ainda é leve",
			d1:   9, d2: 8, d3: 7, d4: 6,
			status: DesgasteIrregularLeve,
			aviso:  AvisoUnilateralInterno,
		},
		{
			nome: "delta exatamente 1.5 ainda é regular",
			d1:   9, d2: 8.5, d3: 8, d4: 7.5,
			status: DesgasteRegular,
			aviso:  AvisoRegular,
		},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			a := AnalisarDesgaste(tt.d1, tt.d2, tt.d3, tt.d4)
			assert.Equal(t, tt.status, a.Status)
			assert.Equal(t, tt.aviso, a.Aviso)
		})
	}
}

func TestAnalisarDesgasteOmbrosVemAntesDeUnilateral(t *testing.T) {
	// Padrão que casa com ombros e também com d1 < d4: o subcaso de ombros
	// vence por ser avaliado primeiro.
	a := AnalisarDesgaste(6, 8, 8.2, 6.5)
	assert.Equal(t, DesgasteIrregularLeve, a.Status)
	assert.Equal(t, AvisoOmbros, a.Aviso)
}

func TestAnalisarDesgasteMediaEDelta(t *testing.T) {
	a := AnalisarDesgaste(8, 6, 6, 8)
	assert.InDelta(t, 7.0, a.Media, 1e-9)
	assert.InDelta(t, 2.0, a.Delta, 1e-9)
}
