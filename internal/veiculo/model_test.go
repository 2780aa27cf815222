package veiculo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosicoes(t *testing.T) {
	v := &Veiculo{Eixos: 3, Tipo: TipoCavalo}

	posicoes := v.Posicoes()
	assert.Equal(t, []string{
		"1E", "1D",
		"2EO", "2EI", "2DI", "2DO",
		"3EO", "3EI", "3DI", "3DO",
	}, posicoes)
	assert.Len(t, posicoes, v.TotalPosicoes())
}

func TestPosicoesCobremTotalPorEixos(t *testing.T) {
	for _, eixos := range []int{2, 3, 4} {
		v := &Veiculo{Eixos: eixos}
		assert.Len(t, v.Posicoes(), v.TotalPosicoes(), "eixos=%d", eixos)
	}
}

func TestAtualizarHodometro(t *testing.T) {
	v := &Veiculo{Hodometro: 100000}

	regrediu := v.AtualizarHodometro(105000)
	assert.False(t, regrediu)
	assert.Equal(t, 105000.0, v.Hodometro)

	// Correção manual para trás é aceita, mas sinalizada.
	regrediu = v.AtualizarHodometro(90000)
	assert.True(t, regrediu)
	assert.Equal(t, 90000.0, v.Hodometro)
}
