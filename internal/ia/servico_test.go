package ia

import (
	"context"
	"io"
	"testing"

	"github.com/GMcontrol/api-pneus/internal/pneu"
	"github.com/GMcontrol/api-pneus/internal/veiculo"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func novoServicoSemChave(t *testing.T) *Servico {
	t.Setenv("OPENAI_API_KEY", "")
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NovoServico(log)
}

func TestServicoSemChaveDegrada(t *testing.T) {
	s := novoServicoSemChave(t)
	ctx := context.Background()

	pneus := []pneu.Pneu{{Marca: "Michelin", Modelo: "X Multi Z", Quantidade: 2, Status: pneu.StatusNovo}}
	v := &veiculo.Veiculo{Placa: "ABC1D23", Modelo: "Scania R450", Eixos: 3}

	assert.Equal(t, MsgIndisponivel, s.AnalisarEstoque(ctx, pneus))
	assert.Equal(t, MsgIndisponivel, s.GerarLaudoInspecao(ctx, v, pneus))
	assert.Equal(t, MsgIndisponivel, s.Chat(ctx, nil, "quantos pneus novos temos?", pneus))
}

func TestNovoServicoModeloPadrao(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")

	log := logrus.New()
	log.SetOutput(io.Discard)

	s := NovoServico(log)
	assert.Equal(t, modeloPadrao, s.modelo)
}

func TestNovoServicoModeloCustomizado(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "gpt-4o")

	log := logrus.New()
	log.SetOutput(io.Discard)

	s := NovoServico(log)
	assert.Equal(t, "gpt-4o", s.modelo)
}
