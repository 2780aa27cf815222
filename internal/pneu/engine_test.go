package pneu

import (
	"testing"

	"github.com/GMcontrol/api-pneus/internal/erros"
	"github.com/GMcontrol/api-pneus/internal/historico"
	"github.com/GMcontrol/api-pneus/internal/permissao"
	"github.com/GMcontrol/api-pneus/internal/veiculo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func pneuBase() Pneu {
	return Pneu{
		NumeroFogo:    "F-001",
		Marca:         "Michelin",
		Modelo:        "X Multi Z",
		Largura:       295,
		Perfil:        80,
		Aro:           22,
		DOT:           "DOT 4T9R",
		Localizacao:   "Estoque A",
		Preco:         2500,
		SulcoOriginal: 18,
		PressaoIdeal:  110,
	}
}

func veiculoBase() *veiculo.Veiculo {
	return &veiculo.Veiculo{
		Model:     gorm.Model{ID: 7},
		Placa:     "ABC1D23",
		Modelo:    "Scania R450",
		Eixos:     3,
		Tipo:      veiculo.TipoCavalo,
		Hodometro: 150000,
	}
}

func TestCadastrar(t *testing.T) {
	p, err := Cadastrar(pneuBase(), permissao.NivelPleno)
	require.NoError(t, err)

	assert.Equal(t, StatusNovo, p.Status)
	assert.Equal(t, p.SulcoOriginal, p.SulcoAtual)
	assert.Equal(t, p.PressaoIdeal, p.Pressao)
	assert.Equal(t, 1, p.Quantidade)
	assert.NotEmpty(t, p.Codigo)
	assert.Zero(t, p.KMTotal)
	assert.Zero(t, p.CustoPorKM)
	assert.Zero(t, p.NumRecapagens)
	assert.Equal(t, p.Preco, p.InvestimentoTotal)

	require.Len(t, p.Historico, 1)
	assert.Equal(t, historico.AcaoCadastrado, p.Historico[0].Acao)
}

func TestCadastrarCamposObrigatorios(t *testing.T) {
	casos := []struct {
		nome    string
		alterar func(*Pneu)
	}{
		{"numeroFogo", func(p *Pneu) { p.NumeroFogo = "" }},
		{"marca", func(p *Pneu) { p.Marca = "" }},
		{"modelo", func(p *Pneu) { p.Modelo = "" }},
		{"dot", func(p *Pneu) { p.DOT = "" }},
		{"localizacao", func(p *Pneu) { p.Localizacao = "" }},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			dados := pneuBase()
			c.alterar(&dados)
			_, err := Cadastrar(dados, permissao.NivelPleno)

			var ev *erros.ErroValidacao
			require.ErrorAs(t, err, &ev)
			assert.Equal(t, c.nome, ev.Campo)
		})
	}
}

func TestMontar(t *testing.T) {
	p, err := Cadastrar(pneuBase(), permissao.NivelPleno)
	require.NoError(t, err)
	v := veiculoBase()

	require.NoError(t, Montar(p, v, "2EO", nil))

	require.NotNil(t, p.VeiculoID)
	assert.Equal(t, v.ID, *p.VeiculoID)
	require.NotNil(t, p.Posicao)
	assert.Equal(t, "2EO", *p.Posicao)
	assert.Equal(t, "ABC1D23 - 2EO", p.Localizacao)
	require.NotNil(t, p.KMInstalacao)
	assert.Equal(t, v.Hodometro, *p.KMInstalacao)
	assert.Equal(t, StatusUsado, p.Status, "pneu novo vira usado na montagem")

	ultima := p.Historico[len(p.Historico)-1]
	assert.Equal(t, historico.AcaoMontado, ultima.Acao)
	assert.Contains(t, ultima.Detalhes, "ABC1D23")
	assert.Contains(t, ultima.Detalhes, "2EO")
}

func TestMontarNaoAlteraStatusRecapado(t *testing.T) {
	p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)
	p.Status = StatusRecapado

	require.NoError(t, Montar(p, veiculoBase(), "1E", nil))
	assert.Equal(t, StatusRecapado, p.Status)
}

func TestMontarPosicaoOcupada(t *testing.T) {
	v := veiculoBase()

	ocupante, _ := Cadastrar(pneuBase(), permissao.NivelPleno)
	ocupante.ID = 10
	require.NoError(t, Montar(ocupante, v, "2EO", nil))

	dados := pneuBase()
	dados.NumeroFogo = "F-002"
	p, _ := Cadastrar(dados, permissao.NivelPleno)
	p.ID = 11

	err := Montar(p, v, "2EO", []Pneu{*ocupante})
	var eo *erros.ErroPosicaoOcupada
	require.ErrorAs(t, err, &eo)
	assert.Equal(t, "2EO", eo.Posicao)
	assert.Equal(t, "F-001", eo.NumeroFogo)

	// nada foi aplicado
	assert.Nil(t, p.VeiculoID)
	assert.Nil(t, p.Posicao)
}

func TestMontarEstadosInvalidos(t *testing.T) {
	v := veiculoBase()

	t.Run("já montado", func(t *testing.T) {
		p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)
		require.NoError(t, Montar(p, v, "1E", nil))

		err := Montar(p, v, "1D", nil)
		var ee *erros.ErroEstadoInvalido
		require.ErrorAs(t, err, &ee)
	})

	t.Run("em recapagem", func(t *testing.T) {
		p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)
		p.Status = StatusEmRecapagem

		var ee *erros.ErroEstadoInvalido
		require.ErrorAs(t, Montar(p, v, "1E", nil), &ee)
	})

	t.Run("danificado", func(t *testing.T) {
		p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)
		p.Status = StatusDanificado

		var ee *erros.ErroEstadoInvalido
		require.ErrorAs(t, Montar(p, v, "1E", nil), &ee)
	})

	t.Run("posição vazia", func(t *testing.T) {
		p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)

		var ev *erros.ErroValidacao
		require.ErrorAs(t, Montar(p, v, "", nil), &ev)
	})
}

func TestDesmontarAcumulaKMsECalculaCPK(t *testing.T) {
	p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)
	v := veiculoBase()
	require.NoError(t, Montar(p, v, "2EO", nil))

	kms, err := Desmontar(p, v.Hodometro+40000)
	require.NoError(t, err)

	assert.Equal(t, float64(40000), kms)
	assert.Equal(t, float64(40000), p.KMTotal)
	assert.InDelta(t, 2500.0/40000.0, p.CustoPorKM, 1e-9)
	assert.Nil(t, p.VeiculoID)
	assert.Nil(t, p.Posicao)
	assert.Nil(t, p.KMInstalacao)
	assert.Equal(t, LocalEstoqueRetorno, p.Localizacao)

	ultima := p.Historico[len(p.Historico)-1]
	assert.Equal(t, historico.AcaoDesmontado, ultima.Acao)
}

func TestDesmontarDeltaNegativoZera(t *testing.T) {
	p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)
	v := veiculoBase()
	require.NoError(t, Montar(p, v, "2EO", nil))

	kms, err := Desmontar(p, v.Hodometro-5000)
	require.NoError(t, err)

	assert.Zero(t, kms)
	assert.Zero(t, p.KMTotal)
	assert.Zero(t, p.CustoPorKM, "CPK é zero quando não há quilometragem")
}

func TestDesmontarSemMontagem(t *testing.T) {
	p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)

	_, err := Desmontar(p, 1000)
	var ee *erros.ErroEstadoInvalido
	require.ErrorAs(t, err, &ee)
}

func TestCicloDeRecapagem(t *testing.T) {
	p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)

	require.NoError(t, EnviarRecapagem(p))
	assert.Equal(t, StatusEmRecapagem, p.Status)
	assert.Equal(t, LocalReformadora, p.Localizacao)

	require.NoError(t, ReceberRecapagem(p, 800, 15))
	assert.Equal(t, StatusRecapado, p.Status)
	assert.Equal(t, 1, p.NumRecapagens)
	assert.Equal(t, 2500.0+800, p.InvestimentoTotal)
	assert.Equal(t, 15.0, p.SulcoAtual)
	assert.Equal(t, LocalEstoqueRecapado, p.Localizacao)
}

func TestRecapagemNCiclos(t *testing.T) {
	p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)

	const ciclos = 3
	for i := 0; i < ciclos; i++ {
		require.NoError(t, EnviarRecapagem(p))
		require.NoError(t, ReceberRecapagem(p, 500, 15))
	}

	assert.Equal(t, ciclos, p.NumRecapagens)
	assert.Equal(t, 2500.0+ciclos*500, p.InvestimentoTotal)
}

func TestRecapagemPrecondicoes(t *testing.T) {
	t.Run("enviar montado", func(t *testing.T) {
		p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)
		require.NoError(t, Montar(p, veiculoBase(), "1E", nil))

		var ee *erros.ErroEstadoInvalido
		require.ErrorAs(t, EnviarRecapagem(p), &ee)
	})

	t.Run("enviar duas vezes", func(t *testing.T) {
		p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)
		require.NoError(t, EnviarRecapagem(p))

		var ee *erros.ErroEstadoInvalido
		require.ErrorAs(t, EnviarRecapagem(p), &ee)
	})

	t.Run("receber sem enviar", func(t *testing.T) {
		p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)

		var ee *erros.ErroEstadoInvalido
		require.ErrorAs(t, ReceberRecapagem(p, 500, 15), &ee)
	})
}

func TestRegistrarInspecao(t *testing.T) {
	p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)

	leituras := LeituraSulcos{Sulco1: 12.26, Sulco2: 13, Sulco3: 13.5, Sulco4: 14}
	require.NoError(t, RegistrarInspecao(p, leituras, 105))

	assert.InDelta(t, 12.3, p.SulcoAtual, 1e-9, "pior sulco arredondado a uma casa")
	require.NotNil(t, p.Leituras)
	assert.Equal(t, leituras, *p.Leituras)
	assert.Equal(t, 105.0, p.Pressao)
	require.NotNil(t, p.UltimaInspecao)

	ultima := p.Historico[len(p.Historico)-1]
	assert.Equal(t, historico.AcaoInspecao, ultima.Acao)
	assert.Contains(t, ultima.Detalhes, "105 PSI")
}

func TestRegistrarInspecaoLeituraNegativa(t *testing.T) {
	p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)

	err := RegistrarInspecao(p, LeituraSulcos{Sulco1: -1, Sulco2: 10, Sulco3: 10, Sulco4: 10}, 100)
	var ev *erros.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Nil(t, p.Leituras, "nada aplicado em caso de erro")
}

func TestRegistrarReparo(t *testing.T) {
	p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)
	antes := *p

	require.NoError(t, RegistrarReparo(p, "Vulcanização no flanco"))

	ultima := p.Historico[len(p.Historico)-1]
	assert.Equal(t, historico.AcaoReparo, ultima.Acao)
	assert.Equal(t, "Vulcanização no flanco", ultima.Detalhes)
	assert.Equal(t, antes.Status, p.Status, "reparo não muda campos além do histórico")
	assert.Equal(t, antes.SulcoAtual, p.SulcoAtual)
}

func TestRegistrarReparoSemDetalhes(t *testing.T) {
	p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)

	var ev *erros.ErroValidacao
	require.ErrorAs(t, RegistrarReparo(p, ""), &ev)
}

func TestHistoricoApenasCresce(t *testing.T) {
	p, _ := Cadastrar(pneuBase(), permissao.NivelPleno)
	v := veiculoBase()

	require.NoError(t, Montar(p, v, "1E", nil))
	_, err := Desmontar(p, v.Hodometro+100)
	require.NoError(t, err)
	require.NoError(t, EnviarRecapagem(p))
	require.NoError(t, ReceberRecapagem(p, 300, 15))

	acoes := make([]string, 0, len(p.Historico))
	for _, reg := range p.Historico {
		acoes = append(acoes, reg.Acao)
	}
	assert.Equal(t, []string{
		historico.AcaoCadastrado,
		historico.AcaoMontado,
		historico.AcaoDesmontado,
		historico.AcaoEnviadoRecapagem,
		historico.AcaoRetornoRecapagem,
	}, acoes)
}
