package pneu

import (
	"fmt"
	"math"
	"time"

	"github.com/GMcontrol/api-pneus/internal/erros"
	"github.com/GMcontrol/api-pneus/internal/historico"
	"github.com/GMcontrol/api-pneus/internal/permissao"
	"github.com/GMcontrol/api-pneus/internal/veiculo"
	"github.com/google/uuid"
)

// Motor de ciclo de vida do pneu. Cada operação valida as precondições por
// completo antes de alterar qualquer campo, de modo que um erro nunca deixa
// o pneu meio-atualizado. O chamador persiste a entidade devolvida.

// Cadastrar monta um pneu novo a partir dos dados informados. Campos
// obrigatórios: numeração de fogo, marca, modelo, DOT e localização.
func Cadastrar(dados Pneu, nivel permissao.Nivel) (*Pneu, error) {
	obrigatorios := map[string]string{
		"numeroFogo":  dados.NumeroFogo,
		"marca":       dados.Marca,
		"modelo":      dados.Modelo,
		"dot":         dados.DOT,
		"localizacao": dados.Localizacao,
	}
	for campo, valor := range obrigatorios {
		if valor == "" {
			return nil, &erros.ErroValidacao{Campo: campo, Motivo: "é obrigatório"}
		}
	}

	p := dados
	p.Codigo = uuid.NewString()
	if p.Status == "" {
		p.Status = StatusNovo
	}
	if p.Quantidade <= 0 {
		p.Quantidade = 1
	}
	p.SulcoAtual = p.SulcoOriginal
	p.Pressao = p.PressaoIdeal
	p.VeiculoID = nil
	p.Posicao = nil
	p.KMInstalacao = nil
	p.KMTotal = 0
	p.InvestimentoTotal = p.Preco
	p.CustoPorKM = 0
	p.NumRecapagens = 0
	p.Historico = []historico.Registro{{
		Acao:     historico.AcaoCadastrado,
		Detalhes: fmt.Sprintf("Cadastrado por usuário %s", nivel),
	}}
	return &p, nil
}

// Montar instala o pneu na posição indicada do veículo. O parâmetro
// montados traz os pneus atualmente instalados no veículo, para a checagem
// de colisão de posição.
func Montar(p *Pneu, v *veiculo.Veiculo, posicao string, montados []Pneu) error {
	if posicao == "" {
		return &erros.ErroValidacao{Campo: "posicao", Motivo: "é obrigatória"}
	}
	if p.Montado() {
		return &erros.ErroEstadoInvalido{Operacao: "montar", Motivo: "pneu já está montado em um veículo"}
	}
	switch p.Status {
	case StatusEmRecapagem:
		return &erros.ErroEstadoInvalido{Operacao: "montar", Motivo: "pneu está na reformadora"}
	case StatusDanificado:
		return &erros.ErroEstadoInvalido{Operacao: "montar", Motivo: "pneu danificado/descartado"}
	}
	for _, m := range montados {
		if m.ID == p.ID {
			continue
		}
		if m.VeiculoID != nil && *m.VeiculoID == v.ID && m.Posicao != nil && *m.Posicao == posicao {
			return &erros.ErroPosicaoOcupada{Posicao: posicao, NumeroFogo: m.NumeroFogo}
		}
	}

	km := v.Hodometro
	p.VeiculoID = &v.ID
	p.Posicao = &posicao
	p.Localizacao = fmt.Sprintf("%s - %s", v.Placa, posicao)
	p.KMInstalacao = &km
	if p.Status == StatusNovo {
		p.Status = StatusUsado
	}
	p.Historico = append(p.Historico, historico.Registro{
		PneuID:   p.ID,
		Acao:     historico.AcaoMontado,
		Detalhes: fmt.Sprintf("Montado no veículo %s pos %s com KM %.0f", v.Placa, posicao, km),
	})
	return nil
}

// Desmontar retira o pneu do veículo, acumulando a quilometragem rodada e
// recalculando o CPK. Deltas negativos de hodômetro zeram a distância em
// vez de falhar.
func Desmontar(p *Pneu, kmFinal float64) (kmsRodados float64, err error) {
	if !p.Montado() {
		return 0, &erros.ErroEstadoInvalido{Operacao: "desmontar", Motivo: "pneu não está montado"}
	}

	kmInstalacao := kmFinal
	if p.KMInstalacao != nil {
		kmInstalacao = *p.KMInstalacao
	}
	kmsRodados = math.Max(0, kmFinal-kmInstalacao)
	p.KMTotal += kmsRodados
	if p.KMTotal > 0 {
		p.CustoPorKM = p.InvestimentoTotal / p.KMTotal
	} else {
		p.CustoPorKM = 0
	}

	p.VeiculoID = nil
	p.Posicao = nil
	p.KMInstalacao = nil
	p.Localizacao = LocalEstoqueRetorno
	p.Historico = append(p.Historico, historico.Registro{
		PneuID:   p.ID,
		Acao:     historico.AcaoDesmontado,
		Detalhes: fmt.Sprintf("Desmontado. Rodou %.0fkm. CPK Atual: R$ %.4f", kmsRodados, p.CustoPorKM),
	})
	return kmsRodados, nil
}

// EnviarRecapagem move o pneu para a reformadora. Exige pneu desmontado.
func EnviarRecapagem(p *Pneu) error {
	if p.Montado() {
		return &erros.ErroEstadoInvalido{Operacao: "enviar-recapagem", Motivo: "desmonte o pneu antes de enviar para a reformadora"}
	}
	if p.Status == StatusEmRecapagem {
		return &erros.ErroEstadoInvalido{Operacao: "enviar-recapagem", Motivo: "pneu já está na reformadora"}
	}

	p.Status = StatusEmRecapagem
	p.Localizacao = LocalReformadora
	p.Historico = append(p.Historico, historico.Registro{
		PneuID:   p.ID,
		Acao:     historico.AcaoEnviadoRecapagem,
		Detalhes: "Enviado para recauchutagem",
	})
	return nil
}

// ReceberRecapagem conclui um ciclo de reforma: soma o custo ao
// investimento, incrementa a vida e aplica o novo sulco.
func ReceberRecapagem(p *Pneu, custo, novoSulco float64) error {
	if p.Status != StatusEmRecapagem {
		return &erros.ErroEstadoInvalido{Operacao: "receber-recapagem", Motivo: "pneu não está na reformadora"}
	}
	if custo < 0 {
		return &erros.ErroValidacao{Campo: "custo", Motivo: "não pode ser negativo"}
	}
	if novoSulco <= 0 {
		return &erros.ErroValidacao{Campo: "novoSulco", Motivo: "deve ser maior que zero"}
	}

	p.InvestimentoTotal += custo
	p.NumRecapagens++
	p.Status = StatusRecapado
	p.SulcoAtual = novoSulco
	p.Localizacao = LocalEstoqueRecapado
	p.Historico = append(p.Historico, historico.Registro{
		PneuID:   p.ID,
		Acao:     historico.AcaoRetornoRecapagem,
		Detalhes: fmt.Sprintf("Retornou da reforma. Custo: R$%.2f. Sulco: %.1fmm. Vida: %d", custo, novoSulco, p.NumRecapagens),
	})
	return nil
}

// RegistrarInspecao grava as quatro leituras de sulco e a pressão. O sulco
// atual passa a ser o pior dos quatro, arredondado a uma casa: o sulco mais
// baixo governa o valor reportado, por segurança.
func RegistrarInspecao(p *Pneu, leituras LeituraSulcos, pressao float64) error {
	for campo, valor := range map[string]float64{
		"sulco1": leituras.Sulco1,
		"sulco2": leituras.Sulco2,
		"sulco3": leituras.Sulco3,
		"sulco4": leituras.Sulco4,
	} {
		if valor < 0 {
			return &erros.ErroValidacao{Campo: campo, Motivo: "não pode ser negativo"}
		}
	}

	menor := math.Min(math.Min(leituras.Sulco1, leituras.Sulco2), math.Min(leituras.Sulco3, leituras.Sulco4))
	agora := time.Now()

	l := leituras
	p.SulcoAtual = math.Round(menor*10) / 10
	p.Leituras = &l
	p.Pressao = pressao
	p.UltimaInspecao = &agora
	p.Historico = append(p.Historico, historico.Registro{
		PneuID: p.ID,
		Acao:   historico.AcaoInspecao,
		Detalhes: fmt.Sprintf("Insp. Completa: Ext:%.1fmm / Cen1:%.1fmm / Cen2:%.1fmm / Int:%.1fmm - Pressão: %.0f PSI",
			leituras.Sulco1, leituras.Sulco2, leituras.Sulco3, leituras.Sulco4, pressao),
	})
	return nil
}

// RegistrarReparo anexa um registro de reparo sem alterar nenhum campo.
func RegistrarReparo(p *Pneu, detalhes string) error {
	if detalhes == "" {
		return &erros.ErroValidacao{Campo: "detalhes", Motivo: "é obrigatório"}
	}
	p.Historico = append(p.Historico, historico.Registro{
		PneuID:   p.ID,
		Acao:     historico.AcaoReparo,
		Detalhes: detalhes,
	})
	return nil
}

// RegistrarEdicao anexa um registro de edição de cadastro.
func RegistrarEdicao(p *Pneu, nivel permissao.Nivel) {
	p.Historico = append(p.Historico, historico.Registro{
		PneuID:   p.ID,
		Acao:     historico.AcaoEditado,
		Detalhes: fmt.Sprintf("Cadastro editado por usuário %s", nivel),
	})
}
