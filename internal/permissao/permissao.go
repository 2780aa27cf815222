// Package permissao implementa os níveis de acesso e a tabela de operação
// por nível mínimo. A checagem roda antes de qualquer mutação (fail-closed).
package permissao

import "github.com/GMcontrol/api-pneus/internal/erros"

// Nivel de acesso do usuário.
type Nivel string

const (
	NivelJunior Nivel = "JUNIOR" // operacional
	NivelPleno  Nivel = "PLENO"  // gestão
	NivelSenior Nivel = "SENIOR" // admin
)

var ordem = map[Nivel]int{
	NivelJunior: 1,
	NivelPleno:  2,
	NivelSenior: 3,
}

// Valido informa se o nível é um dos três conhecidos.
func (n Nivel) Valido() bool {
	_, ok := ordem[n]
	return ok
}

// Atende informa se o nível cobre o mínimo exigido. Níveis desconhecidos
// nunca atendem.
func (n Nivel) Atende(minimo Nivel) bool {
	v, ok := ordem[n]
	m, okMin := ordem[minimo]
	return ok && okMin && v >= m
}

// Operacao identifica uma operação mutadora do sistema.
type Operacao string

const (
	OpMontar           Operacao = "montar"
	OpDesmontar        Operacao = "desmontar"
	OpInspecionar      Operacao = "inspecionar"
	OpReparar          Operacao = "reparar"
	OpCadastrarPneu    Operacao = "cadastrar-pneu"
	OpEditarPneu       Operacao = "editar-pneu"
	OpCadastrarVeiculo Operacao = "cadastrar-veiculo"
	OpEditarVeiculo    Operacao = "editar-veiculo"
	OpEnviarRecapagem  Operacao = "enviar-recapagem"
	OpReceberRecapagem Operacao = "receber-recapagem"
	OpRemoverPneu      Operacao = "remover-pneu"
	OpRemoverVeiculo   Operacao = "remover-veiculo"
	OpExportar         Operacao = "exportar"
	OpImportar         Operacao = "importar"
	OpCriarUsuario     Operacao = "criar-usuario"
)

var nivelMinimo = map[Operacao]Nivel{
	OpMontar:           NivelJunior,
	OpDesmontar:        NivelJunior,
	OpInspecionar:      NivelJunior,
	OpReparar:          NivelJunior,
	OpCadastrarPneu:    NivelPleno,
	OpEditarPneu:       NivelPleno,
	OpCadastrarVeiculo: NivelPleno,
	OpEditarVeiculo:    NivelPleno,
	OpEnviarRecapagem:  NivelPleno,
	OpReceberRecapagem: NivelPleno,
	OpRemoverPneu:      NivelSenior,
	OpRemoverVeiculo:   NivelSenior,
	OpExportar:         NivelSenior,
	OpImportar:         NivelSenior,
	OpCriarUsuario:     NivelSenior,
}

// Autorizar devolve ErroAutorizacao quando o nível não cobre a operação.
// Operações fora da tabela exigem SENIOR.
func Autorizar(nivel Nivel, op Operacao) error {
	minimo, ok := nivelMinimo[op]
	if !ok {
		minimo = NivelSenior
	}
	if !nivel.Atende(minimo) {
		return &erros.ErroAutorizacao{Operacao: string(op), NivelMinimo: string(minimo)}
	}
	return nil
}
