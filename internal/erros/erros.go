// Package erros define os erros de domínio da API de pneus. Os handlers
// convertem cada tipo para o status HTTP correspondente.
package erros

import "fmt"

// ErroValidacao indica campo obrigatório ausente ou valor inválido.
type ErroValidacao struct {
	Campo  string
	Motivo string
}

func (e *ErroValidacao) Error() string {
	if e.Campo == "" {
		return fmt.Sprintf("validação: %s", e.Motivo)
	}
	return fmt.Sprintf("validação: campo %q %s", e.Campo, e.Motivo)
}

// ErroEstadoInvalido indica operação ilegal no estado atual do pneu.
type ErroEstadoInvalido struct {
	Operacao string
	Motivo   string
}

func (e *ErroEstadoInvalido) Error() string {
	return fmt.Sprintf("%s: %s", e.Operacao, e.Motivo)
}

// ErroPosicaoOcupada indica colisão de posição na montagem.
type ErroPosicaoOcupada struct {
	Posicao    string
	NumeroFogo string // fogo do pneu que ocupa a posição
}

func (e *ErroPosicaoOcupada) Error() string {
	return fmt.Sprintf("posição %s já ocupada pelo pneu %s", e.Posicao, e.NumeroFogo)
}

// ErroAutorizacao indica nível de acesso insuficiente para a operação.
type ErroAutorizacao struct {
	Operacao    string
	NivelMinimo string
}

func (e *ErroAutorizacao) Error() string {
	return fmt.Sprintf("acesso negado: operação %s exige nível %s", e.Operacao, e.NivelMinimo)
}

// ErroNaoEncontrado indica pneu/veículo/usuário inexistente.
type ErroNaoEncontrado struct {
	Entidade string
	ID       string
}

func (e *ErroNaoEncontrado) Error() string {
	return fmt.Sprintf("%s %s não encontrado", e.Entidade, e.ID)
}

// ErroArmazenamento encapsula falha opaca da camada de persistência.
type ErroArmazenamento struct {
	Err error
}

func (e *ErroArmazenamento) Error() string {
	return fmt.Sprintf("erro de armazenamento: %v", e.Err)
}

func (e *ErroArmazenamento) Unwrap() error { return e.Err }
