// Package relatorio computa as estatísticas derivadas exibidas no painel.
// Tudo é recalculado na leitura, sem agregação incremental.
package relatorio

import (
	"time"

	"github.com/GMcontrol/api-pneus/internal/pneu"
	"github.com/GMcontrol/api-pneus/internal/veiculo"
)

// Modelos de um mesmo pneu somando menos que isto contam como estoque baixo.
const LimiteEstoqueBaixo = 4

// ResumoEstoque agrega o inventário para o painel.
type ResumoEstoque struct {
	TotalPneus   int            `json:"totalPneus"`
	ValorTotal   float64        `json:"valorTotal"`
	EstoqueBaixo int            `json:"estoqueBaixo"` // modelos distintos abaixo do limite
	PorStatus    map[string]int `json:"porStatus"`
	PorMarca     map[string]int `json:"porMarca"`
}

// MontarResumoEstoque percorre o inventário e monta os totais do painel.
func MontarResumoEstoque(pneus []pneu.Pneu) ResumoEstoque {
	resumo := ResumoEstoque{
		PorStatus: map[string]int{},
		PorMarca:  map[string]int{},
	}

	porModelo := map[string]int{}
	for _, p := range pneus {
		resumo.TotalPneus += p.Quantidade
		resumo.ValorTotal += p.Preco * float64(p.Quantidade)
		resumo.PorStatus[p.Status] += p.Quantidade
		resumo.PorMarca[p.Marca] += p.Quantidade
		porModelo[p.Marca+" "+p.Modelo] += p.Quantidade
	}
	for _, quantidade := range porModelo {
		if quantidade < LimiteEstoqueBaixo {
			resumo.EstoqueBaixo++
		}
	}
	return resumo
}

// InspecaoVeiculo resume a completude da inspeção diária de um veículo.
type InspecaoVeiculo struct {
	Placa               string  `json:"placa"`
	TotalPosicoes       int     `json:"totalPosicoes"`
	PneusMontados       int     `json:"pneusMontados"`
	InspecionadosHoje   int     `json:"inspecionadosHoje"`
	PercentualConcluido float64 `json:"percentualConcluido"`
}

// MontarInspecaoVeiculo calcula o percentual de inspeção do dia: pneus
// montados inspecionados no dia de referência sobre o total de posições do
// veículo (6/10/14 pelo número de eixos), limitado a 100.
func MontarInspecaoVeiculo(v *veiculo.Veiculo, pneus []pneu.Pneu, dia time.Time) InspecaoVeiculo {
	resumo := InspecaoVeiculo{
		Placa:         v.Placa,
		TotalPosicoes: v.TotalPosicoes(),
	}

	ano, mes, diaMes := dia.Date()
	for _, p := range pneus {
		if p.VeiculoID == nil || *p.VeiculoID != v.ID {
			continue
		}
		resumo.PneusMontados++
		if p.UltimaInspecao == nil {
			continue
		}
		a, m, d := p.UltimaInspecao.Date()
		if a == ano && m == mes && d == diaMes {
			resumo.InspecionadosHoje++
		}
	}

	if resumo.TotalPosicoes > 0 {
		pct := float64(resumo.InspecionadosHoje) / float64(resumo.TotalPosicoes) * 100
		if pct > 100 {
			pct = 100
		}
		resumo.PercentualConcluido = pct
	}
	return resumo
}
