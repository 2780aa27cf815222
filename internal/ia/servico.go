// Package ia gera as narrativas de análise do painel (análise de estoque,
// laudo de inspeção e chat do assistente). O serviço de linguagem é tratado
// como caixa-preta: sem chave de API ou em falha, devolve textos fixos de
// indisponibilidade em vez de propagar erro.
package ia

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/GMcontrol/api-pneus/internal/pneu"
	"github.com/GMcontrol/api-pneus/internal/veiculo"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// Textos fixos de degradação.
const (
	MsgIndisponivel    = "Funcionalidade de IA indisponível (Chave de API não configurada)."
	MsgErroAnalise     = "Erro ao conectar com a IA para análise de estoque."
	MsgErroLaudo       = "Erro ao processar análise de inspeção."
	MsgErroChat        = "Erro no serviço de chat."
	MsgRespostaVazia   = "Não foi possível gerar a análise."
	MsgChatSemResposta = "Desculpe, não entendi."
)

const modeloPadrao = openai.GPT4oMini

// Servico encapsula o cliente de linguagem. Cliente nulo significa chave
// ausente: todos os métodos degradam para MsgIndisponivel.
type Servico struct {
	client *openai.Client
	modelo string
	log    *logrus.Logger
}

// NovoServico monta o serviço a partir de OPENAI_API_KEY/OPENAI_MODEL.
func NovoServico(log *logrus.Logger) *Servico {
	s := &Servico{modelo: os.Getenv("OPENAI_MODEL"), log: log}
	if s.modelo == "" {
		s.modelo = modeloPadrao
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Warn("OPENAI_API_KEY ausente, funcionalidades de IA desabilitadas")
		return s
	}
	s.client = openai.NewClient(apiKey)
	return s
}

// AnalisarEstoque gera o relatório executivo do inventário.
func (s *Servico) AnalisarEstoque(ctx context.Context, pneus []pneu.Pneu) string {
	if s.client == nil {
		return MsgIndisponivel
	}

	linhas := make([]string, 0, len(pneus))
	for _, p := range pneus {
		linhas = append(linhas, fmt.Sprintf("%dx %s %s (%d/%d R%d) - Status: %s, Local: %s",
			p.Quantidade, p.Marca, p.Modelo, p.Largura, p.Perfil, p.Aro, p.Status, p.Localizacao))
	}

	prompt := fmt.Sprintf(`Atue como um especialista em gestão de frotas e pneus. Analise o seguinte inventário de pneus e forneça um relatório curto e executivo (máximo 3 parágrafos) em Português do Brasil.

Dados do Inventário:
%s

Foque em:
1. Diversidade de marcas e modelos.
2. Alertas sobre estoque baixo (se houver menos de 4 pneus de um mesmo modelo).
3. Sugestão de rotação ou compra baseada no status (Novos vs Usados).

Use formatação Markdown para deixar legível (negrito, tópicos).`, strings.Join(linhas, "\n"))

	return s.completar(ctx, "", prompt, MsgErroAnalise)
}

// GerarLaudoInspecao gera o laudo técnico de inspeção de um veículo a
// partir dos pneus montados.
func (s *Servico) GerarLaudoInspecao(ctx context.Context, v *veiculo.Veiculo, montados []pneu.Pneu) string {
	if s.client == nil {
		return MsgIndisponivel
	}

	var dados strings.Builder
	for _, p := range montados {
		posicao := ""
		if p.Posicao != nil {
			posicao = *p.Posicao
		}
		kmInstalacao := "N/A"
		if p.KMInstalacao != nil {
			kmInstalacao = fmt.Sprintf("%.0f", *p.KMInstalacao)
		}
		sulcos := fmt.Sprintf("Sulco Médio: %.1fmm", p.SulcoAtual)
		if p.Leituras != nil {
			sulcos = fmt.Sprintf("Medições (Ext -> Int): %.1fmm | %.1fmm | %.1fmm | %.1fmm",
				p.Leituras.Sulco1, p.Leituras.Sulco2, p.Leituras.Sulco3, p.Leituras.Sulco4)
		}
		fmt.Fprintf(&dados, "### Posição %s - %s %s (Fogo: %s)\n- Pressão Atual: %.0f PSI (Ideal: %.0f)\n- %s\n- KM Instalação: %s\n\n",
			posicao, p.Marca, p.Modelo, p.NumeroFogo, p.Pressao, p.PressaoIdeal, sulcos, kmInstalacao)
	}

	prompt := fmt.Sprintf(`Você é um Engenheiro Técnico de Pneus sênior. Gere um laudo de inspeção VISUAL e PRÁTICO.

Veículo: %s (%s)
Hodômetro: %.0f km

DADOS DOS PNEUS:
%s

Gere um relatório em Markdown focado em "O QUE FAZER", com a estrutura:

# Laudo Técnico: %s

## 1. Diagnóstico Visual e Ações
Para CADA pneu com problema (pressão >10%% divergente ou desgaste irregular), crie um card com o problema identificado e a ação imediata (calibrar, alinhar, girar no aro, enviar para recapagem).

## 2. Resumo da Saúde da Frota
Quantidade de pneus críticos e a manutenção mais urgente para liberar o veículo.

Se todos os pneus estiverem perfeitos, parabenize a manutenção e libere o veículo.`,
		v.Placa, v.Modelo, v.Hodometro, dados.String(), v.Placa)

	return s.completar(ctx, "", prompt, MsgErroLaudo)
}

// Chat responde uma mensagem do assistente com o inventário como contexto.
// O histórico alterna mensagens do usuário e do assistente, começando pelo
// usuário.
func (s *Servico) Chat(ctx context.Context, historico []string, mensagem string, contexto []pneu.Pneu) string {
	if s.client == nil {
		return MsgIndisponivel
	}

	type resumoPneu struct {
		Marca  string `json:"marca"`
		Modelo string `json:"modelo"`
		Medida string `json:"medida"`
		Qtd    int    `json:"qtd"`
		Status string `json:"status"`
	}
	resumo := make([]resumoPneu, 0, len(contexto))
	for _, p := range contexto {
		resumo = append(resumo, resumoPneu{
			Marca:  p.Marca,
			Modelo: p.Modelo,
			Medida: fmt.Sprintf("%d/%dR%d", p.Largura, p.Perfil, p.Aro),
			Qtd:    p.Quantidade,
			Status: p.Status,
		})
	}
	contextoJSON, _ := json.Marshal(resumo)

	sistema := fmt.Sprintf(`Você é o assistente virtual do GMcontrol. Você ajuda gerentes de frota a entenderem seu estoque de pneus. Responda de forma concisa e prestativa.

O estoque atual é: %s`, contextoJSON)

	mensagens := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: sistema},
	}
	for i, msg := range historico {
		role := openai.ChatMessageRoleUser
		if i%2 == 1 {
			role = openai.ChatMessageRoleAssistant
		}
		mensagens = append(mensagens, openai.ChatCompletionMessage{Role: role, Content: msg})
	}
	mensagens = append(mensagens, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: mensagem})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.modelo,
		Messages: mensagens,
	})
	if err != nil {
		s.log.WithError(err).Error("erro no chat de IA")
		return MsgErroChat
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return MsgChatSemResposta
	}
	return resp.Choices[0].Message.Content
}

func (s *Servico) completar(ctx context.Context, sistema, prompt, msgErro string) string {
	mensagens := []openai.ChatCompletionMessage{}
	if sistema != "" {
		mensagens = append(mensagens, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: sistema})
	}
	mensagens = append(mensagens, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.modelo,
		Messages: mensagens,
	})
	if err != nil {
		s.log.WithError(err).Error("erro ao chamar serviço de IA")
		return msgErro
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return MsgRespostaVazia
	}
	return resp.Choices[0].Message.Content
}
