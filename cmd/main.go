package main

import (
	"net/http"
	"os"
	"time"

	"github.com/GMcontrol/api-pneus/internal/auth"
	"github.com/GMcontrol/api-pneus/internal/backup"
	"github.com/GMcontrol/api-pneus/internal/etiqueta"
	"github.com/GMcontrol/api-pneus/internal/historico"
	"github.com/GMcontrol/api-pneus/internal/ia"
	"github.com/GMcontrol/api-pneus/internal/notificacao"
	"github.com/GMcontrol/api-pneus/internal/pneu"
	"github.com/GMcontrol/api-pneus/internal/relatorio"
	"github.com/GMcontrol/api-pneus/internal/usuario"
	"github.com/GMcontrol/api-pneus/internal/utils/db"
	"github.com/GMcontrol/api-pneus/internal/veiculo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	conexao, err := db.GetDB()
	if err != nil {
		log.WithError(err).Fatal("erro ao conectar no banco")
	}

	// AutoMigrate para todos os modelos
	if err := conexao.AutoMigrate(
		&usuario.Usuario{},
		&veiculo.Veiculo{},
		&pneu.Pneu{},
		&historico.Registro{},
	); err != nil {
		log.WithError(err).Fatal("erro no AutoMigrate")
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(conexao, log)
	pneuHandler := pneu.NewHandler(conexao, log)
	veiculoHandler := veiculo.NewHandler(conexao, pneuHandler.Repo.ContarMontadosNoVeiculo, log)
	relatorioHandler := relatorio.NewHandler(conexao)
	iaHandler := ia.NewHandler(conexao, ia.NovoServico(log))
	backupHandler := backup.NewHandler(conexao, log)
	etiquetaHandler := etiqueta.NewHandler(conexao)

	// Após cada inspeção de pneu montado, verifica a completude do veículo
	// e dispara o webhook ao chegar em 100%.
	pneuHandler.AposInspecao = func(veiculoID uint) {
		v, err := veiculoHandler.Repo.BuscarPorID(conexao, veiculoID)
		if err != nil {
			log.WithError(err).Warn("inspeção: veículo não encontrado para verificação de completude")
			return
		}
		pneus, err := pneuHandler.Repo.ListarPorVeiculo(conexao, veiculoID)
		if err != nil {
			log.WithError(err).Warn("inspeção: erro ao listar pneus do veículo")
			return
		}
		resumo := relatorio.MontarInspecaoVeiculo(v, pneus, time.Now())
		if resumo.PercentualConcluido >= 100 {
			notificacao.EnviarAlertaInspecaoCompleta(log, v.Placa)
		}
	}

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Usuários
	api.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	api.HandleFunc("/usuarios", usuarioHandler.ListarTodos).Methods("GET")

	// Pneus
	api.HandleFunc("/pneus", pneuHandler.Cadastrar).Methods("POST")
	api.HandleFunc("/pneus", pneuHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/pneus/fogo/{fogo}", pneuHandler.BuscarPorFogo).Methods("GET")
	api.HandleFunc("/pneus/{id}", pneuHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/pneus/{id}", pneuHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/pneus/{id}", pneuHandler.Remover).Methods("DELETE")
	api.HandleFunc("/pneus/{id}/montar", pneuHandler.Montar).Methods("POST")
	api.HandleFunc("/pneus/{id}/desmontar", pneuHandler.Desmontar).Methods("POST")
	api.HandleFunc("/pneus/{id}/recapagem/enviar", pneuHandler.EnviarRecapagem).Methods("POST")
	api.HandleFunc("/pneus/{id}/recapagem/receber", pneuHandler.ReceberRecapagem).Methods("POST")
	api.HandleFunc("/pneus/{id}/inspecao", pneuHandler.RegistrarInspecao).Methods("POST")
	api.HandleFunc("/pneus/{id}/reparo", pneuHandler.RegistrarReparo).Methods("POST")
	api.HandleFunc("/pneus/{id}/historico", pneuHandler.ListarHistorico).Methods("GET")
	api.HandleFunc("/pneus/{id}/etiqueta", etiquetaHandler.Gerar).Methods("GET")
	api.HandleFunc("/pneus/{id}/diagnostico", relatorioHandler.DiagnosticoDesgaste).Methods("GET")

	// Veículos
	api.HandleFunc("/veiculos", veiculoHandler.Criar).Methods("POST")
	api.HandleFunc("/veiculos", veiculoHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.Remover).Methods("DELETE")
	api.HandleFunc("/veiculos/{id}/hodometro", veiculoHandler.AtualizarHodometro).Methods("PUT")
	api.HandleFunc("/veiculos/{id}/posicoes", veiculoHandler.ListarPosicoes).Methods("GET")
	api.HandleFunc("/veiculos/{id}/pneus", pneuHandler.ListarPorVeiculo).Methods("GET")
	api.HandleFunc("/veiculos/{id}/inspecao", relatorioHandler.InspecaoDoVeiculo).Methods("GET")
	api.HandleFunc("/veiculos/{id}/laudo", iaHandler.GerarLaudo).Methods("POST")

	// Painel e IA
	api.HandleFunc("/relatorios/estoque", relatorioHandler.ResumoEstoque).Methods("GET")
	api.HandleFunc("/ia/analise", iaHandler.AnalisarEstoque).Methods("POST")
	api.HandleFunc("/ia/chat", iaHandler.Chat).Methods("POST")

	// Backup
	api.HandleFunc("/backup/exportar", backupHandler.Exportar).Methods("GET")
	api.HandleFunc("/backup/importar", backupHandler.Importar).Methods("POST")

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	handler := cors.AllowAll().Handler(r)
	log.WithField("porta", porta).Info("servidor rodando")
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
