package notificacao

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
)

// EnviarAlertaInspecaoCompleta avisa o webhook configurado que a inspeção
// diária de um veículo chegou a 100%. Sem WEBHOOK_URL o aviso é descartado
// em silêncio; falha de entrega só gera log, nunca erro para o chamador.
func EnviarAlertaInspecaoCompleta(log *logrus.Logger, placa string) {
	url := os.Getenv("WEBHOOK_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem": "Inspeção diária 100% concluída, laudo disponível",
		"placa":    placa,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.WithError(err).WithField("placa", placa).Error("erro ao enviar webhook de inspeção")
		return
	}
	defer resp.Body.Close()

	log.WithFields(logrus.Fields{"placa": placa, "status": resp.StatusCode}).
		Info("webhook de inspeção completa enviado")
}
