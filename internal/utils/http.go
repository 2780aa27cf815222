package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GMcontrol/api-pneus/internal/erros"
)

// ResponderJSON serializa o corpo com o status informado.
func ResponderJSON(w http.ResponseWriter, status int, corpo interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if corpo != nil {
		json.NewEncoder(w).Encode(corpo)
	}
}

// ResponderErro mapeia os erros de domínio para o status HTTP adequado.
func ResponderErro(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var (
		validacao     *erros.ErroValidacao
		estado        *erros.ErroEstadoInvalido
		ocupada       *erros.ErroPosicaoOcupada
		autorizacao   *erros.ErroAutorizacao
		naoEncontrado *erros.ErroNaoEncontrado
	)
	switch {
	case errors.As(err, &validacao):
		status = http.StatusBadRequest
	case errors.As(err, &estado):
		status = http.StatusConflict
	case errors.As(err, &ocupada):
		status = http.StatusConflict
	case errors.As(err, &autorizacao):
		status = http.StatusForbidden
	case errors.As(err, &naoEncontrado):
		status = http.StatusNotFound
	}

	ResponderJSON(w, status, map[string]string{"erro": err.Error()})
}
