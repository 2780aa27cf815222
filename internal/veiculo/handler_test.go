package veiculo

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GMcontrol/api-pneus/internal/auth"
	"github.com/GMcontrol/api-pneus/internal/permissao"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type repoFake struct {
	veiculos  map[uint]*Veiculo
	removidos int
}

func (f *repoFake) Salvar(db *gorm.DB, v *Veiculo) error { return nil }

func (f *repoFake) BuscarPorID(db *gorm.DB, id uint) (*Veiculo, error) {
	v, ok := f.veiculos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (f *repoFake) BuscarPorPlaca(db *gorm.DB, placa string) (*Veiculo, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *repoFake) ListarTodos(db *gorm.DB) ([]Veiculo, error) { return nil, nil }

func (f *repoFake) Remover(db *gorm.DB, id uint) error {
	f.removidos++
	delete(f.veiculos, id)
	return nil
}

func (f *repoFake) SalvarEmLotes(db *gorm.DB, veiculos []Veiculo, tamanhoLote int) error {
	return nil
}

func novoHandlerDeTeste(repo Repository, montados int64) *Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Handler{
		Repo:     repo,
		Montados: func(db *gorm.DB, veiculoID uint) (int64, error) { return montados, nil },
		Log:      log,
		validate: validator.New(),
	}
}

func requisicao(metodo, alvo, nivel, corpo string, vars map[string]string) *http.Request {
	r := httptest.NewRequest(metodo, alvo, strings.NewReader(corpo))
	if nivel != "" {
		r = r.WithContext(context.WithValue(r.Context(), auth.CtxNivel, nivel))
	}
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}
	return r
}

func TestRemoverBloqueadoComPneusMontados(t *testing.T) {
	repo := &repoFake{veiculos: map[uint]*Veiculo{3: {Model: gorm.Model{ID: 3}, Placa: "ABC1D23", Eixos: 3}}}
	h := novoHandlerDeTeste(repo, 4)

	w := httptest.NewRecorder()
	h.Remover(w, requisicao(http.MethodDelete, "/veiculos/3", string(permissao.NivelSenior), "", map[string]string{"id": "3"}))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Zero(t, repo.removidos)
	assert.Contains(t, repo.veiculos, uint(3))
}

func TestRemoverSemPneusMontados(t *testing.T) {
	repo := &repoFake{veiculos: map[uint]*Veiculo{3: {Model: gorm.Model{ID: 3}, Placa: "ABC1D23", Eixos: 3}}}
	h := novoHandlerDeTeste(repo, 0)

	w := httptest.NewRecorder()
	h.Remover(w, requisicao(http.MethodDelete, "/veiculos/3", string(permissao.NivelSenior), "", map[string]string{"id": "3"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, repo.removidos)
}

func TestRemoverNegadoParaPleno(t *testing.T) {
	repo := &repoFake{veiculos: map[uint]*Veiculo{3: {Model: gorm.Model{ID: 3}, Placa: "ABC1D23"}}}
	h := novoHandlerDeTeste(repo, 0)

	w := httptest.NewRecorder()
	h.Remover(w, requisicao(http.MethodDelete, "/veiculos/3", string(permissao.NivelPleno), "", map[string]string{"id": "3"}))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, repo.removidos)
}

func TestCriarNegadoParaJunior(t *testing.T) {
	repo := &repoFake{veiculos: map[uint]*Veiculo{}}
	h := novoHandlerDeTeste(repo, 0)

	corpo := `{"placa":"ABC1D23","modelo":"Scania R450","eixos":3,"tipo":"CAVALO","hodometro":150000}`
	w := httptest.NewRecorder()
	h.Criar(w, requisicao(http.MethodPost, "/veiculos", string(permissao.NivelJunior), corpo, nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
