package auth

import (
	"testing"

	"github.com/GMcontrol/api-pneus/internal/permissao"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(42, string(permissao.NivelPleno))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, string(permissao.NivelPleno), claims.Nivel)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestGerarTokenSemSegredo(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GerarToken(1, string(permissao.NivelJunior))
	assert.Error(t, err)
}

func TestParseTokenAdulterado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(7, string(permissao.NivelSenior))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "outro-segredo")
	_, err = ParseAndValidate(token)
	assert.Error(t, err)
}

func TestParseTokenMalformado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	_, err := ParseAndValidate("nao-e-um-jwt")
	assert.Error(t, err)
}
