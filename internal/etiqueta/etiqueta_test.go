package etiqueta

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadJSON(t *testing.T) {
	dados, err := json.Marshal(Payload{ID: "9f2c1a", Fire: "F-001"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"9f2c1a","fire":"F-001"}`, string(dados))
}

func TestGerarPNG(t *testing.T) {
	png, err := GerarPNG("9f2c1a", "F-001", 128)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestGerarPNGTamanhoPadrao(t *testing.T) {
	png, err := GerarPNG("9f2c1a", "F-001", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
