// Package etiqueta gera a etiqueta 2cm x 2cm do pneu: um QR com o payload
// {id, fire} mais a numeração de fogo em texto.
package etiqueta

import (
	"encoding/json"

	qrcode "github.com/skip2/go-qrcode"
)

// TamanhoPadraoPx aproxima 2cm a 96dpi, o tamanho físico da etiqueta.
const TamanhoPadraoPx = 76

// Payload é o conteúdo embutido no QR. O scanner de montagem aceita tanto
// o id público quanto a numeração de fogo.
type Payload struct {
	ID   string `json:"id"`
	Fire string `json:"fire"`
}

// GerarPNG codifica o payload em um QR PNG quadrado de tamanhoPx pixels.
func GerarPNG(codigo, numeroFogo string, tamanhoPx int) ([]byte, error) {
	if tamanhoPx <= 0 {
		tamanhoPx = TamanhoPadraoPx
	}
	conteudo, err := json.Marshal(Payload{ID: codigo, Fire: numeroFogo})
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(conteudo), qrcode.Medium, tamanhoPx)
}
