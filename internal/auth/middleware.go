package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GMcontrol/api-pneus/internal/permissao"
)

type ctxKey string

const (
	CtxUserID ctxKey = "usuarioID"
	CtxNivel  ctxKey = "nivel"
)

func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ParseAndValidate(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxNivel, claims.Nivel)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// NivelDoContexto extrai o nível de acesso injetado pelo middleware.
// Ausência ou valor desconhecido vira nível vazio, que nenhuma operação
// atende (fail-closed).
func NivelDoContexto(ctx context.Context) permissao.Nivel {
	v, _ := ctx.Value(CtxNivel).(string)
	n := permissao.Nivel(v)
	if !n.Valido() {
		return permissao.Nivel("")
	}
	return n
}

// UsuarioDoContexto extrai o ID do usuário autenticado.
func UsuarioDoContexto(ctx context.Context) uint {
	id, _ := ctx.Value(CtxUserID).(uint)
	return id
}
