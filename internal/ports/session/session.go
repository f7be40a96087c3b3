package session

import "context"

// CookieName es la cookie que transporta el token de sesión.
const CookieName = "pab_session"

// Session vincula una serie de requests a un usuario autenticado.
type Session struct {
	Username string
}

// Manager emite y resuelve tokens de sesión opacos.
// Resolve devuelve false para tokens desconocidos o vencidos (no es un error).
// Destroy es idempotente: destruir un token inexistente no falla.
type Manager interface {
	Issue(ctx context.Context, username string) (string, error)
	Resolve(ctx context.Context, token string) (Session, bool)
	Destroy(ctx context.Context, token string) error
}
