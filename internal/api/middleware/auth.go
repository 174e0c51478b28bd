package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/HLD-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HLD-BookingGateway/internal/domain"
)

type contextKey string

const sessionContextKey contextKey = "session"

const (
	msgMissingToken = "требуется токен сессии"
	msgNotManager   = "операция доступна только venue manager"
)

// SessionProvider интерфейс получения сессии по токену
type SessionProvider interface {
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
}

// Auth проверяет Bearer-токен сессии и кладет сессию в контекст запроса.
// Проверка выполняется декларативно на уровне роутера до обработчика,
// сами обработчики только читают контекст.
func Auth(sessions SessionProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			session, err := sessions.GetByToken(r.Context(), token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VenueManager пропускает только сессии с capability управления площадками.
// Policy predicate (session) -> allowed вынесен в domain.Session.
func VenueManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := SessionFromContext(r.Context())
		if !session.CanManageVenues() {
			handlers.RespondForbidden(w, msgNotManager)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFromContext возвращает сессию из контекста запроса.
// nil, если запрос не проходил через Auth.
func SessionFromContext(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(sessionContextKey).(*domain.Session)
	return session
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
