package handler

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/lordvidex/errs"
	"github.com/lordvidex/x/resp"
	"github.com/rs/zerolog/log"
)

const (
	playerHeaderKey = "X-Player"
)

type contextKey struct {
	name string
}

// private vars
var (
	playerKey   = &contextKey{"player"}
	playerRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)
)

// Errors
var (
	ErrUnauthenticated = errs.B().Code(errs.Unauthenticated).Msg("player is not identified").Err()
)

// Player returns the player injected by playerMiddleware.
func Player(ctx context.Context) string {
	v, _ := ctx.Value(playerKey).(string)
	return v
}

// playerMiddleware reads the player from the X-Player header of the request,
// validates it, and returns a new context that contains the player.
//
// The injected player can be gotten with the function Player.
func (h *Handler) playerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		player, err := decodeHeader(r.Header.Get(playerHeaderKey))
		if err != nil {
			resp.Error(w, err)
			return
		}
		// replace the request context
		ctx := context.WithValue(r.Context(), playerKey, player)
		r = r.WithContext(ctx)

		// pass to the next handler
		next.ServeHTTP(w, r)
	})
}

func decodeHeader(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !playerRegex.MatchString(v) {
		return "", ErrUnauthenticated
	}
	return v, nil
}

// requestLogger logs every request once it is served.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Debug().
				Str("request_id", chimw.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("took", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}
