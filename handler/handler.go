package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/lordvidex/errs"
	"github.com/lordvidex/x/req"
	"github.com/lordvidex/x/resp"

	"github.com/kodekulture/wordjourney/game"
)

//go:generate mockgen -source=handler.go -destination=../internal/mocks/service.go -package=mocks Service

// Service is what the handler needs from the game service.
type Service interface {
	StartLevel(ctx context.Context, player, difficulty string) (game.Response, error)
	StartDaily(ctx context.Context, player, date string, length int) (game.Response, error)
	Attempt(ctx context.Context, player string, id uuid.UUID) (game.Response, error)
	Press(ctx context.Context, player string, id uuid.UUID, keys string) (game.Response, error)
	Delete(ctx context.Context, player string, id uuid.UUID) (game.Response, error)
	Submit(ctx context.Context, player string, id uuid.UUID) (game.SubmitResponse, error)
	GrantBonus(ctx context.Context, player string, id uuid.UUID) (game.Response, error)
	Eliminate(ctx context.Context, player string, id uuid.UUID) (game.PowerUpResponse, error)
	Reveal(ctx context.Context, player string, id uuid.UUID) (game.PowerUpResponse, error)
}

var ErrInvalidID = errs.B().Code(errs.InvalidArgument).Msg("invalid attempt id").Err()

type Handler struct {
	s      *http.Server
	router chi.Router
	srv    Service
}

func New(srv Service) *Handler {
	h := &Handler{
		router: chi.NewRouter(),
		srv:    srv,
	}
	h.setup()
	return h
}

func (h *Handler) Start(port string) error {
	h.s = &http.Server{
		Addr:              ":" + port,
		Handler:           h.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return h.s.ListenAndServe()
}

// ServeHTTP lets the handler be used without Start, e.g. in tests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) setup() {
	r := h.router
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger)

	// Public routes
	r.Get("/health", h.health)

	// Player routes
	r.Group(func(r chi.Router) {
		r.Use(h.playerMiddleware)

		r.Post("/attempts/level", h.startLevel)
		r.Post("/attempts/daily", h.startDaily)
		r.Route("/attempts/{id}", func(r chi.Router) {
			r.Get("/", h.attempt)
			r.Post("/keys", h.press)
			r.Delete("/keys", h.deleteKey)
			r.Post("/submit", h.submit)
			r.Post("/bonus", h.bonus)
			r.Post("/eliminate", h.eliminate)
			r.Post("/reveal", h.reveal)
		})
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

type startLevelParams struct {
	Difficulty string `json:"difficulty" validate:"required"`
}

func (h *Handler) startLevel(w http.ResponseWriter, r *http.Request) {
	var payload startLevelParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Validate(payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	res, err := h.srv.StartLevel(r.Context(), Player(r.Context()), payload.Difficulty)
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, res)
}

type startDailyParams struct {
	// Date defaults to today
	Date   string `json:"date"`
	Length int    `json:"length" validate:"required"`
}

func (h *Handler) startDaily(w http.ResponseWriter, r *http.Request) {
	var payload startDailyParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Validate(payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	res, err := h.srv.StartDaily(r.Context(), Player(r.Context()), payload.Date, payload.Length)
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, res)
}

func (h *Handler) attempt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := attemptID(r)
	if err != nil {
		resp.Error(w, err)
		return
	}
	res, err := h.srv.Attempt(ctx, Player(ctx), id)
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, res)
}

type keysParams struct {
	Keys string `json:"keys" validate:"required"`
}

func (h *Handler) press(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := attemptID(r)
	if err != nil {
		resp.Error(w, err)
		return
	}
	var payload keysParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Validate(payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	res, err := h.srv.Press(ctx, Player(ctx), id, payload.Keys)
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, res)
}

// action runs a service call that takes no body and writes its result.
func action[T any](call func(context.Context, string, uuid.UUID) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := attemptID(r)
		if err != nil {
			resp.Error(w, err)
			return
		}
		res, err := call(ctx, Player(ctx), id)
		if err != nil {
			resp.Error(w, err)
			return
		}
		resp.JSON(w, res)
	}
}

func (h *Handler) deleteKey(w http.ResponseWriter, r *http.Request) {
	action(h.srv.Delete)(w, r)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	action(h.srv.Submit)(w, r)
}

func (h *Handler) bonus(w http.ResponseWriter, r *http.Request) {
	action(h.srv.GrantBonus)(w, r)
}

func (h *Handler) eliminate(w http.ResponseWriter, r *http.Request) {
	action(h.srv.Eliminate)(w, r)
}

func (h *Handler) reveal(w http.ResponseWriter, r *http.Request) {
	action(h.srv.Reveal)(w, r)
}

func attemptID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}

func (h *Handler) Stop(ctx context.Context) error {
	if h.s == nil {
		return nil
	}
	return h.s.Shutdown(ctx)
}
