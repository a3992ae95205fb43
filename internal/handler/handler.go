package handler

import (
	"errors"
	"log/slog"

	"github.com/hyojunguy/turtle-trading-app/internal/controller"
	"github.com/hyojunguy/turtle-trading-app/internal/repo"

	"github.com/gin-gonic/gin"
)

var (
	ErrNilEngine     = errors.New("engine is required")
	ErrNilRepository = errors.New("repository is required")
)

type Handler struct {
	engine     *gin.Engine
	repository *repo.Repository
	logger     *slog.Logger
}

func (h *Handler) IsValid() error {
	if h.engine == nil {
		return ErrNilEngine
	}
	if h.repository == nil {
		return ErrNilRepository
	}
	return nil
}

type Option func(*Handler)

func WithEngine(engine *gin.Engine) Option {
	return func(h *Handler) {
		h.engine = engine
	}
}

func WithRepository(repository *repo.Repository) Option {
	return func(h *Handler) {
		h.repository = repository
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

func New(opts ...Option) (*Handler, error) {
	h := &Handler{}
	for _, opt := range opts {
		opt(h)
	}
	if err := h.IsValid(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handler) Setup() error {
	ctrlOpts := []controller.Option{controller.WithRepository(h.repository)}
	if h.logger != nil {
		ctrlOpts = append(ctrlOpts, controller.WithLogger(h.logger))
	}
	ctrl, err := controller.New(ctrlOpts...)
	if err != nil {
		return err
	}

	api := h.engine.Group("/api")

	trading := api.Group("/trading-journals")
	trading.GET("", ctrl.ListTradingJournals)
	trading.POST("", ctrl.CreateTradingJournal)
	trading.PUT("/:id", ctrl.UpdateTradingJournal)
	trading.DELETE("/:id", ctrl.DeleteTradingJournal)

	profit := api.Group("/profit-journals")
	profit.GET("", ctrl.ListProfitJournals)
	profit.POST("", ctrl.CreateProfitJournal)
	profit.PUT("/:id", ctrl.UpdateProfitJournal)
	profit.DELETE("/:id", ctrl.DeleteProfitJournal)

	return nil
}
