package http

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "nordquant/internal/errors"
	"nordquant/internal/registry"
	"nordquant/internal/seasonal"
	"nordquant/internal/timeseries"
)

// ResearchHandler serves instrument metadata and seasonal-return
// analysis over HTTP.
type ResearchHandler struct {
	registry *registry.Registry
	engine   *seasonal.Engine
	validate *validator.Validate
	logger   *slog.Logger
}

// NewResearchHandler creates the research API handler.
func NewResearchHandler(reg *registry.Registry, engine *seasonal.Engine, logger *slog.Logger) *ResearchHandler {
	return &ResearchHandler{
		registry: reg,
		engine:   engine,
		validate: validator.New(),
		logger:   logger.With(slog.String("component", "research_handler")),
	}
}

// Routes returns the research API routes.
func (h *ResearchHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/instruments", h.ListInstruments)

	r.Route("/instruments/{symbol}", func(r chi.Router) {
		r.Use(h.SymbolCtx)
		r.Get("/", h.GetInstrument)
		r.Get("/returns", h.GetReturns)
		r.Get("/best-dates", h.GetBestDates)
		r.Get("/sell-date", h.GetSellDate)
	})

	return r
}

// SymbolCtx validates the symbol parameter.
func (h *ResearchHandler) SymbolCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := chi.URLParam(r, "symbol")
		if symbol == "" || len(symbol) > 12 {
			apierrors.Respond(w, r, apierrors.ErrValidation("symbol", "invalid symbol"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListInstruments returns every known instrument.
func (h *ResearchHandler) ListInstruments(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"instruments": h.registry.Instruments(),
	})
}

// GetInstrument returns one instrument's metadata.
func (h *ResearchHandler) GetInstrument(w http.ResponseWriter, r *http.Request) {
	inst, err := h.registry.Lookup(chi.URLParam(r, "symbol"))
	if err != nil {
		apierrors.Respond(w, r, apierrors.NotFoundError("instrument"))
		return
	}
	render.JSON(w, r, inst)
}

type returnsQuery struct {
	Buy  string `validate:"required,datetime=2006-01-02"`
	Sell string `validate:"required,datetime=2006-01-02"`
}

// GetReturns computes the year-over-year returns between two dates.
func (h *ResearchHandler) GetReturns(w http.ResponseWriter, r *http.Request) {
	q := returnsQuery{
		Buy:  r.URL.Query().Get("buy"),
		Sell: r.URL.Query().Get("sell"),
	}
	if err := h.validate.Struct(q); err != nil {
		apierrors.Respond(w, r, apierrors.ErrValidation("buy/sell", "dates must be YYYY-MM-DD"))
		return
	}
	buy, _ := time.Parse("2006-01-02", q.Buy)
	sell, _ := time.Parse("2006-01-02", q.Sell)

	series, err := h.seriesFor(w, r)
	if err != nil {
		return
	}

	observations, err := seasonal.Sample(series, buy, sell)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	summary, err := seasonal.Summarize(observations)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"observations": observations,
		"summary":      summary,
	})
}

type bestDatesQuery struct {
	Days int `validate:"required,min=1,max=366"`
	Avg  int `validate:"min=1,max=61"`
	Year int `validate:"min=1900,max=2100"`
	Top  int `validate:"min=1,max=366"`
}

// GetBestDates sweeps the calendar for the best buy dates at a fixed
// holding period.
func (h *ResearchHandler) GetBestDates(w http.ResponseWriter, r *http.Request) {
	q := bestDatesQuery{
		Days: queryInt(r, "days", 0),
		Avg:  queryInt(r, "avg", 1),
		Year: queryInt(r, "year", time.Now().Year()),
		Top:  queryInt(r, "top", 20),
	}
	if err := h.validate.Struct(q); err != nil {
		apierrors.Respond(w, r, apierrors.ErrValidation("days/avg/year/top", "out of range"))
		return
	}

	series, err := h.seriesFor(w, r)
	if err != nil {
		return
	}

	sweep, err := h.engine.BestDates(r.Context(), series, q.Year, q.Days, q.Avg)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	h.renderSweep(w, r, sweep, q.Top)
}

type sellDateQuery struct {
	Date string `validate:"required,datetime=2006-01-02"`
	Top  int    `validate:"min=1,max=366"`
}

// GetSellDate scans buy dates for a fixed sell date.
func (h *ResearchHandler) GetSellDate(w http.ResponseWriter, r *http.Request) {
	q := sellDateQuery{
		Date: r.URL.Query().Get("date"),
		Top:  queryInt(r, "top", 20),
	}
	if err := h.validate.Struct(q); err != nil {
		apierrors.Respond(w, r, apierrors.ErrValidation("date", "date must be YYYY-MM-DD"))
		return
	}
	sellDate, _ := time.Parse("2006-01-02", q.Date)

	series, err := h.seriesFor(w, r)
	if err != nil {
		return
	}

	sweep, err := h.engine.SellDateScan(r.Context(), series, sellDate)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	h.renderSweep(w, r, sweep, q.Top)
}

func (h *ResearchHandler) renderSweep(w http.ResponseWriter, r *http.Request, sweep *seasonal.Sweep, top int) {
	render.JSON(w, r, map[string]interface{}{
		"best_by_avg_gain":  truncate(sweep.ByAvgGain, top),
		"best_by_pos_gain":  truncate(sweep.ByPosGain, top),
		"worst_by_avg_gain": truncate(sweep.WorstByAvgGain(), top),
		"worst_by_pos_gain": truncate(sweep.WorstByPosGain(), top),
	})
}

// seriesFor loads the request's instrument series, writing the error
// response itself when that fails.
func (h *ResearchHandler) seriesFor(w http.ResponseWriter, r *http.Request) (*timeseries.Series, error) {
	symbol := chi.URLParam(r, "symbol")
	series, err := h.registry.Series(symbol)
	if err != nil {
		if stderrors.Is(err, registry.ErrUnknownSymbol) {
			apierrors.Respond(w, r, apierrors.NotFoundError("instrument"))
		} else {
			apierrors.Respond(w, r, apierrors.NotFoundError("price history"))
		}
		return nil, err
	}
	return series, nil
}

// respondDomainError maps analysis errors onto HTTP statuses.
func (h *ResearchHandler) respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case stderrors.Is(err, seasonal.ErrInvalidRange):
		apierrors.Respond(w, r, apierrors.ErrValidation("buy/sell", "sell date is before buy date"))
	case stderrors.Is(err, seasonal.ErrInsufficientData),
		stderrors.Is(err, seasonal.ErrNoTrades),
		stderrors.Is(err, seasonal.ErrEmptySweep):
		apierrors.Respond(w, r, apierrors.UnprocessableError(err))
	default:
		h.logger.ErrorContext(r.Context(), "analysis failed", "error", err)
		apierrors.Respond(w, r, apierrors.InternalError(err))
	}
}

func truncate(results []seasonal.SweepResult, n int) []seasonal.SweepResult {
	if len(results) <= n {
		return results
	}
	return results[:n]
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return v
}
