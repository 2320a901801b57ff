/*
handlers.go - HTTP handlers for the timesheet API

PURPOSE:
  Exposes the payroll core to the form UI. Handlers parse and validate the
  request, delegate to the aggregator, and serialize the response.

ENDPOINTS:
  GET  /api/timesheet?date=YYYY-MM-DD   Fiscal month rows + summary
  PUT  /api/timesheet/day               Edit one field of one day
  GET  /api/annual/{year}               Annual rollup
  GET  /api/report?from=&to=            Date-filtered report data
  GET  /api/health                      Liveness

  Every summary endpoint takes an optional tips=true query parameter; the
  UI's "show tips" toggle gates whether tips enter the grand total.

ERROR HANDLING:
  - 400: Malformed dates, inverted report range, unknown day field
  - 500: Store failures
  Corrupt buckets never reach this layer; the aggregator logs and recovers.

SEE ALSO:
  - dto.go: Request/response shapes
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/alexvasa10/Mensualwork/payroll"
	"github.com/alexvasa10/Mensualwork/timesheet"
)

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	Agg *timesheet.Aggregator
	Log *logrus.Logger
}

// NewHandler creates a handler over the given aggregator.
func NewHandler(agg *timesheet.Aggregator, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{Agg: agg, Log: log}
}

// =============================================================================
// TIMESHEET HANDLERS
// =============================================================================

// GetTimesheet returns the fiscal month enclosing the date query parameter
// (default: today).
func (h *Handler) GetTimesheet(w http.ResponseWriter, r *http.Request) {
	anchor := time.Now().UTC()
	if q := r.URL.Query().Get("date"); q != "" {
		d, err := payroll.ParseDate(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date", err)
			return
		}
		anchor = d
	}
	includeTips := r.URL.Query().Get("tips") == "true"

	days, summary, err := h.Agg.Month(r.Context(), anchor, includeTips)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load timesheet", err)
		return
	}

	win := payroll.WindowFor(anchor)
	writeJSON(w, http.StatusOK, TimesheetResponse{
		WindowStart: payroll.FormatDate(win.Start),
		WindowEnd:   payroll.FormatDate(win.End),
		Days:        toDayRows(days),
		Summary:     toSummaryDTO(summary),
	})
}

// UpdateDay applies a single-field edit and persists it, then returns the
// recomputed fiscal month so the UI can re-render without a second request.
func (h *Handler) UpdateDay(w http.ResponseWriter, r *http.Request) {
	var req UpdateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	day, err := payroll.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}
	// Anchor to the fiscal month that contains the edited day, not the
	// day itself: an edit on the 26th or later belongs to the next
	// fiscal month and must be loaded and saved under its window.
	anchor := payroll.AnchorFor(day)
	includeTips := r.URL.Query().Get("tips") == "true"

	records, err := h.Agg.Load(r.Context(), anchor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load timesheet", err)
		return
	}

	records, err = timesheet.UpdateDay(records, req.Date, req.Field, req.Value)
	if err != nil {
		var unknown *timesheet.UnknownFieldError
		if errors.As(err, &unknown) {
			writeError(w, http.StatusBadRequest, "Unknown day field", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update day", err)
		return
	}

	if err := h.Agg.Save(r.Context(), anchor, records); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save timesheet", err)
		return
	}

	days := timesheet.DeriveDays(records)
	win := payroll.WindowFor(anchor)
	writeJSON(w, http.StatusOK, TimesheetResponse{
		WindowStart: payroll.FormatDate(win.Start),
		WindowEnd:   payroll.FormatDate(win.End),
		Days:        toDayRows(days),
		Summary:     toSummaryDTO(payroll.Summarize(days, includeTips)),
	})
}

// =============================================================================
// ANNUAL / REPORT HANDLERS
// =============================================================================

// GetAnnual returns the combined summary of a year's twelve fiscal months.
func (h *Handler) GetAnnual(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	includeTips := r.URL.Query().Get("tips") == "true"

	summary, err := h.Agg.Annual(r.Context(), year, includeTips)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute annual summary", err)
		return
	}

	writeJSON(w, http.StatusOK, AnnualResponse{Year: year, Summary: toSummaryDTO(summary)})
}

// GetReport returns rows and summary for an arbitrary inclusive date range.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	from, err := payroll.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid 'from' date", err)
		return
	}
	to, err := payroll.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid 'to' date", err)
		return
	}
	includeTips := r.URL.Query().Get("tips") == "true"

	days, summary, err := h.Agg.Report(r.Context(), from, to, includeTips)
	if err != nil {
		if errors.Is(err, timesheet.ErrInvalidRange) {
			writeError(w, http.StatusBadRequest, "Invalid report range", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to build report", err)
		return
	}

	writeJSON(w, http.StatusOK, ReportResponse{
		From:    payroll.FormatDate(from),
		To:      payroll.FormatDate(to),
		Days:    toDayRows(days),
		Summary: toSummaryDTO(summary),
	})
}

// Health is a trivial liveness endpoint.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
