package api

import (
	"context"
	"net/http"

	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/httputil"
)

// Summary godoc
// @Summary Aggregated workout statistics
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "inclusive lower bound on completedAt"
// @Param endDate query string false "inclusive upper bound on completedAt"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Router /reports/summary [get]
func (s *Server) Summary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "summary")
	if !ok {
		return
	}
	q := r.URL.Query()
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	summary, err := s.reportService.Summary(ctx, uid, &service.DateRangeRequest{
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	})
	if err != nil {
		s.writeQueryError(w, logger, "summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "", map[string]any{"summary": summary})
}
