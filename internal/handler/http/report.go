package http

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/report"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Overview implements ReportHandler.
func (h *ReportHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	view, err := h.reportService.Overview(r.Context(), session)
	if err != nil {
		slog.Error("Report overview service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}
