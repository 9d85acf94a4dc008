package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	MyPayroll(w http.ResponseWriter, r *http.Request)
	AllPayroll(w http.ResponseWriter, r *http.Request)
	DownloadSlip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// MyPayroll implements PayrollHandler.
func (h *PayrollHandlerImpl) MyPayroll(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	list, err := h.payrollService.MyPayroll(r.Context(), session)
	if err != nil {
		slog.Error("MyPayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, list)
}

// AllPayroll implements PayrollHandler.
func (h *PayrollHandlerImpl) AllPayroll(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	list, err := h.payrollService.AllPayroll(r.Context(), session)
	if err != nil {
		slog.Error("AllPayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, list)
}

// DownloadSlip serves the salary slip as a plain text attachment.
func (h *PayrollHandlerImpl) DownloadSlip(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	recordID := chi.URLParam(r, "id")
	slip, err := h.payrollService.Slip(r.Context(), session, recordID)
	if err != nil {
		slog.Error("DownloadSlip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("salary-slip-%s.txt", recordID)
	response.PlainText(w, filename, slip)
}
