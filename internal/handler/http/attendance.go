package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/attendance"
	"github.com/crewdesk/hr-panel-backend-go/internal/domain/employee"
	"github.com/crewdesk/hr-panel-backend-go/internal/handler/http/response"
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/validator"
	attendanceService "github.com/crewdesk/hr-panel-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	SelectDate(w http.ResponseWriter, r *http.Request)
	SelectEmployee(w http.ResponseWriter, r *http.Request)
	Eligible(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	BeginEdit(w http.ResponseWriter, r *http.Request)
	ApplyEdit(w http.ResponseWriter, r *http.Request)
	CancelEdit(w http.ResponseWriter, r *http.Request)
	Records(w http.ResponseWriter, r *http.Request)
	RefreshRoster(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	Options(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	session *attendanceService.Session
	service attendanceService.Service
}

func NewAttendanceHandler(session *attendanceService.Session, service attendanceService.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		session: session,
		service: service,
	}
}

// SelectDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req attendance.SelectDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}
	date, _ := validator.IsValidDate(req.Date)

	if err := h.session.SelectDate(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.ToRecordResponses(h.session.Records()))
}

// SelectEmployee implements AttendanceHandler.
func (h *attendanceHandlerImpl) SelectEmployee(w http.ResponseWriter, r *http.Request) {
	var req attendance.SelectEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	h.session.SelectEmployee(req.EmployeeID)

	form := h.session.FormState()
	response.Success(w, map[string]string{
		"employee_id": form.EmployeeID,
		"name":        form.Name,
		"role":        form.Role,
	})
}

// Eligible implements AttendanceHandler.
func (h *attendanceHandlerImpl) Eligible(w http.ResponseWriter, r *http.Request) {
	response.Success(w, employee.ToEmployeeResponses(h.session.EligibleEmployees()))
}

// Submit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.session.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked", attendance.ToRecordResponse(rec))
}

// BeginEdit implements AttendanceHandler.
func (h *attendanceHandlerImpl) BeginEdit(w http.ResponseWriter, r *http.Request) {
	var req attendance.BeginEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.session.BeginEdit(req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.ToRecordResponse(rec))
}

// ApplyEdit implements AttendanceHandler.
func (h *attendanceHandlerImpl) ApplyEdit(w http.ResponseWriter, r *http.Request) {
	var req attendance.ApplyEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.session.ApplyEdit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", attendance.ToRecordResponse(rec))
}

// CancelEdit implements AttendanceHandler.
func (h *attendanceHandlerImpl) CancelEdit(w http.ResponseWriter, r *http.Request) {
	h.session.CancelEdit()
	response.SuccessWithMessage(w, "Edit cancelled", nil)
}

// Records implements AttendanceHandler.
func (h *attendanceHandlerImpl) Records(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	status := r.URL.Query().Get("status")

	records := h.session.Filter(name, status)
	response.Success(w, attendance.ToRecordResponses(records))
}

// RefreshRoster implements AttendanceHandler.
func (h *attendanceHandlerImpl) RefreshRoster(w http.ResponseWriter, r *http.Request) {
	if err := h.session.RefreshRoster(r.Context()); err != nil {
		slog.Error("Failed to refresh roster", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Roster refreshed", nil)
}

// ListByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		response.BadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	records, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		slog.Error("Failed to list attendance", "error", err, "date", dateStr)
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.ToRecordResponses(records))
}

// Options implements AttendanceHandler.
func (h *attendanceHandlerImpl) Options(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.service.Options())
}
