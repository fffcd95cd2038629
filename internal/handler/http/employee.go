package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/employee"
	"github.com/crewdesk/hr-panel-backend-go/internal/domain/salary"
	"github.com/crewdesk/hr-panel-backend-go/internal/handler/http/response"
	employeeService "github.com/crewdesk/hr-panel-backend-go/internal/service/employee"
	"github.com/crewdesk/hr-panel-backend-go/internal/service/export"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Freeze(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
	ListSalaries(w http.ResponseWriter, r *http.Request)
	AddSalary(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employeeService.Service
}

func NewEmployeeHandler(service employeeService.Service) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: service,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list employees", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToEmployeeResponses(employees))
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToEmployeeResponse(emp))
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", employee.ToEmployeeResponse(created))
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.Update(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", nil)
}

// Freeze implements EmployeeHandler.
func (h *employeeHandlerImpl) Freeze(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.Freeze(r.Context(), id); err != nil {
		slog.Error("Failed to freeze employee", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee and related salary details have been frozen and removed from active records", nil)
}

// ExportXLSX implements EmployeeHandler.
func (h *employeeHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list employees for export", "error", err)
		response.HandleError(w, err)
		return
	}

	f, err := export.EmployeeRosterXLSX(employees)
	if err != nil {
		slog.Error("Failed to build roster workbook", "error", err)
		response.InternalServerError(w, "Failed to build export")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="employee_list.xlsx"`)
	if err := f.Write(w); err != nil {
		slog.Error("Failed to stream roster workbook", "error", err)
	}
}

// ListSalaries implements EmployeeHandler.
func (h *employeeHandlerImpl) ListSalaries(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	salaries, err := h.employeeService.ListSalaries(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, salary.ToSalaryResponses(salaries))
}

// AddSalary implements EmployeeHandler.
func (h *employeeHandlerImpl) AddSalary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req salary.AddSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.BadRequest(w, "Amount must be a number", nil)
		return
	}

	newSalary := salary.Salary{
		EmployeeID: id,
		Month:      req.Month,
		Amount:     amount,
		Note:       req.Note,
	}
	if req.PaidAt != nil {
		paidAt, err := time.Parse("2006-01-02", *req.PaidAt)
		if err != nil {
			response.BadRequest(w, "paid_at must be in YYYY-MM-DD format", nil)
			return
		}
		newSalary.PaidAt = &paidAt
	}

	created, err := h.employeeService.AddSalary(r.Context(), newSalary)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary record added", salary.ToSalaryResponse(created))
}
