package export

import (
	"fmt"

	"github.com/crewdesk/hr-panel-backend-go/internal/domain/employee"
	"github.com/xuri/excelize/v2"
)

var rosterHeader = []string{
	"Employee ID", "Name", "DOB", "Gender", "Address", "Email", "Phone",
	"Role", "Department", "Joining Date", "Employment Type", "Salary",
}

// EmployeeRosterXLSX builds a one-sheet workbook of the employee list.
// Bank details, CNIC and password are deliberately left out of exports.
func EmployeeRosterXLSX(employees []employee.Employee) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Employees"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, title := range rosterHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, emp := range employees {
		row := []interface{}{
			emp.EmployeeCode,
			emp.Name,
			emp.DOB,
			string(emp.Gender),
			emp.Address,
			emp.Email,
			emp.Phone,
			emp.Role,
			strOrEmpty(emp.Department),
			emp.JoiningDate,
			string(emp.EmploymentType),
			salaryOrEmpty(emp),
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
			}
		}
	}

	return f, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func salaryOrEmpty(emp employee.Employee) string {
	if emp.Salary == nil {
		return ""
	}
	return emp.Salary.String()
}
