package employee

import (
	"testing"

	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		Name:           "Aisha",
		DOB:            "1995-06-12",
		Gender:         "Female",
		Address:        "14 Canal Road",
		Email:          "aisha@example.com",
		Phone:          "03001234567",
		EmployeeCode:   "E101",
		Role:           "Sales Agent",
		JoiningDate:    "2022-01-10",
		EmploymentType: "Full-time",
	}
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateEmployeeRequestValidateRequiredFields(t *testing.T) {
	req := CreateEmployeeRequest{}
	err := req.Validate()

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	fields := errs.ToMap()
	for _, field := range []string{
		"name", "dob", "gender", "address", "email", "phone",
		"employee_id", "role", "joining_date", "employment_type",
	} {
		assert.Contains(t, fields, field)
	}
}

func TestCreateEmployeeRequestValidateFormats(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*CreateEmployeeRequest)
		wantField string
	}{
		{"bad email", func(r *CreateEmployeeRequest) { r.Email = "not-an-email" }, "email"},
		{"bad dob", func(r *CreateEmployeeRequest) { r.DOB = "12-06-1995" }, "dob"},
		{"bad joining date", func(r *CreateEmployeeRequest) { r.JoiningDate = "soon" }, "joining_date"},
		{"bad employment type", func(r *CreateEmployeeRequest) { r.EmploymentType = "Freelance" }, "employment_type"},
		{"bad salary", func(r *CreateEmployeeRequest) { s := "lots"; r.Salary = &s }, "salary"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)

			var errs validator.ValidationErrors
			require.ErrorAs(t, req.Validate(), &errs)
			assert.Contains(t, errs.ToMap(), tc.wantField)
		})
	}
}

func TestCreateEmployeeRequestValidateDecimalSalary(t *testing.T) {
	req := validCreateRequest()
	s := "85000.50"
	req.Salary = &s
	assert.NoError(t, req.Validate())
}

func TestMarkable(t *testing.T) {
	assert.True(t, Employee{EmploymentType: EmploymentTypeFullTime}.Markable())
	assert.True(t, Employee{EmploymentType: EmploymentTypeTrainee}.Markable())
	assert.False(t, Employee{EmploymentType: EmploymentTypeRemote}.Markable())
	assert.False(t, Employee{EmploymentType: EmploymentTypeMyself}.Markable())
}
