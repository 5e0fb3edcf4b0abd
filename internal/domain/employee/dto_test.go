package employee

import (
	"testing"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		EmployeeCode:   "AGT-0042",
		FullName:       "Mia Chen",
		EmploymentType: string(EmploymentTypeFullTime),
		BaseSalary:     "60000",
		ShiftStart:     "09:00",
		ShiftEnd:       "17:00",
		SalesTarget:    "10000",
	}
}

func TestCreateEmployeeRequestAcceptsValidInput(t *testing.T) {
	t.Parallel()

	req := validCreateRequest()
	require.NoError(t, req.Validate())
}

func TestCreateEmployeeRequestValidatesBaseSalary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		salary  string
		wantMsg string
	}{
		{"rejects non-numeric", "abc", "base_salary must be a decimal number"},
		{"rejects zero", "0", "base_salary must be greater than zero"},
		{"rejects negative", "-100", "base_salary must be greater than zero"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			req.BaseSalary = tc.salary

			err := req.Validate()

			require.Error(t, err)
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, tc.wantMsg, errs.ToMap()["base_salary"])
		})
	}
}

func TestUpdateEmployeeRequestValidatesBaseSalary(t *testing.T) {
	t.Parallel()

	zero := "0"
	req := UpdateEmployeeRequest{ID: "emp-1", BaseSalary: &zero}

	err := req.Validate()

	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "base_salary must be greater than zero", errs.ToMap()["base_salary"])
}

func TestUpdateEmployeeRequestAllowsOmittedFields(t *testing.T) {
	t.Parallel()

	req := UpdateEmployeeRequest{ID: "emp-1"}
	require.NoError(t, req.Validate())
}
