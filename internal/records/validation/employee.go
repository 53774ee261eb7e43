package validation

import "recordbook-server/internal/records/domain"

type employeeForm struct {
	Name     string `json:"name" validate:"trimmed_required"`
	Age      string `json:"age" validate:"trimmed_required,numeric_text,positive_integer"`
	Email    string `json:"email" validate:"trimmed_required,plain_email"`
	Salary   string `json:"salary" validate:"trimmed_required,numeric_text,positive_number"`
	JoinDate string `json:"joinDate" validate:"trimmed_required,calendar_date"`
}

var employeeMessages = map[string]string{
	"name.trimmed_required":     "Name is required",
	"age.trimmed_required":      "Age is required",
	"age.numeric_text":          "Age must be a number",
	"age.positive_integer":      "Age must be greater than zero",
	"email.trimmed_required":    "Email is required",
	"email.plain_email":         "Email is not valid",
	"salary.trimmed_required":   "Salary is required",
	"salary.numeric_text":       "Salary must be a number",
	"salary.positive_number":    "Salary must be greater than zero",
	"joinDate.trimmed_required": "Join date is required",
	"joinDate.calendar_date":    "Join date is not a valid date",
}

// EmployeeValidator accepts everything while Bypass is set.
type EmployeeValidator struct {
	Bypass bool
}

var _ domain.Validator = EmployeeValidator{}

func NewEmployeeValidator(bypass bool) EmployeeValidator {
	return EmployeeValidator{Bypass: bypass}
}

func (v EmployeeValidator) Validate(values domain.FormValues) domain.ValidationErrors {
	if v.Bypass {
		return domain.ValidationErrors{}
	}

	return validate(employeeForm{
		Name:     values[domain.NameField],
		Age:      values[domain.AgeField],
		Email:    values[domain.EmailField],
		Salary:   values[domain.SalaryField],
		JoinDate: values[domain.JoinDateField],
	}, employeeMessages)
}
