package employee

type CreateEmployeeRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	EmployeeNumber string `json:"employee_number"`
	Phone          string `json:"phone"`
	Department     string `json:"department" binding:"required"`
	Position       string `json:"position" binding:"required"`
	Status         string `json:"status" binding:"omitempty,oneof=Active 'On Leave' Terminated"`
	HireDate       string `json:"hire_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	EmployeeNumber string `json:"employee_number"`
	Phone          string `json:"phone"`
	Department     string `json:"department" binding:"required"`
	Position       string `json:"position" binding:"required"`
	Status         string `json:"status" binding:"required,oneof=Active 'On Leave' Terminated"`
	HireDate       string `json:"hire_date" binding:"required"`
	Version        int64  `json:"version" binding:"required,min=1"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	CompanyID      string `json:"company_id"`
	EmployeeNumber string `json:"employee_number,omitempty"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Department     string `json:"department"`
	Position       string `json:"position"`
	Status         string `json:"status"`
	HireDate       string `json:"hire_date"`
	Version        int64  `json:"version"`
}

// EmployeeOption is the slim shape used by the leave request form.
type EmployeeOption struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}
