package employee

import (
	"time"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
)

// EmployeeRequest represents the input for creating or replacing an employee.
type EmployeeRequest struct {
	Name         string     `json:"name" binding:"required,max=255"`
	Email        string     `json:"email" binding:"omitempty,email"`
	Phone        string     `json:"phone" binding:"max=50"`
	Address      string     `json:"address" binding:"max=500"`
	HireDate     *time.Time `json:"hireDate"`
	Salary       float64    `json:"salary" binding:"gte=0"`
	Status       string     `json:"status" binding:"max=50"`
	DepartmentID *uint      `json:"departmentId"`
	JobRoleID    *uint      `json:"jobRoleId"`
}

// EmployeeResponse is the wire shape of an employee.
type EmployeeResponse struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	HireDate     *time.Time `json:"hireDate"`
	Salary       float64    `json:"salary"`
	Status       string     `json:"status"`
	DepartmentID *uint      `json:"departmentId"`
	JobRoleID    *uint      `json:"jobRoleId"`
	rest.Audit
}

func applyEmployee(req *EmployeeRequest, e *domain.Employee) {
	e.Name = req.Name
	e.Email = req.Email
	e.Phone = req.Phone
	e.Address = req.Address
	e.HireDate = req.HireDate
	e.Salary = req.Salary
	e.Status = req.Status
	e.DepartmentID = req.DepartmentID
	e.JobRoleID = req.JobRoleID
}

func toEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Phone:        e.Phone,
		Address:      e.Address,
		HireDate:     e.HireDate,
		Salary:       e.Salary,
		Status:       e.Status,
		DepartmentID: e.DepartmentID,
		JobRoleID:    e.JobRoleID,
		Audit:        rest.AuditOf(e),
	}
}

// DepartmentRequest represents the input for creating or replacing a department.
type DepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Location    string `json:"location" binding:"max=255"`
	ManagerID   *uint  `json:"managerId"`
}

// DepartmentResponse is the wire shape of a department.
type DepartmentResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ManagerID   *uint  `json:"managerId"`
	rest.Audit
}

func applyDepartment(req *DepartmentRequest, e *domain.Department) {
	e.Name = req.Name
	e.Description = req.Description
	e.Location = req.Location
	e.ManagerID = req.ManagerID
}

func toDepartmentResponse(e *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Location:    e.Location,
		ManagerID:   e.ManagerID,
		Audit:       rest.AuditOf(e),
	}
}

// JobRoleRequest represents the input for creating or replacing a job role.
type JobRoleRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"max=1000"`
	MinSalary   float64 `json:"minSalary" binding:"gte=0"`
	MaxSalary   float64 `json:"maxSalary" binding:"gte=0"`
}

// JobRoleResponse is the wire shape of a job role.
type JobRoleResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	MinSalary   float64 `json:"minSalary"`
	MaxSalary   float64 `json:"maxSalary"`
	rest.Audit
}

func applyJobRole(req *JobRoleRequest, e *domain.JobRole) {
	e.Title = req.Title
	e.Description = req.Description
	e.MinSalary = req.MinSalary
	e.MaxSalary = req.MaxSalary
}

func toJobRoleResponse(e *domain.JobRole) JobRoleResponse {
	return JobRoleResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		MinSalary:   e.MinSalary,
		MaxSalary:   e.MaxSalary,
		Audit:       rest.AuditOf(e),
	}
}
