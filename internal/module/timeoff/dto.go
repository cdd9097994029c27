package timeoff

import (
	"time"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
)

// AttendanceRequest represents the input for creating or replacing an attendance record.
type AttendanceRequest struct {
	EmployeeID  uint       `json:"employeeId" binding:"required"`
	Date        time.Time  `json:"date" binding:"required"`
	CheckIn     *time.Time `json:"checkIn"`
	CheckOut    *time.Time `json:"checkOut"`
	HoursWorked float64    `json:"hoursWorked" binding:"gte=0"`
	Status      string     `json:"status" binding:"max=50"`
}

// AttendanceResponse is the wire shape of an attendance record.
type AttendanceResponse struct {
	ID          uint       `json:"id"`
	EmployeeID  uint       `json:"employeeId"`
	Date        time.Time  `json:"date"`
	CheckIn     *time.Time `json:"checkIn"`
	CheckOut    *time.Time `json:"checkOut"`
	HoursWorked float64    `json:"hoursWorked"`
	Status      string     `json:"status"`
	rest.Audit
}

func applyAttendance(req *AttendanceRequest, e *domain.Attendance) {
	e.EmployeeID = req.EmployeeID
	e.Date = req.Date
	e.CheckIn = req.CheckIn
	e.CheckOut = req.CheckOut
	e.HoursWorked = req.HoursWorked
	e.Status = req.Status
}

func toAttendanceResponse(e *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Date:        e.Date,
		CheckIn:     e.CheckIn,
		CheckOut:    e.CheckOut,
		HoursWorked: e.HoursWorked,
		Status:      e.Status,
		Audit:       rest.AuditOf(e),
	}
}

// LeaveRequest represents the input for creating or replacing a leave request.
type LeaveRequest struct {
	EmployeeID uint      `json:"employeeId" binding:"required"`
	LeaveType  string    `json:"leaveType" binding:"required,max=100"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	EndDate    time.Time `json:"endDate" binding:"required"`
	Reason     string    `json:"reason" binding:"max=1000"`
	Status     string    `json:"status" binding:"max=50"`
}

// LeaveResponse is the wire shape of a leave request.
type LeaveResponse struct {
	ID         uint      `json:"id"`
	EmployeeID uint      `json:"employeeId"`
	LeaveType  string    `json:"leaveType"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	rest.Audit
}

func applyLeave(req *LeaveRequest, e *domain.Leave) {
	e.EmployeeID = req.EmployeeID
	e.LeaveType = req.LeaveType
	e.StartDate = req.StartDate
	e.EndDate = req.EndDate
	e.Reason = req.Reason
	e.Status = req.Status
}

func toLeaveResponse(e *domain.Leave) LeaveResponse {
	return LeaveResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		LeaveType:  e.LeaveType,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		Reason:     e.Reason,
		Status:     e.Status,
		Audit:      rest.AuditOf(e),
	}
}
