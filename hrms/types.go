package hrms

import "github.com/workzen/hrms-client/session"

// Page is a Spring-style paginated response.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// PageRequest selects a page of results. Zero values mean backend defaults.
type PageRequest struct {
	Page          int
	Size          int
	SortBy        string
	SortDirection string
}

// AuthResponse is the payload of /auth/login and /auth/refresh.
type AuthResponse struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	TokenType    string           `json:"tokenType"`
	ExpiresIn    int64            `json:"expiresIn"`
	IsFirstLogin *bool            `json:"isFirstLogin,omitempty"`
	User         session.UserInfo `json:"user"`
}

type Employee struct {
	ID            int64        `json:"id"`
	EmployeeID    string       `json:"employeeId"`
	FirstName     string       `json:"firstName"`
	LastName      string       `json:"lastName"`
	Email         string       `json:"email"`
	PhoneNumber   string       `json:"phoneNumber,omitempty"`
	DateOfBirth   string       `json:"dateOfBirth,omitempty"`
	Gender        string       `json:"gender,omitempty"`
	Address       string       `json:"address,omitempty"`
	City          string       `json:"city,omitempty"`
	State         string       `json:"state,omitempty"`
	Pincode       string       `json:"pincode,omitempty"`
	DateOfJoining string       `json:"dateOfJoining,omitempty"`
	Department    string       `json:"department,omitempty"`
	Designation   string       `json:"designation,omitempty"`
	Role          session.Role `json:"role,omitempty"`
	Status        string       `json:"status,omitempty"`
	Salary        *float64     `json:"salary,omitempty"`
	Manager       *Employee    `json:"manager,omitempty"`
}

type Attendance struct {
	ID            int64     `json:"id"`
	Employee      *Employee `json:"employee,omitempty"`
	Date          string    `json:"date"`
	CheckInTime   string    `json:"checkInTime,omitempty"`
	CheckOutTime  string    `json:"checkOutTime,omitempty"`
	Status        string    `json:"status"`
	WorkHours     float64   `json:"workHours,omitempty"`
	OvertimeHours float64   `json:"overtimeHours,omitempty"`
	Remarks       string    `json:"remarks,omitempty"`
	IsLate        bool      `json:"isLate,omitempty"`
	LateMinutes   int       `json:"lateMinutes,omitempty"`
}

type LeaveType struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	MaxDaysAllowed   int    `json:"maxDaysAllowed"`
	IsActive         bool   `json:"isActive"`
	RequiresApproval bool   `json:"requiresApproval"`
}

type LeaveApplication struct {
	ID              int64     `json:"id"`
	Employee        *Employee `json:"employee,omitempty"`
	LeaveType       LeaveType `json:"leaveType"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	TotalDays       float64   `json:"totalDays"`
	Reason          string    `json:"reason,omitempty"`
	Status          string    `json:"status"`
	ApprovedBy      *Employee `json:"approvedBy,omitempty"`
	ApprovalDate    string    `json:"approvalDate,omitempty"`
	ApprovalRemarks string    `json:"approvalRemarks,omitempty"`
	IsHalfDay       bool      `json:"isHalfDay,omitempty"`
}

type LeaveBalance struct {
	ID             int64     `json:"id"`
	Employee       *Employee `json:"employee,omitempty"`
	LeaveType      LeaveType `json:"leaveType"`
	Year           int       `json:"year"`
	TotalAllocated float64   `json:"totalAllocated"`
	Used           float64   `json:"used"`
	Balance        float64   `json:"balance"`
}

type Payroll struct {
	ID              int64     `json:"id"`
	Employee        *Employee `json:"employee,omitempty"`
	SalaryMonth     string    `json:"salaryMonth"`
	BasicSalary     float64   `json:"basicSalary"`
	GrossSalary     float64   `json:"grossSalary"`
	TotalDeductions float64   `json:"totalDeductions"`
	NetSalary       float64   `json:"netSalary"`
	ProvidentFund   float64   `json:"providentFund,omitempty"`
	ProfessionalTax float64   `json:"professionalTax,omitempty"`
	IncomeTax       float64   `json:"incomeTax,omitempty"`
	DaysWorked      float64   `json:"daysWorked,omitempty"`
	DaysOnLeave     float64   `json:"daysOnLeave,omitempty"`
	OvertimeHours   float64   `json:"overtimeHours,omitempty"`
	IsProcessed     bool      `json:"isProcessed"`
	ProcessedDate   string    `json:"processedDate,omitempty"`
}

type Performance struct {
	ID                    int64     `json:"id"`
	Employee              *Employee `json:"employee,omitempty"`
	Reviewer              *Employee `json:"reviewer,omitempty"`
	ReviewPeriodStart     string    `json:"reviewPeriodStart"`
	ReviewPeriodEnd       string    `json:"reviewPeriodEnd"`
	OverallRating         float64   `json:"overallRating"`
	TechnicalSkillsRating float64   `json:"technicalSkillsRating,omitempty"`
	CommunicationRating   float64   `json:"communicationRating,omitempty"`
	TeamworkRating        float64   `json:"teamworkRating,omitempty"`
	LeadershipRating      float64   `json:"leadershipRating,omitempty"`
	Strengths             string    `json:"strengths,omitempty"`
	AreasForImprovement   string    `json:"areasForImprovement,omitempty"`
	Goals                 string    `json:"goals,omitempty"`
	ReviewerComments      string    `json:"reviewerComments,omitempty"`
	Status                string    `json:"status"`
	ReviewDate            string    `json:"reviewDate,omitempty"`
}

type Department struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Manager     *Employee `json:"manager,omitempty"`
	IsActive    bool      `json:"isActive"`
}

type Designation struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Level       int    `json:"level,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// EmployeeStatistics is the headcount summary shown on the dashboard.
type EmployeeStatistics struct {
	TotalEmployees    int64 `json:"totalEmployees"`
	ActiveEmployees   int64 `json:"activeEmployees"`
	InactiveEmployees int64 `json:"inactiveEmployees"`
}

// ActionResult is the generic success/message payload some write endpoints
// return instead of an entity.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
