package models

import "time"

type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "SCHEDULED"
	ShiftCompleted ShiftStatus = "COMPLETED"
	ShiftCancelled ShiftStatus = "CANCELLED"
	ShiftAbsence   ShiftStatus = "ABSENCE"
)

// ScaleType is the work/rest cadence of a generated duty roster.
type ScaleType string

const (
	ScaleDaily                  ScaleType = "DAILY"
	ScaleTwelveByThirtySix      ScaleType = "12x36"
	ScaleTwentyFourByTwentyFour ScaleType = "24x24"
	ScaleTwentyFourByFortyEight ScaleType = "24x48"
	ScaleFiveByTwo              ScaleType = "5x2"
)

type PatientStatus string

const (
	PatientActive   PatientStatus = "ACTIVE"
	PatientInactive PatientStatus = "INACTIVE"
)

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "ACTIVE"
	EmployeeInactive EmployeeStatus = "INACTIVE"
	EmployeeVacation EmployeeStatus = "VACATION"
)

type ContractStatus string

const (
	ContractActive    ContractStatus = "ACTIVE"
	ContractPending   ContractStatus = "PENDING"
	ContractEnded     ContractStatus = "ENDED"
	ContractSuspended ContractStatus = "SUSPENDED"
)

type PaymentType string

const (
	PaymentIncome  PaymentType = "INCOME"
	PaymentPayroll PaymentType = "PAYROLL"
	PaymentExpense PaymentType = "EXPENSE"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentLate    PaymentStatus = "LATE"
)

type MonitoringStatus string

const (
	MonitoringOpen   MonitoringStatus = "OPEN"
	MonitoringClosed MonitoringStatus = "CLOSED"
)

type TimeRecordStatus string

const (
	TimeRecordOpen   TimeRecordStatus = "OPEN"
	TimeRecordClosed TimeRecordStatus = "CLOSED"
)

// Shift is one work assignment of one employee to one patient on one calendar
// date. Date carries no time-of-day component; StartTime and EndTime are the
// literal HH:MM strings entered at creation and are not checked against date
// rollover (an end time earlier than the start time is stored as-is).
type Shift struct {
	ID          string      `db:"shift_id"`
	PatientID   string      `db:"patient_id"`
	EmployeeID  string      `db:"employee_id"`
	Date        time.Time   `db:"shift_date"`
	StartTime   string      `db:"start_time"`
	EndTime     string      `db:"end_time"`
	Status      ShiftStatus `db:"status"`
	Notes       string      `db:"notes"`
	RepeatCount *int        `db:"repeat_count"`
}

type Patient struct {
	ID                          string        `db:"patient_id"`
	Name                        string        `db:"name"`
	Contact                     string        `db:"contact"`
	FinancialResponsible        string        `db:"financial_responsible"`
	FinancialResponsibleContact string        `db:"financial_responsible_contact"`
	Address                     string        `db:"address"`
	Document                    string        `db:"document"`
	Status                      PatientStatus `db:"status"`
	Notes                       string        `db:"notes"`
}

type Employee struct {
	ID                   string         `db:"employee_id"`
	Name                 string         `db:"name"`
	Phone                string         `db:"phone"`
	Role                 string         `db:"role"`
	PixKey               string         `db:"pix_key"`
	ProfessionalRegister string         `db:"professional_register"`
	AdmissionDate        time.Time      `db:"admission_date"`
	Skills               []string       `db:"skills"`
	Status               EmployeeStatus `db:"status"`
}

type Contract struct {
	ID             string         `db:"contract_id"`
	PatientID      string         `db:"patient_id"`
	Value          float64        `db:"value"`
	StartDate      time.Time      `db:"start_date"`
	ShiftsPerMonth int            `db:"shifts_per_month"`
	Status         ContractStatus `db:"status"`
	Description    string         `db:"description"`
}

type FinanceRecord struct {
	ID          string        `db:"finance_id"`
	Type        PaymentType   `db:"payment_type"`
	Description string        `db:"description"`
	Amount      float64       `db:"amount"`
	Date        time.Time     `db:"record_date"`
	Status      PaymentStatus `db:"status"`
	ContractID  *string       `db:"contract_id"`
	EmployeeID  *string       `db:"employee_id"`
	PatientID   *string       `db:"patient_id"`
}

type MonthlyMonitoring struct {
	ID          string           `db:"monitoring_id"`
	ContractID  string           `db:"contract_id"`
	Month       string           `db:"month"`
	HoursWorked float64          `db:"hours_worked"`
	Occurrences string           `db:"occurrences"`
	AISummary   *string          `db:"ai_summary"`
	Status      MonitoringStatus `db:"status"`
}

// TimeRecord is one time-clock punch pair. Coordinates are whatever the
// client's geolocation capture produced and may be absent when capture was
// denied or unavailable.
type TimeRecord struct {
	ID          string           `db:"time_record_id"`
	EmployeeID  string           `db:"employee_id"`
	Date        time.Time        `db:"record_date"`
	CheckIn     time.Time        `db:"check_in"`
	CheckInLat  *float64         `db:"check_in_lat"`
	CheckInLng  *float64         `db:"check_in_lng"`
	CheckOut    *time.Time       `db:"check_out"`
	CheckOutLat *float64         `db:"check_out_lat"`
	CheckOutLng *float64         `db:"check_out_lng"`
	Status      TimeRecordStatus `db:"status"`
}
