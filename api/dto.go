package api

// Shifts

type ShiftGenerateRequest struct {
	PatientID   string `json:"patient_id"`
	EmployeeID  string `json:"employee_id"`
	AnchorDate  string `json:"anchor_date"` // YYYY-MM-DD
	ScaleType   string `json:"scale_type"`
	TargetCount int    `json:"target_count"`
	StartTime   string `json:"start_time"` // HH:MM
	EndTime     string `json:"end_time"`   // HH:MM
	Status      string `json:"status,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type ShiftUpdateRequest struct {
	PatientID  string `json:"patient_id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
}

type ShiftResponse struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	EmployeeID  string `json:"employee_id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
	RepeatCount *int   `json:"repeat_count,omitempty"`
}

// ShiftBatchResponse reports the outcome of one generation call. Truncated is
// set when the generator hit its iteration bound before reaching the target,
// so callers can tell a short batch from a complete one.
type ShiftBatchResponse struct {
	Requested int             `json:"requested"`
	Created   int             `json:"created"`
	Truncated bool            `json:"truncated"`
	Shifts    []ShiftResponse `json:"shifts"`
}

// Patients

type PatientRequest struct {
	Name                        string `json:"name"`
	Contact                     string `json:"contact,omitempty"`
	FinancialResponsible        string `json:"financial_responsible"`
	FinancialResponsibleContact string `json:"financial_responsible_contact,omitempty"`
	Address                     string `json:"address"`
	Document                    string `json:"document,omitempty"`
	Status                      string `json:"status"`
	Notes                       string `json:"notes,omitempty"`
}

type PatientResponse struct {
	ID                          string `json:"id"`
	Name                        string `json:"name"`
	Contact                     string `json:"contact,omitempty"`
	FinancialResponsible        string `json:"financial_responsible"`
	FinancialResponsibleContact string `json:"financial_responsible_contact,omitempty"`
	Address                     string `json:"address"`
	Document                    string `json:"document,omitempty"`
	Status                      string `json:"status"`
	Notes                       string `json:"notes,omitempty"`
}

// Employees

type EmployeeRequest struct {
	Name                 string   `json:"name"`
	Phone                string   `json:"phone"`
	Role                 string   `json:"role"`
	PixKey               string   `json:"pix_key,omitempty"`
	ProfessionalRegister string   `json:"professional_register,omitempty"`
	AdmissionDate        string   `json:"admission_date"` // YYYY-MM-DD
	Skills               []string `json:"skills,omitempty"`
	Status               string   `json:"status"`
}

type EmployeeResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Phone                string   `json:"phone"`
	Role                 string   `json:"role"`
	PixKey               string   `json:"pix_key,omitempty"`
	ProfessionalRegister string   `json:"professional_register,omitempty"`
	AdmissionDate        string   `json:"admission_date"`
	Skills               []string `json:"skills,omitempty"`
	Status               string   `json:"status"`
}

// Contracts

type ContractRequest struct {
	PatientID      string  `json:"patient_id"`
	Value          float64 `json:"value"`
	StartDate      string  `json:"start_date"` // YYYY-MM-DD
	ShiftsPerMonth int     `json:"shifts_per_month"`
	Status         string  `json:"status"`
	Description    string  `json:"description,omitempty"`
}

type ContractResponse struct {
	ID             string  `json:"id"`
	PatientID      string  `json:"patient_id"`
	Value          float64 `json:"value"`
	StartDate      string  `json:"start_date"`
	ShiftsPerMonth int     `json:"shifts_per_month"`
	Status         string  `json:"status"`
	Description    string  `json:"description,omitempty"`
}

// Finance

type FinanceRecordRequest struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Status      string  `json:"status"`
	ContractID  *string `json:"contract_id,omitempty"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	PatientID   *string `json:"patient_id,omitempty"`
}

type FinanceRecordResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	ContractID  *string `json:"contract_id,omitempty"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	PatientID   *string `json:"patient_id,omitempty"`
}

// Monitoring

type MonitoringRequest struct {
	ContractID  string  `json:"contract_id"`
	Month       string  `json:"month"` // YYYY-MM
	HoursWorked float64 `json:"hours_worked"`
	Occurrences string  `json:"occurrences"`
}

type MonitoringResponse struct {
	ID          string  `json:"id"`
	ContractID  string  `json:"contract_id"`
	Month       string  `json:"month"`
	HoursWorked float64 `json:"hours_worked"`
	Occurrences string  `json:"occurrences"`
	AISummary   *string `json:"ai_summary,omitempty"`
	Status      string  `json:"status"`
}

// Timecard

type CheckInRequest struct {
	EmployeeID string   `json:"employee_id"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
}

type CheckOutRequest struct {
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`
}

type TimeRecordResponse struct {
	ID          string   `json:"id"`
	EmployeeID  string   `json:"employee_id"`
	Date        string   `json:"date"`
	CheckIn     string   `json:"check_in"` // RFC3339
	CheckInLat  *float64 `json:"check_in_lat,omitempty"`
	CheckInLng  *float64 `json:"check_in_lng,omitempty"`
	CheckOut    *string  `json:"check_out,omitempty"`
	CheckOutLat *float64 `json:"check_out_lat,omitempty"`
	CheckOutLng *float64 `json:"check_out_lng,omitempty"`
	Status      string   `json:"status"`
}
