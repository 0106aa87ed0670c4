package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homecare-service/api"
	"homecare-service/internal/lock"
	"homecare-service/internal/models"
	"homecare-service/internal/roster"
	"homecare-service/pkg/response"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
	clockLayout = "15:04"
)

type Service struct {
	store      Store
	locker     lock.Locker
	summarizer Summarizer
}

func NewService(store Store, locker lock.Locker, summarizer Summarizer) *Service {
	return &Service{store: store, locker: locker, summarizer: summarizer}
}

type Store interface {
	// Patients
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	GetPatient(ctx context.Context, id string) (*models.Patient, error)
	ListPatients(ctx context.Context) ([]*models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeletePatient(ctx context.Context, id string) error

	// Employees
	CreateEmployee(ctx context.Context, employee *models.Employee) (string, error)
	GetEmployee(ctx context.Context, id string) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
	UpdateEmployee(ctx context.Context, employee *models.Employee) error
	DeleteEmployee(ctx context.Context, id string) error

	// Contracts
	CreateContract(ctx context.Context, contract *models.Contract) (string, error)
	GetContract(ctx context.Context, id string) (*models.Contract, error)
	ListContracts(ctx context.Context, patientID *string) ([]*models.Contract, error)
	UpdateContract(ctx context.Context, contract *models.Contract) error

	// Finance
	CreateFinanceRecord(ctx context.Context, record *models.FinanceRecord) (string, error)
	GetFinanceRecord(ctx context.Context, id string) (*models.FinanceRecord, error)
	ListFinanceRecords(ctx context.Context, paymentType, status, patientID *string) ([]*models.FinanceRecord, error)

	// Monitoring
	CreateMonitoring(ctx context.Context, monitoring *models.MonthlyMonitoring) (string, error)
	GetMonitoring(ctx context.Context, id string) (*models.MonthlyMonitoring, error)
	ListMonitorings(ctx context.Context, contractID *string) ([]*models.MonthlyMonitoring, error)
	UpdateMonitoringStatus(ctx context.Context, id string, status models.MonitoringStatus) error
	SetMonitoringSummary(ctx context.Context, id string, summary string) error

	// Shifts
	BulkInsertShifts(ctx context.Context, shifts []models.Shift) error
	GetShift(ctx context.Context, id string) (*models.Shift, error)
	ListShiftsByDate(ctx context.Context, date time.Time, patientID *string) ([]*models.Shift, error)
	UpdateShift(ctx context.Context, shift *models.Shift) error
	DeleteShift(ctx context.Context, id string) error

	// Time records
	CreateTimeRecord(ctx context.Context, record *models.TimeRecord) (string, error)
	GetTimeRecord(ctx context.Context, id string) (*models.TimeRecord, error)
	GetOpenTimeRecord(ctx context.Context, employeeID string) (*models.TimeRecord, error)
	CloseTimeRecord(ctx context.Context, id string, checkOut time.Time, lat, lng *float64) error
	ListTimeRecords(ctx context.Context, employeeID *string) ([]*models.TimeRecord, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, patientName, month string, hoursWorked float64, occurrences string) (string, error)
}

// Patients

func (s *Service) CreatePatient(ctx context.Context, req *api.PatientRequest) (*api.PatientResponse, error) {
	const op = "service.CreatePatient"

	status, err := parsePatientStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	patient := &models.Patient{
		Name:                        req.Name,
		Contact:                     req.Contact,
		FinancialResponsible:        req.FinancialResponsible,
		FinancialResponsibleContact: req.FinancialResponsibleContact,
		Address:                     req.Address,
		Document:                    req.Document,
		Status:                      status,
		Notes:                       req.Notes,
	}

	id, err := s.store.CreatePatient(ctx, patient)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetPatient(ctx, id)
}

func (s *Service) GetPatient(ctx context.Context, id string) (*api.PatientResponse, error) {
	const op = "service.GetPatient"

	patient, err := s.store.GetPatient(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return patientToResponse(patient), nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*api.PatientResponse, error) {
	const op = "service.ListPatients"

	patients, err := s.store.ListPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.PatientResponse, 0, len(patients))
	for _, patient := range patients {
		result = append(result, patientToResponse(patient))
	}

	return result, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id string, req *api.PatientRequest) (*api.PatientResponse, error) {
	const op = "service.UpdatePatient"

	patient, err := s.store.GetPatient(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	status, err := parsePatientStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	patient.Name = req.Name
	patient.Contact = req.Contact
	patient.FinancialResponsible = req.FinancialResponsible
	patient.FinancialResponsibleContact = req.FinancialResponsibleContact
	patient.Address = req.Address
	patient.Document = req.Document
	patient.Status = status
	patient.Notes = req.Notes

	if err := s.store.UpdatePatient(ctx, patient); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetPatient(ctx, id)
}

func (s *Service) DeletePatient(ctx context.Context, id string) error {
	const op = "service.DeletePatient"

	if err := s.store.DeletePatient(ctx, id); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Employees

func (s *Service) CreateEmployee(ctx context.Context, req *api.EmployeeRequest) (*api.EmployeeResponse, error) {
	const op = "service.CreateEmployee"

	status, err := parseEmployeeStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	admissionDate, err := time.Parse(dateLayout, req.AdmissionDate)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid admission_date: %w", op, err)
	}

	employee := &models.Employee{
		Name:                 req.Name,
		Phone:                req.Phone,
		Role:                 req.Role,
		PixKey:               req.PixKey,
		ProfessionalRegister: req.ProfessionalRegister,
		AdmissionDate:        admissionDate,
		Skills:               req.Skills,
		Status:               status,
	}

	id, err := s.store.CreateEmployee(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetEmployee(ctx, id)
}

func (s *Service) GetEmployee(ctx context.Context, id string) (*api.EmployeeResponse, error) {
	const op = "service.GetEmployee"

	employee, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return employeeToResponse(employee), nil
}

func (s *Service) ListEmployees(ctx context.Context) ([]*api.EmployeeResponse, error) {
	const op = "service.ListEmployees"

	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		result = append(result, employeeToResponse(employee))
	}

	return result, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id string, req *api.EmployeeRequest) (*api.EmployeeResponse, error) {
	const op = "service.UpdateEmployee"

	employee, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	status, err := parseEmployeeStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	admissionDate, err := time.Parse(dateLayout, req.AdmissionDate)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid admission_date: %w", op, err)
	}

	employee.Name = req.Name
	employee.Phone = req.Phone
	employee.Role = req.Role
	employee.PixKey = req.PixKey
	employee.ProfessionalRegister = req.ProfessionalRegister
	employee.AdmissionDate = admissionDate
	employee.Skills = req.Skills
	employee.Status = status

	if err := s.store.UpdateEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetEmployee(ctx, id)
}

func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	const op = "service.DeleteEmployee"

	if err := s.store.DeleteEmployee(ctx, id); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Contracts

func (s *Service) CreateContract(ctx context.Context, req *api.ContractRequest) (*api.ContractResponse, error) {
	const op = "service.CreateContract"

	status, err := parseContractStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid start_date: %w", op, err)
	}

	contract := &models.Contract{
		PatientID:      req.PatientID,
		Value:          req.Value,
		StartDate:      startDate,
		ShiftsPerMonth: req.ShiftsPerMonth,
		Status:         status,
		Description:    req.Description,
	}

	id, err := s.store.CreateContract(ctx, contract)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetContract(ctx, id)
}

func (s *Service) GetContract(ctx context.Context, id string) (*api.ContractResponse, error) {
	const op = "service.GetContract"

	contract, err := s.store.GetContract(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contractToResponse(contract), nil
}

func (s *Service) ListContracts(ctx context.Context, patientID *string) ([]*api.ContractResponse, error) {
	const op = "service.ListContracts"

	contracts, err := s.store.ListContracts(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.ContractResponse, 0, len(contracts))
	for _, contract := range contracts {
		result = append(result, contractToResponse(contract))
	}

	return result, nil
}

func (s *Service) UpdateContract(ctx context.Context, id string, req *api.ContractRequest) (*api.ContractResponse, error) {
	const op = "service.UpdateContract"

	contract, err := s.store.GetContract(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	status, err := parseContractStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid start_date: %w", op, err)
	}

	contract.PatientID = req.PatientID
	contract.Value = req.Value
	contract.StartDate = startDate
	contract.ShiftsPerMonth = req.ShiftsPerMonth
	contract.Status = status
	contract.Description = req.Description

	if err := s.store.UpdateContract(ctx, contract); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetContract(ctx, id)
}

// Finance

func (s *Service) CreateFinanceRecord(ctx context.Context, req *api.FinanceRecordRequest) (*api.FinanceRecordResponse, error) {
	const op = "service.CreateFinanceRecord"

	paymentType, err := parsePaymentType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	status, err := parsePaymentStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid date: %w", op, err)
	}

	record := &models.FinanceRecord{
		Type:        paymentType,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Status:      status,
		ContractID:  req.ContractID,
		EmployeeID:  req.EmployeeID,
		PatientID:   req.PatientID,
	}

	id, err := s.store.CreateFinanceRecord(ctx, record)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetFinanceRecord(ctx, id)
}

func (s *Service) GetFinanceRecord(ctx context.Context, id string) (*api.FinanceRecordResponse, error) {
	const op = "service.GetFinanceRecord"

	record, err := s.store.GetFinanceRecord(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return financeToResponse(record), nil
}

func (s *Service) ListFinanceRecords(ctx context.Context, paymentType, status, patientID *string) ([]*api.FinanceRecordResponse, error) {
	const op = "service.ListFinanceRecords"

	records, err := s.store.ListFinanceRecords(ctx, paymentType, status, patientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.FinanceRecordResponse, 0, len(records))
	for _, record := range records {
		result = append(result, financeToResponse(record))
	}

	return result, nil
}

// Monitoring

func (s *Service) CreateMonitoring(ctx context.Context, req *api.MonitoringRequest) (*api.MonitoringResponse, error) {
	const op = "service.CreateMonitoring"

	if _, err := time.Parse(monthLayout, req.Month); err != nil {
		return nil, fmt.Errorf("%s: invalid month: %w", op, err)
	}

	if _, err := s.store.GetContract(ctx, req.ContractID); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	monitoring := &models.MonthlyMonitoring{
		ContractID:  req.ContractID,
		Month:       req.Month,
		HoursWorked: req.HoursWorked,
		Occurrences: req.Occurrences,
		Status:      models.MonitoringOpen,
	}

	id, err := s.store.CreateMonitoring(ctx, monitoring)
	if err != nil {
		if errors.Is(err, response.ErrConflict) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrConflict)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetMonitoring(ctx, id)
}

func (s *Service) GetMonitoring(ctx context.Context, id string) (*api.MonitoringResponse, error) {
	const op = "service.GetMonitoring"

	monitoring, err := s.store.GetMonitoring(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return monitoringToResponse(monitoring), nil
}

func (s *Service) ListMonitorings(ctx context.Context, contractID *string) ([]*api.MonitoringResponse, error) {
	const op = "service.ListMonitorings"

	monitorings, err := s.store.ListMonitorings(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.MonitoringResponse, 0, len(monitorings))
	for _, monitoring := range monitorings {
		result = append(result, monitoringToResponse(monitoring))
	}

	return result, nil
}

func (s *Service) CloseMonitoring(ctx context.Context, id string) (*api.MonitoringResponse, error) {
	const op = "service.CloseMonitoring"

	monitoring, err := s.store.GetMonitoring(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if monitoring.Status == models.MonitoringClosed {
		return nil, fmt.Errorf("%s: %w", op, response.ErrConflict)
	}

	if err := s.store.UpdateMonitoringStatus(ctx, id, models.MonitoringClosed); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetMonitoring(ctx, id)
}

// SummarizeMonitoring asks the external text service for an executive summary
// of the report and stores it. The monitoring row is left untouched when the
// call fails.
func (s *Service) SummarizeMonitoring(ctx context.Context, id string) (*api.MonitoringResponse, error) {
	const op = "service.SummarizeMonitoring"

	monitoring, err := s.store.GetMonitoring(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	contract, err := s.store.GetContract(ctx, monitoring.ContractID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	patient, err := s.store.GetPatient(ctx, contract.PatientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summary, err := s.summarizer.Summarize(ctx, patient.Name, monitoring.Month, monitoring.HoursWorked, monitoring.Occurrences)
	if err != nil {
		return nil, fmt.Errorf("%s: summarize: %w", op, err)
	}

	if err := s.store.SetMonitoringSummary(ctx, id, summary); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetMonitoring(ctx, id)
}

// Shifts

// GenerateShifts expands one roster request and persists the batch in a
// single bulk insert. Generation is locked per patient so two concurrent
// saves cannot interleave their batches.
func (s *Service) GenerateShifts(ctx context.Context, req *api.ShiftGenerateRequest) (*api.ShiftBatchResponse, error) {
	const op = "service.GenerateShifts"

	anchorDate, err := time.Parse(dateLayout, req.AnchorDate)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid anchor_date: %w", op, err)
	}

	scale, err := parseScaleType(req.ScaleType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	status := models.ShiftScheduled
	if req.Status != "" {
		status, err = parseShiftStatus(req.Status)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := validateClock(req.StartTime, req.EndTime); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.store.GetPatient(ctx, req.PatientID); err != nil {
		return nil, fmt.Errorf("%s: patient: %w", op, err)
	}
	if _, err := s.store.GetEmployee(ctx, req.EmployeeID); err != nil {
		return nil, fmt.Errorf("%s: employee: %w", op, err)
	}

	lockKey := fmt.Sprintf("shift_gen:%s", req.PatientID)

	locked, err := s.locker.Lock(ctx, lockKey, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%s: lock error: %w", op, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", op, response.ErrLocked)
	}
	defer func() {
		_ = s.locker.Unlock(ctx, lockKey)
	}()

	result := roster.Generate(roster.Request{
		PatientID:   req.PatientID,
		EmployeeID:  req.EmployeeID,
		AnchorDate:  anchorDate,
		Scale:       scale,
		TargetCount: req.TargetCount,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      status,
		Notes:       req.Notes,
	})

	if err := s.store.BulkInsertShifts(ctx, result.Shifts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	requested := req.TargetCount
	if requested < 1 {
		requested = 1
	}

	shifts := make([]api.ShiftResponse, 0, len(result.Shifts))
	for i := range result.Shifts {
		shifts = append(shifts, *shiftToResponse(&result.Shifts[i]))
	}

	return &api.ShiftBatchResponse{
		Requested: requested,
		Created:   len(result.Shifts),
		Truncated: result.Truncated,
		Shifts:    shifts,
	}, nil
}

func (s *Service) GetShift(ctx context.Context, id string) (*api.ShiftResponse, error) {
	const op = "service.GetShift"

	shift, err := s.store.GetShift(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shiftToResponse(shift), nil
}

func (s *Service) ListShiftsByDate(ctx context.Context, date string, patientID *string) ([]*api.ShiftResponse, error) {
	const op = "service.ListShiftsByDate"

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid date: %w", op, err)
	}

	shifts, err := s.store.ListShiftsByDate(ctx, day, patientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		result = append(result, shiftToResponse(shift))
	}

	return result, nil
}

// UpdateShift edits one existing record in place. It never regenerates a
// batch: the scale and target count of the original generation are not
// accepted here, and the id and repeat count survive the edit unchanged.
func (s *Service) UpdateShift(ctx context.Context, id string, req *api.ShiftUpdateRequest) (*api.ShiftResponse, error) {
	const op = "service.UpdateShift"

	shift, err := s.store.GetShift(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid date: %w", op, err)
	}

	status, err := parseShiftStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validateClock(req.StartTime, req.EndTime); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	shift.PatientID = req.PatientID
	shift.EmployeeID = req.EmployeeID
	shift.Date = date
	shift.StartTime = req.StartTime
	shift.EndTime = req.EndTime
	shift.Status = status
	shift.Notes = req.Notes

	if err := s.store.UpdateShift(ctx, shift); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetShift(ctx, id)
}

func (s *Service) DeleteShift(ctx context.Context, id string) error {
	const op = "service.DeleteShift"

	if err := s.store.DeleteShift(ctx, id); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Timecard

// CheckIn opens a time record for the employee. The coordinates are whatever
// the client's geolocation capture produced; capture failure upstream just
// means they are absent. Check-in is locked per employee so a double tap
// cannot open two records.
func (s *Service) CheckIn(ctx context.Context, req *api.CheckInRequest) (*api.TimeRecordResponse, error) {
	const op = "service.CheckIn"

	if _, err := s.store.GetEmployee(ctx, req.EmployeeID); err != nil {
		return nil, fmt.Errorf("%s: employee: %w", op, err)
	}

	lockKey := fmt.Sprintf("timecard:%s", req.EmployeeID)

	locked, err := s.locker.Lock(ctx, lockKey, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%s: lock error: %w", op, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", op, response.ErrLocked)
	}
	defer func() {
		_ = s.locker.Unlock(ctx, lockKey)
	}()

	_, err = s.store.GetOpenTimeRecord(ctx, req.EmployeeID)
	if err == nil {
		return nil, fmt.Errorf("%s: %w", op, response.ErrTimeRecordOpen)
	}
	if !errors.Is(err, response.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()

	record := &models.TimeRecord{
		EmployeeID: req.EmployeeID,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CheckIn:    now,
		CheckInLat: req.Lat,
		CheckInLng: req.Lng,
		Status:     models.TimeRecordOpen,
	}

	id, err := s.store.CreateTimeRecord(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.store.GetTimeRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return timeRecordToResponse(created), nil
}

func (s *Service) CheckOut(ctx context.Context, employeeID string, req *api.CheckOutRequest) (*api.TimeRecordResponse, error) {
	const op = "service.CheckOut"

	record, err := s.store.GetOpenTimeRecord(ctx, employeeID)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNoOpenTimeRecord)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.CloseTimeRecord(ctx, record.ID, time.Now().UTC(), req.Lat, req.Lng); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	closed, err := s.store.GetTimeRecord(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return timeRecordToResponse(closed), nil
}

func (s *Service) GetTimeRecord(ctx context.Context, id string) (*api.TimeRecordResponse, error) {
	const op = "service.GetTimeRecord"

	record, err := s.store.GetTimeRecord(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return timeRecordToResponse(record), nil
}

func (s *Service) ListTimeRecords(ctx context.Context, employeeID *string) ([]*api.TimeRecordResponse, error) {
	const op = "service.ListTimeRecords"

	records, err := s.store.ListTimeRecords(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.TimeRecordResponse, 0, len(records))
	for _, record := range records {
		result = append(result, timeRecordToResponse(record))
	}

	return result, nil
}

// Parsing helpers. Each switch is exhaustive over the declared constants so
// adding a value without handling it is caught at the boundary.

func parseScaleType(s string) (models.ScaleType, error) {
	switch models.ScaleType(s) {
	case models.ScaleDaily, models.ScaleTwelveByThirtySix, models.ScaleTwentyFourByTwentyFour,
		models.ScaleTwentyFourByFortyEight, models.ScaleFiveByTwo:
		return models.ScaleType(s), nil
	default:
		return "", fmt.Errorf("invalid scale_type %q: %w", s, response.ErrBadRequest)
	}
}

func parseShiftStatus(s string) (models.ShiftStatus, error) {
	switch models.ShiftStatus(s) {
	case models.ShiftScheduled, models.ShiftCompleted, models.ShiftCancelled, models.ShiftAbsence:
		return models.ShiftStatus(s), nil
	default:
		return "", fmt.Errorf("invalid status %q: %w", s, response.ErrBadRequest)
	}
}

func parsePatientStatus(s string) (models.PatientStatus, error) {
	switch models.PatientStatus(s) {
	case models.PatientActive, models.PatientInactive:
		return models.PatientStatus(s), nil
	default:
		return "", fmt.Errorf("invalid status %q: %w", s, response.ErrBadRequest)
	}
}

func parseEmployeeStatus(s string) (models.EmployeeStatus, error) {
	switch models.EmployeeStatus(s) {
	case models.EmployeeActive, models.EmployeeInactive, models.EmployeeVacation:
		return models.EmployeeStatus(s), nil
	default:
		return "", fmt.Errorf("invalid status %q: %w", s, response.ErrBadRequest)
	}
}

func parseContractStatus(s string) (models.ContractStatus, error) {
	switch models.ContractStatus(s) {
	case models.ContractActive, models.ContractPending, models.ContractEnded, models.ContractSuspended:
		return models.ContractStatus(s), nil
	default:
		return "", fmt.Errorf("invalid status %q: %w", s, response.ErrBadRequest)
	}
}

func parsePaymentType(s string) (models.PaymentType, error) {
	switch models.PaymentType(s) {
	case models.PaymentIncome, models.PaymentPayroll, models.PaymentExpense:
		return models.PaymentType(s), nil
	default:
		return "", fmt.Errorf("invalid type %q: %w", s, response.ErrBadRequest)
	}
}

func parsePaymentStatus(s string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(s) {
	case models.PaymentPending, models.PaymentPaid, models.PaymentLate:
		return models.PaymentStatus(s), nil
	default:
		return "", fmt.Errorf("invalid status %q: %w", s, response.ErrBadRequest)
	}
}

// validateClock checks the HH:MM shape only. An end time numerically earlier
// than the start time is accepted: overnight windows are stored literally.
func validateClock(start, end string) error {
	if _, err := time.Parse(clockLayout, start); err != nil {
		return fmt.Errorf("invalid start_time: %w", response.ErrBadRequest)
	}
	if _, err := time.Parse(clockLayout, end); err != nil {
		return fmt.Errorf("invalid end_time: %w", response.ErrBadRequest)
	}
	return nil
}

// Response mapping

func shiftToResponse(shift *models.Shift) *api.ShiftResponse {
	return &api.ShiftResponse{
		ID:          shift.ID,
		PatientID:   shift.PatientID,
		EmployeeID:  shift.EmployeeID,
		Date:        shift.Date.Format(dateLayout),
		StartTime:   shift.StartTime,
		EndTime:     shift.EndTime,
		Status:      string(shift.Status),
		Notes:       shift.Notes,
		RepeatCount: shift.RepeatCount,
	}
}

func patientToResponse(patient *models.Patient) *api.PatientResponse {
	return &api.PatientResponse{
		ID:                          patient.ID,
		Name:                        patient.Name,
		Contact:                     patient.Contact,
		FinancialResponsible:        patient.FinancialResponsible,
		FinancialResponsibleContact: patient.FinancialResponsibleContact,
		Address:                     patient.Address,
		Document:                    patient.Document,
		Status:                      string(patient.Status),
		Notes:                       patient.Notes,
	}
}

func employeeToResponse(employee *models.Employee) *api.EmployeeResponse {
	return &api.EmployeeResponse{
		ID:                   employee.ID,
		Name:                 employee.Name,
		Phone:                employee.Phone,
		Role:                 employee.Role,
		PixKey:               employee.PixKey,
		ProfessionalRegister: employee.ProfessionalRegister,
		AdmissionDate:        employee.AdmissionDate.Format(dateLayout),
		Skills:               employee.Skills,
		Status:               string(employee.Status),
	}
}

func contractToResponse(contract *models.Contract) *api.ContractResponse {
	return &api.ContractResponse{
		ID:             contract.ID,
		PatientID:      contract.PatientID,
		Value:          contract.Value,
		StartDate:      contract.StartDate.Format(dateLayout),
		ShiftsPerMonth: contract.ShiftsPerMonth,
		Status:         string(contract.Status),
		Description:    contract.Description,
	}
}

func financeToResponse(record *models.FinanceRecord) *api.FinanceRecordResponse {
	return &api.FinanceRecordResponse{
		ID:          record.ID,
		Type:        string(record.Type),
		Description: record.Description,
		Amount:      record.Amount,
		Date:        record.Date.Format(dateLayout),
		Status:      string(record.Status),
		ContractID:  record.ContractID,
		EmployeeID:  record.EmployeeID,
		PatientID:   record.PatientID,
	}
}

func monitoringToResponse(monitoring *models.MonthlyMonitoring) *api.MonitoringResponse {
	return &api.MonitoringResponse{
		ID:          monitoring.ID,
		ContractID:  monitoring.ContractID,
		Month:       monitoring.Month,
		HoursWorked: monitoring.HoursWorked,
		Occurrences: monitoring.Occurrences,
		AISummary:   monitoring.AISummary,
		Status:      string(monitoring.Status),
	}
}

func timeRecordToResponse(record *models.TimeRecord) *api.TimeRecordResponse {
	resp := &api.TimeRecordResponse{
		ID:          record.ID,
		EmployeeID:  record.EmployeeID,
		Date:        record.Date.Format(dateLayout),
		CheckIn:     record.CheckIn.Format(time.RFC3339),
		CheckInLat:  record.CheckInLat,
		CheckInLng:  record.CheckInLng,
		CheckOutLat: record.CheckOutLat,
		CheckOutLng: record.CheckOutLng,
		Status:      string(record.Status),
	}

	if record.CheckOut != nil {
		checkOut := record.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &checkOut
	}

	return resp
}
