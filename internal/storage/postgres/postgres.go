package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"homecare-service/internal/models"
	"homecare-service/pkg/response"
)

type Storage struct {
	db *sql.DB
}

func New(storagePath string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

// #### patients ####

func (s *Storage) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	const op = "storage.postgres.CreatePatient"

	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO patients
		(patient_id, name, contact, financial_responsible, financial_responsible_contact, address, document, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id,
		patient.Name,
		patient.Contact,
		patient.FinancialResponsible,
		patient.FinancialResponsibleContact,
		patient.Address,
		patient.Document,
		string(patient.Status),
		patient.Notes,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	const op = "storage.postgres.GetPatient"

	var patient models.Patient

	err := s.db.QueryRowContext(ctx,
		`SELECT patient_id, name, contact, financial_responsible, financial_responsible_contact, address, document, status, notes
		FROM patients WHERE patient_id=$1`, id).
		Scan(
			&patient.ID,
			&patient.Name,
			&patient.Contact,
			&patient.FinancialResponsible,
			&patient.FinancialResponsibleContact,
			&patient.Address,
			&patient.Document,
			&patient.Status,
			&patient.Notes,
		)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &patient, nil
}

func (s *Storage) ListPatients(ctx context.Context) ([]*models.Patient, error) {
	const op = "storage.postgres.ListPatients"

	rows, err := s.db.QueryContext(ctx,
		`SELECT patient_id, name, contact, financial_responsible, financial_responsible_contact, address, document, status, notes
		FROM patients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer rows.Close()

	var patients []*models.Patient

	for rows.Next() {
		var patient models.Patient

		err := rows.Scan(
			&patient.ID,
			&patient.Name,
			&patient.Contact,
			&patient.FinancialResponsible,
			&patient.FinancialResponsibleContact,
			&patient.Address,
			&patient.Document,
			&patient.Status,
			&patient.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		patients = append(patients, &patient)
	}

	return patients, nil
}

func (s *Storage) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	const op = "storage.postgres.UpdatePatient"

	res, err := s.db.ExecContext(ctx,
		`UPDATE patients
		SET name=$1, contact=$2, financial_responsible=$3, financial_responsible_contact=$4, address=$5, document=$6, status=$7, notes=$8
		WHERE patient_id=$9`,
		patient.Name,
		patient.Contact,
		patient.FinancialResponsible,
		patient.FinancialResponsibleContact,
		patient.Address,
		patient.Document,
		string(patient.Status),
		patient.Notes,
		patient.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	return nil
}

// DeletePatient removes the patient and every shift referencing it in one
// transaction. Shift cleanup on patient removal is a listing concern, not the
// generator's.
func (s *Storage) DeletePatient(ctx context.Context, id string) error {
	const op = "storage.postgres.DeletePatient"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shifts WHERE patient_id=$1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM patients WHERE patient_id=$1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

// #### employees ####

func (s *Storage) CreateEmployee(ctx context.Context, employee *models.Employee) (string, error) {
	const op = "storage.postgres.CreateEmployee"

	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO employees
		(employee_id, name, phone, role, pix_key, professional_register, admission_date, skills, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id,
		employee.Name,
		employee.Phone,
		employee.Role,
		employee.PixKey,
		employee.ProfessionalRegister,
		employee.AdmissionDate,
		pq.Array(employee.Skills),
		string(employee.Status),
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	const op = "storage.postgres.GetEmployee"

	var employee models.Employee

	err := s.db.QueryRowContext(ctx,
		`SELECT employee_id, name, phone, role, pix_key, professional_register, admission_date, skills, status
		FROM employees WHERE employee_id=$1`, id).
		Scan(
			&employee.ID,
			&employee.Name,
			&employee.Phone,
			&employee.Role,
			&employee.PixKey,
			&employee.ProfessionalRegister,
			&employee.AdmissionDate,
			pq.Array(&employee.Skills),
			&employee.Status,
		)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &employee, nil
}

func (s *Storage) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	const op = "storage.postgres.ListEmployees"

	rows, err := s.db.QueryContext(ctx,
		`SELECT employee_id, name, phone, role, pix_key, professional_register, admission_date, skills, status
		FROM employees ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer rows.Close()

	var employees []*models.Employee

	for rows.Next() {
		var employee models.Employee

		err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Phone,
			&employee.Role,
			&employee.PixKey,
			&employee.ProfessionalRegister,
			&employee.AdmissionDate,
			pq.Array(&employee.Skills),
			&employee.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		employees = append(employees, &employee)
	}

	return employees, nil
}

func (s *Storage) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	const op = "storage.postgres.UpdateEmployee"

	res, err := s.db.ExecContext(ctx,
		`UPDATE employees
		SET name=$1, phone=$2, role=$3, pix_key=$4, professional_register=$5, admission_date=$6, skills=$7, status=$8
		WHERE employee_id=$9`,
		employee.Name,
		employee.Phone,
		employee.Role,
		employee.PixKey,
		employee.ProfessionalRegister,
		employee.AdmissionDate,
		pq.Array(employee.Skills),
		string(employee.Status),
		employee.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	return nil
}

func (s *Storage) DeleteEmployee(ctx context.Context, id string) error {
	const op = "storage.postgres.DeleteEmployee"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shifts WHERE employee_id=$1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE employee_id=$1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

// #### contracts ####

func (s *Storage) CreateContract(ctx context.Context, contract *models.Contract) (string, error) {
	const op = "storage.postgres.CreateContract"

	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contracts
		(contract_id, patient_id, value, start_date, shifts_per_month, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id,
		contract.PatientID,
		contract.Value,
		contract.StartDate,
		contract.ShiftsPerMonth,
		string(contract.Status),
		contract.Description,
	)
	if err != nil {
		sqlErr, ok := err.(*pq.Error)
		if ok && sqlErr.Code == "23503" {
			return "", fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetContract(ctx context.Context, id string) (*models.Contract, error) {
	const op = "storage.postgres.GetContract"

	var contract models.Contract

	err := s.db.QueryRowContext(ctx,
		`SELECT contract_id, patient_id, value, start_date, shifts_per_month, status, description
		FROM contracts WHERE contract_id=$1`, id).
		Scan(
			&contract.ID,
			&contract.PatientID,
			&contract.Value,
			&contract.StartDate,
			&contract.ShiftsPerMonth,
			&contract.Status,
			&contract.Description,
		)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &contract, nil
}

func (s *Storage) ListContracts(ctx context.Context, patientID *string) ([]*models.Contract, error) {
	const op = "storage.postgres.ListContracts"

	query := `SELECT contract_id, patient_id, value, start_date, shifts_per_month, status, description
		FROM contracts`
	args := []any{}

	if patientID != nil {
		query += ` WHERE patient_id=$1`
		args = append(args, *patientID)
	}

	query += ` ORDER BY start_date DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer rows.Close()

	var contracts []*models.Contract

	for rows.Next() {
		var contract models.Contract

		err := rows.Scan(
			&contract.ID,
			&contract.PatientID,
			&contract.Value,
			&contract.StartDate,
			&contract.ShiftsPerMonth,
			&contract.Status,
			&contract.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		contracts = append(contracts, &contract)
	}

	return contracts, nil
}

func (s *Storage) UpdateContract(ctx context.Context, contract *models.Contract) error {
	const op = "storage.postgres.UpdateContract"

	res, err := s.db.ExecContext(ctx,
		`UPDATE contracts
		SET patient_id=$1, value=$2, start_date=$3, shifts_per_month=$4, status=$5, description=$6
		WHERE contract_id=$7`,
		contract.PatientID,
		contract.Value,
		contract.StartDate,
		contract.ShiftsPerMonth,
		string(contract.Status),
		contract.Description,
		contract.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	return nil
}

// #### finance ####

func (s *Storage) CreateFinanceRecord(ctx context.Context, record *models.FinanceRecord) (string, error) {
	const op = "storage.postgres.CreateFinanceRecord"

	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO finance_records
		(finance_id, payment_type, description, amount, record_date, status, contract_id, employee_id, patient_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id,
		string(record.Type),
		record.Description,
		record.Amount,
		record.Date,
		string(record.Status),
		record.ContractID,
		record.EmployeeID,
		record.PatientID,
	)
	if err != nil {
		sqlErr, ok := err.(*pq.Error)
		if ok && sqlErr.Code == "23503" {
			return "", fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetFinanceRecord(ctx context.Context, id string) (*models.FinanceRecord, error) {
	const op = "storage.postgres.GetFinanceRecord"

	var record models.FinanceRecord

	err := s.db.QueryRowContext(ctx,
		`SELECT finance_id, payment_type, description, amount, record_date, status, contract_id, employee_id, patient_id
		FROM finance_records WHERE finance_id=$1`, id).
		Scan(
			&record.ID,
			&record.Type,
			&record.Description,
			&record.Amount,
			&record.Date,
			&record.Status,
			&record.ContractID,
			&record.EmployeeID,
			&record.PatientID,
		)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &record, nil
}

func (s *Storage) ListFinanceRecords(ctx context.Context, paymentType, status, patientID *string) ([]*models.FinanceRecord, error) {
	const op = "storage.postgres.ListFinanceRecords"

	query := `SELECT finance_id, payment_type, description, amount, record_date, status, contract_id, employee_id, patient_id
		FROM finance_records`
	args := []any{}
	conds := []string{}

	if paymentType != nil {
		args = append(args, *paymentType)
		conds = append(conds, fmt.Sprintf("payment_type=$%d", len(args)))
	}
	if status != nil {
		args = append(args, *status)
		conds = append(conds, fmt.Sprintf("status=$%d", len(args)))
	}
	if patientID != nil {
		args = append(args, *patientID)
		conds = append(conds, fmt.Sprintf("patient_id=$%d", len(args)))
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += ` ORDER BY record_date DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer rows.Close()

	var records []*models.FinanceRecord

	for rows.Next() {
		var record models.FinanceRecord

		err := rows.Scan(
			&record.ID,
			&record.Type,
			&record.Description,
			&record.Amount,
			&record.Date,
			&record.Status,
			&record.ContractID,
			&record.EmployeeID,
			&record.PatientID,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		records = append(records, &record)
	}

	return records, nil
}

// MarkOverdueFinanceRecords flips pending records dated before the cutoff to
// LATE and reports how many rows changed.
func (s *Storage) MarkOverdueFinanceRecords(ctx context.Context, before time.Time) (int64, error) {
	const op = "storage.postgres.MarkOverdueFinanceRecords"

	res, err := s.db.ExecContext(ctx,
		`UPDATE finance_records SET status=$1 WHERE status=$2 AND record_date < $3`,
		string(models.PaymentLate),
		string(models.PaymentPending),
		before,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// #### monitoring ####

func (s *Storage) CreateMonitoring(ctx context.Context, monitoring *models.MonthlyMonitoring) (string, error) {
	const op = "storage.postgres.CreateMonitoring"

	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO monthly_monitorings
		(monitoring_id, contract_id, month, hours_worked, occurrences, ai_summary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id,
		monitoring.ContractID,
		monitoring.Month,
		monitoring.HoursWorked,
		monitoring.Occurrences,
		monitoring.AISummary,
		string(monitoring.Status),
	)
	if err != nil {
		sqlErr, ok := err.(*pq.Error)
		if ok && sqlErr.Code == "23503" {
			return "", fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		if ok && sqlErr.Code == "23505" {
			return "", fmt.Errorf("%s: %w", op, response.ErrConflict)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetMonitoring(ctx context.Context, id string) (*models.MonthlyMonitoring, error) {
	const op = "storage.postgres.GetMonitoring"

	var monitoring models.MonthlyMonitoring

	err := s.db.QueryRowContext(ctx,
		`SELECT monitoring_id, contract_id, month, hours_worked, occurrences, ai_summary, status
		FROM monthly_monitorings WHERE monitoring_id=$1`, id).
		Scan(
			&monitoring.ID,
			&monitoring.ContractID,
			&monitoring.Month,
			&monitoring.HoursWorked,
			&monitoring.Occurrences,
			&monitoring.AISummary,
			&monitoring.Status,
		)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &monitoring, nil
}

func (s *Storage) ListMonitorings(ctx context.Context, contractID *string) ([]*models.MonthlyMonitoring, error) {
	const op = "storage.postgres.ListMonitorings"

	query := `SELECT monitoring_id, contract_id, month, hours_worked, occurrences, ai_summary, status
		FROM monthly_monitorings`
	args := []any{}

	if contractID != nil {
		query += ` WHERE contract_id=$1`
		args = append(args, *contractID)
	}

	query += ` ORDER BY month DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer rows.Close()

	var monitorings []*models.MonthlyMonitoring

	for rows.Next() {
		var monitoring models.MonthlyMonitoring

		err := rows.Scan(
			&monitoring.ID,
			&monitoring.ContractID,
			&monitoring.Month,
			&monitoring.HoursWorked,
			&monitoring.Occurrences,
			&monitoring.AISummary,
			&monitoring.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		monitorings = append(monitorings, &monitoring)
	}

	return monitorings, nil
}

func (s *Storage) UpdateMonitoringStatus(ctx context.Context, id string, status models.MonitoringStatus) error {
	const op = "storage.postgres.UpdateMonitoringStatus"

	res, err := s.db.ExecContext(ctx,
		`UPDATE monthly_monitorings SET status=$1 WHERE monitoring_id=$2`,
		string(status), id,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	return nil
}

func (s *Storage) SetMonitoringSummary(ctx context.Context, id string, summary string) error {
	const op = "storage.postgres.SetMonitoringSummary"

	res, err := s.db.ExecContext(ctx,
		`UPDATE monthly_monitorings SET ai_summary=$1 WHERE monitoring_id=$2`,
		summary, id,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	return nil
}

// #### shifts ####

// BulkInsertShifts writes a generated batch atomically via COPY so the
// calendar never observes a partially inserted batch.
func (s *Storage) BulkInsertShifts(ctx context.Context, shifts []models.Shift) error {
	const op = "storage.postgres.BulkInsertShifts"

	if len(shifts) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("shifts",
		"shift_id", "patient_id", "employee_id", "shift_date",
		"start_time", "end_time", "status", "notes", "repeat_count",
	))
	if err != nil {
		return fmt.Errorf("%s: prepare copy: %w", op, err)
	}

	for _, shift := range shifts {
		_, err := stmt.ExecContext(ctx,
			shift.ID,
			shift.PatientID,
			shift.EmployeeID,
			shift.Date,
			shift.StartTime,
			shift.EndTime,
			string(shift.Status),
			shift.Notes,
			shift.RepeatCount,
		)
		if err != nil {
			_ = stmt.Close()
			return fmt.Errorf("%s: copy row: %w", op, err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return fmt.Errorf("%s: flush copy: %w", op, err)
	}

	if err := stmt.Close(); err != nil {
		return fmt.Errorf("%s: close copy: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

func (s *Storage) GetShift(ctx context.Context, id string) (*models.Shift, error) {
	const op = "storage.postgres.GetShift"

	var shift models.Shift

	err := s.db.QueryRowContext(ctx,
		`SELECT shift_id, patient_id, employee_id, shift_date, start_time, end_time, status, notes, repeat_count
		FROM shifts WHERE shift_id=$1`, id).
		Scan(
			&shift.ID,
			&shift.PatientID,
			&shift.EmployeeID,
			&shift.Date,
			&shift.StartTime,
			&shift.EndTime,
			&shift.Status,
			&shift.Notes,
			&shift.RepeatCount,
		)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &shift, nil
}

// ListShiftsByDate feeds one calendar-grid cell: every shift on the given
// day, optionally narrowed to one patient.
func (s *Storage) ListShiftsByDate(ctx context.Context, date time.Time, patientID *string) ([]*models.Shift, error) {
	const op = "storage.postgres.ListShiftsByDate"

	query := `SELECT shift_id, patient_id, employee_id, shift_date, start_time, end_time, status, notes, repeat_count
		FROM shifts WHERE shift_date=$1`
	args := []any{date}

	if patientID != nil {
		query += ` AND patient_id=$2`
		args = append(args, *patientID)
	}

	query += ` ORDER BY start_time`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer rows.Close()

	var shifts []*models.Shift

	for rows.Next() {
		var shift models.Shift

		err := rows.Scan(
			&shift.ID,
			&shift.PatientID,
			&shift.EmployeeID,
			&shift.Date,
			&shift.StartTime,
			&shift.EndTime,
			&shift.Status,
			&shift.Notes,
			&shift.RepeatCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		shifts = append(shifts, &shift)
	}

	return shifts, nil
}

// UpdateShift rewrites the mutable fields only. The id and repeat_count of a
// shift never change after creation.
func (s *Storage) UpdateShift(ctx context.Context, shift *models.Shift) error {
	const op = "storage.postgres.UpdateShift"

	res, err := s.db.ExecContext(ctx,
		`UPDATE shifts
		SET patient_id=$1, employee_id=$2, shift_date=$3, start_time=$4, end_time=$5, status=$6, notes=$7
		WHERE shift_id=$8`,
		shift.PatientID,
		shift.EmployeeID,
		shift.Date,
		shift.StartTime,
		shift.EndTime,
		string(shift.Status),
		shift.Notes,
		shift.ID,
	)
	if err != nil {
		sqlErr, ok := err.(*pq.Error)
		if ok && sqlErr.Code == "23503" {
			return fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	return nil
}

func (s *Storage) DeleteShift(ctx context.Context, id string) error {
	const op = "storage.postgres.DeleteShift"

	res, err := s.db.ExecContext(ctx, `DELETE FROM shifts WHERE shift_id=$1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	return nil
}

// #### time records ####

func (s *Storage) CreateTimeRecord(ctx context.Context, record *models.TimeRecord) (string, error) {
	const op = "storage.postgres.CreateTimeRecord"

	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO time_records
		(time_record_id, employee_id, record_date, check_in, check_in_lat, check_in_lng, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id,
		record.EmployeeID,
		record.Date,
		record.CheckIn,
		record.CheckInLat,
		record.CheckInLng,
		string(record.Status),
	)
	if err != nil {
		sqlErr, ok := err.(*pq.Error)
		if ok && sqlErr.Code == "23503" {
			return "", fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetOpenTimeRecord(ctx context.Context, employeeID string) (*models.TimeRecord, error) {
	const op = "storage.postgres.GetOpenTimeRecord"

	var record models.TimeRecord

	err := s.db.QueryRowContext(ctx,
		`SELECT time_record_id, employee_id, record_date, check_in, check_in_lat, check_in_lng, check_out, check_out_lat, check_out_lng, status
		FROM time_records WHERE employee_id=$1 AND status=$2
		ORDER BY check_in DESC LIMIT 1`,
		employeeID, string(models.TimeRecordOpen)).
		Scan(
			&record.ID,
			&record.EmployeeID,
			&record.Date,
			&record.CheckIn,
			&record.CheckInLat,
			&record.CheckInLng,
			&record.CheckOut,
			&record.CheckOutLat,
			&record.CheckOutLng,
			&record.Status,
		)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &record, nil
}

func (s *Storage) GetTimeRecord(ctx context.Context, id string) (*models.TimeRecord, error) {
	const op = "storage.postgres.GetTimeRecord"

	var record models.TimeRecord

	err := s.db.QueryRowContext(ctx,
		`SELECT time_record_id, employee_id, record_date, check_in, check_in_lat, check_in_lng, check_out, check_out_lat, check_out_lng, status
		FROM time_records WHERE time_record_id=$1`, id).
		Scan(
			&record.ID,
			&record.EmployeeID,
			&record.Date,
			&record.CheckIn,
			&record.CheckInLat,
			&record.CheckInLng,
			&record.CheckOut,
			&record.CheckOutLat,
			&record.CheckOutLng,
			&record.Status,
		)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &record, nil
}

func (s *Storage) CloseTimeRecord(ctx context.Context, id string, checkOut time.Time, lat, lng *float64) error {
	const op = "storage.postgres.CloseTimeRecord"

	res, err := s.db.ExecContext(ctx,
		`UPDATE time_records
		SET check_out=$1, check_out_lat=$2, check_out_lng=$3, status=$4
		WHERE time_record_id=$5 AND status=$6`,
		checkOut,
		lat,
		lng,
		string(models.TimeRecordClosed),
		id,
		string(models.TimeRecordOpen),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	return nil
}

func (s *Storage) ListTimeRecords(ctx context.Context, employeeID *string) ([]*models.TimeRecord, error) {
	const op = "storage.postgres.ListTimeRecords"

	query := `SELECT time_record_id, employee_id, record_date, check_in, check_in_lat, check_in_lng, check_out, check_out_lat, check_out_lng, status
		FROM time_records`
	args := []any{}

	if employeeID != nil {
		query += ` WHERE employee_id=$1`
		args = append(args, *employeeID)
	}

	query += ` ORDER BY check_in DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer rows.Close()

	var records []*models.TimeRecord

	for rows.Next() {
		var record models.TimeRecord

		err := rows.Scan(
			&record.ID,
			&record.EmployeeID,
			&record.Date,
			&record.CheckIn,
			&record.CheckInLat,
			&record.CheckInLng,
			&record.CheckOut,
			&record.CheckOutLat,
			&record.CheckOutLng,
			&record.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		records = append(records, &record)
	}

	return records, nil
}
