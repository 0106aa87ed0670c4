package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"homecare-service/api"
	"homecare-service/internal/models"
	"homecare-service/pkg/response"
)

// memStore is an in-memory Store for exercising the service without a
// database.
type memStore struct {
	patients    map[string]models.Patient
	employees   map[string]models.Employee
	contracts   map[string]models.Contract
	finance     map[string]models.FinanceRecord
	monitorings map[string]models.MonthlyMonitoring
	shifts      map[string]models.Shift
	timeRecords map[string]models.TimeRecord
}

func newMemStore() *memStore {
	return &memStore{
		patients:    map[string]models.Patient{},
		employees:   map[string]models.Employee{},
		contracts:   map[string]models.Contract{},
		finance:     map[string]models.FinanceRecord{},
		monitorings: map[string]models.MonthlyMonitoring{},
		shifts:      map[string]models.Shift{},
		timeRecords: map[string]models.TimeRecord{},
	}
}

func (m *memStore) CreatePatient(_ context.Context, patient *models.Patient) (string, error) {
	p := *patient
	p.ID = uuid.NewString()
	m.patients[p.ID] = p
	return p.ID, nil
}

func (m *memStore) GetPatient(_ context.Context, id string) (*models.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	return &p, nil
}

func (m *memStore) ListPatients(_ context.Context) ([]*models.Patient, error) {
	var result []*models.Patient
	for id := range m.patients {
		p := m.patients[id]
		result = append(result, &p)
	}
	return result, nil
}

func (m *memStore) UpdatePatient(_ context.Context, patient *models.Patient) error {
	if _, ok := m.patients[patient.ID]; !ok {
		return response.ErrNotFound
	}
	m.patients[patient.ID] = *patient
	return nil
}

func (m *memStore) DeletePatient(_ context.Context, id string) error {
	if _, ok := m.patients[id]; !ok {
		return response.ErrNotFound
	}
	delete(m.patients, id)
	for shiftID, shift := range m.shifts {
		if shift.PatientID == id {
			delete(m.shifts, shiftID)
		}
	}
	return nil
}

func (m *memStore) CreateEmployee(_ context.Context, employee *models.Employee) (string, error) {
	e := *employee
	e.ID = uuid.NewString()
	m.employees[e.ID] = e
	return e.ID, nil
}

func (m *memStore) GetEmployee(_ context.Context, id string) (*models.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	return &e, nil
}

func (m *memStore) ListEmployees(_ context.Context) ([]*models.Employee, error) {
	var result []*models.Employee
	for id := range m.employees {
		e := m.employees[id]
		result = append(result, &e)
	}
	return result, nil
}

func (m *memStore) UpdateEmployee(_ context.Context, employee *models.Employee) error {
	if _, ok := m.employees[employee.ID]; !ok {
		return response.ErrNotFound
	}
	m.employees[employee.ID] = *employee
	return nil
}

func (m *memStore) DeleteEmployee(_ context.Context, id string) error {
	if _, ok := m.employees[id]; !ok {
		return response.ErrNotFound
	}
	delete(m.employees, id)
	for shiftID, shift := range m.shifts {
		if shift.EmployeeID == id {
			delete(m.shifts, shiftID)
		}
	}
	return nil
}

func (m *memStore) CreateContract(_ context.Context, contract *models.Contract) (string, error) {
	if _, ok := m.patients[contract.PatientID]; !ok {
		return "", response.ErrNotFound
	}
	c := *contract
	c.ID = uuid.NewString()
	m.contracts[c.ID] = c
	return c.ID, nil
}

func (m *memStore) GetContract(_ context.Context, id string) (*models.Contract, error) {
	c, ok := m.contracts[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	return &c, nil
}

func (m *memStore) ListContracts(_ context.Context, patientID *string) ([]*models.Contract, error) {
	var result []*models.Contract
	for id := range m.contracts {
		c := m.contracts[id]
		if patientID != nil && c.PatientID != *patientID {
			continue
		}
		result = append(result, &c)
	}
	return result, nil
}

func (m *memStore) UpdateContract(_ context.Context, contract *models.Contract) error {
	if _, ok := m.contracts[contract.ID]; !ok {
		return response.ErrNotFound
	}
	m.contracts[contract.ID] = *contract
	return nil
}

func (m *memStore) CreateFinanceRecord(_ context.Context, record *models.FinanceRecord) (string, error) {
	r := *record
	r.ID = uuid.NewString()
	m.finance[r.ID] = r
	return r.ID, nil
}

func (m *memStore) GetFinanceRecord(_ context.Context, id string) (*models.FinanceRecord, error) {
	r, ok := m.finance[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	return &r, nil
}

func (m *memStore) ListFinanceRecords(_ context.Context, paymentType, status, patientID *string) ([]*models.FinanceRecord, error) {
	var result []*models.FinanceRecord
	for id := range m.finance {
		r := m.finance[id]
		if paymentType != nil && string(r.Type) != *paymentType {
			continue
		}
		if status != nil && string(r.Status) != *status {
			continue
		}
		if patientID != nil && (r.PatientID == nil || *r.PatientID != *patientID) {
			continue
		}
		result = append(result, &r)
	}
	return result, nil
}

func (m *memStore) CreateMonitoring(_ context.Context, monitoring *models.MonthlyMonitoring) (string, error) {
	mon := *monitoring
	mon.ID = uuid.NewString()
	m.monitorings[mon.ID] = mon
	return mon.ID, nil
}

func (m *memStore) GetMonitoring(_ context.Context, id string) (*models.MonthlyMonitoring, error) {
	mon, ok := m.monitorings[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	return &mon, nil
}

func (m *memStore) ListMonitorings(_ context.Context, contractID *string) ([]*models.MonthlyMonitoring, error) {
	var result []*models.MonthlyMonitoring
	for id := range m.monitorings {
		mon := m.monitorings[id]
		if contractID != nil && mon.ContractID != *contractID {
			continue
		}
		result = append(result, &mon)
	}
	return result, nil
}

func (m *memStore) UpdateMonitoringStatus(_ context.Context, id string, status models.MonitoringStatus) error {
	mon, ok := m.monitorings[id]
	if !ok {
		return response.ErrNotFound
	}
	mon.Status = status
	m.monitorings[id] = mon
	return nil
}

func (m *memStore) SetMonitoringSummary(_ context.Context, id string, summary string) error {
	mon, ok := m.monitorings[id]
	if !ok {
		return response.ErrNotFound
	}
	mon.AISummary = &summary
	m.monitorings[id] = mon
	return nil
}

func (m *memStore) BulkInsertShifts(_ context.Context, shifts []models.Shift) error {
	for _, shift := range shifts {
		m.shifts[shift.ID] = shift
	}
	return nil
}

func (m *memStore) GetShift(_ context.Context, id string) (*models.Shift, error) {
	shift, ok := m.shifts[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	return &shift, nil
}

func (m *memStore) ListShiftsByDate(_ context.Context, date time.Time, patientID *string) ([]*models.Shift, error) {
	var result []*models.Shift
	for id := range m.shifts {
		shift := m.shifts[id]
		if !shift.Date.Equal(date) {
			continue
		}
		if patientID != nil && shift.PatientID != *patientID {
			continue
		}
		result = append(result, &shift)
	}
	return result, nil
}

func (m *memStore) UpdateShift(_ context.Context, shift *models.Shift) error {
	existing, ok := m.shifts[shift.ID]
	if !ok {
		return response.ErrNotFound
	}
	updated := *shift
	updated.RepeatCount = existing.RepeatCount
	m.shifts[shift.ID] = updated
	return nil
}

func (m *memStore) DeleteShift(_ context.Context, id string) error {
	if _, ok := m.shifts[id]; !ok {
		return response.ErrNotFound
	}
	delete(m.shifts, id)
	return nil
}

func (m *memStore) CreateTimeRecord(_ context.Context, record *models.TimeRecord) (string, error) {
	r := *record
	r.ID = uuid.NewString()
	m.timeRecords[r.ID] = r
	return r.ID, nil
}

func (m *memStore) GetTimeRecord(_ context.Context, id string) (*models.TimeRecord, error) {
	r, ok := m.timeRecords[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	return &r, nil
}

func (m *memStore) GetOpenTimeRecord(_ context.Context, employeeID string) (*models.TimeRecord, error) {
	for id := range m.timeRecords {
		r := m.timeRecords[id]
		if r.EmployeeID == employeeID && r.Status == models.TimeRecordOpen {
			return &r, nil
		}
	}
	return nil, response.ErrNotFound
}

func (m *memStore) CloseTimeRecord(_ context.Context, id string, checkOut time.Time, lat, lng *float64) error {
	r, ok := m.timeRecords[id]
	if !ok || r.Status != models.TimeRecordOpen {
		return response.ErrNotFound
	}
	r.CheckOut = &checkOut
	r.CheckOutLat = lat
	r.CheckOutLng = lng
	r.Status = models.TimeRecordClosed
	m.timeRecords[id] = r
	return nil
}

func (m *memStore) ListTimeRecords(_ context.Context, employeeID *string) ([]*models.TimeRecord, error) {
	var result []*models.TimeRecord
	for id := range m.timeRecords {
		r := m.timeRecords[id]
		if employeeID != nil && r.EmployeeID != *employeeID {
			continue
		}
		result = append(result, &r)
	}
	return result, nil
}

// fakeLocker grants every lock unless denied is set.
type fakeLocker struct {
	denied bool
	locks  []string
}

func (f *fakeLocker) Lock(_ context.Context, key string, _ time.Duration) (bool, error) {
	if f.denied {
		return false, nil
	}
	f.locks = append(f.locks, key)
	return true, nil
}

func (f *fakeLocker) Unlock(_ context.Context, _ string) error {
	return nil
}

type fakeSummarizer struct {
	summary string
	err     error
}

func (f *fakeSummarizer) Summarize(_ context.Context, _, _ string, _ float64, _ string) (string, error) {
	return f.summary, f.err
}

func newTestService(t *testing.T) (*Service, *memStore, *fakeLocker, string, string) {
	t.Helper()

	store := newMemStore()
	locker := &fakeLocker{}
	svc := NewService(store, locker, &fakeSummarizer{summary: "stable month, no relevant events"})

	patientID, err := store.CreatePatient(context.Background(), &models.Patient{
		Name:   "Helena Souza",
		Status: models.PatientActive,
	})
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	employeeID, err := store.CreateEmployee(context.Background(), &models.Employee{
		Name:   "Marcos Lima",
		Role:   "Nursing Technician",
		Status: models.EmployeeActive,
	})
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	return svc, store, locker, patientID, employeeID
}

func TestGenerateShifts_PersistsBatch(t *testing.T) {
	svc, store, locker, patientID, employeeID := newTestService(t)

	batch, err := svc.GenerateShifts(context.Background(), &api.ShiftGenerateRequest{
		PatientID:   patientID,
		EmployeeID:  employeeID,
		AnchorDate:  "2024-01-01",
		ScaleType:   "12x36",
		TargetCount: 3,
		StartTime:   "07:00",
		EndTime:     "19:00",
	})
	if err != nil {
		t.Fatalf("GenerateShifts() error = %v", err)
	}

	if batch.Requested != 3 || batch.Created != 3 || batch.Truncated {
		t.Errorf("batch = {requested %d, created %d, truncated %v}, want {3, 3, false}",
			batch.Requested, batch.Created, batch.Truncated)
	}

	if len(store.shifts) != 3 {
		t.Fatalf("store holds %d shifts, want 3", len(store.shifts))
	}

	var dates []string
	for _, shift := range store.shifts {
		dates = append(dates, shift.Date.Format("2006-01-02"))
		if shift.Status != models.ShiftScheduled {
			t.Errorf("stored shift status = %s, want %s", shift.Status, models.ShiftScheduled)
		}
		if shift.RepeatCount == nil || *shift.RepeatCount != 3 {
			t.Errorf("stored shift repeat count = %v, want 3", shift.RepeatCount)
		}
	}
	sort.Strings(dates)

	want := []string{"2024-01-01", "2024-01-03", "2024-01-05"}
	for i, date := range dates {
		if date != want[i] {
			t.Errorf("dates[%d] = %s, want %s", i, date, want[i])
		}
	}

	if len(locker.locks) != 1 || locker.locks[0] != "shift_gen:"+patientID {
		t.Errorf("locks = %v, want [shift_gen:%s]", locker.locks, patientID)
	}
}

func TestGenerateShifts_UnknownPatient(t *testing.T) {
	svc, _, _, _, employeeID := newTestService(t)

	_, err := svc.GenerateShifts(context.Background(), &api.ShiftGenerateRequest{
		PatientID:   uuid.NewString(),
		EmployeeID:  employeeID,
		AnchorDate:  "2024-01-01",
		ScaleType:   "DAILY",
		TargetCount: 2,
		StartTime:   "07:00",
		EndTime:     "19:00",
	})
	if !errors.Is(err, response.ErrNotFound) {
		t.Errorf("GenerateShifts() error = %v, want ErrNotFound", err)
	}
}

func TestGenerateShifts_InvalidScale(t *testing.T) {
	svc, _, _, patientID, employeeID := newTestService(t)

	_, err := svc.GenerateShifts(context.Background(), &api.ShiftGenerateRequest{
		PatientID:   patientID,
		EmployeeID:  employeeID,
		AnchorDate:  "2024-01-01",
		ScaleType:   "6x1",
		TargetCount: 2,
		StartTime:   "07:00",
		EndTime:     "19:00",
	})
	if !errors.Is(err, response.ErrBadRequest) {
		t.Errorf("GenerateShifts() error = %v, want ErrBadRequest", err)
	}
}

func TestGenerateShifts_Locked(t *testing.T) {
	svc, _, locker, patientID, employeeID := newTestService(t)
	locker.denied = true

	_, err := svc.GenerateShifts(context.Background(), &api.ShiftGenerateRequest{
		PatientID:   patientID,
		EmployeeID:  employeeID,
		AnchorDate:  "2024-01-01",
		ScaleType:   "DAILY",
		TargetCount: 1,
		StartTime:   "07:00",
		EndTime:     "19:00",
	})
	if !errors.Is(err, response.ErrLocked) {
		t.Errorf("GenerateShifts() error = %v, want ErrLocked", err)
	}
}

func TestGenerateShifts_OvernightWindowStoredLiterally(t *testing.T) {
	svc, store, _, patientID, employeeID := newTestService(t)

	_, err := svc.GenerateShifts(context.Background(), &api.ShiftGenerateRequest{
		PatientID:   patientID,
		EmployeeID:  employeeID,
		AnchorDate:  "2024-01-01",
		ScaleType:   "DAILY",
		TargetCount: 1,
		StartTime:   "19:00",
		EndTime:     "07:00",
	})
	if err != nil {
		t.Fatalf("GenerateShifts() error = %v", err)
	}

	for _, shift := range store.shifts {
		if shift.StartTime != "19:00" || shift.EndTime != "07:00" {
			t.Errorf("stored window = %s-%s, want 19:00-07:00", shift.StartTime, shift.EndTime)
		}
	}
}

func TestUpdateShift_KeepsIDAndRepeatCount(t *testing.T) {
	svc, store, _, patientID, employeeID := newTestService(t)

	if _, err := svc.GenerateShifts(context.Background(), &api.ShiftGenerateRequest{
		PatientID:   patientID,
		EmployeeID:  employeeID,
		AnchorDate:  "2024-01-01",
		ScaleType:   "DAILY",
		TargetCount: 5,
		StartTime:   "07:00",
		EndTime:     "19:00",
	}); err != nil {
		t.Fatalf("GenerateShifts() error = %v", err)
	}

	var target models.Shift
	for _, shift := range store.shifts {
		target = shift
		break
	}

	updated, err := svc.UpdateShift(context.Background(), target.ID, &api.ShiftUpdateRequest{
		PatientID:  target.PatientID,
		EmployeeID: target.EmployeeID,
		Date:       target.Date.Format("2006-01-02"),
		StartTime:  target.StartTime,
		EndTime:    target.EndTime,
		Status:     "COMPLETED",
		Notes:      target.Notes,
	})
	if err != nil {
		t.Fatalf("UpdateShift() error = %v", err)
	}

	if updated.ID != target.ID {
		t.Errorf("UpdateShift() id = %s, want %s", updated.ID, target.ID)
	}
	if updated.Status != "COMPLETED" {
		t.Errorf("UpdateShift() status = %s, want COMPLETED", updated.Status)
	}
	if updated.Date != target.Date.Format("2006-01-02") {
		t.Errorf("UpdateShift() date = %s, want %s", updated.Date, target.Date.Format("2006-01-02"))
	}
	if updated.RepeatCount == nil || *updated.RepeatCount != 5 {
		t.Errorf("UpdateShift() repeat count = %v, want 5", updated.RepeatCount)
	}
	if len(store.shifts) != 5 {
		t.Errorf("store holds %d shifts after edit, want 5 (no regeneration)", len(store.shifts))
	}
}

func TestDeletePatient_CascadesShifts(t *testing.T) {
	svc, store, _, patientID, employeeID := newTestService(t)

	if _, err := svc.GenerateShifts(context.Background(), &api.ShiftGenerateRequest{
		PatientID:   patientID,
		EmployeeID:  employeeID,
		AnchorDate:  "2024-01-01",
		ScaleType:   "DAILY",
		TargetCount: 4,
		StartTime:   "07:00",
		EndTime:     "19:00",
	}); err != nil {
		t.Fatalf("GenerateShifts() error = %v", err)
	}

	if err := svc.DeletePatient(context.Background(), patientID); err != nil {
		t.Fatalf("DeletePatient() error = %v", err)
	}

	if len(store.shifts) != 0 {
		t.Errorf("store holds %d shifts after patient delete, want 0", len(store.shifts))
	}
}

func TestCheckIn_ConflictsWhileOpen(t *testing.T) {
	svc, _, _, _, employeeID := newTestService(t)

	lat := -23.5505
	lng := -46.6333

	record, err := svc.CheckIn(context.Background(), &api.CheckInRequest{
		EmployeeID: employeeID,
		Lat:        &lat,
		Lng:        &lng,
	})
	if err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}
	if record.Status != string(models.TimeRecordOpen) {
		t.Errorf("CheckIn() status = %s, want %s", record.Status, models.TimeRecordOpen)
	}
	if record.CheckInLat == nil || *record.CheckInLat != lat {
		t.Errorf("CheckIn() lat = %v, want %v", record.CheckInLat, lat)
	}

	_, err = svc.CheckIn(context.Background(), &api.CheckInRequest{EmployeeID: employeeID})
	if !errors.Is(err, response.ErrTimeRecordOpen) {
		t.Errorf("second CheckIn() error = %v, want ErrTimeRecordOpen", err)
	}
}

func TestCheckOut_ClosesOpenRecord(t *testing.T) {
	svc, _, _, _, employeeID := newTestService(t)

	if _, err := svc.CheckIn(context.Background(), &api.CheckInRequest{EmployeeID: employeeID}); err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}

	record, err := svc.CheckOut(context.Background(), employeeID, &api.CheckOutRequest{})
	if err != nil {
		t.Fatalf("CheckOut() error = %v", err)
	}
	if record.Status != string(models.TimeRecordClosed) {
		t.Errorf("CheckOut() status = %s, want %s", record.Status, models.TimeRecordClosed)
	}
	if record.CheckOut == nil {
		t.Errorf("CheckOut() left check_out empty")
	}

	_, err = svc.CheckOut(context.Background(), employeeID, &api.CheckOutRequest{})
	if !errors.Is(err, response.ErrNoOpenTimeRecord) {
		t.Errorf("second CheckOut() error = %v, want ErrNoOpenTimeRecord", err)
	}
}

func TestSummarizeMonitoring_StoresSummary(t *testing.T) {
	svc, store, _, patientID, _ := newTestService(t)

	contractID, err := store.CreateContract(context.Background(), &models.Contract{
		PatientID:      patientID,
		Value:          12000,
		StartDate:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		ShiftsPerMonth: 15,
		Status:         models.ContractActive,
	})
	if err != nil {
		t.Fatalf("seed contract: %v", err)
	}

	monitoring, err := svc.CreateMonitoring(context.Background(), &api.MonitoringRequest{
		ContractID:  contractID,
		Month:       "2024-01",
		HoursWorked: 180,
		Occurrences: "patient stable, one episode of low saturation",
	})
	if err != nil {
		t.Fatalf("CreateMonitoring() error = %v", err)
	}

	summarized, err := svc.SummarizeMonitoring(context.Background(), monitoring.ID)
	if err != nil {
		t.Fatalf("SummarizeMonitoring() error = %v", err)
	}
	if summarized.AISummary == nil || *summarized.AISummary != "stable month, no relevant events" {
		t.Errorf("SummarizeMonitoring() summary = %v, want the client result", summarized.AISummary)
	}
}

func TestSummarizeMonitoring_FailureLeavesRecordUntouched(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, &fakeLocker{}, &fakeSummarizer{err: errors.New("upstream unavailable")})

	patientID, _ := store.CreatePatient(context.Background(), &models.Patient{Name: "Helena Souza", Status: models.PatientActive})
	contractID, _ := store.CreateContract(context.Background(), &models.Contract{PatientID: patientID, Status: models.ContractActive})
	monitoringID, _ := store.CreateMonitoring(context.Background(), &models.MonthlyMonitoring{
		ContractID: contractID,
		Month:      "2024-02",
		Status:     models.MonitoringOpen,
	})

	if _, err := svc.SummarizeMonitoring(context.Background(), monitoringID); err == nil {
		t.Fatalf("SummarizeMonitoring() error = nil, want failure")
	}

	stored := store.monitorings[monitoringID]
	if stored.AISummary != nil {
		t.Errorf("summary = %v after failed call, want nil", *stored.AISummary)
	}
}

func TestCloseMonitoring_ConflictWhenClosed(t *testing.T) {
	svc, store, _, patientID, _ := newTestService(t)

	contractID, err := store.CreateContract(context.Background(), &models.Contract{
		PatientID: patientID,
		Status:    models.ContractActive,
	})
	if err != nil {
		t.Fatalf("seed contract: %v", err)
	}

	monitoring, err := svc.CreateMonitoring(context.Background(), &api.MonitoringRequest{
		ContractID: contractID,
		Month:      "2024-03",
	})
	if err != nil {
		t.Fatalf("CreateMonitoring() error = %v", err)
	}

	closed, err := svc.CloseMonitoring(context.Background(), monitoring.ID)
	if err != nil {
		t.Fatalf("CloseMonitoring() error = %v", err)
	}
	if closed.Status != string(models.MonitoringClosed) {
		t.Errorf("CloseMonitoring() status = %s, want %s", closed.Status, models.MonitoringClosed)
	}

	_, err = svc.CloseMonitoring(context.Background(), monitoring.ID)
	if !errors.Is(err, response.ErrConflict) {
		t.Errorf("second CloseMonitoring() error = %v, want ErrConflict", err)
	}
}

func TestListShiftsByDate_FiltersByPatient(t *testing.T) {
	svc, store, _, patientID, employeeID := newTestService(t)

	otherPatient, err := store.CreatePatient(context.Background(), &models.Patient{
		Name:   "Carlos Pereira",
		Status: models.PatientActive,
	})
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	for _, pid := range []string{patientID, otherPatient} {
		if _, err := svc.GenerateShifts(context.Background(), &api.ShiftGenerateRequest{
			PatientID:   pid,
			EmployeeID:  employeeID,
			AnchorDate:  "2024-01-01",
			ScaleType:   "DAILY",
			TargetCount: 1,
			StartTime:   "07:00",
			EndTime:     "19:00",
		}); err != nil {
			t.Fatalf("GenerateShifts() error = %v", err)
		}
	}

	all, err := svc.ListShiftsByDate(context.Background(), "2024-01-01", nil)
	if err != nil {
		t.Fatalf("ListShiftsByDate() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ListShiftsByDate() returned %d shifts, want 2", len(all))
	}

	filtered, err := svc.ListShiftsByDate(context.Background(), "2024-01-01", &patientID)
	if err != nil {
		t.Fatalf("ListShiftsByDate() error = %v", err)
	}
	if len(filtered) != 1 || filtered[0].PatientID != patientID {
		t.Errorf("ListShiftsByDate() filtered = %d shifts, want 1 for the patient", len(filtered))
	}
}
