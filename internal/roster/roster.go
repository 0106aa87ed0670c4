// Package roster expands a recurring duty scale into concrete calendar-dated
// shift records. It is a pure expansion: persisting the resulting batch is the
// caller's job.
package roster

import (
	"time"

	"github.com/google/uuid"

	"homecare-service/internal/models"
)

// maxIterations bounds the expansion loop. Scales that skip candidate days
// (5x2) do not make progress on every iteration, so the target count alone
// does not guarantee termination.
const maxIterations = 1000

// Request describes one batch to expand. StartTime, EndTime, Status and Notes
// are copied verbatim onto every generated shift.
type Request struct {
	PatientID   string
	EmployeeID  string
	AnchorDate  time.Time
	Scale       models.ScaleType
	TargetCount int
	StartTime   string
	EndTime     string
	Status      models.ShiftStatus
	Notes       string
}

// Result is the outcome of one expansion. Truncated reports that the
// iteration bound was hit before the target count was reached; the shifts
// produced up to that point are still returned.
type Result struct {
	Shifts    []models.Shift
	Truncated bool
}

// Generate expands req into dated shift records following the scale's
// work/rest cadence, starting at the anchor date. Dates are computed with
// calendar arithmetic, so month and year boundaries roll over correctly.
//
// A missing patient or employee id yields an empty result rather than an
// error: submission is expected to be blocked upstream, and the generator
// degrades instead of failing. A target count below 1 is treated as 1. An
// unknown scale never emits, so the bound trips and Truncated is set.
func Generate(req Request) Result {
	if req.PatientID == "" || req.EmployeeID == "" {
		return Result{}
	}

	target := req.TargetCount
	if target < 1 {
		target = 1
	}

	status := req.Status
	if status == "" {
		status = models.ShiftScheduled
	}

	// Batches of size > 1 stamp the target on every member so the calendar
	// can mark them as part of a recurrence.
	var repeat *int
	if target > 1 {
		n := target
		repeat = &n
	}

	anchor := midnightUTC(req.AnchorDate)

	shifts := make([]models.Shift, 0, target)
	produced := 0
	dayOffset := 0

	for iter := 0; produced < target && iter < maxIterations; iter++ {
		date := anchor.AddDate(0, 0, dayOffset)

		emit := false
		switch req.Scale {
		case models.ScaleDaily:
			emit = true
			if produced+1 < target {
				dayOffset++
			}
		case models.ScaleTwelveByThirtySix, models.ScaleTwentyFourByTwentyFour:
			// Work one day, rest one day.
			emit = true
			if produced+1 < target {
				dayOffset += 2
			}
		case models.ScaleTwentyFourByFortyEight:
			// Work one day, rest two days.
			emit = true
			if produced+1 < target {
				dayOffset += 3
			}
		case models.ScaleFiveByTwo:
			// Weekdays only. The day counter advances every iteration;
			// weekend candidates are skipped without emitting.
			wd := date.Weekday()
			emit = wd != time.Saturday && wd != time.Sunday
			dayOffset++
		}

		if !emit {
			continue
		}

		shifts = append(shifts, models.Shift{
			ID:          uuid.NewString(),
			PatientID:   req.PatientID,
			EmployeeID:  req.EmployeeID,
			Date:        date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Status:      status,
			Notes:       req.Notes,
			RepeatCount: repeat,
		})
		produced++
	}

	return Result{Shifts: shifts, Truncated: produced < target}
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
