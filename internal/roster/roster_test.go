package roster

import (
	"testing"
	"time"

	"homecare-service/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func baseRequest() Request {
	return Request{
		PatientID:   "patient-1",
		EmployeeID:  "employee-1",
		AnchorDate:  date(2024, time.January, 1),
		Scale:       models.ScaleDaily,
		TargetCount: 1,
		StartTime:   "07:00",
		EndTime:     "19:00",
		Status:      models.ShiftScheduled,
		Notes:       "bed bath in the morning",
	}
}

func TestGenerate_ScaleDates(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		scale  models.ScaleType
		count  int
		want   []time.Time
	}{
		{
			name:   "daily emits consecutive days",
			anchor: date(2024, time.January, 1),
			scale:  models.ScaleDaily,
			count:  5,
			want: []time.Time{
				date(2024, time.January, 1),
				date(2024, time.January, 2),
				date(2024, time.January, 3),
				date(2024, time.January, 4),
				date(2024, time.January, 5),
			},
		},
		{
			name:   "12x36 strides two days",
			anchor: date(2024, time.January, 1),
			scale:  models.ScaleTwelveByThirtySix,
			count:  3,
			want: []time.Time{
				date(2024, time.January, 1),
				date(2024, time.January, 3),
				date(2024, time.January, 5),
			},
		},
		{
			name:   "24x24 strides two days",
			anchor: date(2024, time.January, 1),
			scale:  models.ScaleTwentyFourByTwentyFour,
			count:  3,
			want: []time.Time{
				date(2024, time.January, 1),
				date(2024, time.January, 3),
				date(2024, time.January, 5),
			},
		},
		{
			name:   "24x48 strides three days",
			anchor: date(2024, time.January, 1),
			scale:  models.ScaleTwentyFourByFortyEight,
			count:  3,
			want: []time.Time{
				date(2024, time.January, 1),
				date(2024, time.January, 4),
				date(2024, time.January, 7),
			},
		},
		{
			// 2024-01-05 is a Friday; Saturday and Sunday must be skipped.
			name:   "5x2 skips weekends",
			anchor: date(2024, time.January, 5),
			scale:  models.ScaleFiveByTwo,
			count:  3,
			want: []time.Time{
				date(2024, time.January, 5),
				date(2024, time.January, 8),
				date(2024, time.January, 9),
			},
		},
		{
			name:   "5x2 anchored on a Saturday starts Monday",
			anchor: date(2024, time.January, 6),
			scale:  models.ScaleFiveByTwo,
			count:  2,
			want: []time.Time{
				date(2024, time.January, 8),
				date(2024, time.January, 9),
			},
		},
		{
			name:   "daily rolls over the month boundary",
			anchor: date(2024, time.January, 30),
			scale:  models.ScaleDaily,
			count:  3,
			want: []time.Time{
				date(2024, time.January, 30),
				date(2024, time.January, 31),
				date(2024, time.February, 1),
			},
		},
		{
			name:   "24x48 rolls over the year boundary",
			anchor: date(2023, time.December, 30),
			scale:  models.ScaleTwentyFourByFortyEight,
			count:  2,
			want: []time.Time{
				date(2023, time.December, 30),
				date(2024, time.January, 2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			req.AnchorDate = tt.anchor
			req.Scale = tt.scale
			req.TargetCount = tt.count

			result := Generate(req)

			if result.Truncated {
				t.Fatalf("Generate() truncated = true, want false")
			}
			if len(result.Shifts) != len(tt.want) {
				t.Fatalf("Generate() produced %d shifts, want %d", len(result.Shifts), len(tt.want))
			}
			for i, shift := range result.Shifts {
				if !shift.Date.Equal(tt.want[i]) {
					t.Errorf("shift[%d].Date = %s, want %s",
						i, shift.Date.Format("2006-01-02"), tt.want[i].Format("2006-01-02"))
				}
			}
		})
	}
}

func TestGenerate_FiveByTwoNeverEmitsWeekends(t *testing.T) {
	req := baseRequest()
	req.Scale = models.ScaleFiveByTwo
	req.TargetCount = 40

	result := Generate(req)

	if len(result.Shifts) != 40 {
		t.Fatalf("Generate() produced %d shifts, want 40", len(result.Shifts))
	}
	for i, shift := range result.Shifts {
		wd := shift.Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			t.Errorf("shift[%d] landed on %s (%s)", i, wd, shift.Date.Format("2006-01-02"))
		}
	}
}

func TestGenerate_CopiesRequestFields(t *testing.T) {
	req := baseRequest()
	req.Scale = models.ScaleTwelveByThirtySix
	req.TargetCount = 4
	req.Status = models.ShiftCompleted

	result := Generate(req)

	if len(result.Shifts) != 4 {
		t.Fatalf("Generate() produced %d shifts, want 4", len(result.Shifts))
	}
	for i, shift := range result.Shifts {
		if shift.PatientID != req.PatientID || shift.EmployeeID != req.EmployeeID {
			t.Errorf("shift[%d] assignment = (%s, %s), want (%s, %s)",
				i, shift.PatientID, shift.EmployeeID, req.PatientID, req.EmployeeID)
		}
		if shift.StartTime != req.StartTime || shift.EndTime != req.EndTime {
			t.Errorf("shift[%d] window = %s-%s, want %s-%s",
				i, shift.StartTime, shift.EndTime, req.StartTime, req.EndTime)
		}
		if shift.Status != models.ShiftCompleted {
			t.Errorf("shift[%d].Status = %s, want %s", i, shift.Status, models.ShiftCompleted)
		}
		if shift.Notes != req.Notes {
			t.Errorf("shift[%d].Notes = %q, want %q", i, shift.Notes, req.Notes)
		}
		if shift.RepeatCount == nil || *shift.RepeatCount != 4 {
			t.Errorf("shift[%d].RepeatCount = %v, want 4", i, shift.RepeatCount)
		}
	}
}

func TestGenerate_RepeatCountAbsentForSingles(t *testing.T) {
	for _, count := range []int{1, 0, -3} {
		req := baseRequest()
		req.TargetCount = count

		result := Generate(req)

		if len(result.Shifts) != 1 {
			t.Fatalf("Generate() with count %d produced %d shifts, want 1", count, len(result.Shifts))
		}
		if result.Shifts[0].RepeatCount != nil {
			t.Errorf("Generate() with count %d set RepeatCount = %d, want nil",
				count, *result.Shifts[0].RepeatCount)
		}
		if !result.Shifts[0].Date.Equal(req.AnchorDate) {
			t.Errorf("Generate() with count %d dated shift %s, want the anchor date",
				count, result.Shifts[0].Date.Format("2006-01-02"))
		}
	}
}

func TestGenerate_MissingIdentifiers(t *testing.T) {
	tests := []struct {
		name     string
		patient  string
		employee string
	}{
		{"missing patient", "", "employee-1"},
		{"missing employee", "patient-1", ""},
		{"missing both", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			req.PatientID = tt.patient
			req.EmployeeID = tt.employee
			req.TargetCount = 10

			result := Generate(req)

			if len(result.Shifts) != 0 {
				t.Errorf("Generate() produced %d shifts, want 0", len(result.Shifts))
			}
			if result.Truncated {
				t.Errorf("Generate() truncated = true, want false")
			}
		})
	}
}

func TestGenerate_UniqueIDs(t *testing.T) {
	req := baseRequest()
	req.TargetCount = 60

	result := Generate(req)

	seen := make(map[string]struct{}, len(result.Shifts))
	for i, shift := range result.Shifts {
		if shift.ID == "" {
			t.Fatalf("shift[%d] has empty id", i)
		}
		if _, dup := seen[shift.ID]; dup {
			t.Fatalf("shift[%d] repeats id %s", i, shift.ID)
		}
		seen[shift.ID] = struct{}{}
	}
}

func TestGenerate_DatesNonDecreasing(t *testing.T) {
	for _, scale := range []models.ScaleType{
		models.ScaleDaily,
		models.ScaleTwelveByThirtySix,
		models.ScaleTwentyFourByTwentyFour,
		models.ScaleTwentyFourByFortyEight,
		models.ScaleFiveByTwo,
	} {
		req := baseRequest()
		req.Scale = scale
		req.TargetCount = 30

		result := Generate(req)

		for i := 1; i < len(result.Shifts); i++ {
			if result.Shifts[i].Date.Before(result.Shifts[i-1].Date) {
				t.Errorf("scale %s: shift[%d] date %s precedes shift[%d] date %s",
					scale, i, result.Shifts[i].Date.Format("2006-01-02"),
					i-1, result.Shifts[i-1].Date.Format("2006-01-02"))
			}
		}
	}
}

func TestGenerate_TruncatesAtIterationBound(t *testing.T) {
	// 5x2 emits at most 5 shifts per 7 iterations, so 1000 iterations cannot
	// satisfy a target this large.
	req := baseRequest()
	req.Scale = models.ScaleFiveByTwo
	req.TargetCount = 900

	result := Generate(req)

	if !result.Truncated {
		t.Fatalf("Generate() truncated = false, want true")
	}
	if len(result.Shifts) >= 900 {
		t.Fatalf("Generate() produced %d shifts, want fewer than the target", len(result.Shifts))
	}
	if len(result.Shifts) == 0 {
		t.Fatalf("Generate() produced no shifts, want the partial batch")
	}
}

func TestGenerate_UnknownScaleProducesNothing(t *testing.T) {
	req := baseRequest()
	req.Scale = models.ScaleType("6x1")

	result := Generate(req)

	if len(result.Shifts) != 0 {
		t.Errorf("Generate() produced %d shifts, want 0", len(result.Shifts))
	}
	if !result.Truncated {
		t.Errorf("Generate() truncated = false, want true")
	}
}

func TestGenerate_DefaultsStatusToScheduled(t *testing.T) {
	req := baseRequest()
	req.Status = ""

	result := Generate(req)

	if len(result.Shifts) != 1 {
		t.Fatalf("Generate() produced %d shifts, want 1", len(result.Shifts))
	}
	if result.Shifts[0].Status != models.ShiftScheduled {
		t.Errorf("Status = %s, want %s", result.Shifts[0].Status, models.ShiftScheduled)
	}
}
