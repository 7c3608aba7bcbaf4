package report

import (
	"context"

	"ppetrack/internal/domain"
	"ppetrack/internal/pkg/period"
)

// Service computes completeness views over the inspection ledger.
// Everything here is a pure read: no writes, no side effects.
type Service struct {
	persons PersonDirectory
	cycles  CycleReader
}

func NewService(persons PersonDirectory, cycles CycleReader) *Service {
	return &Service{persons: persons, cycles: cycles}
}

// MonthlySummary reports, for one calendar month, who has completed
// their check. The open-defect count is deliberately lifetime-wide:
// defects are never closed by this system, so the "open issues" view
// spans all history rather than the queried month.
func (s *Service) MonthlySummary(ctx context.Context, month string) (*MonthlySummary, error) {
	if err := period.ValidateMonth(month); err != nil {
		return nil, ErrValidation
	}

	persons, err := s.persons.List(ctx)
	if err != nil {
		return nil, err
	}
	cycles, err := s.cycles.ListByMonths(ctx, []string{month})
	if err != nil {
		return nil, err
	}
	defects, err := s.cycles.DefectCounts(ctx)
	if err != nil {
		return nil, err
	}

	byPerson := make(map[string]domain.InspectionCycle, len(cycles))
	for _, c := range cycles {
		byPerson[c.PersonID] = c
	}

	sum := &MonthlySummary{Month: month, Total: len(persons)}
	for _, p := range persons {
		st := PersonMonthStatus{
			PersonID:        p.ID,
			Name:            p.Name,
			Status:          "incomplete",
			OpenDefectCount: defects[p.ID],
		}
		if c, ok := byPerson[p.ID]; ok {
			st.Status = "complete"
			completed := c.CompletedAt
			st.LastCycleAt = &completed
			sum.Complete++
		}
		sum.PerPerson = append(sum.PerPerson, st)
	}
	sum.Incomplete = sum.Total - sum.Complete
	return sum, nil
}

// QuarterlyCompleteness expands the quarter label into its three months
// and reports per person which of them have a recorded cycle.
func (s *Service) QuarterlyCompleteness(ctx context.Context, quarter string) (*QuarterlyCompleteness, error) {
	months, err := period.QuarterMonths(quarter)
	if err != nil {
		return nil, ErrValidation
	}

	persons, err := s.persons.List(ctx)
	if err != nil {
		return nil, err
	}
	cycles, err := s.cycles.ListByMonths(ctx, months)
	if err != nil {
		return nil, err
	}

	done := make(map[string]map[string]bool, len(persons))
	for _, c := range cycles {
		if done[c.PersonID] == nil {
			done[c.PersonID] = make(map[string]bool, 3)
		}
		done[c.PersonID][c.Month] = true
	}

	out := &QuarterlyCompleteness{Quarter: quarter, Months: months}
	for _, p := range persons {
		st := PersonQuarterStatus{
			PersonID:    p.ID,
			Name:        p.Name,
			MonthFlags:  make(map[string]bool, 3),
			AllComplete: true,
		}
		for _, m := range months {
			flag := done[p.ID][m]
			st.MonthFlags[m] = flag
			if !flag {
				st.AllComplete = false
			}
		}
		out.PerPerson = append(out.PerPerson, st)
	}
	return out, nil
}
