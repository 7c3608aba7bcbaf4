package inspection

import (
	"context"
	"errors"
	"log"
	"time"

	"ppetrack/internal/domain"
	"ppetrack/internal/pkg/period"
	"ppetrack/internal/repository"
)

type Service struct {
	cycles    CycleRepository
	persons   PersonDirectory
	equipment EquipmentReader
	notifs    NotificationSender
	now       func() time.Time
}

func NewService(cycles CycleRepository, persons PersonDirectory, equipment EquipmentReader, notifs NotificationSender) *Service {
	return &Service{
		cycles:    cycles,
		persons:   persons,
		equipment: equipment,
		notifs:    notifs,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SubmitCycle records one person's monthly check. The cycle and all of
// its item results are written atomically; the completion timestamp is
// server-assigned so a cycle cannot be backdated. The (person, month)
// uniqueness is enforced by the storage layer, so of two concurrent
// submissions exactly one wins and the other gets ErrDuplicateCycle.
func (s *Service) SubmitCycle(ctx context.Context, req SubmitRequest) (*domain.InspectionCycle, error) {
	if err := period.ValidateMonth(req.Month); err != nil {
		return nil, ErrValidation
	}
	if len(req.Results) == 0 {
		return nil, ErrValidation
	}

	p, err := s.persons.GetByID(ctx, req.PersonID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPersonNotFound
	}

	owned, err := s.equipment.ListByPerson(ctx, req.PersonID)
	if err != nil {
		return nil, err
	}
	ownedBy := make(map[string]domain.EquipmentItem, len(owned))
	for _, item := range owned {
		ownedBy[item.Barcode] = item
	}

	submitted := make(map[string]bool, len(req.Results))
	for _, r := range req.Results {
		if _, ok := ownedBy[r.Barcode]; !ok {
			return nil, ErrUnknownItem
		}
		if submitted[r.Barcode] {
			return nil, ErrValidation
		}
		submitted[r.Barcode] = true
	}
	// the whole submission is rejected rather than leaving a cycle with
	// partial item coverage
	if len(submitted) != len(owned) {
		return nil, ErrIncomplete
	}

	now := s.now()
	cycle := &domain.InspectionCycle{
		PersonID:    req.PersonID,
		Month:       req.Month,
		CompletedAt: now,
	}
	for _, r := range req.Results {
		result := domain.ItemResult{
			Barcode:    r.Barcode,
			Condition:  domain.Condition(r.Condition),
			Notes:      r.Notes,
			PhotoRef:   r.PhotoRef,
			RecordedAt: now,
		}
		// notes and photos only mean anything on a defect
		if result.Condition == domain.ConditionGood {
			result.Notes = ""
			result.PhotoRef = ""
		}
		cycle.Results = append(cycle.Results, result)
	}

	if err := s.cycles.CreateWithResults(ctx, cycle); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateCycle
		}
		return nil, err
	}

	s.dispatchNotifications(p, cycle, ownedBy)
	return cycle, nil
}

// dispatchNotifications is asynchronous relative to the submission
// response; failures are logged and never propagated or rolled back.
func (s *Service) dispatchNotifications(p *domain.Person, cycle *domain.InspectionCycle, ownedBy map[string]domain.EquipmentItem) {
	if s.notifs == nil {
		return
	}

	report := DefectReport{PersonName: p.Name, Month: cycle.Month}
	for _, r := range cycle.Results {
		if r.Condition != domain.ConditionDefect {
			continue
		}
		report.Items = append(report.Items, DefectItem{
			Barcode:     r.Barcode,
			Description: ownedBy[r.Barcode].Description,
			Notes:       r.Notes,
			PhotoRef:    r.PhotoRef,
		})
	}

	go func() {
		ctx := context.Background()
		if err := s.notifs.CycleCompleted(ctx, p.Name, cycle.Month, len(report.Items)); err != nil {
			log.Printf("notification_failed type=cycle_completed person=%s month=%s error=%q", p.ID, cycle.Month, err)
		}
		if len(report.Items) == 0 {
			return
		}
		if err := s.notifs.DefectsReported(ctx, report); err != nil {
			log.Printf("notification_failed type=defects_reported person=%s month=%s error=%q", p.ID, cycle.Month, err)
		}
	}()
}

// GetCycle returns (nil, nil) when the person has no cycle for the
// month; the submission UI uses this to short-circuit.
func (s *Service) GetCycle(ctx context.Context, personID, month string) (*domain.InspectionCycle, error) {
	if err := period.ValidateMonth(month); err != nil {
		return nil, ErrValidation
	}
	return s.cycles.GetByPersonMonth(ctx, personID, month)
}
