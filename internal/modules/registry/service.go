package registry

import (
	"context"
	"io"
	"strings"

	"ppetrack/internal/domain"

	"github.com/google/uuid"
)

type Service struct {
	persons    PersonRepository
	items      EquipmentRepository
	siteFilter string
	excluded   []string
}

// NewService builds the import/roster service. siteFilter keeps only
// rows whose location contains it (empty disables the filter); excluded
// is the condition vocabulary marking items permanently unavailable
// (condemned, lost, stolen).
func NewService(persons PersonRepository, items EquipmentRepository, siteFilter string, excluded []string) *Service {
	return &Service{
		persons:    persons,
		items:      items,
		siteFilter: siteFilter,
		excluded:   excluded,
	}
}

func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*ImportSummary, error) {
	records, err := ParseRecords(r)
	if err != nil {
		return nil, err
	}
	return s.Import(ctx, records)
}

// Import runs the filtering and upsert pipeline over raw export rows.
// Each filter is a hard per-row skip; within one run the first
// occurrence of a barcode wins, across runs the import is an upsert
// keyed by barcode. Stale barcodes absent from the export are retained
// as-is.
func (s *Service) Import(ctx context.Context, records []RawRecord) (*ImportSummary, error) {
	sum := &ImportSummary{}
	seen := make(map[string]bool)
	byRef := make(map[string]*domain.Person)

	for _, rec := range records {
		ref := strings.TrimSpace(rec.Reference)
		if ref == "" {
			// continuation rows in source exports carry no reference
			sum.ItemsSkipped++
			continue
		}
		if !s.locationAllowed(rec.Location) {
			sum.ItemsSkipped++
			continue
		}
		if s.conditionExcluded(rec.Condition) {
			sum.ItemsSkipped++
			continue
		}
		barcode := strings.TrimSpace(rec.Barcode)
		if barcode == "" || seen[barcode] {
			sum.ItemsSkipped++
			continue
		}
		seen[barcode] = true

		p, err := s.resolvePerson(ctx, byRef, ref, rec.Name)
		if err != nil {
			return nil, err
		}

		item := &domain.EquipmentItem{
			Barcode:     barcode,
			Category:    Classify(rec.Description),
			Description: strings.TrimSpace(rec.Description),
			Size:        strings.TrimSpace(rec.Size),
			PersonID:    p.ID,
		}
		if err := s.items.Upsert(ctx, item); err != nil {
			return nil, err
		}
		sum.ItemsImported++
	}

	sum.PersonsTouched = len(byRef)
	return sum, nil
}

func (s *Service) locationAllowed(location string) bool {
	if s.siteFilter == "" {
		return true
	}
	return strings.Contains(strings.ToUpper(location), strings.ToUpper(s.siteFilter))
}

func (s *Service) conditionExcluded(condition string) bool {
	c := strings.ToUpper(condition)
	for _, word := range s.excluded {
		if word == "" {
			continue
		}
		if strings.Contains(c, strings.ToUpper(word)) {
			return true
		}
	}
	return false
}

func (s *Service) resolvePerson(ctx context.Context, byRef map[string]*domain.Person, ref, name string) (*domain.Person, error) {
	if p, ok := byRef[ref]; ok {
		return p, nil
	}

	p, err := s.persons.GetByReference(ctx, ref)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &domain.Person{
			ID:        uuid.NewString(),
			Name:      strings.TrimSpace(name),
			Reference: ref,
		}
		if p.Name == "" {
			p.Name = ref
		}
		if err := s.persons.Create(ctx, p); err != nil {
			return nil, err
		}
	}

	byRef[ref] = p
	return p, nil
}

func (s *Service) Roster(ctx context.Context) ([]RosterEntry, error) {
	persons, err := s.persons.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.items.CountsByPerson(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RosterEntry, 0, len(persons))
	for _, p := range persons {
		out = append(out, RosterEntry{
			ID:        p.ID,
			Name:      p.Name,
			Reference: p.Reference,
			ItemCount: counts[p.ID],
		})
	}
	return out, nil
}

func (s *Service) PersonEquipment(ctx context.Context, personID string) ([]domain.EquipmentItem, error) {
	p, err := s.persons.GetByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPersonNotFound
	}
	return s.items.ListByPerson(ctx, personID)
}
