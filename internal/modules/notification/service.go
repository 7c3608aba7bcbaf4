package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"ppetrack/internal/modules/inspection"
)

// Service is the concrete Notifier collaborator: it persists events as
// notification rows and logs them. It satisfies
// inspection.NotificationSender.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) DefectsReported(ctx context.Context, report inspection.DefectReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	n := &Notification{
		Type:  TypeDefectsReported,
		Title: fmt.Sprintf("Defects reported by %s", report.PersonName),
		Body:  fmt.Sprintf("%d defective item(s) in the %s inspection", len(report.Items), report.Month),
		Data:  data,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	log.Printf("defect_report person=%q month=%s items=%d", report.PersonName, report.Month, len(report.Items))
	return nil
}

func (s *Service) CycleCompleted(ctx context.Context, personName, month string, defectCount int) error {
	n := &Notification{
		Type:  TypeCycleCompleted,
		Title: fmt.Sprintf("Inspection completed by %s", personName),
		Body:  fmt.Sprintf("Monthly check for %s recorded with %d defect(s)", month, defectCount),
	}
	return s.repo.Create(ctx, n)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkRead(ctx, id)
}
