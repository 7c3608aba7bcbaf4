package audit

import (
	"context"
	"errors"
	"strings"
	"time"

	"ppetrack/internal/domain"
	"ppetrack/internal/pkg/period"
	"ppetrack/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	signoffs     SignoffRepository
	completeness CompletenessReader
	now          func() time.Time
}

func NewService(signoffs SignoffRepository, completeness CompletenessReader) *Service {
	return &Service{
		signoffs:     signoffs,
		completeness: completeness,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SignOff records the one-time attestation for a quarter. The existence
// check up front is a user-experience shortcut only; the authoritative
// guard is the unique index on quarter, so of two concurrent sign-offs
// exactly one wins and the stored signer stays the first one's.
func (s *Service) SignOff(ctx context.Context, req SignOffRequest) (*domain.AuditSignoff, error) {
	if err := period.ValidateQuarter(req.Quarter); err != nil {
		return nil, ErrValidation
	}
	if strings.TrimSpace(req.SignerName) == "" {
		return nil, ErrValidation
	}

	existing, err := s.signoffs.GetByQuarter(ctx, req.Quarter)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadySignedOff
	}

	signoff := &domain.AuditSignoff{
		ID:         uuid.NewString(),
		Quarter:    req.Quarter,
		SignerName: strings.TrimSpace(req.SignerName),
		Notes:      req.Notes,
		SignedAt:   s.now(),
	}
	if err := s.signoffs.Create(ctx, signoff); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadySignedOff
		}
		return nil, err
	}
	return signoff, nil
}

func (s *Service) GetSignoff(ctx context.Context, quarter string) (*domain.AuditSignoff, error) {
	if err := period.ValidateQuarter(quarter); err != nil {
		return nil, ErrValidation
	}

	signoff, err := s.signoffs.GetByQuarter(ctx, quarter)
	if err != nil {
		return nil, err
	}
	if signoff == nil {
		return nil, ErrSignoffNotFound
	}
	return signoff, nil
}

// QuarterStatus combines the signoff state with the completeness grid
// for human review.
func (s *Service) QuarterStatus(ctx context.Context, quarter string) (*QuarterStatus, error) {
	if err := period.ValidateQuarter(quarter); err != nil {
		return nil, ErrValidation
	}

	signoff, err := s.signoffs.GetByQuarter(ctx, quarter)
	if err != nil {
		return nil, err
	}
	grid, err := s.completeness.QuarterlyCompleteness(ctx, quarter)
	if err != nil {
		return nil, err
	}

	return &QuarterStatus{
		Quarter:      quarter,
		Signed:       signoff != nil,
		Signoff:      signoff,
		Completeness: grid,
	}, nil
}
