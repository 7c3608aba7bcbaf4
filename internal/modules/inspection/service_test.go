package inspection

import (
	"context"
	"sync"
	"testing"
	"time"

	"ppetrack/internal/domain"
	"ppetrack/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCycleRepository struct {
	mock.Mock
}

func (m *MockCycleRepository) CreateWithResults(ctx context.Context, c *domain.InspectionCycle) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil && c != nil {
		c.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockCycleRepository) GetByPersonMonth(ctx context.Context, personID, month string) (*domain.InspectionCycle, error) {
	args := m.Called(ctx, personID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InspectionCycle), args.Error(1)
}

type MockPersonDirectory struct {
	mock.Mock
}

func (m *MockPersonDirectory) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

type MockEquipmentReader struct {
	mock.Mock
}

func (m *MockEquipmentReader) ListByPerson(ctx context.Context, personID string) ([]domain.EquipmentItem, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentItem), args.Error(1)
}

// fakeNotifier captures dispatched events; Wait blocks until the async
// dispatch goroutine has delivered them.
type fakeNotifier struct {
	mu        sync.Mutex
	completed []string
	reports   []DefectReport
	done      chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{done: make(chan struct{}, 2)}
}

func (f *fakeNotifier) CycleCompleted(ctx context.Context, personName, month string, defectCount int) error {
	f.mu.Lock()
	f.completed = append(f.completed, personName+"/"+month)
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

func (f *fakeNotifier) DefectsReported(ctx context.Context, report DefectReport) error {
	f.mu.Lock()
	f.reports = append(f.reports, report)
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

func (f *fakeNotifier) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-f.done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for notification dispatch")
		}
	}
}

func ownedKit() []domain.EquipmentItem {
	return []domain.EquipmentItem{
		{Barcode: "B001", Category: domain.CategoryFireTunic, Description: "COAT GOLD PBI", PersonID: "p-1"},
		{Barcode: "B002", Category: domain.CategoryBoots, Description: "FIRE BOOT", PersonID: "p-1"},
		{Barcode: "B003", Category: domain.CategoryHood, Description: "FLASH HOOD", PersonID: "p-1"},
	}
}

func TestSubmitCycle_Success(t *testing.T) {
	cycles := new(MockCycleRepository)
	persons := new(MockPersonDirectory)
	equipment := new(MockEquipmentReader)
	notifs := newFakeNotifier()

	persons.On("GetByID", mock.Anything, "p-1").Return(&domain.Person{ID: "p-1", Name: "A Smith"}, nil)
	equipment.On("ListByPerson", mock.Anything, "p-1").Return(ownedKit(), nil)
	cycles.On("CreateWithResults", mock.Anything, mock.Anything).Return(nil)

	service := NewService(cycles, persons, equipment, notifs)

	cycle, err := service.SubmitCycle(context.Background(), SubmitRequest{
		PersonID: "p-1",
		Month:    "2026-03",
		Results: []ResultRequest{
			{Barcode: "B001", Condition: "defect", Notes: "torn cuff", PhotoRef: "/static/uploads/x.jpg"},
			{Barcode: "B002", Condition: "good"},
			{Barcode: "B003", Condition: "good"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, cycle)
	assert.Equal(t, int64(42), cycle.ID)
	assert.Equal(t, "2026-03", cycle.Month)
	assert.Len(t, cycle.Results, 3)
	assert.False(t, cycle.CompletedAt.IsZero())

	// one completion event plus one defect report
	notifs.wait(t, 2)
	require.Len(t, notifs.reports, 1)
	assert.Equal(t, "A Smith", notifs.reports[0].PersonName)
	require.Len(t, notifs.reports[0].Items, 1)
	assert.Equal(t, "B001", notifs.reports[0].Items[0].Barcode)
	assert.Equal(t, "COAT GOLD PBI", notifs.reports[0].Items[0].Description)
	assert.Equal(t, "torn cuff", notifs.reports[0].Items[0].Notes)
}

func TestSubmitCycle_GoodResultClearsNotesAndPhoto(t *testing.T) {
	cycles := new(MockCycleRepository)
	persons := new(MockPersonDirectory)
	equipment := new(MockEquipmentReader)

	persons.On("GetByID", mock.Anything, "p-1").Return(&domain.Person{ID: "p-1", Name: "A Smith"}, nil)
	equipment.On("ListByPerson", mock.Anything, "p-1").Return(ownedKit()[:1], nil)

	var persisted *domain.InspectionCycle
	cycles.On("CreateWithResults", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*domain.InspectionCycle)
	}).Return(nil)

	service := NewService(cycles, persons, equipment, nil)

	_, err := service.SubmitCycle(context.Background(), SubmitRequest{
		PersonID: "p-1",
		Month:    "2026-03",
		Results: []ResultRequest{
			// stale draft notes/photo from an earlier defect selection
			{Barcode: "B001", Condition: "good", Notes: "was torn", PhotoRef: "/old.jpg"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, domain.ConditionGood, persisted.Results[0].Condition)
	assert.Empty(t, persisted.Results[0].Notes)
	assert.Empty(t, persisted.Results[0].PhotoRef)
}

func TestSubmitCycle_DuplicateCycle(t *testing.T) {
	cycles := new(MockCycleRepository)
	persons := new(MockPersonDirectory)
	equipment := new(MockEquipmentReader)

	persons.On("GetByID", mock.Anything, "p-1").Return(&domain.Person{ID: "p-1", Name: "A Smith"}, nil)
	equipment.On("ListByPerson", mock.Anything, "p-1").Return(ownedKit()[:1], nil)
	cycles.On("CreateWithResults", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	service := NewService(cycles, persons, equipment, nil)

	_, err := service.SubmitCycle(context.Background(), SubmitRequest{
		PersonID: "p-1",
		Month:    "2026-03",
		Results:  []ResultRequest{{Barcode: "B001", Condition: "good"}},
	})

	assert.ErrorIs(t, err, ErrDuplicateCycle)
}

func TestSubmitCycle_UnownedBarcodeRejectedAtomically(t *testing.T) {
	cycles := new(MockCycleRepository)
	persons := new(MockPersonDirectory)
	equipment := new(MockEquipmentReader)

	persons.On("GetByID", mock.Anything, "p-1").Return(&domain.Person{ID: "p-1", Name: "A Smith"}, nil)
	equipment.On("ListByPerson", mock.Anything, "p-1").Return(ownedKit()[:1], nil)

	service := NewService(cycles, persons, equipment, nil)

	_, err := service.SubmitCycle(context.Background(), SubmitRequest{
		PersonID: "p-1",
		Month:    "2026-03",
		Results: []ResultRequest{
			{Barcode: "B001", Condition: "good"},
			{Barcode: "NOT-MINE", Condition: "good"},
		},
	})

	assert.ErrorIs(t, err, ErrUnknownItem)
	cycles.AssertNotCalled(t, "CreateWithResults", mock.Anything, mock.Anything)
}

func TestSubmitCycle_MissingOwnedItemRejected(t *testing.T) {
	cycles := new(MockCycleRepository)
	persons := new(MockPersonDirectory)
	equipment := new(MockEquipmentReader)

	persons.On("GetByID", mock.Anything, "p-1").Return(&domain.Person{ID: "p-1", Name: "A Smith"}, nil)
	equipment.On("ListByPerson", mock.Anything, "p-1").Return(ownedKit(), nil)

	service := NewService(cycles, persons, equipment, nil)

	_, err := service.SubmitCycle(context.Background(), SubmitRequest{
		PersonID: "p-1",
		Month:    "2026-03",
		Results:  []ResultRequest{{Barcode: "B001", Condition: "good"}},
	})

	assert.ErrorIs(t, err, ErrIncomplete)
	cycles.AssertNotCalled(t, "CreateWithResults", mock.Anything, mock.Anything)
}

func TestSubmitCycle_BadMonthLabel(t *testing.T) {
	service := NewService(new(MockCycleRepository), new(MockPersonDirectory), new(MockEquipmentReader), nil)

	for _, month := range []string{"2026-13", "March 2026", "2026/03", ""} {
		_, err := service.SubmitCycle(context.Background(), SubmitRequest{
			PersonID: "p-1",
			Month:    month,
			Results:  []ResultRequest{{Barcode: "B001", Condition: "good"}},
		})
		assert.ErrorIs(t, err, ErrValidation, "month %q", month)
	}
}

func TestSubmitCycle_UnknownPerson(t *testing.T) {
	cycles := new(MockCycleRepository)
	persons := new(MockPersonDirectory)
	equipment := new(MockEquipmentReader)

	persons.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

	service := NewService(cycles, persons, equipment, nil)

	_, err := service.SubmitCycle(context.Background(), SubmitRequest{
		PersonID: "ghost",
		Month:    "2026-03",
		Results:  []ResultRequest{{Barcode: "B001", Condition: "good"}},
	})

	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestGetCycle_AbsentIsNil(t *testing.T) {
	cycles := new(MockCycleRepository)
	cycles.On("GetByPersonMonth", mock.Anything, "p-1", "2026-03").Return(nil, nil)

	service := NewService(cycles, new(MockPersonDirectory), new(MockEquipmentReader), nil)

	cycle, err := service.GetCycle(context.Background(), "p-1", "2026-03")
	assert.NoError(t, err)
	assert.Nil(t, cycle)
}
