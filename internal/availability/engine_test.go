package availability

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

type fakeRecordStore struct {
	records map[string]*domain.WeekAvailability
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{records: make(map[string]*domain.WeekAvailability)}
}

func (s *fakeRecordStore) key(userID int64, weekStart string) string {
	return fmt.Sprintf("%d/%s", userID, weekStart)
}

func (s *fakeRecordStore) GetWeekAvailability(userID int64, weekStart string) (*domain.WeekAvailability, error) {
	record, ok := s.records[s.key(userID, weekStart)]
	if !ok {
		return nil, ErrNoRecord
	}
	clone := *record
	return &clone, nil
}

func (s *fakeRecordStore) CreateWeekAvailability(record *domain.WeekAvailability) error {
	clone := *record
	s.records[s.key(record.UserID, record.WeekStart)] = &clone
	return nil
}

func (s *fakeRecordStore) OverwriteWeekSlots(id string, slots map[string][]int32, submittedAt time.Time) error {
	for _, record := range s.records {
		if record.ID == id {
			record.Slots = slots
			record.Status = domain.AvailabilityStatusPending
			record.SubmittedAt = submittedAt
			record.Version++
			return nil
		}
	}
	return ErrNoRecord
}

func (s *fakeRecordStore) OverwriteWeekPendingSlots(id string, pendingSlots map[string][]int32) error {
	for _, record := range s.records {
		if record.ID == id {
			record.PendingSlots = pendingSlots
			record.Status = domain.AvailabilityStatusPending
			record.Version++
			return nil
		}
	}
	return ErrNoRecord
}

type fakeDraftStore struct {
	drafts map[string][]string
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: make(map[string][]string)}
}

func (s *fakeDraftStore) key(userID int64, weekStart string) string {
	return fmt.Sprintf("%d/%s", userID, weekStart)
}

func (s *fakeDraftStore) SaveDraft(userID int64, weekStart string, selected []string) error {
	s.drafts[s.key(userID, weekStart)] = selected
	return nil
}

func (s *fakeDraftStore) LoadDraft(userID int64, weekStart string) ([]string, bool, error) {
	selected, ok := s.drafts[s.key(userID, weekStart)]
	return selected, ok, nil
}

func (s *fakeDraftStore) ClearDraft(userID int64, weekStart string) error {
	delete(s.drafts, s.key(userID, weekStart))
	return nil
}

// fixedNow pins "today" to Wednesday 2026-01-07; the current week starts
// Monday 2026-01-05.
func fixedNow() time.Time {
	return time.Date(2026, time.January, 7, 10, 0, 0, 0, time.UTC)
}

func newTestEngine() (*Engine, *fakeRecordStore, *fakeDraftStore) {
	records := newFakeRecordStore()
	drafts := newFakeDraftStore()
	return NewEngine(records, drafts, fixedNow), records, drafts
}

func TestToggle(t *testing.T) {
	engine, _, _ := newTestEngine()
	selection := map[string]bool{}

	require.NoError(t, engine.Toggle(selection, "2026-01-08-3"))
	assert.True(t, selection["2026-01-08-3"])

	require.NoError(t, engine.Toggle(selection, "2026-01-08-3"))
	assert.False(t, selection["2026-01-08-3"])
}

func TestTogglePastDateRejected(t *testing.T) {
	engine, _, _ := newTestEngine()
	selection := map[string]bool{}

	err := engine.Toggle(selection, "2026-01-06-3")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Empty(t, selection)
}

func TestToggleMalformedKey(t *testing.T) {
	engine, _, _ := newTestEngine()

	err := engine.Toggle(map[string]bool{}, "not-a-key")
	require.ErrorIs(t, err, ErrMalformedKey)
}

func TestSubmitCreatesRecordAndGroupsSelection(t *testing.T) {
	engine, records, drafts := newTestEngine()
	require.NoError(t, drafts.SaveDraft(7, "2026-01-05", []string{"2026-01-08-3"}))

	selection := []string{"2026-01-08-3", "2026-01-08-5", "2026-01-09-0", "2026-01-08-3"}
	record, err := engine.Submit(7, "2026-01-05", selection)
	require.NoError(t, err)

	assert.Equal(t, domain.AvailabilityStatusPending, record.Status)
	assert.Equal(t, fixedNow(), record.SubmittedAt)
	assert.Equal(t, map[string][]int32{
		"2026-01-08": {3, 5},
		"2026-01-09": {0},
	}, record.Slots)

	stored, err := records.GetWeekAvailability(7, "2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, record.Slots, stored.Slots)

	// submitting clears the week's draft
	_, ok, err := drafts.LoadDraft(7, "2026-01-05")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubmitOverwritesWhilePending(t *testing.T) {
	engine, records, _ := newTestEngine()

	_, err := engine.Submit(7, "2026-01-05", []string{"2026-01-08-3"})
	require.NoError(t, err)

	record, err := engine.Submit(7, "2026-01-05", []string{"2026-01-09-1"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]int32{"2026-01-09": {1}}, record.Slots)

	stored, err := records.GetWeekAvailability(7, "2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, map[string][]int32{"2026-01-09": {1}}, stored.Slots)
}

func TestSubmitValidation(t *testing.T) {
	engine, _, _ := newTestEngine()

	tests := []struct {
		name      string
		weekStart string
		selection []string
	}{
		{"empty selection", "2026-01-05", nil},
		{"week start not a date", "next-week", []string{"2026-01-08-3"}},
		{"week start not a monday", "2026-01-06", []string{"2026-01-08-3"}},
		{"past week", "2025-12-29", []string{"2025-12-29-3"}},
		{"slot outside the week", "2026-01-05", []string{"2026-01-12-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Submit(7, tt.weekStart, tt.selection)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestRequestChangesPreservesBaseline(t *testing.T) {
	engine, records, _ := newTestEngine()

	submitted, err := engine.Submit(7, "2026-01-05", []string{"2026-01-08-3", "2026-01-08-5"})
	require.NoError(t, err)

	record, err := engine.RequestChanges(7, "2026-01-05", []string{"2026-01-08-3", "2026-01-09-1"})
	require.NoError(t, err)

	assert.Equal(t, submitted.Slots, record.Slots)
	assert.Equal(t, map[string][]int32{
		"2026-01-08": {3},
		"2026-01-09": {1},
	}, record.PendingSlots)
	assert.Equal(t, domain.AvailabilityStatusPending, record.Status)

	stored, err := records.GetWeekAvailability(7, "2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, submitted.Slots, stored.Slots)
	assert.Equal(t, record.PendingSlots, stored.PendingSlots)
}

func TestRequestChangesWithoutRecord(t *testing.T) {
	engine, _, _ := newTestEngine()

	_, err := engine.RequestChanges(7, "2026-01-05", []string{"2026-01-08-3"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestViewUsesDraftWhenNoRecord(t *testing.T) {
	engine, _, drafts := newTestEngine()
	require.NoError(t, drafts.SaveDraft(7, "2026-01-05", []string{"2026-01-08-3"}))

	view, err := engine.View(7, "2026-01-05")
	require.NoError(t, err)

	assert.Nil(t, view.Record)
	assert.Equal(t, []string{"2026-01-08-3"}, view.Draft)
	assert.Equal(t, "2026-01-05", view.WeekStart)
	assert.Equal(t, [WorkdayCount]string{"2026-01-05", "2026-01-06", "2026-01-07", "2026-01-08", "2026-01-09"}, view.Days)

	// 2026-01-08 is the fourth column
	assert.Equal(t, CellDraft, view.Cells[3][3])
	assert.Equal(t, CellEmpty, view.Cells[3][4])
}

func TestViewClearsDraftOnceRecordExists(t *testing.T) {
	engine, records, drafts := newTestEngine()
	require.NoError(t, drafts.SaveDraft(7, "2026-01-05", []string{"2026-01-08-3"}))
	require.NoError(t, records.CreateWeekAvailability(&domain.WeekAvailability{
		ID:        "rec-1",
		UserID:    7,
		WeekStart: "2026-01-05",
		Slots:     map[string][]int32{"2026-01-08": {5}},
		Status:    domain.AvailabilityStatusApproved,
	}))

	view, err := engine.View(7, "2026-01-05")
	require.NoError(t, err)

	require.NotNil(t, view.Record)
	assert.Empty(t, view.Draft)
	assert.Equal(t, CellApproved, view.Cells[5][3])

	_, ok, err := drafts.LoadDraft(7, "2026-01-05")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestViewNormalizesWeekStart(t *testing.T) {
	engine, _, _ := newTestEngine()

	view, err := engine.View(7, "2026-01-07")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", view.WeekStart)
}

func TestViewNavigation(t *testing.T) {
	engine, _, _ := newTestEngine()

	view, err := engine.View(7, "2026-01-05")
	require.NoError(t, err)
	// browsing back from the current week clamps instead of going past it
	assert.Equal(t, "2026-01-05", view.PrevWeek)
	assert.Equal(t, "2026-01-12", view.NextWeek)

	view, err = engine.View(7, "2026-01-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", view.PrevWeek)
	assert.Equal(t, "2026-01-19", view.NextWeek)
}

func TestSaveDraftDropsPastDates(t *testing.T) {
	engine, _, drafts := newTestEngine()

	require.NoError(t, engine.SaveDraft(7, "2026-01-05", []string{"2026-01-06-3", "2026-01-08-2"}))

	selected, ok, err := drafts.LoadDraft(7, "2026-01-05")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"2026-01-08-2"}, selected)
}

func TestSaveDraftMalformedKey(t *testing.T) {
	engine, _, drafts := newTestEngine()

	require.ErrorIs(t, engine.SaveDraft(7, "2026-01-05", []string{"not-a-key"}), ErrMalformedKey)
	assert.Empty(t, drafts.drafts)
}

func TestDraftStaysEditableAfterDayPasses(t *testing.T) {
	// a Monday slot drafted before Wednesday must not block later edits
	engine, _, drafts := newTestEngine()

	selection := map[string]bool{"2026-01-05-3": true}
	require.NoError(t, engine.Toggle(selection, "2026-01-08-2"))

	selected := make([]string, 0, len(selection))
	for key := range selection {
		selected = append(selected, key)
	}
	require.NoError(t, engine.SaveDraft(7, "2026-01-05", selected))

	stored, ok, err := drafts.LoadDraft(7, "2026-01-05")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"2026-01-08-2"}, stored)
}
