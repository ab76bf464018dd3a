package availability

import (
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/opshub-dev/opshub/backend/internal/domain"
)

// RecordStore is the durable store for week availability records. All
// methods are synchronous; implementations own their query timeouts.
// Lookups for an absent week must return ErrNoRecord.
type RecordStore interface {
	GetWeekAvailability(userID int64, weekStart string) (*domain.WeekAvailability, error)
	CreateWeekAvailability(record *domain.WeekAvailability) error
	OverwriteWeekSlots(id string, slots map[string][]int32, submittedAt time.Time) error
	OverwriteWeekPendingSlots(id string, pendingSlots map[string][]int32) error
}

// DraftStore caches an unsubmitted slot selection per (user, week start).
// It is a disposable convenience cache, never a source of truth: Save is
// best-effort, Load treats corruption as absence and Clear is idempotent.
type DraftStore interface {
	SaveDraft(userID int64, weekStart string, selected []string) error
	LoadDraft(userID int64, weekStart string) ([]string, bool, error)
	ClearDraft(userID int64, weekStart string) error
}

// Engine runs the availability workflow for a single user. Collaborators
// are injected; the clock is a function so tests can pin "today".
type Engine struct {
	records RecordStore
	drafts  DraftStore
	now     func() time.Time
}

func NewEngine(records RecordStore, drafts DraftStore, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		records: records,
		drafts:  drafts,
		now:     now,
	}
}

// Toggle flips membership of key in the working selection. Slots on past
// dates are immutable: the selection is left untouched and a
// ValidationError is returned for the UI to surface.
func (e *Engine) Toggle(selection map[string]bool, key string) error {
	slot, err := DecodeSlotKey(key)
	if err != nil {
		return err
	}

	date, err := time.Parse(DateLayout, slot.Date)
	if err != nil {
		return err
	}
	if IsPastDate(date, e.now()) {
		return newValidationError("cannot edit past dates")
	}

	if selection[key] {
		delete(selection, key)
	} else {
		selection[key] = true
	}
	return nil
}

// groupSelection converts a flat slot key selection into the date -> sorted
// indices mapping stored on the record. Only days with at least one slot
// appear; every key must fall inside the given week.
func groupSelection(weekStart time.Time, selection []string) (map[string][]int32, error) {
	grouped := make(map[string][]int32)

	weekDates := WeekDates(weekStart)
	validDates := make(map[string]bool, len(weekDates))
	for _, d := range weekDates {
		validDates[d.Format(DateLayout)] = true
	}

	for _, key := range selection {
		slot, err := DecodeSlotKey(key)
		if err != nil {
			return nil, err
		}
		if !validDates[slot.Date] {
			return nil, newValidationError("slot %s is outside the selected week", key)
		}
		if !slices.Contains(grouped[slot.Date], slot.Index) {
			grouped[slot.Date] = append(grouped[slot.Date], slot.Index)
		}
	}

	for date := range grouped {
		slices.Sort(grouped[date])
	}

	return grouped, nil
}

// Submit turns the working selection into a pending record. A first
// submission creates the record; a re-submission while still under review
// overwrites the slots field wholesale. Either way the draft for the week
// is cleared afterwards.
func (e *Engine) Submit(userID int64, weekStart string, selection []string) (*domain.WeekAvailability, error) {
	if len(selection) == 0 {
		return nil, newValidationError("select at least one time slot before submitting")
	}

	start, err := time.Parse(DateLayout, weekStart)
	if err != nil {
		return nil, newValidationError("invalid week start %q", weekStart)
	}
	if !start.Equal(WeekStart(start)) {
		return nil, newValidationError("week start must be a Monday")
	}
	if start.Before(WeekStart(e.now())) {
		return nil, newValidationError("cannot submit availability for a past week")
	}

	slots, err := groupSelection(start, selection)
	if err != nil {
		return nil, err
	}

	record, err := e.records.GetWeekAvailability(userID, weekStart)
	switch {
	case errors.Is(err, ErrNoRecord):
		record = &domain.WeekAvailability{
			ID:          uuid.NewString(),
			UserID:      userID,
			WeekStart:   weekStart,
			Slots:       slots,
			Status:      domain.AvailabilityStatusPending,
			SubmittedAt: e.now(),
		}
		if err := e.records.CreateWeekAvailability(record); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		submittedAt := e.now()
		if err := e.records.OverwriteWeekSlots(record.ID, slots, submittedAt); err != nil {
			return nil, err
		}
		record.Slots = slots
		record.Status = domain.AvailabilityStatusPending
		record.SubmittedAt = submittedAt
	}

	e.clearDraft(userID, weekStart)

	return record, nil
}

// RequestChanges layers an edit proposal over an existing record. The
// approved baseline in slots is left untouched; only pendingSlots is
// overwritten and the status reverts to pending for review.
func (e *Engine) RequestChanges(userID int64, weekStart string, selection []string) (*domain.WeekAvailability, error) {
	start, err := time.Parse(DateLayout, weekStart)
	if err != nil {
		return nil, newValidationError("invalid week start %q", weekStart)
	}

	record, err := e.records.GetWeekAvailability(userID, weekStart)
	if errors.Is(err, ErrNoRecord) {
		return nil, newValidationError("no availability submitted for this week yet")
	}
	if err != nil {
		return nil, err
	}

	pending, err := groupSelection(start, selection)
	if err != nil {
		return nil, err
	}

	if err := e.records.OverwriteWeekPendingSlots(record.ID, pending); err != nil {
		return nil, err
	}
	record.PendingSlots = pending
	record.Status = domain.AvailabilityStatusPending

	return record, nil
}

// WeekView is the fully derived state of one week grid.
type WeekView struct {
	WeekStart string                             `json:"weekStart"`
	PrevWeek  string                             `json:"prevWeek"`
	NextWeek  string                             `json:"nextWeek"`
	Days      [WorkdayCount]string               `json:"days"`
	TimeSlots []string                           `json:"timeSlots"`
	Record    *domain.WeekAvailability           `json:"record"`
	Draft     []string                           `json:"draft"`
	Cells     [SlotCount][WorkdayCount]CellState `json:"cells"`
}

// View assembles the grid for one (user, week start) pair. When a server
// record is observed for the week, the local draft is no longer
// authoritative and is cleared; until then the draft feeds the working
// selection so unsubmitted picks survive reloads.
func (e *Engine) View(userID int64, weekStart string) (*WeekView, error) {
	start, err := time.Parse(DateLayout, weekStart)
	if err != nil {
		return nil, newValidationError("invalid week start %q", weekStart)
	}
	start = WeekStart(start)

	// PrevWeek clamps at the week containing today; the clamped value is
	// still the right navigation target.
	prev, _ := PrevWeek(start, e.now())

	view := &WeekView{
		WeekStart: start.Format(DateLayout),
		PrevWeek:  prev.Format(DateLayout),
		NextWeek:  NextWeek(start).Format(DateLayout),
		TimeSlots: TimeSlotLabels(),
	}
	for i, d := range WeekDates(start) {
		view.Days[i] = d.Format(DateLayout)
	}

	record, err := e.records.GetWeekAvailability(userID, view.WeekStart)
	working := make(map[string]bool)
	switch {
	case errors.Is(err, ErrNoRecord):
		selected, ok, err := e.drafts.LoadDraft(userID, view.WeekStart)
		if err != nil {
			return nil, err
		}
		if ok {
			view.Draft = selected
			for _, key := range selected {
				working[key] = true
			}
		}
	case err != nil:
		return nil, err
	default:
		view.Record = record
		e.clearDraft(userID, view.WeekStart)
	}

	for row := 0; row < SlotCount; row++ {
		for col, date := range view.Days {
			view.Cells[row][col] = DeriveCellState(date, int32(row), view.Record, working)
		}
	}

	return view, nil
}

// SaveDraft persists an unsubmitted selection. Malformed keys fail the
// save; keys whose date has since passed are dropped silently, so a
// selection drafted earlier in the week keeps saving as its days pass.
// Past-date enforcement on edits lives in Toggle. A draft for an already
// submitted week is pointless but harmless, so no record lookup happens
// here.
func (e *Engine) SaveDraft(userID int64, weekStart string, selection []string) error {
	kept := make([]string, 0, len(selection))
	for _, key := range selection {
		slot, err := DecodeSlotKey(key)
		if err != nil {
			return err
		}
		date, err := time.Parse(DateLayout, slot.Date)
		if err != nil {
			return err
		}
		if IsPastDate(date, e.now()) {
			continue
		}
		kept = append(kept, key)
	}

	return e.drafts.SaveDraft(userID, weekStart, kept)
}

// ClearDraft removes the draft for a week. Safe to call when no draft
// exists.
func (e *Engine) ClearDraft(userID int64, weekStart string) error {
	return e.drafts.ClearDraft(userID, weekStart)
}

func (e *Engine) clearDraft(userID int64, weekStart string) {
	// The draft is a disposable cache; failing to clear it must not fail
	// the operation that triggered the cleanup.
	if err := e.drafts.ClearDraft(userID, weekStart); err != nil {
		slog.Error("failed to clear availability draft", "userID", userID, "weekStart", weekStart, "error", err)
	}
}
