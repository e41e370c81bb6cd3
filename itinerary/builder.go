package itinerary

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Dhunu/vigovia/models"
)

// Builder steps.
const (
	StepBasicInfo = 1
	StepDays      = 2
	StepFlights   = 3
)

// Builder owns the itinerary being assembled plus the position in the
// three-step flow. Every mutation goes through its methods under one
// lock, and each committed mutation hands a snapshot of the new state to
// the registered on-change hook.
type Builder struct {
	mu       sync.Mutex
	it       models.Itinerary
	step     int
	onChange func(models.Itinerary)
}

func NewBuilder() *Builder {
	return &Builder{it: models.NewItinerary(), step: StepBasicInfo}
}

// OnChange registers the hook invoked after every mutation. The hook
// receives a deep copy, so it can be handed across goroutines safely.
func (b *Builder) OnChange(fn func(models.Itinerary)) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// Restore replaces the state wholesale. Used once at startup with the
// persisted document; it does not fire the on-change hook.
func (b *Builder) Restore(it models.Itinerary) {
	if it.Days == nil {
		it.Days = []models.Day{}
	}
	if it.Flights == nil {
		it.Flights = []models.Flight{}
	}
	b.mu.Lock()
	b.it = it
	b.mu.Unlock()
}

// Snapshot returns a deep copy of the current state.
func (b *Builder) Snapshot() models.Itinerary {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.it.Clone()
}

// mutate applies fn under the lock, then fires the on-change hook with a
// snapshot taken inside the same critical section.
func (b *Builder) mutate(fn func(*models.Itinerary)) {
	b.mu.Lock()
	fn(&b.it)
	hook := b.onChange
	snap := b.it.Clone()
	b.mu.Unlock()
	if hook != nil {
		hook(snap)
	}
}

func (b *Builder) mutateDay(dayIndex int, fn func(*models.Day)) error {
	var err error
	b.mutate(func(it *models.Itinerary) {
		if dayIndex < 0 || dayIndex >= len(it.Days) {
			err = fmt.Errorf("day index %d out of range", dayIndex)
			return
		}
		fn(&it.Days[dayIndex])
	})
	return err
}

var scalarFields = map[string]func(*models.Itinerary, string){
	"destination":   func(it *models.Itinerary, v string) { it.Destination = v },
	"duration":      func(it *models.Itinerary, v string) { it.Duration = v },
	"startDate":     func(it *models.Itinerary, v string) { it.StartDate = v; syncDays(it) },
	"endDate":       func(it *models.Itinerary, v string) { it.EndDate = v; syncDays(it) },
	"customerName":  func(it *models.Itinerary, v string) { it.CustomerName = v },
	"customerEmail": func(it *models.Itinerary, v string) { it.CustomerEmail = v },
	"customerPhone": func(it *models.Itinerary, v string) { it.CustomerPhone = v },
}

// syncDays keeps totalDays and the day sequence in lockstep with the date
// range. Runs inside the same transition as the date write, so callers
// never observe a fresh date with a stale day list.
func syncDays(it *models.Itinerary) {
	n, ok := DayCount(it.StartDate, it.EndDate)
	if !ok {
		return
	}
	it.TotalDays = n
	it.Days = RegenerateDays(n, it.StartDate)
}

// SetField sets one top-level scalar field. Setting either date while
// both are present regenerates the day sequence atomically.
func (b *Builder) SetField(field, value string) error {
	set, ok := scalarFields[field]
	if !ok {
		return fmt.Errorf("unknown itinerary field %q", field)
	}
	b.mutate(func(it *models.Itinerary) { set(it, value) })
	return nil
}

// AddActivity appends a blank activity to the day at dayIndex (position
// in the sequence, zero-based) and returns it.
func (b *Builder) AddActivity(dayIndex int) (models.Activity, error) {
	var created models.Activity
	err := b.mutateDay(dayIndex, func(day *models.Day) {
		created = models.Activity{ID: NewChildID(day.Activities)}
		day.Activities = Append(day.Activities, created)
	})
	return created, err
}

func (b *Builder) UpdateActivity(dayIndex int, id, field string, value any) error {
	return b.mutateDay(dayIndex, func(day *models.Day) {
		day.Activities = UpdateField(day.Activities, id, field, value)
	})
}

func (b *Builder) RemoveActivity(dayIndex int, id string) error {
	return b.mutateDay(dayIndex, func(day *models.Day) {
		day.Activities = RemoveByID(day.Activities, id)
	})
}

// AddTransfer appends a blank transfer (capacity 1) to the day at dayIndex.
func (b *Builder) AddTransfer(dayIndex int) (models.Transfer, error) {
	var created models.Transfer
	err := b.mutateDay(dayIndex, func(day *models.Day) {
		created = models.Transfer{ID: NewChildID(day.Transfers), Capacity: 1}
		day.Transfers = Append(day.Transfers, created)
	})
	return created, err
}

func (b *Builder) UpdateTransfer(dayIndex int, id, field string, value any) error {
	return b.mutateDay(dayIndex, func(day *models.Day) {
		day.Transfers = UpdateField(day.Transfers, id, field, value)
	})
}

func (b *Builder) RemoveTransfer(dayIndex int, id string) error {
	return b.mutateDay(dayIndex, func(day *models.Day) {
		day.Transfers = RemoveByID(day.Transfers, id)
	})
}

// AddFlight appends a blank departure-leg flight to the itinerary.
func (b *Builder) AddFlight() models.Flight {
	var created models.Flight
	b.mutate(func(it *models.Itinerary) {
		created = models.Flight{ID: NewChildID(it.Flights), Type: models.FlightDeparture}
		it.Flights = Append(it.Flights, created)
	})
	return created
}

func (b *Builder) UpdateFlight(id, field string, value any) {
	b.mutate(func(it *models.Itinerary) {
		it.Flights = UpdateField(it.Flights, id, field, value)
	})
}

func (b *Builder) RemoveFlight(id string) {
	b.mutate(func(it *models.Itinerary) {
		it.Flights = RemoveByID(it.Flights, id)
	})
}

// Step reports the current builder step.
func (b *Builder) Step() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.step
}

// NextStep advances the flow when the current step's gate passes.
func (b *Builder) NextStep() (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.step >= StepFlights {
		return b.step, errors.New("already at the last step")
	}
	if err := b.gate(); err != nil {
		return b.step, err
	}
	b.step++
	return b.step, nil
}

// PrevStep moves back one step; going before the first is a no-op.
func (b *Builder) PrevStep() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.step > StepBasicInfo {
		b.step--
	}
	return b.step
}

func (b *Builder) gate() error {
	switch b.step {
	case StepBasicInfo:
		if b.it.Destination == "" || b.it.StartDate == "" || b.it.CustomerName == "" {
			return errors.New("destination, start date and customer name are required")
		}
	case StepDays:
		for _, day := range b.it.Days {
			if len(day.Activities) == 0 {
				return fmt.Errorf("day %d has no activities", day.Day)
			}
		}
	}
	return nil
}

// Finalize recomputes the total price and returns the finished snapshot
// for handoff to the preview.
func (b *Builder) Finalize() models.Itinerary {
	b.mu.Lock()
	b.it.TotalPrice = TotalPrice(b.it)
	hook := b.onChange
	snap := b.it.Clone()
	b.mu.Unlock()
	if hook != nil {
		hook(snap)
	}
	return snap
}
