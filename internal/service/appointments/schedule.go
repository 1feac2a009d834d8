package appointments

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

type WindowInput struct {
	DayOfWeek int
	Start     string
	End       string
}

type Schedule struct {
	Windows    []domain.RecurringWindow
	ClosedDays []int16
}

// ReplaceWindows swaps the provider's weekly windows for the given set. Replaying the same
// set is a no-op in effect.
func (s *Service) ReplaceWindows(ctx context.Context, providerID uuid.UUID, in []WindowInput) (out []domain.RecurringWindow, err error) {
	ctx, span := s.startSpan(ctx, "ReplaceWindows", providerID)
	defer func() { endSpan(span, err) }()

	if providerID == uuid.Nil {
		return nil, validationError("provider_id is required")
	}
	windows, err := parseWindows(in)
	if err != nil {
		return nil, err
	}

	err = s.repo.InProviderTransaction(ctx, providerID, func(ctx context.Context, tx store.ScheduleTx) error {
		if _, err := tx.GetProvider(ctx, providerID); err != nil {
			return providerLookup(err)
		}
		rows, err := tx.ReplaceWindows(ctx, providerID, windows)
		if err != nil {
			return err
		}
		out = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parseWindows(in []WindowInput) ([]domain.RecurringWindow, error) {
	seen := make(map[int]struct{}, len(in))
	out := make([]domain.RecurringWindow, 0, len(in))
	for _, w := range in {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return nil, windowError("day_of_week must be between 0 and 6")
		}
		if _, dup := seen[w.DayOfWeek]; dup {
			return nil, windowError(fmt.Sprintf("day_of_week %d appears more than once", w.DayOfWeek))
		}
		seen[w.DayOfWeek] = struct{}{}

		start, err := domain.ParseClock(w.Start)
		if err != nil {
			return nil, windowError("start must be HH:MM")
		}
		end, err := domain.ParseClock(w.End)
		if err != nil {
			return nil, windowError("end must be HH:MM")
		}
		if start >= end {
			return nil, windowError("start must be before end")
		}

		out = append(out, domain.RecurringWindow{
			DayOfWeek:   int16(w.DayOfWeek),
			StartMinute: start,
			EndMinute:   end,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out, nil
}

func (s *Service) GetSchedule(ctx context.Context, providerID uuid.UUID) (out Schedule, err error) {
	ctx, span := s.startSpan(ctx, "GetSchedule", providerID)
	defer func() { endSpan(span, err) }()

	if providerID == uuid.Nil {
		return Schedule{}, validationError("provider_id is required")
	}

	err = s.repo.View(ctx, func(ctx context.Context, tx store.ScheduleTx) error {
		if _, err := tx.GetProvider(ctx, providerID); err != nil {
			return providerLookup(err)
		}
		windows, err := tx.ListWindows(ctx, providerID)
		if err != nil {
			return err
		}
		closed, err := tx.ListClosedDays(ctx, providerID)
		if err != nil {
			return err
		}
		out = Schedule{Windows: windows, ClosedDays: closedWeekdays(closed)}
		return nil
	})
	if err != nil {
		return Schedule{}, err
	}
	return out, nil
}

// ToggleClosedDay flips dayOfWeek in the provider's closed set and returns the updated set
// in ascending order.
func (s *Service) ToggleClosedDay(ctx context.Context, providerID uuid.UUID, dayOfWeek int) (out []int16, err error) {
	ctx, span := s.startSpan(ctx, "ToggleClosedDay", providerID)
	defer func() { endSpan(span, err) }()

	if providerID == uuid.Nil {
		return nil, validationError("provider_id is required")
	}
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, validationError("day_of_week must be between 0 and 6")
	}

	err = s.repo.InProviderTransaction(ctx, providerID, func(ctx context.Context, tx store.ScheduleTx) error {
		if _, err := tx.GetProvider(ctx, providerID); err != nil {
			return providerLookup(err)
		}
		if _, err := tx.ToggleClosedDay(ctx, providerID, int16(dayOfWeek)); err != nil {
			return err
		}
		closed, err := tx.ListClosedDays(ctx, providerID)
		if err != nil {
			return err
		}
		out = closedWeekdays(closed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func closedWeekdays(rows []domain.ClosedDay) []int16 {
	out := make([]int16, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.DayOfWeek)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type AddBlockedSlotInput struct {
	ProviderID uuid.UUID
	// Date is read as a calendar date; its clock part is ignored.
	Date   time.Time
	Hour   int
	Reason string
}

func (s *Service) AddBlockedSlot(ctx context.Context, in AddBlockedSlotInput) (out domain.BlockedSlot, err error) {
	ctx, span := s.startSpan(ctx, "AddBlockedSlot", in.ProviderID)
	defer func() { endSpan(span, err) }()

	if in.ProviderID == uuid.Nil {
		return domain.BlockedSlot{}, validationError("provider_id is required")
	}
	if in.Date.IsZero() {
		return domain.BlockedSlot{}, validationError("date is required")
	}
	if in.Hour < 0 || in.Hour > 23 {
		return domain.BlockedSlot{}, validationError("hour must be between 0 and 23")
	}
	reason := strings.TrimSpace(in.Reason)
	if len([]rune(reason)) > maxReasonLen {
		return domain.BlockedSlot{}, validationError("reason too long")
	}

	err = s.repo.InProviderTransaction(ctx, in.ProviderID, func(ctx context.Context, tx store.ScheduleTx) error {
		if _, err := tx.GetProvider(ctx, in.ProviderID); err != nil {
			return providerLookup(err)
		}
		b, err := tx.CreateBlockedSlot(ctx, domain.BlockedSlot{
			ProviderID: in.ProviderID,
			Date:       domain.CivilDate(in.Date),
			Hour:       int16(in.Hour),
			Reason:     reason,
		})
		if err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return domain.BlockedSlot{}, err
	}
	return out, nil
}

func (s *Service) RemoveBlockedSlot(ctx context.Context, providerID, blockedSlotID uuid.UUID) (err error) {
	ctx, span := s.startSpan(ctx, "RemoveBlockedSlot", providerID)
	defer func() { endSpan(span, err) }()

	if providerID == uuid.Nil {
		return validationError("provider_id is required")
	}
	if blockedSlotID == uuid.Nil {
		return validationError("blocked_slot_id is required")
	}

	return s.repo.InProviderTransaction(ctx, providerID, func(ctx context.Context, tx store.ScheduleTx) error {
		err := tx.DeleteBlockedSlot(ctx, providerID, blockedSlotID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrBlockedSlotNotFound
		}
		return err
	})
}

func (s *Service) ListBlockedSlots(ctx context.Context, providerID uuid.UUID, from, to time.Time) (out []domain.BlockedSlot, err error) {
	ctx, span := s.startSpan(ctx, "ListBlockedSlots", providerID)
	defer func() { endSpan(span, err) }()

	if providerID == uuid.Nil {
		return nil, validationError("provider_id is required")
	}
	from, to, err = s.dateRange(from, to)
	if err != nil {
		return nil, err
	}

	err = s.repo.View(ctx, func(ctx context.Context, tx store.ScheduleTx) error {
		if _, err := tx.GetProvider(ctx, providerID); err != nil {
			return providerLookup(err)
		}
		rows, err := tx.ListBlockedSlots(ctx, providerID, from, to)
		if err != nil {
			return err
		}
		out = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// dateRange normalizes [from, to] to civil dates and enforces the configured span.
func (s *Service) dateRange(from, to time.Time) (time.Time, time.Time, error) {
	if from.IsZero() || to.IsZero() {
		return time.Time{}, time.Time{}, validationError("from and to are required")
	}
	from = domain.CivilDate(from)
	to = domain.CivilDate(to)
	if to.Before(from) {
		return time.Time{}, time.Time{}, validationError("to must not be before from")
	}
	if days := int(to.Sub(from)/(24*time.Hour)) + 1; days > s.maxRangeDays {
		return time.Time{}, time.Time{}, validationError(fmt.Sprintf("date range exceeds %d days", s.maxRangeDays))
	}
	return from, to, nil
}
