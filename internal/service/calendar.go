package service

import (
	"time"

	"kiosk/internal/domain"
)

const (
	isoInstantLayout = "2006-01-02T15:04:05.000Z"
	dayLabelLayout   = "02/01"
	localDateLayout  = "02/01/2006"
)

type AvailabilityCalendarImpl struct {
	location *time.Location
	horizon  int
	now      func() time.Time
}

func NewAvailabilityCalendar(location *time.Location, horizon int, now func() time.Time) *AvailabilityCalendarImpl {
	if location == nil {
		location = time.UTC
	}
	return &AvailabilityCalendarImpl{
		location: location,
		horizon:  horizon,
		now:      now,
	}
}

// ListDays enumerates horizon consecutive days starting at the day of from.
// Each day is anchored at local midnight so repeated calls on the same day agree.
func (c *AvailabilityCalendarImpl) ListDays(specialist domain.Specialist, horizon int, from time.Time) []domain.CalendarDay {
	if horizon <= 0 {
		return nil
	}

	start := StartOfDay(from.In(c.location))
	days := make([]domain.CalendarDay, 0, horizon)
	for i := 0; i < horizon; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, domain.CalendarDay{
			Date:      d.UTC().Format(isoInstantLayout),
			Label:     d.Format(dayLabelLayout),
			Weekday:   int(d.Weekday()),
			DayName:   domain.WeekdayAbbreviation(d.Weekday()),
			Available: specialist.AvailableOn(d.Weekday()),
		})
	}
	return days
}

// Upcoming lists the configured horizon starting today.
func (c *AvailabilityCalendarImpl) Upcoming(specialist domain.Specialist) []domain.CalendarDay {
	return c.ListDays(specialist, c.horizon, c.now())
}

func (c *AvailabilityCalendarImpl) ListHours(specialist domain.Specialist) []string {
	return append([]string(nil), specialist.AvailableHours...)
}

// IsBookable reports whether date is one of the available days currently offered.
func (c *AvailabilityCalendarImpl) IsBookable(specialist domain.Specialist, date string) bool {
	for _, d := range c.Upcoming(specialist) {
		if d.Date == date {
			return d.Available
		}
	}
	return false
}

// Localize renders an ISO instant as DD/MM/YYYY in the kiosk timezone. Input
// that does not parse is returned as is.
func (c *AvailabilityCalendarImpl) Localize(isoInstant string) string {
	t, err := time.Parse(time.RFC3339Nano, isoInstant)
	if err != nil {
		return isoInstant
	}
	return t.In(c.location).Format(localDateLayout)
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
