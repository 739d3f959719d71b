package services

import (
	"fmt"
	"time"

	"birdiebook/domain/entities"
)

// SeasonService computes season windows and progress. All functions take
// explicit reference times so callers (and tests) control the clock.
type SeasonService struct{}

// NewSeasonService creates a new SeasonService
func NewSeasonService() *SeasonService {
	return &SeasonService{}
}

// GetSeasonDates computes the date window and display name for a period
// type anchored at a reference date. Month ends are calendar-correct,
// including leap-year February. The custom period returns the
// monthly-equivalent window with a fixed placeholder name; callers
// creating a real custom season supply explicit dates and name instead.
func (s *SeasonService) GetSeasonDates(period entities.SeasonPeriod, reference time.Time) entities.SeasonDates {
	year := reference.Year()
	loc := reference.Location()

	switch period {
	case entities.SeasonPeriodQuarterly:
		quarter := (int(reference.Month()) - 1) / 3
		startMonth := time.Month(quarter*3 + 1)
		return entities.SeasonDates{
			Start: time.Date(year, startMonth, 1, 0, 0, 0, 0, loc),
			End:   endOfMonth(year, startMonth+2, loc),
			Name:  fmt.Sprintf("Q%d %d", quarter+1, year),
		}
	case entities.SeasonPeriodYearly:
		return entities.SeasonDates{
			Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
			End:   endOfMonth(year, time.December, loc),
			Name:  fmt.Sprintf("%d", year),
		}
	case entities.SeasonPeriodCustom:
		dates := s.GetSeasonDates(entities.SeasonPeriodMonthly, reference)
		dates.Name = "Custom Season"
		return dates
	default: // monthly
		return entities.SeasonDates{
			Start: time.Date(year, reference.Month(), 1, 0, 0, 0, 0, loc),
			End:   endOfMonth(year, reference.Month(), loc),
			Name:  fmt.Sprintf("%s %d", reference.Month(), year),
		}
	}
}

// IsSeasonActive returns true if the season is marked active and now
// falls within its window, inclusive on both ends.
func (s *SeasonService) IsSeasonActive(season *entities.Season, now time.Time) bool {
	return season.Status == entities.SeasonStatusActive && season.Contains(now)
}

// GetSeasonProgress returns how far through its window the season is, as
// a percentage clamped to [0, 100]: 0 before the start, 100 after the
// end, linear in between.
func (s *SeasonService) GetSeasonProgress(season *entities.Season, now time.Time) float64 {
	total := season.EndDate.Sub(season.StartDate)
	if total <= 0 {
		return 100
	}
	elapsed := now.Sub(season.StartDate)
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= total:
		return 100
	}
	return float64(elapsed) / float64(total) * 100
}

// endOfMonth returns the last instant of the month's final day.
// time.Date normalizes day 0 of month m+1 to the last day of m.
func endOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month+1, 0, 23, 59, 59, 0, loc)
}
