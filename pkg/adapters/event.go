package adapters

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/war-atlas/pkg/models/api"
	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/de-tools/war-atlas/pkg/models/store"
)

const DateLayout = "2006-01-02"

// ACLED exports use either ISO dates or "24 February 2022".
var eventDateLayouts = []string{
	DateLayout,
	"2 January 2006",
	"02 January 2006",
	"2006-01-02 15:04:05",
}

func ParseEventDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(24 * time.Hour), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized event date %q", s)
}

func MapStoreEventToDomain(record store.EventRecord) (domain.BattleEvent, error) {
	date, err := ParseEventDate(record.EventDate)
	if err != nil {
		return domain.BattleEvent{}, fmt.Errorf("event %s: %w", record.DataID, err)
	}
	if !record.Latitude.Valid || !record.Longitude.Valid {
		return domain.BattleEvent{}, fmt.Errorf("event %s: missing coordinates", record.DataID)
	}

	return domain.BattleEvent{
		ID:        record.DataID,
		Seq:       record.Seq,
		Date:      date,
		Type:      domain.EventType(record.EventType),
		SubType:   record.SubType.String,
		Latitude:  record.Latitude.Float64,
		Longitude: record.Longitude.Float64,
		Location:  record.Location.String,
	}, nil
}

func MapStoreEventsToDomain(records []store.EventRecord) ([]domain.BattleEvent, error) {
	events := make([]domain.BattleEvent, 0, len(records))
	for _, record := range records {
		event, err := MapStoreEventToDomain(record)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func MapStoreTypeCountsToDomain(counts []store.TypeCount) []domain.TypeCount {
	res := make([]domain.TypeCount, 0, len(counts))
	for _, c := range counts {
		res = append(res, domain.TypeCount{Type: domain.EventType(c.EventType), Count: c.Count})
	}
	return res
}

func MapEventDomainToApi(event domain.BattleEvent) api.Event {
	return api.Event{
		ID:        event.ID,
		Date:      event.Date.Format(DateLayout),
		Type:      string(event.Type),
		SubType:   event.SubType,
		Latitude:  event.Latitude,
		Longitude: event.Longitude,
		Location:  event.Location,
	}
}

func MapExplosionsDomainToApi(month time.Time, events []domain.BattleEvent, byMonth []domain.MonthCount) api.Explosions {
	res := api.Explosions{
		Events:  make([]api.Event, 0, len(events)),
		ByMonth: make([]api.MonthCount, 0, len(byMonth)),
	}
	if !month.IsZero() {
		res.Month = month.Format(MonthLayout)
	}
	for _, e := range events {
		res.Events = append(res.Events, MapEventDomainToApi(e))
	}
	for _, c := range byMonth {
		res.ByMonth = append(res.ByMonth, api.MonthCount{Month: c.Month.Format(MonthLayout), Count: c.Count})
	}
	return res
}
