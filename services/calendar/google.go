package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinicdesk/config"
	"clinicdesk/models"
	"clinicdesk/utils"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleClient implements Client against the Google Calendar API using a
// service account. One authenticated client is created for the process and
// reused read-only afterwards.
type GoogleClient struct {
	svc  *gcal.Service
	gate *gate
}

var (
	googleClient *GoogleClient
	googleOnce   sync.Once
	googleErr    error
)

// GetGoogleClient returns the process-wide calendar client, initializing it
// on first use from the configured credentials file.
func GetGoogleClient() (*GoogleClient, error) {
	googleOnce.Do(func() {
		googleClient, googleErr = NewGoogleClient(
			config.AppConfig.CalendarCredentialsFile,
			config.AppConfig.CalendarMaxInFlight,
		)
		utils.SetCalendarHealth(googleErr == nil)
	})
	return googleClient, googleErr
}

// NewGoogleClient builds a calendar client from a service-account
// credentials file.
func NewGoogleClient(credentialsFile string, maxInFlight int) (*GoogleClient, error) {
	logger := utils.GetLogger()

	ctx := context.Background()
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		logger.Error("failed to initialize Google Calendar service", zap.Error(err))
		return nil, fmt.Errorf("calendar service init: %w", err)
	}

	logger.Info("Google Calendar service initialized",
		zap.String("credentialsFile", credentialsFile),
		zap.Int("maxInFlight", maxInFlight))
	return &GoogleClient{svc: svc, gate: newGate(maxInFlight)}, nil
}

func (c *GoogleClient) FreeBusy(ctx context.Context, calendarID string, startUTC, endUTC time.Time) ([]models.BusyInterval, error) {
	if err := c.gate.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.gate.release()

	req := &gcal.FreeBusyRequest{
		TimeMin:  startUTC.UTC().Format(time.RFC3339),
		TimeMax:  endUTC.UTC().Format(time.RFC3339),
		TimeZone: "UTC",
		Items:    []*gcal.FreeBusyRequestItem{{Id: calendarID}},
	}

	resp, err := c.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query for %s: %w", calendarID, err)
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, nil
	}

	logger := utils.GetLogger()
	var busy []models.BusyInterval
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			logger.Warn("skipping unparsable busy period start",
				zap.String("value", period.Start), zap.Error(err))
			continue
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			logger.Warn("skipping unparsable busy period end",
				zap.String("value", period.End), zap.Error(err))
			continue
		}
		busy = append(busy, models.BusyInterval{Start: start.UTC(), End: end.UTC()})
	}
	return busy, nil
}

func (c *GoogleClient) InsertEvent(ctx context.Context, calendarID string, event Event) (*EventResult, error) {
	if err := c.gate.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.gate.release()

	ev := &gcal.Event{
		Summary:     event.Title,
		Description: event.Description,
		Start: &gcal.EventDateTime{
			DateTime: event.StartUTC.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: event.EndUTC.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
	}

	created, err := c.svc.Events.Insert(calendarID, ev).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("event insert on %s: %w", calendarID, err)
	}
	return &EventResult{EventID: created.Id, EventLink: created.HtmlLink}, nil
}
