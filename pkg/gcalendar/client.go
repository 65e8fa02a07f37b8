package gcalendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a
// Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}
