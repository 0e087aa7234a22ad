package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/teemow/meetslots/internal/server"
)

// RegisterUserResources registers session-specific user resources
// These resources provide information about the current authenticated user
func RegisterUserResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Register primary calendar resource
	primaryResource := mcp.NewResource(
		"user://calendar/primary",
		"Primary Calendar",
		mcp.WithResourceDescription("The primary calendar of the currently authenticated Google account"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(primaryResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handlePrimaryCalendar(ctx, request, sc)
	})

	// Register calendar list resource
	calendarsResource := mcp.NewResource(
		"user://calendar/list",
		"Calendar List",
		mcp.WithResourceDescription("All calendars visible to the currently authenticated Google account"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(calendarsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleCalendarList(ctx, request, sc)
	})

	return nil
}

// handlePrimaryCalendar returns the authenticated account's primary calendar
func handlePrimaryCalendar(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	client := sc.CalendarClient()
	if client == nil {
		return nil, fmt.Errorf("no calendar client available for account: default")
	}

	primary, err := client.GetPrimaryCalendar()
	if err != nil {
		return nil, fmt.Errorf("failed to get primary calendar: %w", err)
	}

	calendarData := map[string]interface{}{
		"account":     client.Account(),
		"id":          primary.ID,
		"summary":     primary.Summary,
		"timeZone":    primary.TimeZone,
		"description": "Primary calendar used for availability searches",
	}

	jsonData, err := json.MarshalIndent(calendarData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal calendar data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleCalendarList returns all calendars visible to the authenticated account
func handleCalendarList(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	client := sc.CalendarClient()
	if client == nil {
		return nil, fmt.Errorf("no calendar client available for account: default")
	}

	calendars, err := client.ListCalendars()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	listData := map[string]interface{}{
		"account":   client.Account(),
		"count":     len(calendars),
		"calendars": calendars,
	}

	jsonData, err := json.MarshalIndent(listData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal calendar list: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
