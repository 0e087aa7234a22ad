// Package scheduling_tools provides MCP (Model Context Protocol) tools for
// finding meeting slots across Google Calendars.
//
// This package exposes free/busy queries, holiday lookups, and a ranked slot
// search through a standardized MCP interface, allowing AI assistants to
// propose meeting times that respect business hours, weekends, holidays, and
// existing commitments.
//
// The tools support multi-account authentication; the slot search always
// includes the authenticated account's primary calendar and can add further
// attendees by email address.
package scheduling_tools
