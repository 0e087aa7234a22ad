// Package server provides the MCP server context, health checks, and the
// dedicated metrics server for the meetslots application.
//
// # Key Components
//
// ServerContext manages Google Calendar clients with lazy initialization and
// caching. It supports multiple accounts backed by file-based OAuth tokens.
//
// HealthChecker exposes Kubernetes-style liveness and readiness probes
// (/healthz, /readyz, /healthz/detailed).
//
// MetricsServer serves Prometheus metrics on a dedicated port, isolating
// operational metrics from the MCP transport.
package server
