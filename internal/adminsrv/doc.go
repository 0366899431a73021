// Package adminsrv is the per-part admin HTTP surface: health and
// readiness probes, a Prometheus /metrics endpoint, and read-only windows
// onto the most recent ghost plan and snap report.
package adminsrv
