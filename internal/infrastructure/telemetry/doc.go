// Package telemetry wires OpenTelemetry traces, metrics and logs plus
// Pyroscope continuous profiling. Every provider degrades to a no-op when
// its feature is disabled so callers never branch on configuration.
package telemetry
