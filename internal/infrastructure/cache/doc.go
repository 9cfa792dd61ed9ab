// Package cache provides the idempotency key stores used by the sale
// endpoint: a process-local map, a bbolt file that survives restarts of a
// single instance, and Redis for deployments running more than one instance.
package cache
