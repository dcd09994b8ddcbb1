// Package resilience provides retry with exponential backoff for calls to
// RIC platform services. Watch and subscription streams use it to survive
// transient connection failures.
package resilience
