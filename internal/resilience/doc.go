// Package resilience provides reliability and fault tolerance patterns for the application.
//
// The package supports:
//   - Circuit breakers per upstream widget API host and for the database
//   - Retry logic with exponential backoff and jitter for the cache store
//
// Upstream providers are never retried: a failed call moves the fetch
// orchestrator on to the next provider, and the breaker only decides whether
// a call is attempted at all.
//
// Usage Example:
//
//	breakers := circuitbreaker.NewRegistry(nil)
//	result, err := breakers.Get("api.open-meteo.com").Execute(func() (interface{}, error) {
//	    return callExternalService()
//	})
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return performOperation()
//	})
package resilience
