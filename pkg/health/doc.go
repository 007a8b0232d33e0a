// Package health serves liveness and readiness probes.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"templates": catalog.Check,
//	}, health.WithLogger(log)))
//
// Probes answer plain text ("OK" or "Service Unavailable"). Clients asking for
// application/json, or passing ?format=json, get the full Report.
package health
