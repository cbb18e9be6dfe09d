// Package rest implements driven.SchedulingAPI over the scheduling
// service's JSON/HTTP endpoints.
//
// Every request carries an X-Request-ID header and passes through a
// client-side token bucket. An optional bearer token is attached through
// an oauth2 transport.
package rest
