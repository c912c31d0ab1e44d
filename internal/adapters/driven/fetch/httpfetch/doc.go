// Package httpfetch implements driven.Fetcher over net/http.
//
// Any non-2xx response is a transport failure. Network errors, 5xx and
// 429 responses are retried up to the configured count, paced by a
// token bucket that also honours Retry-After.
package httpfetch
