// Package directory defines the user and post record shapes served by the
// remote directory API and the HTTP client that fetches them.
//
// The client issues plain GET requests and decodes JSON array responses. There
// are no retries and no caching; each logical load is exactly one request, and
// any transport failure or non-2xx status surfaces as an error carrying a
// human-readable reason.
package directory
