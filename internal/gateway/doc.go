// Package gateway is the single HTTP entry point to the moneytracker backend.
//
// Every call builds baseURL+path, sends JSON with an optional bearer token,
// reads the whole response as text and classifies it as a Payload. Non-2xx
// responses become *RequestError. The gateway never retries.
package gateway
