package lpcr

import "net/http"

// Fixed header constants carried on every request. Content-Length is never
// set here; the transport computes it from the encoded body.
const (
	userAgent    = "PostmanRuntime/7.49.0"
	postmanToken = "fe217bfb-e71c-4e46-8cf2-3a2a80a4da6e"
	requestType  = "SOFT"
)

// BuildPayload wraps one applicant in a complete request body. The applicants
// list always has exactly one element; the settings block is shared by value
// and never mutated per applicant.
func BuildPayload(applicant Applicant, bureau string, settings FixedSettings) RequestPayload {
	return RequestPayload{
		Bureau:     bureau,
		Type:       requestType,
		Settings:   settings,
		Applicants: []Applicant{applicant},
	}
}

// BuildHeaders assembles the fixed header enumeration plus the resolved
// bearer token and Host header.
func BuildHeaders(token, host string) http.Header {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+token)
	headers.Set("User-Agent", userAgent)
	headers.Set("Accept", "*/*")
	headers.Set("Cache-Control", "no-cache")
	headers.Set("Postman-Token", postmanToken)
	headers.Set("Host", host)
	headers.Set("Accept-Encoding", "gzip, deflate, br")
	headers.Set("Connection", "keep-alive")
	return headers
}
