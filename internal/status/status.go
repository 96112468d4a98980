// Package status maps HTTP status codes to human-readable text.
package status

import "net/http"

// UnknownDescription is returned for codes outside the registered set.
// An unknown code is not an error, just an unnamed one.
const UnknownDescription = "Unknown Status Code"

// Describe returns the registered reason phrase for code, e.g.
// 503 -> "Service Unavailable". Unregistered codes get UnknownDescription.
func Describe(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return UnknownDescription
}

// Known reports whether code has a registered reason phrase.
func Known(code int) bool {
	return http.StatusText(code) != ""
}

// Family buckets a status code by its hundred range.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyInformational
	FamilySuccess
	FamilyRedirection
	FamilyClientError
	FamilyServerError
)

func (f Family) String() string {
	switch f {
	case FamilyInformational:
		return "informational"
	case FamilySuccess:
		return "success"
	case FamilyRedirection:
		return "redirection"
	case FamilyClientError:
		return "client error"
	case FamilyServerError:
		return "server error"
	default:
		return "unknown"
	}
}

// FamilyOf classifies code by range. Codes outside 100..599 are unknown.
func FamilyOf(code int) Family {
	switch {
	case code >= 100 && code < 200:
		return FamilyInformational
	case code >= 200 && code < 300:
		return FamilySuccess
	case code >= 300 && code < 400:
		return FamilyRedirection
	case code >= 400 && code < 500:
		return FamilyClientError
	case code >= 500 && code < 600:
		return FamilyServerError
	default:
		return FamilyUnknown
	}
}
