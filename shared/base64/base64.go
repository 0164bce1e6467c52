package base64

import "strings"

const base64Marker = ";base64,"

// GetContentType extracts the media type from a base64 data URI such as
// "data:image/png;base64,...". It returns an empty string when the payload
// has no ";base64," marker.
func GetContentType(payload string) string {
	start := len("data:")
	end := strings.Index(payload, base64Marker)

	if end == -1 || end < start {
		return ""
	}

	return payload[start:end]
}

// GetPayload returns the base64-encoded body of a data URI, the part after
// the ";base64," marker, or an empty string when the marker is absent.
func GetPayload(payload string) string {
	idx := strings.Index(payload, base64Marker)
	if idx == -1 {
		return ""
	}

	return payload[idx+len(base64Marker):]
}
