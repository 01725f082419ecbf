package base64

import "strings"

// GetContentType extracts the media type from a data URI, so
// "data:image/png;base64,..." yields "image/png". Returns an empty
// string when the input is not a base64 data URI.
func GetContentType(file string) string {
	rest, ok := strings.CutPrefix(file, "data:")
	if !ok {
		return ""
	}

	contentType, _, found := strings.Cut(rest, ";base64,")
	if !found {
		return ""
	}

	return contentType
}
