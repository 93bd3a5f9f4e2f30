package util

import "github.com/microcosm-cc/bluemonday"

// Chat messages and journal notes are plain text; strip all markup.
var sanitizer = bluemonday.StrictPolicy()

func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
