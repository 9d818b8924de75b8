package inquirer

import "regexp"

// senseSuffix matches a trailing "#<digits>" numbered-sense marker,
// e.g. the "#2" in "about#2".
var senseSuffix = regexp.MustCompile(`#[0-9]+$`)

// StripSense removes a trailing numbered-sense suffix from a headword.
// Headwords without a suffix are returned unchanged.
func StripSense(head string) string {
	return senseSuffix.ReplaceAllString(head, "")
}
