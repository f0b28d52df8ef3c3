package markup

import "strings"

// QuoteEscape replaces double quotes with &quot; so a markup blob can sit
// inside a double-quoted attribute or a hidden text node without terminating
// it early. No other characters are touched.
func QuoteEscape(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}

// SrcdocEscape prepares a document for an iframe srcdoc attribute: double
// quotes become &quot; and every line break collapses to a single space.
// CRLF pairs collapse to one space, not two.
func SrcdocEscape(s string) string {
	s = QuoteEscape(s)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
