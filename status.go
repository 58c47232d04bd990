package pydocs

import "unicode/utf8"

// ExpectedStatus maps the one-letter status prefix shown in the PEP index
// to the statuses a PEP page may carry. The empty key covers PEPs listed
// without a prefix. It must not be modified.
var ExpectedStatus = map[string][]string{
	"A": {"Active", "Accepted"},
	"D": {"Deferred"},
	"F": {"Final"},
	"P": {"Provisional"},
	"R": {"Rejected"},
	"S": {"Superseded"},
	"W": {"Withdrawn"},
	"":  {"Draft", "Active"},
}

// StatusPrefix returns the table key for a status label: its first letter,
// or "" for an empty label.
func StatusPrefix(status string) string {
	if status == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(status)
	if r == utf8.RuneError {
		return ""
	}
	return status[:size]
}

// CheckStatus looks up the statuses expected for the prefix of status and
// reports whether status is one of them. Unknown prefixes expect nothing, so
// they never match.
func CheckStatus(status string) (expected []string, ok bool) {
	return MatchStatus(StatusPrefix(status), status)
}

// MatchStatus reports whether status is among the statuses expected for
// prefix, returning the expected set either way.
func MatchStatus(prefix, status string) (expected []string, ok bool) {
	expected = ExpectedStatus[prefix]
	for _, s := range expected {
		if s == status {
			return expected, true
		}
	}
	return expected, false
}
