// Package pydocs scrapes the Python documentation site and the PEP index
// and turns what it finds into small result tables: release notes, the
// version/status list, PEP status counts, and the documentation archive.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, lipgloss/).
package pydocs

// Default locations scraped when no override is configured.
const (
	DefaultDocsURL = "https://docs.python.org/3/"
	DefaultPEPsURL = "https://peps.python.org/"
)

// Scrape modes.
const (
	ModeWhatsNew       = "whats-new"
	ModeLatestVersions = "latest-versions"
	ModeDownload       = "download"
	ModePEP            = "pep"
)

// Modes lists every supported scrape mode in the order shown to users.
var Modes = []string{ModeWhatsNew, ModeLatestVersions, ModeDownload, ModePEP}

// ValidMode reports whether mode names a supported scrape mode.
func ValidMode(mode string) bool {
	for _, m := range Modes {
		if m == mode {
			return true
		}
	}
	return false
}
