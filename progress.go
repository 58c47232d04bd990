package pydocs

// Progress reports progress while the sub-pages of a mode are processed.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is called once per sub-page as results arrive. Calls are
// made from a single goroutine even when fetches run concurrently.
type ProgressFunc func(Progress)
