package dispatch

const (
	defaultErrorURLParam = "id"
	// Cap for the default in memory store of error contexts.
	defaultErrorContextMaxSize = 1000
)
