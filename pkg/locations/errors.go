package locations

import "errors"

var (
	// ErrLoadFailed wraps failures reading or parsing a location source.
	ErrLoadFailed = errors.New("locations: failed to load locations")
	// ErrNoLocations indicates a source that parsed cleanly but is empty.
	ErrNoLocations = errors.New("locations: source contains no locations")
)
