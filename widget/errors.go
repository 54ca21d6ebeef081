package widget

import "errors"

var (
	// ErrCheckPending is returned by Add while the name check is in flight.
	ErrCheckPending = errors.New("widget: name validation still pending")
	// ErrNameRequired is returned by Add when the name is empty.
	ErrNameRequired = errors.New("widget: name is required")
	// ErrNameInvalid is returned by Add when the name failed validation.
	ErrNameInvalid = errors.New("widget: name is not valid")
	// ErrLocationRequired is returned by Add when no location is selected.
	ErrLocationRequired = errors.New("widget: location is required")
	// ErrUnknownLocation is returned for location codes not in the options.
	ErrUnknownLocation = errors.New("widget: unknown location code")
)
