package fx

import "errors"

// ErrInvalidParameter is returned by constructors when an argument violates
// a precondition: a negative standard deviation, a non-positive morphology
// radius, a malformed color matrix or a missing required region.
// Constructors wrap it with context; test with errors.Is.
var ErrInvalidParameter = errors.New("fx: invalid parameter")
