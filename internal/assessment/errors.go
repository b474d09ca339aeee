package assessment

import "errors"

// ErrInvalidInput is returned for ratings outside the scale, answers for
// unknown questions and incomplete profiles.
var ErrInvalidInput = errors.New("invalid input")
