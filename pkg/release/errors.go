package release

import "errors"

// ErrInvalidMediaType is returned by ParseMediaType for anything other than
// "movie", "episode" or an empty string.
var ErrInvalidMediaType = errors.New("invalid media type")
