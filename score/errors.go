package score

import "errors"

// ErrMalformed covers every case where the source document could not
// be turned into a usable part/measure structure. It is fatal for the
// whole operation, unlike per-element conversion failures which are
// skipped where they occur.
var ErrMalformed = errors.New("malformed score")
