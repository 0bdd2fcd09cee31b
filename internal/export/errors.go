package export

import "errors"

// ErrClosed is returned when a document has already been written.
var ErrClosed = errors.New("export: document already written")
