package instance

import "github.com/pkg/errors"

var (
	// ErrFormat indicates a problem file that cannot be decoded.
	ErrFormat = errors.New("instance: malformed problem file")
	// ErrUnknownExample indicates a lookup of an example that does not exist.
	ErrUnknownExample = errors.New("instance: unknown example")
)
