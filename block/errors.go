package block

import "errors"

var (
	// ErrClosed is returned by operations on a closed block.
	ErrClosed = errors.New("block: closed")

	// ErrAlreadyMounted is returned when Mount is called twice.
	ErrAlreadyMounted = errors.New("block: already mounted")

	// ErrNotSettled is returned when rendering a block whose layout has
	// not completed.
	ErrNotSettled = errors.New("block: layout not settled")
)
