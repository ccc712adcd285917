package thumbhash

import "errors"

var (
	// ErrInvalidInputSize is returned by Encode when the RGBA buffer
	// length does not match width*height*4.
	ErrInvalidInputSize = errors.New("thumbhash: rgba buffer does not match dimensions")

	// ErrMalformedHash is returned by Decode when the hash is shorter
	// than its header requires.
	ErrMalformedHash = errors.New("thumbhash: malformed hash")
)
