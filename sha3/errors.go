package sha3

import "github.com/pkg/errors"

// The sponge's fallible operations surface exactly three kinds of error,
// matching the state machine's own small vocabulary: the instance is in the
// wrong mode, the caller's buffer is too small, or the request itself is
// nonsensical. Every error returned by this package wraps one of these with
// errors.Wrap/Wrapf so callers can recover the sentinel with errors.Is or
// errors.Cause.
var (
	// ErrStateViolation is returned when update/finalize is called while not
	// Absorbing, or GetBits/the byte iterator is pulled while not Squeezing.
	// The instance is unusable afterwards.
	ErrStateViolation = errors.New("sha3: operation invalid in current sponge state")

	// ErrBufferTooSmall is returned by a fixed-output Finalize when the
	// destination buffer cannot hold the digest. The caller may retry with a
	// larger buffer; no state has been mutated.
	ErrBufferTooSmall = errors.New("sha3: output buffer too small for digest")

	// ErrInvalidArgument is returned for a nonsensical bit request, such as a
	// negative bit count.
	ErrInvalidArgument = errors.New("sha3: invalid argument")
)
