package types

import "errors"

var (
	ErrInvalidConfig         = errors.New("invalid configuration")
	ErrIdentityUnavailable   = errors.New("unable to verify AWS identity")
	ErrRegionListUnavailable = errors.New("unable to enumerate AWS regions")
	ErrAborted               = errors.New("aborted by operator, no changes were made")
	ErrPartialFailure        = errors.New("one or more operations failed, see the log for details")
)
