package dmerror

import "errors"
import "fmt"


/*
	the two error categories surfaced by the durability monitor:
		--> InvalidArgument: bad input from the caller, state is untouched
		--> Logic: a broken invariant, treated as fatal by callers
*/

var ErrInvalidArgument = errors.New("invalid argument")
var ErrLogic = errors.New("logic error")

var ErrDuplicateAck = fmt.Errorf("%w: duplicate ack", ErrLogic)
var ErrMonotonicViolation = fmt.Errorf("%w: monotonic violation", ErrLogic)
var ErrCommitFailed = fmt.Errorf("%w: commit hook failed", ErrLogic)
var ErrAbortFailed = fmt.Errorf("%w: abort hook failed", ErrLogic)
