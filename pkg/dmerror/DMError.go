package dmerror

import "fmt"


//=========================================== DM Errors


/*
	wrap a formatted message in the InvalidArgument category
*/

func InvalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

/*
	wrap a formatted message in the Logic category
*/

func Logic(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrLogic, fmt.Sprintf(format, args...))
}
