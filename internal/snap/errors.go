package snap

import "errors"

// ErrNoOperator is returned by Driver.Run when no Operator was configured.
var ErrNoOperator = errors.New("snap: driver has no operator")
