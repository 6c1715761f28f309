package matches

import "errors"

var ErrNotFound = errors.New("not found")
