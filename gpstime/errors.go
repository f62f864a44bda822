package gpstime

import "errors"

// ErrTimeFormat reports a GPS timestamp that cannot be interpreted.
var ErrTimeFormat = errors.New("invalid GPS timestamp")
