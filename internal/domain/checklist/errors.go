package checklist

import "errors"

var (
	ErrNoActiveConfig = errors.New("no active checklist configuration")
)
