package tui

import "errors"

// ErrMissingSession is returned when a picker is started without a session.
var ErrMissingSession = errors.New("tui: session is required")

// ErrUnexpectedModel is returned when the program ends with a foreign model.
var ErrUnexpectedModel = errors.New("tui: unexpected final model")
