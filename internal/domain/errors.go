package domain

import "errors"

// Domain errors.
var (
	// ErrSourceLocaleUnreadable aborts the whole run: without a readable
	// source catalog there is no schema to compare targets against.
	ErrSourceLocaleUnreadable = errors.New("source locale catalog could not be loaded")
)
