package engine

import (
	"errors"

	"war/metrics"
)

var (
	ErrInvalidCount   = errors.New("invalid number of territories")
	ErrMalformedInput = errors.New("malformed input")
	ErrInputClosed    = errors.New("input closed before setup finished")
)

type Engine interface {
	// Run plays a session until the player quits or input ends
	Run() (sessionMetric metrics.SessionMetric, err error)
}

var _ Engine = (*Session)(nil)
