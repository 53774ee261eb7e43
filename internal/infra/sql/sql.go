package sql

import (
	"context"
	"errors"
)

var ErrNotConnected = errors.New("database not connected")

type Database interface {
	Open(context.Context) error
	Close()
	Ping(context.Context) error
	Command(context.Context, string) error
}
