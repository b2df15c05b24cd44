// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package logger provides the leveled logger used by the command line tools.
package logger

import (
	"fmt"
	"io"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/openlogs/infra/pkg/errors"
)

// Logger specifies logging API.
type Logger interface {
	// Debug logs any object in JSON format on debug level.
	Debug(string)
	// Info logs any object in JSON format on info level.
	Info(string)
	// Warn logs any object in JSON format on warning level.
	Warn(string)
	// Error logs any object in JSON format on error level.
	Error(string)
	// Err logs err on error level together with its kind. The error is
	// rendered from its detached copy.
	Err(string, error)
	// Fatal logs any object in JSON format on any level and calls os.Exit(1).
	Fatal(string)
}

var _ Logger = (*logger)(nil)

type logger struct {
	kitLogger kitlog.Logger
	level     Level
}

// New returns wrapped go kit logger writing JSON lines.
func New(out io.Writer, levelText string) (Logger, error) {
	return newLogger(kitlog.NewJSONLogger(kitlog.NewSyncWriter(out)), levelText)
}

// NewLogfmt returns wrapped go kit logger writing logfmt lines.
func NewLogfmt(out io.Writer, levelText string) (Logger, error) {
	return newLogger(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(out)), levelText)
}

func newLogger(l kitlog.Logger, levelText string) (Logger, error) {
	var level Level
	if err := level.UnmarshalText(levelText); err != nil {
		return nil, fmt.Errorf(`{"level":"error","message":"%s: %s","ts":"%s"}`, err, levelText, time.Now().UTC().Format(time.RFC3339Nano))
	}
	l = kitlog.With(l, "ts", kitlog.DefaultTimestampUTC)
	return &logger{kitLogger: l, level: level}, nil
}

func (l logger) Debug(msg string) {
	if Debug.isAllowed(l.level) {
		_ = l.kitLogger.Log("level", Debug.String(), "message", msg)
	}
}

func (l logger) Info(msg string) {
	if Info.isAllowed(l.level) {
		_ = l.kitLogger.Log("level", Info.String(), "message", msg)
	}
}

func (l logger) Warn(msg string) {
	if Warn.isAllowed(l.level) {
		_ = l.kitLogger.Log("level", Warn.String(), "message", msg)
	}
}

func (l logger) Error(msg string) {
	if Error.isAllowed(l.level) {
		_ = l.kitLogger.Log("level", Error.String(), "message", msg)
	}
}

func (l logger) Err(msg string, err error) {
	if err == nil || !Error.isAllowed(l.level) {
		return
	}
	d := errors.Detach(err)
	_ = l.kitLogger.Log("level", Error.String(), "message", msg, "kind", errors.KindOf(d).String(), "error", d.Error())
}

func (l logger) Fatal(msg string) {
	_ = l.kitLogger.Log("fatal", msg)
	exit(1)
}
