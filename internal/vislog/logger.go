// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vislog is the engine's logger: a small tree of named
// loggers, each inheriting its parent's level and writers. Unlike a
// plain printf-style logger, every call carries its message alongside
// a set of structured Fields (solver recursion depth, vertex counts,
// an underlying error, ...) so a query's run can be filtered and
// aggregated on those values instead of parsed back out of prose.
package vislog

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Levels to filter log output.
const (
	DEBUG = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// Default is the root logger every package-level function delegates to.
var Default *Logger

var mutex sync.Mutex

// Writer receives every Event a logger, or one of its descendants,
// emits.
type Writer interface {
	Write(*Event)
}

// Field is one structured key/value pair attached to a log Event. Use
// the Int/Str/Float64/Err constructors rather than building one by
// hand.
type Field struct {
	Key   string
	Value any
}

func Int(key string, v int) Field         { return Field{key, v} }
func Str(key, v string) Field             { return Field{key, v} }
func Float64(key string, v float64) Field { return Field{key, v} }
func Err(err error) Field                 { return Field{"error", err} }

// Logger is a named node in the logger tree.
type Logger struct {
	name    string
	prefix  string
	level   int
	outputs []Writer
	parent  *Logger
}

// Event is the message one Log call produces.
type Event struct {
	Time    time.Time
	Level   int
	Prefix  string
	Message string
	Fields  []Field
}

func init() {
	Default = New("visilib", nil)
	Default.AddWriter(NewConsole(false))
	Default.SetLevel(WARN)
}

// New creates a logger named name. If parent is non-nil, the new
// logger inherits its level and writer set.
func New(name string, parent *Logger) *Logger {
	l := &Logger{name: name, prefix: name, level: ERROR, parent: parent}
	if parent != nil {
		l.prefix = parent.prefix + "/" + name
		l.level = parent.level
		l.outputs = append(l.outputs, parent.outputs...)
	}
	return l
}

// SetLevel sets the minimum emitted level for this logger.
func (l *Logger) SetLevel(level int) {
	if level < DEBUG || level > FATAL {
		return
	}
	l.level = level
}

// AddWriter attaches a writer to this logger's outputs.
func (l *Logger) AddWriter(w Writer) { l.outputs = append(l.outputs, w) }

func (l *Logger) Debug(msg string, fields ...Field) { l.Log(DEBUG, msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.Log(INFO, msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.Log(WARN, msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.Log(ERROR, msg, fields...) }

// Log emits an event carrying msg and fields if level passes this
// logger's threshold. The event reaches this logger's writers, which
// include every writer its ancestors had when it was created (see New),
// so a leaf logger (e.g. "visilib/solver") never needs its own writer
// configured.
func (l *Logger) Log(level int, msg string, fields ...Field) {
	if level < l.level {
		return
	}
	event := &Event{Time: time.Now().UTC(), Level: level, Prefix: l.prefix, Message: msg, Fields: fields}

	mutex.Lock()
	defer mutex.Unlock()
	for _, w := range l.outputs {
		w.Write(event)
	}

	if level == FATAL {
		panic("vislog: FATAL: " + msg)
	}
}

// FormatFields renders fields as "key=value key2=value2", the shape
// every Writer in this package uses to render an Event's structured
// data alongside its message.
func FormatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s=%v", f.Key, f.Value)
	}
	return strings.Join(parts, " ")
}

// Debug emits a DEBUG event on the default logger.
func Debug(msg string, fields ...Field) { Default.Debug(msg, fields...) }

// Info emits an INFO event on the default logger.
func Info(msg string, fields ...Field) { Default.Info(msg, fields...) }

// Warn emits a WARN event on the default logger.
func Warn(msg string, fields ...Field) { Default.Warn(msg, fields...) }

// Error emits an ERROR event on the default logger.
func Error(msg string, fields ...Field) { Default.Error(msg, fields...) }

// SetLevel sets the default logger's minimum emitted level.
func SetLevel(level int) { Default.SetLevel(level) }
