// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vislog

import (
	"fmt"
	"os"
)

// Ansi terminal color codes.
const (
	csi    = "\x1B["
	white  = "37m"
	green  = "32m"
	yellow = "33;1m"
	red    = "31;1m"
	magent = "35;1m"
)

var colorMap = map[int]string{
	DEBUG: white,
	INFO:  green,
	WARN:  yellow,
	ERROR: red,
	FATAL: magent,
}

// Console writes a log event to stdout as
// "L prefix: message key=value ...", where L is the first letter of the
// level name, optionally colored by level.
type Console struct {
	color bool
}

// NewConsole returns a console writer.
func NewConsole(color bool) *Console { return &Console{color: color} }

// Write formats event's message and fields and writes them to stdout.
func (w *Console) Write(event *Event) {
	line := fmt.Sprintf("%s %s: %s", levelNames[event.Level][:1], event.Prefix, event.Message)
	if f := FormatFields(event.Fields); f != "" {
		line += " " + f
	}
	if w.color {
		fmt.Fprint(os.Stdout, csi+colorMap[event.Level]+line+csi+white+"\n")
		return
	}
	fmt.Fprintln(os.Stdout, line)
}
