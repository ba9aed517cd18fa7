// Copyright 2026 The nutsdb Author. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"log"
	"os"
)

var (
	printLoggerInstance ILogger = defaultLogger()
)

type ILogger interface {
	// Printf formats according to a format specifier and writes to the logger.
	// Arguments are handled in the manner of fmt.Printf.
	Printf(string, ...any)
}

type defaultPrintLogger struct {
	l *log.Logger
}

func (dpl *defaultPrintLogger) Printf(fmt string, args ...any) {
	dpl.l.Printf(fmt, args...)
}

func defaultLogger() ILogger {
	return &defaultPrintLogger{
		l: log.New(os.Stderr, "winpath: ", log.LstdFlags),
	}
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...any) {}

// Discard drops everything written to it.
var Discard ILogger = discardLogger{}

// SetLogger replaces the package logger. A nil logger discards output.
func SetLogger(logger ILogger) {
	if logger == nil {
		logger = Discard
	}
	printLoggerInstance = logger
}

func GetLogger() ILogger {
	return printLoggerInstance
}
