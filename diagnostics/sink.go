// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package diagnostics

import (
	"fmt"
	"log/slog"
)

// Sink collects diagnostics in the order they are reported. A nil *Sink discards them.
type Sink struct {
	diagnostics []Diagnostic
}

// Reported identifies a diagnostic within the sink it was reported to.
type Reported struct {
	Index      int
	Diagnostic Diagnostic
}

func NewSink() *Sink { return &Sink{} }

// Report records d. Reporting never fails.
func (s *Sink) Report(d Diagnostic) Reported {
	if s == nil {
		return Reported{Index: -1, Diagnostic: d}
	}
	s.diagnostics = append(s.diagnostics, d)
	return Reported{Index: len(s.diagnostics) - 1, Diagnostic: d}
}

// Diagnostics returns every reported diagnostic, oldest first.
func (s *Sink) Diagnostics() []Diagnostic {
	if s == nil {
		return nil
	}
	return s.diagnostics
}

func (s *Sink) Len() int {
	if s == nil {
		return 0
	}
	return len(s.diagnostics)
}

func (s *Sink) HasError() bool { return s.Len() > 0 }

// Count returns the number of reported diagnostics with the given code.
func (s *Sink) Count(code Code) int {
	n := 0
	for _, d := range s.Diagnostics() {
		if d.Code() == code {
			n++
		}
	}
	return n
}

func (s *Sink) LogValue() slog.Value {
	var vals []slog.Attr
	for i, d := range s.Diagnostics() {
		vals = append(vals, slog.Attr{
			Key: fmt.Sprint("d", i),
			Value: slog.GroupValue(
				slog.Attr{
					Key:   "msg",
					Value: slog.StringValue(Format(d)),
				},
			),
		})
	}
	return slog.GroupValue(vals...)
}
