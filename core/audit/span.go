// Copyright 2025 - 2026, Daniel Nylander and the Gettext Coverage contributors
// SPDX-License-Identifier: GPL-3.0-only

package audit

import (
	"context"
	"fmt"
	"runtime/trace"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Span represents a scan or parse operation in flight.
type Span struct {
	// only these fields are set automatically
	region   *trace.Region
	start    time.Time
	duration time.Duration

	Operation string
	Path      string
	Packages  int
	Bytes     int
	Error     error
}

func (span *Span) Begin(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	span.start = time.Now()
	span.region = trace.StartRegion(ctx, "scan."+span.Operation)
}

// End stops the span timer. Safe to call more than once.
func (span *Span) End() {
	if span.region != nil {
		span.duration = time.Since(span.start)
		span.region.End()
		span.region = nil
	}
}

func (span Span) Log() {
	event := log.Debug()

	event.Str("sys", "scan")
	event.Str("op", span.Operation)
	event.Str("path", span.Path)
	event.Dur("dur", span.duration)

	if span.Packages > 0 {
		event.Int("packages", span.Packages)
	}

	if span.Bytes > 0 {
		event.Str("len", humanizeSize(span.Bytes))
	}

	if span.Error != nil {
		event.Err(span.Error)
	}

	event.Send()
}

const (
	bytesInKB = 1024
	bytesInMB = bytesInKB * bytesInKB
	bytesInGB = bytesInMB * bytesInKB
)

func humanizeSize(x int) string {
	if x < bytesInKB {
		return strconv.Itoa(x)
	}

	if x < bytesInMB {
		return fmt.Sprintf("%.2fK", float64(x)/bytesInKB)
	}

	if x < bytesInGB {
		return fmt.Sprintf("%.2fM", float64(x)/bytesInMB)
	}

	return fmt.Sprintf("%.2fG", float64(x)/bytesInGB)
}
