// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

/*
Package series assigns sequential document numbers (invoice numbers, challan
numbers, receipt numbers) from named series.

Counters live in Redis: INCR is atomic across API replicas, so two
concurrent creates can never draw the same number. The formatted result is
"<PREFIX>-<NNNN>", e.g. "INV-0042".
*/
package series

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/freightdeskhq/freightdesk/pkg/codes"
)

// padWidth is the minimum digit width of the sequential part.
const padWidth = 4

// Counter is the atomic increment primitive the allocator needs.
// *redis.Client satisfies it; tests substitute an in-memory counter.
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// Allocator draws the next number from a named series.
type Allocator struct {
	counter Counter
}

// NewAllocator constructs a series allocator over a Redis client.
func NewAllocator(counter Counter) *Allocator {
	return &Allocator{counter: counter}
}

// Next reserves and formats the next number of the series.
//
// The series name is normalized to a canonical code, so "inv" and "INV"
// address the same counter. Numbers are reserved even when the subsequent
// document write fails; gaps are acceptable, duplicates are not.
func (allocator *Allocator) Next(ctx context.Context, seriesName string) (string, error) {
	prefix := codes.Normalize(seriesName)
	if prefix == "" {
		return "", fmt.Errorf("series: empty series name")
	}

	value, err := allocator.counter.Incr(ctx, "series:"+prefix).Result()
	if err != nil {
		return "", fmt.Errorf("series: failed to reserve number for %s: %w", prefix, err)
	}

	return fmt.Sprintf("%s-%0*d", prefix, padWidth, value), nil
}
