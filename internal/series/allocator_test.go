// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

package series_test

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightdeskhq/freightdesk/internal/series"
)

// memoryCounter is an in-memory Counter standing in for Redis.
type memoryCounter struct {
	values map[string]int64
	err    error
}

func (counter *memoryCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if counter.err != nil {
		cmd.SetErr(counter.err)
		return cmd
	}
	if counter.values == nil {
		counter.values = map[string]int64{}
	}
	counter.values[key]++
	cmd.SetVal(counter.values[key])
	return cmd
}

/*
TestAllocator_Next verifies sequential formatted numbers per series and
independent counters across series.
*/
func TestAllocator_Next(t *testing.T) {
	counter := &memoryCounter{}
	allocator := series.NewAllocator(counter)

	first, err := allocator.Next(context.Background(), "INV")
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", first)

	second, err := allocator.Next(context.Background(), "INV")
	require.NoError(t, err)
	assert.Equal(t, "INV-0002", second)

	other, err := allocator.Next(context.Background(), "CHN")
	require.NoError(t, err)
	assert.Equal(t, "CHN-0001", other)
}

/*
TestAllocator_NormalizesSeriesName verifies differently cased or accented
series names address the same counter.
*/
func TestAllocator_NormalizesSeriesName(t *testing.T) {
	counter := &memoryCounter{}
	allocator := series.NewAllocator(counter)

	first, err := allocator.Next(context.Background(), "inv")
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", first)

	second, err := allocator.Next(context.Background(), "INV")
	require.NoError(t, err)
	assert.Equal(t, "INV-0002", second)
}

/*
TestAllocator_WidthOverflow verifies numbers beyond the pad width grow
rather than truncate.
*/
func TestAllocator_WidthOverflow(t *testing.T) {
	counter := &memoryCounter{values: map[string]int64{"series:INV": 9999}}
	allocator := series.NewAllocator(counter)

	number, err := allocator.Next(context.Background(), "INV")
	require.NoError(t, err)
	assert.Equal(t, "INV-10000", number)
}

/*
TestAllocator_Failures verifies empty names and counter failures surface
as errors, never as a zero number.
*/
func TestAllocator_Failures(t *testing.T) {
	allocator := series.NewAllocator(&memoryCounter{})
	_, err := allocator.Next(context.Background(), "   ")
	assert.Error(t, err)

	broken := series.NewAllocator(&memoryCounter{err: errors.New("connection refused")})
	_, err = broken.Next(context.Background(), "INV")
	assert.Error(t, err)
}
