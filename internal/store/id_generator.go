// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-user-registry/internal/config"
)

// lengthIDGenerator reproduces the registry's historical id rule:
// currentLength+1. After a delete the next id can collide with a record
// that is still stored (delete 1 of {1,2,3}, create -> 3 again).
type lengthIDGenerator struct{}

func (lengthIDGenerator) NextID(currentLength int) int64 {
	return int64(currentLength) + 1
}

// sequenceIDGenerator never hands out the same id twice within a process.
// It backs the memory store only, which is never shared between processes.
type sequenceIDGenerator struct {
	last atomic.Int64
}

func (g *sequenceIDGenerator) NextID(int) int64 {
	return g.last.Add(1)
}

// NewIDGenerator returns the generator for strategy. last is the greatest id
// already stored; the sequence strategy continues after it.
func NewIDGenerator(strategy string, last int64) (IDGenerator, error) {
	switch strategy {
	case config.IDStrategyLength, "":
		return lengthIDGenerator{}, nil
	case config.IDStrategySequence:
		g := &sequenceIDGenerator{}
		g.last.Store(last)
		return g, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIDStrategy, strategy)
	}
}
