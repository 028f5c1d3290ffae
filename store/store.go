// Copyright 2024 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrStaleResponse is returned by Load when a newer load was started
	// before this one completed; the response has been discarded.
	ErrStaleResponse = errors.New("stale response discarded")
)

// Source fetches the complete, unfiltered collection of one entity type.
type Source[T any] interface {
	Fetch(ctx context.Context) ([]T, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[T any] func(ctx context.Context) ([]T, error)

func (f SourceFunc[T]) Fetch(ctx context.Context) ([]T, error) {
	return f(ctx)
}

// FetchError is returned when the source failed to deliver the collection.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "failed to fetch entities: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Store holds the last collection fetched from its source. Every load
// replaces the whole collection.
type Store[T any] struct {
	source Source[T]

	mu         sync.RWMutex
	records    []T
	loadedAt   time.Time
	generation uint64
}

func NewStore[T any](source Source[T]) *Store[T] {
	return &Store[T]{source: source}
}

// Load fetches the collection and replaces the held records. Loads are not
// de-duplicated; when they overlap, only the response of the most recently
// started load is applied.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	records, err := s.source.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil, ErrStaleResponse
	}
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	if records == nil {
		records = []T{}
	}
	s.records = records
	s.loadedAt = time.Now()
	return records, nil
}

// Records returns the held collection. The slice must not be modified.
func (s *Store[T]) Records() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// LoadedAt returns the time of the last successful load, zero if none.
func (s *Store[T]) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
