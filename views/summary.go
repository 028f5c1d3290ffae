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
package views

import "sync"

// Summarizer keeps the summary of the last record set a view observed.
type Summarizer[T, S any] struct {
	summarize func([]T) S

	mu   sync.Mutex
	last S
}

func NewSummarizer[T, S any](summarize func([]T) S) *Summarizer[T, S] {
	s := &Summarizer[T, S]{summarize: summarize}
	s.last = summarize(nil)
	return s
}

// Observe has the signature of table.Observer.
func (s *Summarizer[T, S]) Observe(filtered []T, _ int) {
	summary := s.summarize(filtered)
	s.mu.Lock()
	s.last = summary
	s.mu.Unlock()
}

func (s *Summarizer[T, S]) Summary() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
