// Copyright 2025 GS Works
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// spinnerFrames is the braille tick sequence rendered while a build runs.
var spinnerFrames = []string{"⠁", "⠂", "⠄", "⡀", "⢀", "⠠", "⠐", "⠈"}

// Spinner renders an indeterminate progress indicator on one terminal line
// using carriage returns, the same way long fetches report progress. It is
// display-only: the ticking goroutine is joined in Stop before the caller
// reports any result.
type Spinner struct {
	w        io.Writer
	msg      string
	interval time.Duration

	mu      sync.Mutex
	done    chan struct{}
	stopped sync.WaitGroup
}

// NewSpinner creates a spinner that writes msg next to the ticker.
func NewSpinner(w io.Writer, msg string) *Spinner {
	return &Spinner{
		w:        w,
		msg:      msg,
		interval: 100 * time.Millisecond,
	}
}

// Start begins rendering. Calling Start twice without Stop is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return
	}
	s.done = make(chan struct{})
	s.stopped.Add(1)

	go func(done chan struct{}) {
		defer s.stopped.Done()
		frame := 0
		for {
			select {
			case <-done:
				return
			case <-time.After(s.interval):
				fmt.Fprintf(s.w, "\r%s %s", spinnerFrames[frame%len(spinnerFrames)], s.msg)
				frame++
			}
		}
	}(s.done)
}

// Stop halts the spinner and clears its line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done == nil {
		return
	}
	close(s.done)
	s.stopped.Wait()
	s.done = nil

	fmt.Fprint(s.w, "\r\033[K")
}
