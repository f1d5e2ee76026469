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

package pacman

import "context"

// RunnerCall records one invocation that went through a MockRunner.
type RunnerCall struct {
	Method string // "Capture" or "Show"
	Dir    string
	Name   string
	Args   []string
}

// MockRunner is a mock implementation of the Runner interface for testing.
// It records every call and returns canned results, optionally keyed by
// command name.
type MockRunner struct {
	// CaptureOutput is returned by Capture when no per-command override
	// matches.
	CaptureOutput string

	// CaptureErr is returned by Capture when set.
	CaptureErr error

	// ShowErr is returned by Show when no per-command override matches.
	ShowErr error

	// CaptureOutputFor and ShowErrFor override results per command name.
	CaptureOutputFor map[string]string
	ShowErrFor       map[string]error

	// Calls holds every invocation in order, for verification.
	Calls []RunnerCall
}

// NewMockRunner creates an empty MockRunner.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		CaptureOutputFor: make(map[string]string),
		ShowErrFor:       make(map[string]error),
	}
}

// Capture implements the Runner interface.
func (m *MockRunner) Capture(ctx context.Context, name string, args ...string) (string, error) {
	m.Calls = append(m.Calls, RunnerCall{Method: "Capture", Name: name, Args: args})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if m.CaptureErr != nil {
		return "", m.CaptureErr
	}
	if out, ok := m.CaptureOutputFor[name]; ok {
		return out, nil
	}
	return m.CaptureOutput, nil
}

// Show implements the Runner interface.
func (m *MockRunner) Show(ctx context.Context, dir, name string, args ...string) error {
	m.Calls = append(m.Calls, RunnerCall{Method: "Show", Dir: dir, Name: name, Args: args})

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err, ok := m.ShowErrFor[name]; ok {
		return err
	}
	return m.ShowErr
}

// CallsTo returns the recorded calls whose command name matches name.
func (m *MockRunner) CallsTo(name string) []RunnerCall {
	var calls []RunnerCall
	for _, c := range m.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}
