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

package aur

import (
	"context"
	"fmt"

	raurerrors "github.com/GS-Works/raur/internal/errors"
)

// MockClient is a mock implementation of the AUR Client interface for testing.
type MockClient struct {
	// Packages to return
	Packages []Package

	// Error to return
	Error error

	// Behavior flags
	ShouldFailNetwork bool
	ShouldFailDecode  bool

	// Track calls for verification
	CallCount int
	LastQuery string
}

// NewMockClient creates a new mock client with default test data.
func NewMockClient() *MockClient {
	return &MockClient{
		Packages: generateTestPackages(),
	}
}

// Search implements the Client interface.
func (m *MockClient) Search(ctx context.Context, query string) (*SearchResult, error) {
	m.CallCount++
	m.LastQuery = query

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.ShouldFailNetwork {
		return nil, fmt.Errorf("querying AUR for %q: %w", query, raurerrors.ErrNetworkFailure)
	}
	if m.ShouldFailDecode {
		return nil, fmt.Errorf("decoding AUR response for %q: %w", query, raurerrors.ErrMalformedResponse)
	}
	if m.Error != nil {
		return nil, m.Error
	}

	return &SearchResult{
		ResultCount: len(m.Packages),
		Packages:    m.Packages,
	}, nil
}

// generateTestPackages creates sample AUR records for testing.
func generateTestPackages() []Package {
	helper := "An AUR helper"
	browser := "A web browser"

	return []Package{
		{Name: "yay", Version: "12.3.5-1", Description: &helper},
		{Name: "google-chrome", Version: "126.0.6478.55-1", Description: &browser},
		{Name: "mystery-bin", Version: "0.1.0-1", Description: nil},
	}
}

// MockClientOption allows configuring the mock client.
type MockClientOption func(*MockClient)

// WithPackages sets specific packages to return.
func WithPackages(pkgs []Package) MockClientOption {
	return func(m *MockClient) {
		m.Packages = pkgs
	}
}

// WithError makes the client return a specific error.
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithNetworkFailure makes the client simulate an unreachable endpoint.
func WithNetworkFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailNetwork = true
	}
}

// NewMockClientWithOptions creates a mock client with options.
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
