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

import "context"

// Client defines the interface for querying the AUR.
// This interface allows for easy mocking in tests.
type Client interface {
	// Search queries the AUR RPC for packages matching query. The query
	// is embedded in the endpoint verbatim, so the caller must pass a
	// URL-safe string.
	Search(ctx context.Context, query string) (*SearchResult, error)
}
