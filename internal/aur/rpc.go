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
	"encoding/json"
	"fmt"
	"net/http"

	raurerrors "github.com/GS-Works/raur/internal/errors"
)

// RPCClient talks to the AUR RPC over plain HTTP. The client carries no
// timeout: a search is one short GET and the tool waits for whatever the
// network does with it.
type RPCClient struct {
	endpoint string
	client   *http.Client
}

// NewRPCClient creates an RPCClient against the given search endpoint.
// The query string is appended to the endpoint verbatim at request time.
func NewRPCClient(endpoint string) *RPCClient {
	return &RPCClient{
		endpoint: endpoint,
		client: &http.Client{
			Transport: newUserAgentTransport(http.DefaultTransport),
		},
	}
}

// Search implements the Client interface.
func (c *RPCClient) Search(ctx context.Context, query string) (*SearchResult, error) {
	url := c.endpoint + query

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building AUR request for %q: %w", query, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying AUR for %q: %w", query, raurerrors.ErrNetworkFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AUR RPC returned status %d: %w", resp.StatusCode, raurerrors.ErrNetworkFailure)
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding AUR response for %q: %w", query, raurerrors.ErrMalformedResponse)
	}

	return &result, nil
}
