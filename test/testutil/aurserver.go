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

// Package testutil provides shared test helpers, most notably a mock AUR
// RPC server that serves canned search envelopes.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// RPCServer wraps an httptest server posing as the AUR RPC endpoint.
type RPCServer struct {
	*httptest.Server

	// Requests records the raw query strings received, in order.
	Requests []string
}

// NewRPCServer starts a mock AUR RPC server that answers every request with
// the given status code and body. The server is shut down automatically when
// the test finishes.
func NewRPCServer(t *testing.T, status int, body string) *RPCServer {
	t.Helper()

	s := &RPCServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Requests = append(s.Requests, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(s.Close)

	return s
}

// Endpoint returns the server URL shaped like the real RPC search endpoint,
// ready for a query to be appended.
func (s *RPCServer) Endpoint() string {
	return s.URL + "/rpc/?v=5&type=search&arg="
}

// SearchEnvelope builds an RPC search response body. Each entry is
// "name|version|description"; an empty description renders as JSON null.
func SearchEnvelope(entries ...string) string {
	var results []string
	for _, e := range entries {
		parts := strings.SplitN(e, "|", 3)
		name, ver, desc := parts[0], "", ""
		if len(parts) > 1 {
			ver = parts[1]
		}
		if len(parts) > 2 {
			desc = parts[2]
		}

		descJSON := "null"
		if desc != "" {
			descJSON = fmt.Sprintf("%q", desc)
		}
		results = append(results, fmt.Sprintf(`{"Name":%q,"Version":%q,"Description":%s}`, name, ver, descJSON))
	}

	return fmt.Sprintf(`{"resultcount":%d,"results":[%s]}`, len(entries), strings.Join(results, ","))
}
