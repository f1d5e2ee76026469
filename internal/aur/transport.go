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
	"fmt"
	"net/http"

	"github.com/GS-Works/raur/internal/version"
)

// userAgentTransport stamps every outgoing request with the raur user agent.
// The AUR asks API consumers to identify themselves.
type userAgentTransport struct {
	base http.RoundTripper
}

func newUserAgentTransport(base http.RoundTripper) http.RoundTripper {
	return &userAgentTransport{base: base}
}

// RoundTrip implements http.RoundTripper.
func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", fmt.Sprintf("raur/%s", version.Version))
	return t.base.RoundTrip(req)
}
