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

// noDescription is rendered for packages whose RPC record carries a null
// Description.
const noDescription = "No description"

// Package is one AUR package as returned by the RPC search endpoint.
// Description is a pointer because the field is null for packages without
// one.
type Package struct {
	Name        string  `json:"Name"`
	Version     string  `json:"Version"`
	Description *string `json:"Description"`
}

// DescriptionOrDefault returns the package description, or a fixed
// placeholder when the AUR record has none.
func (p Package) DescriptionOrDefault() string {
	if p.Description == nil || *p.Description == "" {
		return noDescription
	}
	return *p.Description
}

// SearchResult is the decoded RPC search envelope.
type SearchResult struct {
	ResultCount int       `json:"resultcount"`
	Packages    []Package `json:"results"`
}
