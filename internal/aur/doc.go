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

// Package aur queries the Arch User Repository RPC search endpoint.
//
// The RPC is a single unauthenticated HTTP GET returning a JSON envelope:
//
//	{"resultcount": N, "results": [{"Name": ..., "Version": ..., "Description": ...}]}
//
// There is no retry and no timeout: the one network call is fire-and-wait.
// Transport failures wrap errors.ErrNetworkFailure and decode
// failures wrap errors.ErrMalformedResponse so the CLI can map them to exit
// codes. "No results" and "endpoint unreachable but reported as empty" are
// deliberately not distinguished beyond those sentinels.
package aur
