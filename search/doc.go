// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package search locates the best-scoring statement for an input in a
// paged corpus.
//
// TextSearch consumes the corpus one page at a time, scores every
// admissible candidate with a pluggable comparison function, and keeps
// a single running best. Once the running best reaches the configured
// similarity threshold the remaining pages are never fetched, trading
// completeness for latency. Statements containing excluded words are
// skipped before scoring and can never become the result.
package search
