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


// Package compare provides statement comparison functions.
//
// Every comparator satisfies the same contract: given two statements it
// returns a similarity score in [0, 1], where 0 means no similarity and
// 1 means an exact match. The built-in comparators are:
//
//   - Levenshtein: normalized edit distance over the raw text
//   - JaroWinkler: Jaro-Winkler similarity over the raw text
//   - Jaccard: token-set overlap after stop-word filtering
//   - EmbeddingComparator: cosine similarity of text embeddings from an
//     OpenAI-compatible endpoint
//
// The text-based comparators are pure and never return an error. The
// embedding comparator performs I/O and may fail; its errors propagate
// to the caller of the search that invoked it.
package compare
