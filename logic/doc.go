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


// Package logic defines the adapter contract of the response engine.
//
// An Adapter is one strategy for answering an input statement. The
// engine asks CanProcess first, a cheap admissibility check, and only
// then pays for Process, which produces a candidate response with a
// confidence in [0, 1]. Adapters share a common configuration surface:
// a statement comparison function, a response selection method, a
// similarity threshold that stops searching early, optional excluded
// words, and a search page size. Comparison and selection strategies
// can be supplied as functions or as registered names resolved once at
// construction time.
//
// BestMatch is the standard adapter: it searches the stored corpus for
// the statement most similar to the input and answers with one of the
// responses recorded for that match.
package logic
