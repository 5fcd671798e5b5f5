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


package logic

import "errors"

var (
	// ErrConfiguration indicates an adapter was constructed with an
	// unresolvable strategy name or an invalid option value. Fatal to
	// construction; never retried.
	ErrConfiguration = errors.New("invalid adapter configuration")

	// ErrNotImplemented indicates Process was invoked on the base
	// adapter without a concrete override. This is a programming error,
	// not a runtime condition.
	ErrNotImplemented = errors.New("adapter does not implement Process")

	// ErrRepositoryRequired is returned when an adapter is constructed
	// without a statement repository.
	ErrRepositoryRequired = errors.New("statement repository required")
)
