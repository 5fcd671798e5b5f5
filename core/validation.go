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


package core

import (
	"fmt"
	"time"
)

// ValidateStatement validates a Statement according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - CreatedAt must not be in the future
//
// NOT validated:
//   - ID (0 means "derive from content" and is filled in by storage)
//   - InResponseTo, Conversation, Tags (all optional)
func ValidateStatement(statement *Statement) error {
	if statement == nil {
		return fmt.Errorf("%w: statement is nil", ErrInvalidStatement)
	}

	if statement.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidStatement, ErrEmptyText)
	}

	if !IsValidTimestamp(statement.CreatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidStatement, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateScore checks that a similarity or confidence value lies in [0, 1].
func ValidateScore(score float64) error {
	if score < 0 || score > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidScore, score)
	}
	return nil
}

// IsValidTimestamp reports whether a timestamp is usable for a statement.
// The zero value is valid; storage fills it in on insert.
func IsValidTimestamp(t time.Time) bool {
	if t.IsZero() {
		return true
	}
	// Allow a little clock skew between writers.
	return !t.After(time.Now().Add(time.Minute))
}
