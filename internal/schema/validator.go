// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidJSON reports a schema string that does not parse as JSON.
// Callers must not persist or emit the offending string.
var ErrInvalidJSON = errors.New("schema is not valid JSON")

// Validate parses a rendered schema string as JSON and returns it
// canonically re-serialized (compact, consistently escaped), so the emitted
// document never depends on how the administrator typed the source. The
// returned error wraps ErrInvalidJSON on any parse failure.
func Validate(rendered string) (json.RawMessage, error) {
	if strings.TrimSpace(rendered) == "" {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidJSON)
	}

	var doc any
	if err := json.Unmarshal([]byte(rendered), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return out, nil
}
