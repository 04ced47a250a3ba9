package post

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Read reads and decodes a post file. Errors opening the file are returned
// as-is; decoding failures wrap ErrMalformed.
func Read(path string) (Post, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Post{}, err
	}
	return Decode(content)
}

// Decode parses a post document. Every field is required and non-null,
// and unknown fields are rejected.
func Decode(content []byte) (Post, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(content, &fields); err != nil {
		return Post{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for _, key := range requiredKeys {
		raw, ok := fields[key]
		if !ok {
			return Post{}, fmt.Errorf("%w: missing field %q", ErrMalformed, key)
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return Post{}, fmt.Errorf("%w: field %q is null", ErrMalformed, key)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()

	var p Post
	if err := dec.Decode(&p); err != nil {
		return Post{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if p.Tags == nil {
		return Post{}, fmt.Errorf("%w: tags must be a list", ErrMalformed)
	}
	p.Timestamp = p.Timestamp.UTC()

	return p, nil
}
