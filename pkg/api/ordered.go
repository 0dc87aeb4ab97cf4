package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The archive serves its datasets as JSON objects whose key order is
// meaningful: "first match" queries follow server order, which standard
// map decoding would destroy. The helpers here walk objects token by
// token to keep that order.

// decodeOrderedObject decodes a JSON object from dec, calling visit for
// each key/value pair in wire order. A JSON null object is accepted and
// produces no visits.
func decodeOrderedObject[T any](dec *json.Decoder, visit func(key string, value T) error) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil { // JSON null
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}

		var value T
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode value for key %q: %w", key, err)
		}
		if err := visit(key, value); err != nil {
			return err
		}
	}

	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// skipValue discards the next JSON value on dec.
func skipValue(dec *json.Decoder) error {
	var raw json.RawMessage
	return dec.Decode(&raw)
}

// walkTopLevel walks the keys of a top-level JSON object, dispatching to
// handle. handle must consume exactly one value from the decoder; return
// handled=false to have the value skipped.
func walkTopLevel(body []byte, handle func(dec *json.Decoder, key string) (bool, error)) error {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}

		handled, err := handle(dec, key)
		if err != nil {
			return err
		}
		if !handled {
			if err := skipValue(dec); err != nil {
				return err
			}
		}
	}

	_, err = dec.Token()
	return err
}
