// Package codec puts generic values on the wire with msgpack. Only the
// generic kinds travel: primitives, arrays and string/any-keyed maps.
// Sets and ordered mappings flatten to their wire shapes (an array and a
// map); the realizer restores the richer kind from the target type.
package codec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"generic-caster/generic"
)

// Marshal encodes a generic value.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeValue(enc, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes wire bytes back into a generic value: mappings come
// back string-keyed when their keys allow it, numbers in their smallest
// carrying type.
func Unmarshal(data []byte) (any, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	return dec.DecodeInterface()
}

func encodeValue(enc *msgpack.Encoder, v any) error {
	switch src := v.(type) {
	case nil:
		return enc.EncodeNil()

	case *generic.Set:
		if err := enc.EncodeArrayLen(src.Len()); err != nil {
			return err
		}
		for _, e := range src.Values() {
			if err := encodeValue(enc, e); err != nil {
				return err
			}
		}
		return nil

	case []any:
		if err := enc.EncodeArrayLen(len(src)); err != nil {
			return err
		}
		for _, e := range src {
			if err := encodeValue(enc, e); err != nil {
				return err
			}
		}
		return nil
	}

	if generic.IsMapping(v) {
		if err := enc.EncodeMapLen(generic.Len(v)); err != nil {
			return err
		}
		var walkErr error
		generic.ForEach(v, func(k, val any) bool {
			if walkErr = encodeValue(enc, k); walkErr != nil {
				return false
			}
			walkErr = encodeValue(enc, val)
			return walkErr == nil
		})
		return walkErr
	}

	return enc.Encode(v)
}
