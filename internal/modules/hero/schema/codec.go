package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMissingVariant = errors.New("hero record has no variant")

// Decode reads the wire form of a hero record, dispatching on its variant tag.
func Decode(data []byte) (Props, error) {
	var head struct {
		Variant Variant `json:"variant"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode hero record: %w", err)
	}
	if head.Variant == "" {
		return nil, ErrMissingVariant
	}
	p, err := New(head.Variant)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode %s record: %w", head.Variant, err)
	}
	p.Common().Variant = head.Variant
	return p, nil
}

// DecodeMap decodes an already-parsed JSON object.
func DecodeMap(m map[string]any) (Props, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode hero map: %w", err)
	}
	return Decode(raw)
}

// Encode writes the wire form. The discriminator always reflects the concrete type.
func Encode(p Props) ([]byte, error) {
	if p == nil {
		return nil, errors.New("encode hero record: nil props")
	}
	cp := Clone(p)
	cp.Common().Variant = cp.Kind()
	return json.Marshal(cp)
}

// ToMap returns the wire form as a generic JSON object.
func ToMap(p Props) (map[string]any, error) {
	raw, err := Encode(p)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
