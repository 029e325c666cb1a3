package schema

import (
	"errors"
	"fmt"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/fieldpath"
)

var ErrReadOnlyField = errors.New("field is read-only")

// FieldValue reads the node at an editor path from the record's wire form.
func FieldValue(p Props, raw string) (any, error) {
	path, err := fieldpath.Parse(raw)
	if err != nil {
		return nil, err
	}
	m, err := ToMap(p)
	if err != nil {
		return nil, err
	}
	return fieldpath.Get(m, path)
}

// UpdateField returns a copy of p with the node at raw replaced by value. The
// record's identity and variant cannot be changed this way.
func UpdateField(p Props, raw string, value any) (Props, error) {
	path, err := fieldpath.Parse(raw)
	if err != nil {
		return nil, err
	}
	if root := path.Root(); root == "id" || root == "variant" {
		return nil, fmt.Errorf("%s: %w", root, ErrReadOnlyField)
	}
	m, err := ToMap(p)
	if err != nil {
		return nil, err
	}
	if err := fieldpath.Set(m, path, value); err != nil {
		return nil, err
	}
	out, err := DecodeMap(m)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", path, err)
	}
	return out, nil
}
