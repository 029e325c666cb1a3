// Package fieldpath addresses nodes inside the JSON form of a hero record
// with editor paths such as "content.title.text" or "content.buttons[0].url".
package fieldpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrEmptyPath   = errors.New("empty path")
	ErrSyntax      = errors.New("invalid path syntax")
	ErrMissingNode = errors.New("missing intermediate node")
	ErrOutOfRange  = errors.New("index out of range")
	ErrNotObject   = errors.New("node is not an object")
	ErrNotArray    = errors.New("node is not an array")
)

// Segment is one step of a path: an object key or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Key
}

type Path []Segment

func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if !s.IsIndex && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Root returns the first object key of the path.
func (p Path) Root() string {
	if len(p) == 0 {
		return ""
	}
	return p[0].Key
}

var (
	keyPattern   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
	indexPattern = regexp.MustCompile(`\[(\d+)\]`)
)

// Parse splits a dot/bracket path into segments.
//   - "title.text"            -> key.key
//   - "content.buttons[1].url" -> key.key[index].key
//   - "gallery[0]"            -> key[index]
func Parse(raw string) (Path, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyPath
	}
	var out Path
	for _, part := range strings.Split(raw, ".") {
		if part == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrSyntax, raw)
		}
		key := part
		var indexes []int
		if open := strings.IndexByte(part, '['); open >= 0 {
			key = part[:open]
			rest := part[open:]
			matches := indexPattern.FindAllStringSubmatchIndex(rest, -1)
			consumed := 0
			for _, m := range matches {
				if m[0] != consumed {
					return nil, fmt.Errorf("%w: %q", ErrSyntax, part)
				}
				n, err := strconv.Atoi(rest[m[2]:m[3]])
				if err != nil {
					return nil, fmt.Errorf("%w: %q", ErrSyntax, part)
				}
				indexes = append(indexes, n)
				consumed = m[1]
			}
			if consumed != len(rest) || len(indexes) == 0 {
				return nil, fmt.Errorf("%w: %q", ErrSyntax, part)
			}
		}
		if !keyPattern.MatchString(key) {
			return nil, fmt.Errorf("%w: bad key %q", ErrSyntax, key)
		}
		out = append(out, Segment{Key: key})
		for _, n := range indexes {
			out = append(out, Segment{Index: n, IsIndex: true})
		}
	}
	return out, nil
}

// Get resolves path against root (maps and slices from encoding/json).
func Get(root any, path Path) (any, error) {
	cur := root
	for i, seg := range path {
		next, err := step(cur, seg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path[:i+1], err)
		}
		cur = next
	}
	return cur, nil
}

// Set assigns value at path. Every node before the last segment must already
// exist; the last segment may add a new key to an existing object but may not
// extend an array.
func Set(root any, path Path, value any) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	parent, err := Get(root, path[:len(path)-1])
	if err != nil {
		return err
	}
	last := path[len(path)-1]
	if last.IsIndex {
		arr, ok := parent.([]any)
		if !ok {
			return fmt.Errorf("%s: %w", path, ErrNotArray)
		}
		if last.Index < 0 || last.Index >= len(arr) {
			return fmt.Errorf("%s: %w", path, ErrOutOfRange)
		}
		arr[last.Index] = value
		return nil
	}
	obj, ok := parent.(map[string]any)
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrNotObject)
	}
	obj[last.Key] = value
	return nil
}

func step(cur any, seg Segment) (any, error) {
	if seg.IsIndex {
		arr, ok := cur.([]any)
		if !ok {
			return nil, ErrNotArray
		}
		if seg.Index < 0 || seg.Index >= len(arr) {
			return nil, ErrOutOfRange
		}
		return arr[seg.Index], nil
	}
	obj, ok := cur.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	v, ok := obj[seg.Key]
	if !ok || v == nil {
		return nil, ErrMissingNode
	}
	return v, nil
}
