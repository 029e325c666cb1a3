// Package migration converts a hero record from one variant's shape to
// another's, reporting what was carried over, lost and defaulted.
package migration

import (
	"fmt"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
)

// TransformFunc migrates the variant-specific parts of m.Source into m.Target.
type TransformFunc func(m *Migration)

type Engine struct {
	registry   *schema.Registry
	transforms map[schema.Variant]map[schema.Variant]TransformFunc
}

type Option func(*Engine)

// WithTransform registers (or replaces) the transform for one ordered pair.
func WithTransform(from, to schema.Variant, fn TransformFunc) Option {
	return func(e *Engine) { e.register(from, to, fn) }
}

func NewEngine(registry *schema.Registry, opts ...Option) *Engine {
	if registry == nil {
		registry = schema.DefaultRegistry()
	}
	e := &Engine{registry: registry, transforms: map[schema.Variant]map[schema.Variant]TransformFunc{}}
	for from, row := range builtinTransforms() {
		for to, fn := range row {
			e.register(from, to, fn)
		}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine(schema.DefaultRegistry())

func DefaultEngine() *Engine { return defaultEngine }

func (e *Engine) register(from, to schema.Variant, fn TransformFunc) {
	row, ok := e.transforms[from]
	if !ok {
		row = map[schema.Variant]TransformFunc{}
		e.transforms[from] = row
	}
	row[to] = fn
}

func (e *Engine) transform(from, to schema.Variant) (TransformFunc, bool) {
	fn, ok := e.transforms[from][to]
	return fn, ok && fn != nil
}

// HasTransform reports whether a dedicated transform exists for the pair.
func (e *Engine) HasTransform(from, to schema.Variant) bool {
	_, ok := e.transform(from, to)
	return ok
}

// Migrate converts src into the target variant. Unexpected failures inside a
// transform are reported through Success=false instead of a panic.
func (e *Engine) Migrate(src schema.Props, target schema.Variant, strategy Strategy) (res Result) {
	res = newResult()
	if src == nil {
		res.Errors = append(res.Errors, "source record is empty")
		return res
	}
	if !target.Valid() {
		res.Errors = append(res.Errors, fmt.Sprintf("unknown target variant %q", target))
		return res
	}
	defer func() {
		if r := recover(); r != nil {
			res.Success = false
			res.MigratedProps = nil
			res.Errors = append(res.Errors, fmt.Sprintf("migration from %s to %s failed: %v", src.Kind(), target, r))
		}
	}()

	if src.Kind() == target {
		res.MigratedProps = schema.Clone(src)
		res.Warnings = append(res.Warnings, "Source and target variants are the same; the record was copied unchanged")
		res.Success = true
		return res
	}

	dst, err := e.registry.Defaults(target)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}
	m := &Migration{Source: src, Target: dst, Strategy: strategy, res: &res}

	m.carryBase()
	m.carryHeadline()
	m.carryButtons()
	m.carryBackground()
	if fn, ok := e.transform(src.Kind(), target); ok {
		fn(m)
	} else {
		genericTransform(m)
	}

	if !strategy.AllowDataLoss {
		for _, lost := range res.LostData {
			m.Warn("%s strategy: %s will be lost (%s)", strategy.Name, lost.Property, lost.Reason)
		}
	}
	res.MigratedProps = m.Target
	res.Success = true
	return res
}

// Migrate runs the default engine.
func Migrate(src schema.Props, target schema.Variant, strategy Strategy) Result {
	return defaultEngine.Migrate(src, target, strategy)
}

type Preview struct {
	WillMigrate   []string         `json:"willMigrate"`
	WillLose      []PropertyChange `json:"willLose"`
	WillAdd       []PropertyChange `json:"willAdd"`
	Warnings      []string         `json:"warnings"`
	Compatibility Report           `json:"compatibility"`
}

// Preview runs the migration and reports only the differences.
func (e *Engine) Preview(src schema.Props, target schema.Variant, strategy Strategy) Preview {
	res := e.Migrate(src, target, strategy)
	p := Preview{
		WillMigrate: append([]string{}, res.Preserved...),
		WillLose:    res.LostData,
		WillAdd:     res.AddedDefaults,
		Warnings:    append([]string{}, res.Warnings...),
	}
	for _, t := range res.Transformed {
		p.WillMigrate = append(p.WillMigrate, t.From+" -> "+t.To)
	}
	for _, msg := range res.Errors {
		p.Warnings = append(p.Warnings, "Migration would fail: "+msg)
	}
	if src != nil {
		p.Compatibility = e.ValidateMigrationCompatibility(src.Kind(), target)
	}
	return p
}
