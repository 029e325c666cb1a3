package migration

import (
	"fmt"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
)

type PropertyChange struct {
	Property string `json:"property"`
	Value    any    `json:"value,omitempty"`
	Reason   string `json:"reason"`
}

type Transformation struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Result describes one migration. Success is false only when the transform
// itself failed; lost data and added defaults never affect it.
type Result struct {
	Success       bool             `json:"success"`
	MigratedProps schema.Props     `json:"migratedProps,omitempty"`
	Warnings      []string         `json:"warnings"`
	Errors        []string         `json:"errors"`
	LostData      []PropertyChange `json:"lostData"`
	AddedDefaults []PropertyChange `json:"addedDefaults"`
	Transformed   []Transformation `json:"transformed"`
	Preserved     []string         `json:"preserved"`
}

func newResult() Result {
	return Result{
		Warnings:      []string{},
		Errors:        []string{},
		LostData:      []PropertyChange{},
		AddedDefaults: []PropertyChange{},
		Transformed:   []Transformation{},
		Preserved:     []string{},
	}
}

// Migration is the working state handed to a transform. Transforms mutate
// Target in place and report what happened through the helper methods.
type Migration struct {
	Source   schema.Props
	Target   schema.Props
	Strategy Strategy
	res      *Result
}

func (m *Migration) From() schema.Variant { return m.Source.Kind() }
func (m *Migration) To() schema.Variant   { return m.Target.Kind() }

func (m *Migration) Lose(property string, value any, reason string) {
	m.res.LostData = append(m.res.LostData, PropertyChange{Property: property, Value: value, Reason: reason})
}

func (m *Migration) AddDefault(property string, value any, reason string) {
	m.res.AddedDefaults = append(m.res.AddedDefaults, PropertyChange{Property: property, Value: value, Reason: reason})
}

func (m *Migration) Move(from, to string) {
	if from == to {
		m.Keep(from)
		return
	}
	m.res.Transformed = append(m.res.Transformed, Transformation{From: from, To: to})
}

func (m *Migration) Keep(property string) {
	m.res.Preserved = append(m.res.Preserved, property)
}

func (m *Migration) Warn(format string, args ...any) {
	m.res.Warnings = append(m.res.Warnings, fmt.Sprintf(format, args...))
}
