package migration

import (
	"fmt"
	"strings"
)

// Strategy is a hint threaded into every transform.
type Strategy struct {
	Name            string `json:"name"`
	PreserveContent bool   `json:"preserveContent"`
	PreserveMedia   bool   `json:"preserveMedia"`
	PreserveLayout  bool   `json:"preserveLayout"`
	AllowDataLoss   bool   `json:"allowDataLoss"`
}

var (
	Conservative = Strategy{Name: "conservative", PreserveContent: true, PreserveMedia: true, PreserveLayout: true, AllowDataLoss: false}
	Balanced     = Strategy{Name: "balanced", PreserveContent: true, PreserveMedia: true, PreserveLayout: false, AllowDataLoss: true}
	Optimized    = Strategy{Name: "optimized", PreserveContent: true, PreserveMedia: false, PreserveLayout: false, AllowDataLoss: true}
)

// ParseStrategy resolves a preset by name; empty means balanced.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Balanced.Name:
		return Balanced, nil
	case Conservative.Name:
		return Conservative, nil
	case Optimized.Name:
		return Optimized, nil
	}
	return Strategy{}, fmt.Errorf("unknown migration strategy %q", name)
}
