package theme

import "sort"

// Tokens are the declarative design tokens consumed by the stylesheet.
type Tokens struct {
	Colors       map[string]string `yaml:"colors" json:"colors"`
	BoxShadow    map[string]string `yaml:"box_shadow" json:"box_shadow"`
	BackdropBlur map[string]string `yaml:"backdrop_blur" json:"backdrop_blur"`
}

// Default returns the neon-on-midnight palette.
func Default() Tokens {
	return Tokens{
		Colors: map[string]string{
			"primary":  "#00F0FF",
			"midnight": "#0b0f1a",
			"glass":    "rgba(255,255,255,0.06)",
		},
		BoxShadow: map[string]string{
			"neon": "0 0 20px rgba(0,240,255,.35), 0 0 40px rgba(0,240,255,.15)",
		},
		BackdropBlur: map[string]string{
			"xs": "2px",
		},
	}
}

// Merge overlays non-empty entries of override onto a copy of t.
func (t Tokens) Merge(override Tokens) Tokens {
	return Tokens{
		Colors:       mergeMap(t.Colors, override.Colors),
		BoxShadow:    mergeMap(t.BoxShadow, override.BoxShadow),
		BackdropBlur: mergeMap(t.BackdropBlur, override.BackdropBlur),
	}
}

func mergeMap(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
