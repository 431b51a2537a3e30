package theme

import (
	"fmt"
	"regexp"
	"strings"
)

var tokenName = regexp.MustCompile(`[^a-zA-Z0-9-]+`)

// CSS renders the tokens as custom properties plus the utility classes the
// root component uses (bg-*, text-*, border-*, shadow-*, backdrop-blur-*).
func (t Tokens) CSS() string {
	var b strings.Builder

	b.WriteString(":root {\n")
	for _, k := range sortedKeys(t.Colors) {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", slug(k), t.Colors[k])
	}
	for _, k := range sortedKeys(t.BoxShadow) {
		fmt.Fprintf(&b, "  --shadow-%s: %s;\n", slug(k), t.BoxShadow[k])
	}
	for _, k := range sortedKeys(t.BackdropBlur) {
		fmt.Fprintf(&b, "  --blur-%s: %s;\n", slug(k), t.BackdropBlur[k])
	}
	b.WriteString("}\n")

	if _, ok := t.Colors["midnight"]; ok {
		b.WriteString("body { background-color: var(--color-midnight); margin: 0; }\n")
	}
	for _, k := range sortedKeys(t.Colors) {
		name := slug(k)
		fmt.Fprintf(&b, ".bg-%s { background-color: var(--color-%s); }\n", name, name)
		fmt.Fprintf(&b, ".text-%s { color: var(--color-%s); }\n", name, name)
		fmt.Fprintf(&b, ".border-%s { border-color: var(--color-%s); }\n", name, name)
	}
	for _, k := range sortedKeys(t.BoxShadow) {
		name := slug(k)
		fmt.Fprintf(&b, ".shadow-%s { box-shadow: var(--shadow-%s); }\n", name, name)
	}
	for _, k := range sortedKeys(t.BackdropBlur) {
		name := slug(k)
		fmt.Fprintf(&b, ".backdrop-blur-%s { backdrop-filter: blur(var(--blur-%s)); }\n", name, name)
	}
	return b.String()
}

func slug(key string) string {
	return strings.Trim(tokenName.ReplaceAllString(strings.ToLower(key), "-"), "-")
}
