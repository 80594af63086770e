package inspect

import (
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/saltyorg/scss-lite/internal/scss"
)

// VarInfo describes one entry of a variable table.
type VarInfo struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	// Color is the value normalized to hex when it parses as a CSS color.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Describe lists vars in table order.
func Describe(vars *scss.Variables) []VarInfo {
	infos := make([]VarInfo, 0, vars.Len())
	vars.Range(func(name, value string) bool {
		infos = append(infos, VarInfo{
			Name:  name,
			Value: value,
			Color: ColorHex(value),
		})
		return true
	})
	return infos
}

// ColorHex returns value as "#rrggbb" (or "#rrggbbaa" when not opaque), or
// "" when value is not a color.
func ColorHex(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.HasPrefix(value, "$") {
		return ""
	}
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	return c.HexString()
}
