package report

import (
	"fmt"
	"math"
	"unicode/utf16"
)

// ColorFromString derives a stable, saturated color from s for categories
// without one. The hue comes from a 31-multiplier hash over UTF-16 code units,
// then HSL(hue, 65%, 55%) is converted to "#rrggbb".
func ColorFromString(s string) string {
	var h uint32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + uint32(u)
	}
	hue := float64(h % 360)
	return hslHex(hue, 65, 55)
}

func hslHex(hue, sat, light float64) string {
	a := sat / 100 * math.Min(light/100, 1-light/100)
	f := func(n float64) int {
		k := math.Mod(n+hue/30, 12)
		c := light/100 - a*math.Max(-1, math.Min(k-3, math.Min(9-k, 1)))
		return int(math.Floor(255*c + 0.5))
	}
	return fmt.Sprintf("#%02x%02x%02x", f(0), f(8), f(4))
}
