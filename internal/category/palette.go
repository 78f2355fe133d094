package category

// predefinedColors is the rotating palette assigned to categories created
// without an explicit color, mirroring the desktop client's swatches.
var predefinedColors = []string{
	"#A6F2BF", // Mint Green
	"#A6BFF2", // Ocean Blue
	"#F2F2A6", // Sunshine Yellow
	"#BFA6F2", // Lavender Purple
	"#A6F2F2", // Aqua Cyan
	"#F2BFA6", // Peach Orange
	"#BFF2A6", // Lime Green
	"#A6D9F2", // Sky Blue
	"#F2A6BF", // Rose Pink
	"#D9B380", // Terracotta
	"#80D9B3", // Teal Green
	"#B380D9", // Amethyst Purple
	"#D9D980", // Pale Gold
	"#80D9D9", // Turquoise
	"#D98080", // Coral Red
	"#80B3D9", // Slate Blue
	"#D9A680", // Amber
	"#B3D980", // Olive Green
	"#D980B3", // Magenta
}

// nextColor hands out the least-used palette entry so colors stay spread out
// as categories come and go.
func (t *Tree) nextColor() string {
	used := make(map[string]int)
	for _, c := range t.nodes {
		used[c.Color]++
	}

	best := predefinedColors[0]
	bestCount := used[best]
	for _, color := range predefinedColors[1:] {
		if used[color] < bestCount {
			best = color
			bestCount = used[color]
		}
	}
	return best
}
