package img2ascii

import "strings"

// LineSeparator terminates every text row except the last.
const LineSeparator = "\r\n"

// FormatText serializes a character grid. Each character is written
// twice to make up for terminal cells being about twice as tall as they
// are wide, and rows are joined with LineSeparator. There is no
// separator after the final row.
func FormatText(grid [][]rune) string {
	var sb strings.Builder
	for y, row := range grid {
		if y > 0 {
			sb.WriteString(LineSeparator)
		}
		for _, r := range row {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
