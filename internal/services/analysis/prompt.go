package analysis

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildPrompt renders the analyst prompt for a board
func BuildPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I am running a Super Bowl Squares game between %s (Rows) and %s (Columns).\n", req.Team1, req.Team2)
	fmt.Fprintf(&b, "The randomized numbers for %s are: %s.\n", req.Team1, joinInts(req.RowNumbers))
	fmt.Fprintf(&b, "The randomized numbers for %s are: %s.\n\n", req.Team2, joinInts(req.ColNumbers))
	b.WriteString("Give me a short, fun, 2-paragraph \"expert analysis\" of which square combinations ")
	b.WriteString("(e.g., Row X, Col Y) are statistically the 'gold mines' based on historical NFL scores, ")
	b.WriteString("and which ones are the 'safeties' (unlikely to win).\n")
	b.WriteString("Keep it professional yet engaging, like an NFL broadcaster.")
	return b.String()
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
