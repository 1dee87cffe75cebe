package calendar

import "strings"

// ChunkLines groups lines into code-fenced blocks, each at most max
// bytes, splitting only on line boundaries so no grid row is ever torn.
// The header is repeated at the top of every block.
func ChunkLines(header string, lines []string, max int) []string {
	const fence = "```"
	overhead := len(fence)*2 + len(header) + 2 // fences plus header and newlines

	wrap := func(body []string) string {
		return fence + header + "\n" + strings.Join(body, "\n") + "\n" + fence
	}

	whole := wrap(lines)
	if len(whole) <= max {
		return []string{whole}
	}

	var blocks []string
	var chunk []string
	size := overhead
	for _, line := range lines {
		lineLen := len(line) + 1
		if len(chunk) > 0 && size+lineLen > max {
			blocks = append(blocks, wrap(chunk))
			chunk = nil
			size = overhead
		}
		chunk = append(chunk, line)
		size += lineLen
	}
	if len(chunk) > 0 {
		blocks = append(blocks, wrap(chunk))
	}
	return blocks
}
