package quiz

import "strings"

// Separator delimits question blocks in the model's raw output.
const Separator = "===NEXT==="

// SplitBlocks splits raw completion text into trimmed question blocks.
// Blocks that are empty after trimming are dropped. When the separator
// never appears the whole input is returned as a single block.
func SplitBlocks(raw string) []string {
	var blocks []string
	for _, block := range strings.Split(raw, Separator) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}
