package universe

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

//ParseSeed reads the binary seed matrix, one row per line
//'1' or '#' is a live cell, '0' or '.' is a dead one; spaces, tabs and commas are ignored
//empty lines and lines starting with '!' are skipped
//the result is checked with the same rules as Build uses
func ParseSeed(r io.Reader) ([][]int, error) {
	var seed [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "!") {
			continue
		}
		row := make([]int, 0, len(text))
		for _, ch := range text {
			switch ch {
			case '1', '#':
				row = append(row, 1)
			case '0', '.':
				row = append(row, 0)
			case ' ', '\t', ',':
			default:
				return nil, fmt.Errorf("line %d: unexpected character %q", line, ch)
			}
		}
		seed = append(seed, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if _, err := Build(seed); err != nil {
		return nil, err
	}
	return seed, nil
}
