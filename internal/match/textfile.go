package match

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ReadIDList parses a plain-text OSM ID list: one ID per line, blank
// lines and "#"-prefixed comments ignored (spec §6 exclude_ways.txt /
// include_ways.txt format).
func ReadIDList(r io.Reader) (map[int64]bool, error) {
	out := make(map[int64]bool)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			continue
		}
		out[id] = true
	}
	return out, scanner.Err()
}
