package utils

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadSymbols reads a symbol table mapping labels to addresses. Each
// line holds a name and a hexadecimal address; ; or # starts a
// comment.
func LoadSymbols(filename string) (map[string]uint16, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	symbols := make(map[string]uint16)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexAny(text, ";#"); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("utils: symbols line %d: expected name and address", line)
		}
		value, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(fields[1]), "0x"), 16, 16)
		if err != nil {
			return nil, fmt.Errorf("utils: symbols line %d: %w", line, err)
		}
		symbols[fields[0]] = uint16(value)
	}
	return symbols, scanner.Err()
}
