package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// input reads the line-oriented console protocol.
type input struct {
	reader *bufio.Reader
}

func newInput(r io.Reader) *input {
	return &input{reader: bufio.NewReader(r)}
}

// readLine returns the next line without its line terminator.
// A final line without a newline is returned as is; io.EOF only once nothing is left.
func (in *input) readLine() (string, error) {
	line, err := in.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readInt reads an integer the way scanf("%d") does, then discards the
// rest of the line. Blank lines are skipped.
func (in *input) readInt() (int, error) {
	for {
		line, err := in.readLine()
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return parseLeadingInt(line)
	}
}

func parseLeadingInt(s string) (int, error) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, s)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return n, nil
}

// truncateLabel normalizes s to NFC and keeps at most limit characters.
// Combining marks belong to the character before them and are never split off.
func truncateLabel(s string, limit int) string {
	s = norm.NFC.String(s)
	count := 0
	for i := range s {
		if i > 0 && !norm.NFC.PropertiesString(s[i:]).BoundaryBefore() {
			continue
		}
		count++
		if count > limit {
			return s[:i]
		}
	}
	return s
}
