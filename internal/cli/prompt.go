package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptLine asks for a single value on r, returning fallback on empty input.
func promptLine(r *bufio.Reader, w io.Writer, label, fallback string) (string, error) {
	if fallback != "" {
		fmt.Fprintf(w, "%s [%s]: ", label, fallback)
	} else {
		fmt.Fprintf(w, "%s: ", label)
	}

	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback, nil
	}
	return line, nil
}
