package wordbank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads one word per line. Blank lines and lines starting with '#' are skipped.
func Parse(reader io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		words = append(words, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan words: %w", err)
	}

	return words, nil
}

func FromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open words file %s: %w", path, err)
	}
	defer file.Close()

	return Parse(file)
}

// Builtin is used when no external word list is configured.
func Builtin() []string {
	return []string{
		"apple", "banana", "bicycle", "bridge", "butterfly", "cactus", "camera", "candle",
		"castle", "cat", "chair", "cloud", "clock", "computer", "cookie", "crown",
		"diamond", "dog", "dolphin", "dragon", "drum", "elephant", "envelope", "feather",
		"fire", "fish", "flower", "guitar", "hammer", "helicopter", "house", "ice cream",
		"island", "kite", "ladder", "lamp", "leaf", "lighthouse", "lion", "moon",
		"mountain", "mushroom", "octopus", "owl", "pencil", "penguin", "piano", "pizza",
		"rainbow", "robot", "rocket", "scissors", "snail", "snowman", "spider", "star",
		"sun", "sword", "table", "tree", "umbrella", "volcano", "whale", "window",
	}
}
