package wordlist

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Export writes entries to a newline-delimited UTF-8 text file and returns
// the hex-encoded SHA3-256 checksum of the written content. Parent
// directories are created as needed. The file is written with 0600
// permissions because generated wordlists are attack material that should
// only be readable by the owner.
func Export(path string, entries []string) (string, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(entry)
		sb.WriteString("\n")
	}
	content := []byte(sb.String())

	if err := os.WriteFile(path, content, 0600); err != nil {
		return "", fmt.Errorf("failed to write wordlist file: %w", err)
	}

	return Checksum(content), nil
}

// Checksum returns the hex-encoded SHA3-256 digest of the content.
func Checksum(content []byte) string {
	sum := sha3.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Load reads a newline-delimited word file, trimming whitespace and
// skipping blank lines. Used both for round-tripping exported wordlists
// and for reading batch password files.
func Load(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open word file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}

	return words, nil
}
