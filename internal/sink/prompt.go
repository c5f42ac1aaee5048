package sink

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompt asks the user where the unified table should go, reading answers
// line by line. It is plain console I/O kept apart from the transform so
// the pipeline core never touches a terminal.
func Prompt(r io.Reader, w io.Writer, defaultDBPath string) (Config, error) {
	scanner := bufio.NewScanner(r)
	ask := func(question string) (string, error) {
		fmt.Fprint(w, question)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read input: %w", err)
			}
			return "", io.EOF
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	fmt.Fprintln(w, "How would you like to persist the unified table?")
	fmt.Fprintln(w, "1. Save to a file (parquet, csv, or xlsx)")
	fmt.Fprintln(w, "2. Load into a SQLite database (default)")

	choice, err := ask("Enter 1 to save to a file or press Enter for SQLite: ")
	if err != nil {
		return Config{}, err
	}

	if choice == "1" {
		format, err := ask("Enter file format (parquet/csv/xlsx): ")
		if err != nil {
			return Config{}, err
		}
		path, err := ask("Enter the output file name (with extension): ")
		if err != nil {
			return Config{}, err
		}
		cfg := Config{Kind: KindFile, Format: strings.ToLower(format), Path: path}
		return cfg, cfg.Validate()
	}

	inMemory, err := ask("Use an in-memory database? (yes/no): ")
	if err != nil {
		return Config{}, err
	}
	table, err := ask("Enter the table name: ")
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Kind:     KindSQLite,
		Path:     defaultDBPath,
		Table:    table,
		InMemory: strings.EqualFold(inMemory, "yes"),
	}
	return cfg, cfg.Validate()
}
