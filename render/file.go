package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReportFile is the name of the text report in the output directory.
const ReportFile = "report.txt"

// WriteFile writes the uncolored table report to dir/report.txt and
// returns its path.
func WriteFile(dir string, rep Report) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, ReportFile)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	rule := strings.Repeat("=", 72)
	fmt.Fprintf(f, "%s\nDIRECTIONAL ADPOSITIONS: HEMINGWAY AND HIS CONTEMPORARIES\n%s\n\n", rule, rule)

	if err := NewTableRenderer(f).Render(rep); err != nil {
		return "", err
	}

	fmt.Fprintln(f, rule)
	return path, f.Close()
}
