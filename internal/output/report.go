package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
)

// lookup resolves a format name or returns ErrUnsupportedFormat listing the choices.
func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GenerateReport renders results in the named format and writes them to w.
func GenerateReport(results *domain.ScenarioComparison, format string, w io.Writer) error {
	f, err := lookup(format)
	if err != nil {
		return err
	}
	return RenderTo(f, results, w)
}

// RenderTo runs f and writes its output to w.
func RenderTo(f Formatter, results *domain.ScenarioComparison, w io.Writer) error {
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s report: %w", f.Name(), err)
	}
	return nil
}

// WriteReportFile renders results in the named format into a timestamped file in dir.
func WriteReportFile(results *domain.ScenarioComparison, format, dir string) (string, error) {
	f, err := lookup(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, results, dir, FileExtension(format))
}
