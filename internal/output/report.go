package output

import (
	"os"

	"github.com/planwise/retirement-engine/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport resolves a format name and writes a timestamped report file in
// the working directory. The "all" pseudo-format writes the full report set.
func GenerateReport(result *domain.PlanResult, format string) error {
	if format == "all" {
		if _, err := WriteFormatted(ConsoleVerboseFormatter{}, result, "txt"); err != nil {
			return err
		}
		if _, err := WriteFormatted(CSVDetailedExporter{}, result, "csv"); err != nil {
			return err
		}
		_, err := WriteFormatted(ChartFormatter{}, result, "png")
		return err
	}
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	_, err = WriteFormatted(f, result, DefaultExtension(format))
	return err
}

// SaveProfile writes a profile back out as YAML, used for generating starter
// profiles.
func SaveProfile(profile *domain.Profile, filename string) error {
	b, err := yaml.Marshal(profile)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
