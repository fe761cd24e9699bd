package validation

import (
	"fmt"

	"github.com/insurewise/agency-growth/pkg/constants"
)

// ValidateOutputFormat checks whether the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatReport:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s", format)
	}
}
