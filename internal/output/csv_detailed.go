package output

import (
	"bytes"
	"encoding/csv"

	"github.com/planwise/retirement-engine/internal/domain"
)

// CSVDetailedExporter provides the raw year-by-year projection detail.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(result *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "Year", "Phase", "Balance", "Contribution", "InvestmentReturn", "Withdrawal", "NetChange", "IsRetired"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yr := range result.YearlyProjections {
		row := []string{
			intToString(yr.Age),
			intToString(yr.Year),
			yr.Phase,
			yr.Balance.StringFixed(2),
			yr.Contribution.StringFixed(2),
			yr.InvestmentReturn.StringFixed(2),
			yr.Withdrawal.StringFixed(2),
			yr.NetChange.StringFixed(2),
			boolToString(yr.Phase == domain.PhaseWithdrawal),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
