package report

import (
	"fmt"
	"io"
	"time"

	"pricing_agent/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const DecisionsSheet = "Decisions"

var decisionHeaders = []interface{}{
	"Decision ID",
	"Product ID",
	"Customer ID",
	"Strategy",
	"Old Price",
	"New Price",
	"Market Avg Price",
	"Lowest Competitor Price",
	"Conversion Probability",
	"Reasoning",
	"Created At",
}

// WriteDecisionsXLSX renders the decision audit trail of a product as a
// single-sheet workbook.
func WriteDecisionsXLSX(w io.Writer, product entities.Product, decisions []entities.PricingDecision) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DecisionsSheet); err != nil {
		return err
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   fmt.Sprintf("Pricing decisions - %s", product.Name),
		Subject: product.ID,
	}); err != nil {
		return err
	}

	if err := f.SetSheetRow(DecisionsSheet, "A1", &decisionHeaders); err != nil {
		return err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(DecisionsSheet, 1, 1, header); err != nil {
		return err
	}

	for i, d := range decisions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			d.ID,
			d.ProductID,
			d.CustomerID,
			string(d.Strategy),
			d.OldPrice,
			d.NewPrice,
			d.MarketAvgPrice,
			d.LowestCompetitorPrice,
			d.ConversionProbability,
			d.Reasoning,
			d.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(DecisionsSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(DecisionsSheet, "A", "C", 38); err != nil {
		return err
	}
	if err := f.SetColWidth(DecisionsSheet, "J", "J", 60); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
