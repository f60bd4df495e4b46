package billing

import (
	"github.com/brightops/BrightOps/app/models"
	"github.com/brightops/BrightOps/internal/pkg/money"
)

// ComputeTax computes the tax amount and line total for a single line rate.
// taxBehavior is fixed on the facility profile; inherit_client resolves to
// the client's default mode before one of the two formulas applies.
//
// pre_tax adds tax on top of the rate. tax_included reports the embedded
// tax for disclosure but the line total stays the rate itself.
func ComputeTax(rateCents money.Cents, taxBehavior, clientDefaultMode string, taxRateBasisPoints int64) TaxResult {
	mode := resolveTaxMode(taxBehavior, clientDefaultMode)

	res := TaxResult{Mode: mode, TaxRateApplied: taxRateBasisPoints}
	switch mode {
	case models.TaxModeTaxIncluded:
		res.LineItemTax = money.ExtractBasisPoints(rateCents, taxRateBasisPoints)
		res.LineItemTotal = rateCents
	default:
		res.LineItemTax = money.ApplyBasisPoints(rateCents, taxRateBasisPoints)
		res.LineItemTotal = rateCents + res.LineItemTax
	}
	return res
}

func resolveTaxMode(taxBehavior, clientDefaultMode string) string {
	switch taxBehavior {
	case models.TaxBehaviorTaxIncluded:
		return models.TaxModeTaxIncluded
	case models.TaxBehaviorPreTax:
		return models.TaxModePreTax
	default:
		// inherit_client, or anything unexpected, falls back to the client
		// default; an empty client default bills pre-tax.
		if clientDefaultMode == models.TaxModeTaxIncluded {
			return models.TaxModeTaxIncluded
		}
		return models.TaxModePreTax
	}
}
