package billing

import (
	"testing"

	"github.com/brightops/BrightOps/app/models"
)

func TestComputeTaxPreTax(t *testing.T) {
	t.Parallel()

	// 300.00 at 8.25% pre-tax: 24.75 tax on top.
	res := ComputeTax(30000, models.TaxBehaviorPreTax, models.TaxModePreTax, 825)
	if res.Mode != models.TaxModePreTax {
		t.Fatalf("expected pre_tax mode, got %q", res.Mode)
	}
	if res.LineItemTax != 2475 {
		t.Fatalf("expected tax 2475, got %d", res.LineItemTax)
	}
	if res.LineItemTotal != 32475 {
		t.Fatalf("expected total 32475, got %d", res.LineItemTotal)
	}
}

func TestComputeTaxTaxIncluded(t *testing.T) {
	t.Parallel()

	// 108.25 gross at 8.25% embeds 8.25 of tax; the total stays the rate.
	res := ComputeTax(10825, models.TaxBehaviorTaxIncluded, models.TaxModePreTax, 825)
	if res.Mode != models.TaxModeTaxIncluded {
		t.Fatalf("expected tax_included mode, got %q", res.Mode)
	}
	if res.LineItemTax != 825 {
		t.Fatalf("expected embedded tax 825, got %d", res.LineItemTax)
	}
	if res.LineItemTotal != 10825 {
		t.Fatalf("tax_included total must equal the rate, got %d", res.LineItemTotal)
	}
}

func TestComputeTaxInheritClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		clientMode string
		wantMode   string
	}{
		{clientMode: models.TaxModePreTax, wantMode: models.TaxModePreTax},
		{clientMode: models.TaxModeTaxIncluded, wantMode: models.TaxModeTaxIncluded},
		{clientMode: "", wantMode: models.TaxModePreTax},
	}
	for _, tt := range tests {
		res := ComputeTax(10000, models.TaxBehaviorInheritClient, tt.clientMode, 500)
		if res.Mode != tt.wantMode {
			t.Fatalf("inherit with client mode %q resolved to %q, want %q", tt.clientMode, res.Mode, tt.wantMode)
		}
	}
}

func TestComputeTaxZeroRate(t *testing.T) {
	t.Parallel()

	res := ComputeTax(10000, models.TaxBehaviorPreTax, models.TaxModePreTax, 0)
	if res.LineItemTax != 0 {
		t.Fatalf("expected no tax at zero rate, got %d", res.LineItemTax)
	}
	if res.LineItemTotal != 10000 {
		t.Fatalf("expected total to equal rate, got %d", res.LineItemTotal)
	}

	res = ComputeTax(10000, models.TaxBehaviorTaxIncluded, models.TaxModePreTax, 0)
	if res.LineItemTax != 0 || res.LineItemTotal != 10000 {
		t.Fatalf("tax_included at zero rate: got tax %d total %d", res.LineItemTax, res.LineItemTotal)
	}
}
