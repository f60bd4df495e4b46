package billing

import (
	"fmt"
	"sort"

	"github.com/brightops/BrightOps/app/models"
	"github.com/brightops/BrightOps/internal/pkg/money"
)

// AssembleInput carries everything a preview computation needs. All inputs
// are fetched once by the caller; the assembler itself performs no I/O.
type AssembleInput struct {
	Client              *models.Client
	Year                int
	Month               int
	Profiles            []models.FacilityProfile
	OverridesByFacility map[uint]*models.MonthlyOverride

	// Previous, when supplied, populates PreviousMonthTotal and the delta
	// narrative. The assembler never fetches or assembles it itself.
	Previous *BillingPreview
}

// Assemble resolves, prorates and taxes every facility of a client for one
// month and aggregates the result into a BillingPreview.
func Assemble(in AssembleInput) (*BillingPreview, error) {
	if in.Client == nil {
		return nil, fmt.Errorf("assemble: %w: nil client", ErrNotFound)
	}
	if in.Month < 1 || in.Month > 12 {
		return nil, fmt.Errorf("assemble: invalid month %d", in.Month)
	}

	preview := &BillingPreview{
		ClientID:           in.Client.ID,
		ClientUUID:         in.Client.UUID,
		Year:               in.Year,
		Month:              in.Month,
		TaxRateBasisPoints: in.Client.TaxRateBasisPoints,
		LineItems:          make([]LineItem, 0, len(in.Profiles)),
	}

	profiles := make([]models.FacilityProfile, len(in.Profiles))
	copy(profiles, in.Profiles)
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })

	for i := range profiles {
		profile := &profiles[i]
		override := in.OverridesByFacility[profile.ID]

		cfg, err := Resolve(profile, override, in.Year, in.Month)
		if err != nil {
			return nil, err
		}

		item := buildLineItem(profile, cfg, in.Client.DefaultTaxMode, in.Client.TaxRateBasisPoints, in.Year, in.Month)
		preview.LineItems = append(preview.LineItems, item)

		if item.IncludedInTotal {
			preview.ActiveFacilityCount++
			preview.SubtotalCents += item.EffectiveRateCents
			preview.TaxAmountCents += item.LineItemTaxCents
			preview.TotalCents += item.LineItemTotalCents
		}
		bucketExplanation(&preview.Explanation, item)
	}

	preview.TotalFacilityCount = len(preview.LineItems)

	if in.Previous != nil {
		prevTotal := in.Previous.TotalCents
		delta := preview.TotalCents - prevTotal
		preview.PreviousMonthTotal = &prevTotal
		preview.DeltaCents = &delta
		preview.Explanation.DeltaNarrative = deltaNarrative(delta, in.Previous.Year, in.Previous.Month)
	}

	return preview, nil
}

// buildLineItem runs proration and tax for one resolved facility. Excluded
// facilities keep their day counts for display but bill nothing.
func buildLineItem(profile *models.FacilityProfile, cfg EffectiveConfig, clientTaxMode string, taxBp int64, year, month int) LineItem {
	pro := Prorate(cfg.DaysOfWeek, cfg.PauseWindow, year, month)

	item := LineItem{
		FacilityProfileID:   profile.ID,
		FacilityUUID:        profile.UUID,
		LocationName:        profile.LocationName,
		Category:            profile.Category,
		EffectiveStatus:     cfg.Status,
		EffectiveFrequency:  cfg.Frequency,
		EffectiveDaysOfWeek: cfg.DaysOfWeek,
		IsOverridden:        cfg.IsOverridden,
		IsSeasonallyPaused:  cfg.Status == models.FacilityStatusSeasonalPaused,
		IsProRated:          pro.IsProRated,
		ActiveDays:          pro.ActiveDays,
		ScheduledDays:       pro.ScheduledDays,
	}

	item.IncludedInTotal = isBillableStatus(cfg.Status) && pro.ScheduledDays > 0 && cfg.Frequency > 0
	if !item.IncludedInTotal {
		item.EffectiveRate = money.Cents(0).Format()
		item.TaxMode = resolveTaxMode(cfg.TaxBehavior, clientTaxMode)
		return item
	}

	rate := cfg.RateCents
	if pro.IsProRated {
		rate = money.MulDiv(rate, int64(pro.ActiveDays), int64(pro.ScheduledDays))
	}
	item.EffectiveRateCents = rate
	item.EffectiveRate = rate.Format()

	tax := ComputeTax(rate, cfg.TaxBehavior, clientTaxMode, taxBp)
	item.TaxMode = tax.Mode
	item.LineItemTaxCents = tax.LineItemTax
	item.LineItemTotalCents = tax.LineItemTotal

	return item
}

// isBillableStatus implements the inclusion rule: only an active facility
// is billed. A fully pro-rated active facility with remaining active days
// is still billable.
func isBillableStatus(status string) bool {
	return status == models.FacilityStatusActive
}

func bucketExplanation(ex *Explanation, item LineItem) {
	switch item.EffectiveStatus {
	case models.FacilityStatusSeasonalPaused:
		ex.SeasonallyPaused = append(ex.SeasonallyPaused, item.LocationName)
	case models.FacilityStatusPaused:
		ex.Paused = append(ex.Paused, item.LocationName)
	case models.FacilityStatusPendingApproval:
		ex.PendingApproval = append(ex.PendingApproval, item.LocationName)
	case models.FacilityStatusClosed:
		ex.Closed = append(ex.Closed, item.LocationName)
	}
	if item.IsOverridden {
		ex.Overridden = append(ex.Overridden, item.LocationName)
	}
}

func deltaNarrative(delta money.Cents, prevYear, prevMonth int) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("Total increased by %s compared to %d-%02d", delta.Format(), prevYear, prevMonth)
	case delta < 0:
		return fmt.Sprintf("Total decreased by %s compared to %d-%02d", (-delta).Format(), prevYear, prevMonth)
	default:
		return fmt.Sprintf("Total unchanged compared to %d-%02d", prevYear, prevMonth)
	}
}
