package billing

import (
	"testing"

	"github.com/brightops/BrightOps/app/models"
)

func assembleFor(t *testing.T, year, month int, profiles []models.FacilityProfile, overrides map[uint]*models.MonthlyOverride) *BillingPreview {
	t.Helper()
	preview, err := Assemble(AssembleInput{
		Client:              testClient(),
		Year:                year,
		Month:               month,
		Profiles:            profiles,
		OverridesByFacility: overrides,
	})
	if err != nil {
		t.Fatalf("assemble %d-%02d: %v", year, month, err)
	}
	return preview
}

// §-scenario: a facility paused for April via override is "changed" with
// the full negative delta, not "removed"; removal means the profile no
// longer exists at all.
func TestDiffPausedMonthIsChanged(t *testing.T) {
	t.Parallel()

	profiles := []models.FacilityProfile{facility(1, "harbor", 30000, models.FacilityStatusActive)}

	march := assembleFor(t, 2021, 3, profiles, nil)
	april := assembleFor(t, 2021, 4, profiles, map[uint]*models.MonthlyOverride{
		1: {FacilityProfileID: 1, Year: 2021, Month: 4, OverrideStatus: strPtr(models.OverrideStatusPaused)},
	})

	report, err := Diff(april, march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Facilities) != 1 {
		t.Fatalf("expected 1 facility in report, got %d", len(report.Facilities))
	}
	fd := report.Facilities[0]
	if fd.ChangeType != ChangeChanged {
		t.Fatalf("paused month must classify as changed, got %q", fd.ChangeType)
	}
	if fd.TotalDeltaCents != -march.TotalCents {
		t.Fatalf("expected delta %d, got %d", -march.TotalCents, fd.TotalDeltaCents)
	}
	if report.TotalDeltaCents != -march.TotalCents {
		t.Fatalf("expected report delta %d, got %d", -march.TotalCents, report.TotalDeltaCents)
	}
}

func TestDiffAddedFacility(t *testing.T) {
	t.Parallel()

	previous := assembleFor(t, 2021, 2,
		[]models.FacilityProfile{facility(1, "a", 30000, models.FacilityStatusActive)}, nil)
	current := assembleFor(t, 2021, 3,
		[]models.FacilityProfile{
			facility(1, "a", 30000, models.FacilityStatusActive),
			facility(2, "b", 20000, models.FacilityStatusActive),
		}, nil)

	report, err := Diff(current, previous)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.AddedCount != 1 {
		t.Fatalf("expected 1 added facility, got %d", report.AddedCount)
	}

	var added *FacilityDelta
	for i := range report.Facilities {
		if report.Facilities[i].FacilityProfileID == 2 {
			added = &report.Facilities[i]
		}
	}
	if added == nil || added.ChangeType != ChangeAdded {
		t.Fatalf("facility 2 must classify as added, got %+v", added)
	}
	if added.HasPrevious {
		t.Fatalf("added facility must not have a previous side")
	}
	// Previous total is treated as 0 for delta math.
	if added.TotalDeltaCents != added.CurrentTotalCents {
		t.Fatalf("expected delta %d, got %d", added.CurrentTotalCents, added.TotalDeltaCents)
	}
}

func TestDiffRemovedFacility(t *testing.T) {
	t.Parallel()

	previous := assembleFor(t, 2021, 2,
		[]models.FacilityProfile{
			facility(1, "a", 30000, models.FacilityStatusActive),
			facility(2, "b", 20000, models.FacilityStatusActive),
		}, nil)
	current := assembleFor(t, 2021, 3,
		[]models.FacilityProfile{facility(1, "a", 30000, models.FacilityStatusActive)}, nil)

	report, err := Diff(current, previous)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.RemovedCount != 1 {
		t.Fatalf("expected 1 removed facility, got %d", report.RemovedCount)
	}
	for _, fd := range report.Facilities {
		if fd.FacilityProfileID != 2 {
			continue
		}
		if fd.ChangeType != ChangeRemoved {
			t.Fatalf("facility 2 must classify as removed, got %q", fd.ChangeType)
		}
		if fd.HasCurrent {
			t.Fatalf("removed facility must not have a current side")
		}
		if fd.TotalDeltaCents != -fd.PreviousTotalCents {
			t.Fatalf("expected delta %d, got %d", -fd.PreviousTotalCents, fd.TotalDeltaCents)
		}
	}
}

func TestDiffUnchangedFacility(t *testing.T) {
	t.Parallel()

	profiles := []models.FacilityProfile{facility(1, "a", 30000, models.FacilityStatusActive)}
	// February and March 2021 have different weekday layouts but the rate
	// is flat monthly, so the totals match and nothing changed.
	previous := assembleFor(t, 2021, 2, profiles, nil)
	current := assembleFor(t, 2021, 3, profiles, nil)

	report, err := Diff(current, previous)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.UnchangedCount != 1 || report.ChangedCount != 0 {
		t.Fatalf("expected 1 unchanged facility, got %+v", report)
	}
	if report.TotalDeltaCents != 0 {
		t.Fatalf("expected zero aggregate delta, got %d", report.TotalDeltaCents)
	}
}

func TestDiffAggregateEqualsFacilitySum(t *testing.T) {
	t.Parallel()

	previous := assembleFor(t, 2021, 2,
		[]models.FacilityProfile{
			facility(1, "a", 30000, models.FacilityStatusActive),
			facility(2, "b", 20000, models.FacilityStatusActive),
			facility(3, "c", 15000, models.FacilityStatusActive),
		}, nil)
	current := assembleFor(t, 2021, 3,
		[]models.FacilityProfile{
			facility(1, "a", 35000, models.FacilityStatusActive), // rate raised
			facility(2, "b", 20000, models.FacilityStatusActive), // unchanged
			facility(4, "d", 12000, models.FacilityStatusActive), // added, c removed
		}, nil)

	report, err := Diff(current, previous)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sumTotal, sumSubtotal, sumTax int64
	for _, fd := range report.Facilities {
		sumTotal += int64(fd.TotalDeltaCents)
		sumSubtotal += int64(fd.SubtotalDeltaCents)
		sumTax += int64(fd.TaxDeltaCents)
	}
	if int64(report.TotalDeltaCents) != sumTotal {
		t.Fatalf("total delta %d != facility sum %d", report.TotalDeltaCents, sumTotal)
	}
	if int64(report.SubtotalDeltaCents) != sumSubtotal {
		t.Fatalf("subtotal delta %d != facility sum %d", report.SubtotalDeltaCents, sumSubtotal)
	}
	if int64(report.TaxDeltaCents) != sumTax {
		t.Fatalf("tax delta %d != facility sum %d", report.TaxDeltaCents, sumTax)
	}

	if report.AddedCount != 1 || report.RemovedCount != 1 || report.ChangedCount != 1 || report.UnchangedCount != 1 {
		t.Fatalf("unexpected classification counts: %+v", report)
	}
}

func TestDiffOmitsFacilityExcludedOnBothSides(t *testing.T) {
	t.Parallel()

	profiles := []models.FacilityProfile{facility(1, "closed", 30000, models.FacilityStatusClosed)}
	previous := assembleFor(t, 2021, 2, profiles, nil)
	current := assembleFor(t, 2021, 3, profiles, nil)

	report, err := Diff(current, previous)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Facilities) != 0 {
		t.Fatalf("facility excluded in both months must not appear, got %+v", report.Facilities)
	}
}

func TestDiffFacilitiesSortedByID(t *testing.T) {
	t.Parallel()

	profiles := []models.FacilityProfile{
		facility(3, "c", 10000, models.FacilityStatusActive),
		facility(1, "a", 10000, models.FacilityStatusActive),
		facility(2, "b", 10000, models.FacilityStatusActive),
	}
	previous := assembleFor(t, 2021, 2, profiles, nil)
	current := assembleFor(t, 2021, 3, profiles, nil)

	report, err := Diff(current, previous)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(report.Facilities); i++ {
		if report.Facilities[i-1].FacilityProfileID > report.Facilities[i].FacilityProfileID {
			t.Fatalf("report facilities not sorted by id")
		}
	}
}

func TestDiffRejectsMismatchedClients(t *testing.T) {
	t.Parallel()

	a := assembleFor(t, 2021, 3, nil, nil)
	other := *testClient()
	other.ID = 2
	b, err := Assemble(AssembleInput{Client: &other, Year: 2021, Month: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Diff(a, b); err == nil {
		t.Fatalf("expected error for mismatched clients")
	}
}
