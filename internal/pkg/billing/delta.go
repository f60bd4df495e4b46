package billing

import (
	"fmt"
	"sort"

	"github.com/brightops/BrightOps/internal/pkg/money"
)

// Diff classifies every facility's change between two independently
// assembled previews of consecutive months.
//
// A facility enters the report when it is included in the total of at
// least one side. "added" and "removed" mean the facility has no line item
// at all on the other side (profile did not exist there); a facility with
// line items on both sides whose includedness flipped is "changed", so a
// month paused via override reports as changed with the full negative
// delta rather than as removed.
func Diff(current, previous *BillingPreview) (*DeltaReport, error) {
	if current == nil || previous == nil {
		return nil, fmt.Errorf("diff: both previews are required")
	}
	if current.ClientID != previous.ClientID {
		return nil, fmt.Errorf("diff: previews belong to different clients (%d vs %d)",
			current.ClientID, previous.ClientID)
	}

	report := &DeltaReport{
		ClientID:      current.ClientID,
		ClientUUID:    current.ClientUUID,
		CurrentYear:   current.Year,
		CurrentMonth:  current.Month,
		PreviousYear:  previous.Year,
		PreviousMonth: previous.Month,
	}

	curItems := itemsByFacility(current)
	prevItems := itemsByFacility(previous)

	ids := make([]uint, 0, len(curItems)+len(prevItems))
	seen := make(map[uint]struct{})
	for id, item := range curItems {
		if item.IncludedInTotal {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	for id, item := range prevItems {
		if item.IncludedInTotal {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		cur, hasCur := curItems[id]
		prev, hasPrev := prevItems[id]

		fd := FacilityDelta{
			FacilityProfileID: id,
			HasCurrent:        hasCur,
			HasPrevious:       hasPrev,
		}
		if hasCur {
			fd.FacilityUUID = cur.FacilityUUID
			fd.LocationName = cur.LocationName
			fd.CurrentStatus = cur.EffectiveStatus
			fd.CurrentTotalCents = cur.LineItemTotalCents
		} else {
			fd.FacilityUUID = prev.FacilityUUID
			fd.LocationName = prev.LocationName
		}
		if hasPrev {
			fd.PreviousStatus = prev.EffectiveStatus
			fd.PreviousTotalCents = prev.LineItemTotalCents
		}

		// Missing sides contribute zero to delta math.
		fd.TotalDeltaCents = fd.CurrentTotalCents - fd.PreviousTotalCents
		fd.SubtotalDeltaCents = includedRate(cur, hasCur) - includedRate(prev, hasPrev)
		fd.TaxDeltaCents = includedTax(cur, hasCur) - includedTax(prev, hasPrev)

		switch {
		case hasCur && hasPrev:
			if fd.TotalDeltaCents != 0 || fd.CurrentStatus != fd.PreviousStatus {
				fd.ChangeType = ChangeChanged
				report.ChangedCount++
			} else {
				fd.ChangeType = ChangeUnchanged
				report.UnchangedCount++
			}
		case hasCur:
			fd.ChangeType = ChangeAdded
			report.AddedCount++
		default:
			fd.ChangeType = ChangeRemoved
			report.RemovedCount++
		}

		report.TotalDeltaCents += fd.TotalDeltaCents
		report.SubtotalDeltaCents += fd.SubtotalDeltaCents
		report.TaxDeltaCents += fd.TaxDeltaCents
		report.Facilities = append(report.Facilities, fd)
	}

	return report, nil
}

func itemsByFacility(p *BillingPreview) map[uint]LineItem {
	m := make(map[uint]LineItem, len(p.LineItems))
	for _, item := range p.LineItems {
		m[item.FacilityProfileID] = item
	}
	return m
}

func includedRate(item LineItem, present bool) money.Cents {
	if !present || !item.IncludedInTotal {
		return 0
	}
	return item.EffectiveRateCents
}

func includedTax(item LineItem, present bool) money.Cents {
	if !present || !item.IncludedInTotal {
		return 0
	}
	return item.LineItemTaxCents
}
