package billing

// ProjectWeekSchedule derives the weekday-to-facilities calendar view from
// a resolved month's line items. It reuses the resolver's effective
// weekday sets directly and does no day-by-day proration.
//
// A facility paused for a mid-month date range still appears on its
// normal weekday pattern here: the calendar answers "where do crews
// normally go", while the billing preview excludes the paused days from
// the charged total. That divergence is deliberate.
func ProjectWeekSchedule(items []LineItem) WeekSchedule {
	schedule := make(WeekSchedule)
	for _, item := range items {
		if !item.IncludedInTotal {
			continue
		}
		entry := ScheduleEntry{
			FacilityProfileID: item.FacilityProfileID,
			FacilityUUID:      item.FacilityUUID,
			LocationName:      item.LocationName,
			Frequency:         item.EffectiveFrequency,
		}
		for _, day := range item.EffectiveDaysOfWeek {
			if day < 0 || day > 6 {
				continue
			}
			schedule[day] = append(schedule[day], entry)
		}
	}
	return schedule
}
