package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(i int) *int { return &i }

func TestMonthlyOverrideValidatePauseRange(t *testing.T) {
	o := &MonthlyOverride{FacilityProfileID: 1, Year: 2021, Month: 3}
	require.NoError(t, o.Validate())

	o.PauseStartDay = intp(16)
	o.PauseEndDay = intp(27)
	require.NoError(t, o.Validate())

	o.PauseEndDay = nil
	assert.ErrorIs(t, o.Validate(), ErrHalfOpenPauseRange)

	o.PauseStartDay = nil
	o.PauseEndDay = intp(27)
	assert.ErrorIs(t, o.Validate(), ErrHalfOpenPauseRange)

	o.PauseStartDay = intp(28)
	assert.ErrorIs(t, o.Validate(), ErrInvertedPauseRange)

	o.PauseStartDay = intp(0)
	o.PauseEndDay = intp(10)
	assert.Error(t, o.Validate(), "day below 1 must fail")

	o.PauseStartDay = intp(10)
	o.PauseEndDay = intp(32)
	assert.Error(t, o.Validate(), "day above 31 must fail")
}

func TestMonthlyOverrideValidateFields(t *testing.T) {
	bad := "retired"
	o := &MonthlyOverride{FacilityProfileID: 1, Year: 2021, Month: 3, OverrideStatus: &bad}
	assert.Error(t, o.Validate())

	o = &MonthlyOverride{FacilityProfileID: 1, Year: 2021, Month: 13}
	assert.Error(t, o.Validate())

	freq := 9
	o = &MonthlyOverride{FacilityProfileID: 1, Year: 2021, Month: 3, OverrideFrequency: &freq}
	assert.Error(t, o.Validate())

	o = &MonthlyOverride{FacilityProfileID: 1, Year: 2021, Month: 3, OverrideDaysOfWeek: "1,8"}
	assert.Error(t, o.Validate())
}

func TestMonthlyOverrideWeekdays(t *testing.T) {
	o := &MonthlyOverride{OverrideDaysOfWeek: "2,4"}
	assert.Equal(t, []int{2, 4}, o.Weekdays())

	o = &MonthlyOverride{}
	assert.Nil(t, o.Weekdays(), "empty set means inherit")
}
