package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", day(2013, 1, 1), day(2013, 1, 1), 0},
		{"partial month rounds down", day(2013, 1, 15), day(2013, 2, 14), 0},
		{"exact month", day(2013, 1, 15), day(2013, 2, 15), 1},
		{"fourteen and a half months", day(2013, 1, 1), day(2014, 3, 16), 14},
		{"across years", day(2012, 11, 1), day(2013, 2, 1), 3},
		{"reversed arguments", day(2013, 6, 1), day(2013, 1, 1), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.a, tt.b))
		})
	}
}

func TestYearsBetween(t *testing.T) {
	assert.Equal(t, 33, YearsBetween(day(1980, 6, 15), day(2014, 3, 1)))
	assert.Equal(t, 34, YearsBetween(day(1980, 6, 15), day(2014, 6, 15)))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 428.57, Round2(6000.0/14.0))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -1.23, Round2(-1.2349))
	assert.Equal(t, 2.0, Round2(1.999))
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "2013-02", FormatMonth(day(2013, 2, 28)))
}
