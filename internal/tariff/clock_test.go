package tariff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

func TestParseClockTime(t *testing.T) {
	subTests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:30", 390, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"12", 0, true},
		{"", 0, true},
	}
	for _, subTest := range subTests {
		t.Run(subTest.in, func(t *testing.T) {
			got, err := ParseClockTime(subTest.in)
			if subTest.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, subTest.want, got)
		})
	}
}

func TestTimeInRangeOvernightWrap(t *testing.T) {
	mustMinutes := func(s string) int {
		m, err := ParseClockTime(s)
		require.NoError(t, err)
		return m
	}

	subTests := []struct {
		name             string
		time, start, end string
		want             bool
	}{
		{"InsideWrapBeforeMidnight", "23:30", "22:00", "06:00", true},
		{"InsideWrapAfterMidnight", "03:00", "22:00", "06:00", true},
		{"OutsideWrap", "12:00", "22:00", "06:00", false},
		{"WrapUpperBoundExclusive", "06:00", "22:00", "06:00", false},
		{"WrapLowerBoundInclusive", "22:00", "22:00", "06:00", true},
		{"SameDayInside", "08:00", "07:00", "10:00", true},
		{"SameDayUpperBoundExclusive", "10:00", "07:00", "10:00", false},
		{"SameDayLowerBoundInclusive", "07:00", "07:00", "10:00", true},
	}
	for _, subTest := range subTests {
		t.Run(subTest.name, func(t *testing.T) {
			got := timeInRange(mustMinutes(subTest.time), mustMinutes(subTest.start), mustMinutes(subTest.end))
			assert.Equal(t, subTest.want, got)
		})
	}
}

func TestPeriodForPrecedence(t *testing.T) {
	// Peak and standard deliberately overlap over 08:00-09:00; peak is
	// declared first and must win.
	overlapping := domain.TimePeriods{
		Peak:     []domain.TimePeriod{{Start: "08:00", End: "10:00"}},
		Standard: []domain.TimePeriod{{Start: "07:00", End: "18:00"}},
		OffPeak:  []domain.TimePeriod{{Start: "22:00", End: "06:00"}},
	}

	m, err := ParseClockTime("08:30")
	require.NoError(t, err)
	assert.Equal(t, "peak", PeriodFor(m, overlapping))

	m, err = ParseClockTime("12:00")
	require.NoError(t, err)
	assert.Equal(t, "standard", PeriodFor(m, overlapping))

	m, err = ParseClockTime("23:00")
	require.NoError(t, err)
	assert.Equal(t, "offPeak", PeriodFor(m, overlapping))
}

func TestPeriodForFallback(t *testing.T) {
	m, err := ParseClockTime("12:00")
	require.NoError(t, err)

	assert.Equal(t, "standard", PeriodFor(m, domain.TimePeriods{}))

	malformed := domain.TimePeriods{
		Peak: []domain.TimePeriod{{Start: "late", End: "later"}},
	}
	assert.Equal(t, "standard", PeriodFor(m, malformed))

	// Gap between configured windows also bills at standard.
	gappy := domain.TimePeriods{
		Peak:    []domain.TimePeriod{{Start: "07:00", End: "10:00"}},
		OffPeak: []domain.TimePeriod{{Start: "22:00", End: "06:00"}},
	}
	assert.Equal(t, "standard", PeriodFor(m, gappy))
}
