// File: civil_test.go
// Title: Civil Value Tests
// Description: Tests for CivilDateTime construction, the ToUTC conversion
//              table, and field comparison helpers.
// Version: v0.1.0
// Created: 2026-04-03
// Modified: 2026-04-03
//
// Change History:
// - 2026-04-03 v0.1.0: Initial test implementation

package datex

import (
	"testing"
	"time"
)

func TestFromTime(t *testing.T) {
	instant := time.Date(2026, time.January, 3, 14, 30, 45, 45000000, time.UTC)

	civil := FromTime(instant, KindUTC)

	expected := CivilDateTime{
		Year: 2026, Month: time.January, Day: 3,
		Hour: 14, Minute: 30, Second: 45, Nanosecond: 45000000,
		Kind: KindUTC,
	}
	if !civil.Equal(expected) {
		t.Errorf("FromTime = %+v, want %+v", civil, expected)
	}
}

func TestFromTimeIgnoresLocation(t *testing.T) {
	// Same wall clock in two locations must yield the same civil fields;
	// only the caller-supplied kind differs.
	zone := time.FixedZone("+05:00", 5*3600)
	inUTC := time.Date(2026, time.January, 3, 14, 30, 0, 0, time.UTC)
	inZone := time.Date(2026, time.January, 3, 14, 30, 0, 0, zone)

	a := FromTime(inUTC, KindUnspecified)
	b := FromTime(inZone, KindUnspecified)

	if !a.Equal(b) {
		t.Errorf("wall clock differs across locations: %+v vs %+v", a, b)
	}
}

func TestToUTCConversionTable(t *testing.T) {
	fields := CivilDateTime{
		Year: 2026, Month: time.July, Day: 15,
		Hour: 23, Minute: 45, Second: 10,
	}

	t.Run("utc source keeps fields", func(t *testing.T) {
		v := fields
		v.Kind = KindUTC

		got := v.ToUTC()
		if !got.EqualFields(fields) {
			t.Errorf("ToUTC changed fields of a UTC value: %+v", got)
		}
		if got.Kind != KindUTC {
			t.Errorf("Kind = %v, want KindUTC", got.Kind)
		}
	})

	t.Run("local source applies zone rules", func(t *testing.T) {
		v := fields
		v.Kind = KindLocal

		got := v.ToUTC()
		want := FromTime(time.Date(2026, time.July, 15, 23, 45, 10, 0, time.Local).In(time.UTC), KindUTC)
		if !got.Equal(want) {
			t.Errorf("ToUTC = %+v, want %+v", got, want)
		}
	})

	t.Run("unspecified behaves as local", func(t *testing.T) {
		asLocal := fields
		asLocal.Kind = KindLocal
		asUnspecified := fields
		asUnspecified.Kind = KindUnspecified

		if !asLocal.ToUTC().Equal(asUnspecified.ToUTC()) {
			t.Error("unspecified and local must convert identically")
		}
	})
}

func TestToUTCIsIdempotent(t *testing.T) {
	v := CivilDateTime{Year: 2026, Month: time.March, Day: 29, Hour: 2, Minute: 30, Kind: KindLocal}

	once := v.ToUTC()
	twice := once.ToUTC()

	if !once.Equal(twice) {
		t.Errorf("second conversion changed the value: %+v vs %+v", once, twice)
	}
}

func TestMillisecond(t *testing.T) {
	testCases := []struct {
		name       string
		nanosecond int
		expected   int
	}{
		{"zero", 0, 0},
		{"exact milliseconds", 45000000, 45},
		{"truncates sub-millisecond part", 45999999, 45},
		{"maximum", 999000000, 999},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := CivilDateTime{Nanosecond: tc.nanosecond}
			if got := v.Millisecond(); got != tc.expected {
				t.Errorf("Millisecond() = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestEqualFields(t *testing.T) {
	a := CivilDateTime{Year: 2026, Month: time.January, Day: 3, Kind: KindLocal}
	b := CivilDateTime{Year: 2026, Month: time.January, Day: 3, Kind: KindUTC}
	c := CivilDateTime{Year: 2026, Month: time.January, Day: 4, Kind: KindLocal}

	if !a.EqualFields(b) {
		t.Error("EqualFields must ignore the kind")
	}
	if a.Equal(b) {
		t.Error("Equal must not ignore the kind")
	}
	if a.EqualFields(c) {
		t.Error("EqualFields must compare the wall-clock fields")
	}
}

func TestCivilString(t *testing.T) {
	v := CivilDateTime{Year: 2026, Month: time.January, Day: 3, Hour: 9, Minute: 5, Second: 7}

	if got, want := v.String(), "2026-01-03T09:05:07"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
