package timestate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"timepick/internal/domain"
	"timepick/internal/timestate"
)

// recorder collects notifications as "HH:MM" strings.
type recorder struct{ got []string }

func (r *recorder) observe(v domain.TimeValue) { r.got = append(r.got, v.String()) }

func TestSetHours(t *testing.T) {
	for h := 0; h < 24; h++ {
		s := timestate.New(domain.MustTimeValue(12, 30))
		assert.True(t, s.SetHours(h))
		assert.Equal(t, h, s.Value().Hours())
		assert.Equal(t, 30, s.Value().Minutes(), "minutes must not change")
	}
}

func TestSetHours_OutOfRangeIsRejected(t *testing.T) {
	for _, h := range []int{-1, 24, 25, 99, -24} {
		s := timestate.New(domain.MustTimeValue(12, 30))
		rec := &recorder{}
		s.Subscribe(rec.observe)

		assert.False(t, s.SetHours(h), "hours %d", h)
		assert.Equal(t, domain.MustTimeValue(12, 30), s.Value())
		assert.Empty(t, rec.got)
	}
}

func TestSetMinutes(t *testing.T) {
	for m := 0; m < 60; m++ {
		s := timestate.New(domain.MustTimeValue(12, 30))
		assert.True(t, s.SetMinutes(m))
		assert.Equal(t, m, s.Value().Minutes())
		assert.Equal(t, 12, s.Value().Hours(), "hours must not change")
	}
	for _, m := range []int{-1, 60, 61} {
		s := timestate.New(domain.MustTimeValue(12, 30))
		assert.False(t, s.SetMinutes(m), "minutes %d", m)
		assert.Equal(t, 30, s.Value().Minutes())
	}
}

func TestWraparound(t *testing.T) {
	tests := []struct {
		name  string
		start domain.TimeValue
		step  func(*timestate.State)
		want  domain.TimeValue
	}{
		{"increment hours at 23", domain.MustTimeValue(23, 15), (*timestate.State).IncrementHours, domain.MustTimeValue(0, 15)},
		{"decrement hours at 0", domain.MustTimeValue(0, 15), (*timestate.State).DecrementHours, domain.MustTimeValue(23, 15)},
		{"increment minutes at 59", domain.MustTimeValue(8, 59), (*timestate.State).IncrementMinutes, domain.MustTimeValue(8, 0)},
		{"decrement minutes at 0", domain.MustTimeValue(8, 0), (*timestate.State).DecrementMinutes, domain.MustTimeValue(8, 59)},
		{"increment hours", domain.MustTimeValue(9, 0), (*timestate.State).IncrementHours, domain.MustTimeValue(10, 0)},
		{"decrement minutes", domain.MustTimeValue(9, 10), (*timestate.State).DecrementMinutes, domain.MustTimeValue(9, 9)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := timestate.New(tc.start)
			tc.step(s)
			assert.Equal(t, tc.want, s.Value())
		})
	}
}

func TestFullCycleReturnsToStart(t *testing.T) {
	s := timestate.New(domain.MustTimeValue(5, 17))
	for i := 0; i < 24; i++ {
		s.IncrementHours()
	}
	for i := 0; i < 60; i++ {
		s.DecrementMinutes()
	}
	assert.Equal(t, domain.MustTimeValue(5, 17), s.Value())
}

func TestSubscribe_NotifiesAfterCommitInOrder(t *testing.T) {
	s := timestate.New(domain.MustTimeValue(23, 59))

	var seen []string
	s.Subscribe(func(v domain.TimeValue) {
		// The state must already hold the value being announced.
		seen = append(seen, "first "+v.String()+" "+s.Value().String())
	})
	s.Subscribe(func(v domain.TimeValue) {
		seen = append(seen, "second "+v.String())
	})

	s.IncrementMinutes()
	s.IncrementHours()
	s.SetHours(42)

	want := []string{
		"first 23:00 23:00", "second 23:00",
		"first 00:00 00:00", "second 00:00",
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s := timestate.New(domain.TimeValue{})
	a, b := &recorder{}, &recorder{}
	unsubA := s.Subscribe(a.observe)
	s.Subscribe(b.observe)

	s.IncrementHours()
	unsubA()
	unsubA()
	s.IncrementHours()

	assert.Equal(t, []string{"01:00"}, a.got)
	assert.Equal(t, []string{"01:00", "02:00"}, b.got)
}

func TestSubscribe_UnsubscribeDuringNotification(t *testing.T) {
	s := timestate.New(domain.TimeValue{})
	rec := &recorder{}
	var unsub func()
	unsub = s.Subscribe(func(domain.TimeValue) { unsub() })
	s.Subscribe(rec.observe)

	s.IncrementMinutes()
	s.IncrementMinutes()

	assert.Equal(t, []string{"00:01", "00:02"}, rec.got)
}
