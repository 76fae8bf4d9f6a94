package availability

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hrkit/interviewd/internal/timeslot"
)

func slot(day string, hour, minute int) timeslot.Slot {
	return timeslot.Slot{Day: day, Hour: hour, Minute: minute}
}

func Test_Add_idempotent(t *testing.T) {
	s := New()

	require.True(t, s.Add(slot("Monday", 10, 0)))
	require.False(t, s.Add(slot("Monday", 10, 0)))
	require.Equal(t, 1, s.Len())

	require.True(t, s.Add(slot("Monday", 10, 15)))
	require.Equal(t, 2, s.Len())
}

func Test_Contains(t *testing.T) {
	s := Of(slot("Friday", 14, 0))

	require.True(t, s.Contains(slot("Friday", 14, 0)))
	require.False(t, s.Contains(slot("Friday", 14, 15)))
	require.False(t, s.Contains(slot("Monday", 14, 0)))
}

func Test_Slots_snapshot(t *testing.T) {
	s := Of(slot("Tuesday", 9, 0))

	snap := s.Slots()
	s.Add(slot("Tuesday", 9, 15))

	require.Len(t, snap, 1)
	require.Equal(t, 2, s.Len())
}

func Test_Slots_ordered(t *testing.T) {
	s := Of(
		slot("Sunday", 8, 0),
		slot("Monday", 12, 45),
		slot("Monday", 12, 30),
		slot("Friday", 9, 0),
	)

	require.Equal(t, []timeslot.Slot{
		slot("Monday", 12, 30),
		slot("Monday", 12, 45),
		slot("Friday", 9, 0),
		slot("Sunday", 8, 0),
	}, s.Slots())
}

func Test_Intersect(t *testing.T) {
	type testcase struct {
		name string
		a    Set
		b    Set
		want []timeslot.Slot
	}

	tests := [...]testcase{
		{
			name: "disjoint",
			a:    Of(slot("Monday", 10, 0)),
			b:    Of(slot("Monday", 10, 15)),
			want: nil,
		},
		{
			name: "partial overlap",
			a:    Of(slot("Monday", 10, 0), slot("Tuesday", 12, 0), slot("Friday", 14, 0)),
			b:    Of(slot("Tuesday", 12, 0), slot("Friday", 14, 0), slot("Friday", 14, 15)),
			want: []timeslot.Slot{slot("Tuesday", 12, 0), slot("Friday", 14, 0)},
		},
		{
			name: "one side empty",
			a:    New(),
			b:    Of(slot("Monday", 10, 0)),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Intersect(tt.b))

			// symmetric as a set regardless of which side is smaller
			require.Equal(t, tt.want, tt.b.Intersect(tt.a))
		})
	}
}
