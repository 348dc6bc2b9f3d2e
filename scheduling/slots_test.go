package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name        string
		window      DayWindow
		duration    int
		granularity int
		want        int
		first       string
		last        string
	}{
		{
			name:        "full day 30 minute slots",
			window:      DayWindow{IsOpen: true, Open: 9 * 60, Close: 17 * 60},
			duration:    30,
			granularity: 30,
			want:        16,
			first:       "09:00",
			last:        "16:30",
		},
		{
			name:        "60 minute duration on 30 minute grid",
			window:      DayWindow{IsOpen: true, Open: 10 * 60, Close: 12 * 60},
			duration:    60,
			granularity: 30,
			want:        3,
			first:       "10:00",
			last:        "11:00",
		},
		{
			name:        "duration longer than window yields nothing",
			window:      DayWindow{IsOpen: true, Open: 9 * 60, Close: 10 * 60},
			duration:    90,
			granularity: 30,
			want:        0,
		},
		{
			name:        "closed window yields nothing",
			window:      DayWindow{IsOpen: false},
			duration:    30,
			granularity: 30,
			want:        0,
		},
		{
			name:        "zero granularity yields nothing",
			window:      DayWindow{IsOpen: true, Open: 9 * 60, Close: 17 * 60},
			duration:    30,
			granularity: 0,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(tt.window, tt.duration, tt.granularity)
			assert.Len(t, slots, tt.want)
			if tt.want == 0 {
				return
			}
			assert.Equal(t, tt.first, FormatClock(slots[0]))
			assert.Equal(t, tt.last, FormatClock(slots[len(slots)-1]))
			// Every slot's full duration fits before close.
			for _, start := range slots {
				assert.LessOrEqual(t, start+tt.duration, tt.window.Close)
			}
		})
	}
}
