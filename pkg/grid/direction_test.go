package grid

import (
	"testing"

	"go-grid-defense/pkg/utils"
)

func TestDirectionChangeTo(t *testing.T) {
	tests := []struct {
		from, to Direction
		want     DirectionChange
	}{
		{North, North, None},
		{North, East, TurnRight},
		{North, West, TurnLeft},
		{North, South, TurnAround},
		{East, South, TurnRight},
		{East, North, TurnLeft},
		{South, West, TurnRight},
		{South, East, TurnLeft},
		{West, North, TurnRight},
		{West, South, TurnLeft},
		{West, East, TurnAround},
	}
	for _, tt := range tests {
		if got := tt.from.ChangeTo(tt.to); got != tt.want {
			t.Errorf("%v.ChangeTo(%v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDirectionGeometry(t *testing.T) {
	for d := North; d <= West; d++ {
		if got, want := d.Angle(), float64(d)*90; got != want {
			t.Errorf("%v.Angle() = %v, want %v", d, got, want)
		}
		if got, want := d.HalfVector(), d.Rotation().Scale(0.5); got != want {
			t.Errorf("%v.HalfVector() = %v, want %v", d, got, want)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite() is not an involution", d)
		}
		if d.ChangeTo(d.Opposite()) != TurnAround {
			t.Errorf("%v to its opposite should be a turn around", d)
		}

		forward, _ := utils.HeadingVectors(d.Angle())
		rot := d.Rotation()
		if diff := forward.Sub(rot).Len(); diff > 1e-9 {
			t.Errorf("%v: heading vector %v does not match rotation %v", d, forward, rot)
		}
	}
}
