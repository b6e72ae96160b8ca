package core

import "testing"

func TestRuntimeConfigWithDefaults(t *testing.T) {
	got := RuntimeConfig{}.WithDefaults(42)
	want := RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	if got != want {
		t.Errorf("WithDefaults() = %+v, want %+v", got, want)
	}

	set := RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 7}
	if got := set.WithDefaults(42); got != set {
		t.Errorf("WithDefaults() changed set fields: %+v", got)
	}

	neg := RuntimeConfig{ScreenW: -1, TickRate: -5}.WithDefaults(1)
	if neg.ScreenW != 80 || neg.TickRate != 60 {
		t.Errorf("negative fields should be replaced: %+v", neg)
	}
}
