package enum

import "testing"

func TestKOTStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from KOTStatus
		to   KOTStatus
		want bool
	}{
		{"new to in progress", KOTNew, KOTInProgress, true},
		{"new to ready skips ahead", KOTNew, KOTReady, true},
		{"in progress to ready", KOTInProgress, KOTReady, true},
		{"ready to done", KOTReady, KOTDone, true},
		{"ready back to new", KOTReady, KOTNew, false},
		{"done is terminal", KOTDone, KOTCancelled, false},
		{"cancel from new", KOTNew, KOTCancelled, true},
		{"cancel from ready", KOTReady, KOTCancelled, true},
		{"cancelled is terminal", KOTCancelled, KOTNew, false},
		{"cancelled stays cancelled", KOTCancelled, KOTCancelled, false},
		{"unknown target", KOTNew, KOTStatus("BURNED"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
