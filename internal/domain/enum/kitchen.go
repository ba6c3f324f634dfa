package enum

// KOTStatus is the state of a kitchen ticket. CANCELLED is terminal;
// reprints never change status.
type KOTStatus string

const (
	KOTNew        KOTStatus = "NEW"
	KOTInProgress KOTStatus = "IN_PROGRESS"
	KOTReady      KOTStatus = "READY"
	KOTDone       KOTStatus = "DONE"
	KOTCancelled  KOTStatus = "CANCELLED"
)

// Valid reports whether the status is a known value.
func (s KOTStatus) Valid() bool {
	switch s {
	case KOTNew, KOTInProgress, KOTReady, KOTDone, KOTCancelled:
		return true
	}
	return false
}

// kotOrder ranks the forward preparation flow.
var kotOrder = map[KOTStatus]int{
	KOTNew:        0,
	KOTInProgress: 1,
	KOTReady:      2,
	KOTDone:       3,
}

// CanTransitionTo reports whether a ticket may move from s to next.
// Preparation only moves forward; cancellation is allowed from any
// non-terminal state and is itself terminal.
func (s KOTStatus) CanTransitionTo(next KOTStatus) bool {
	if !next.Valid() || s == KOTCancelled || s == KOTDone {
		return false
	}
	if next == KOTCancelled {
		return true
	}
	return kotOrder[next] > kotOrder[s]
}
