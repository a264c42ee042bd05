// Package session implements the head-unit side of the AAP session
// state machine: version negotiation, TLS handshake tunneling, and
// the channel-multiplexer loop that runs once the session is secure.
package session

// Phase is the session's position in its lifecycle state machine.
type Phase int

const (
	// PhaseInit is the state before any bytes have been exchanged.
	PhaseInit Phase = iota

	// PhaseVersionSent is entered once the head unit has sent its
	// VersionRequest and is waiting for the phone's VersionResponse.
	PhaseVersionSent

	// PhaseTlsHandshaking is entered once version negotiation
	// succeeds; all traffic is TLS handshake bytes tunneled through
	// unencrypted control messages on channel 0.
	PhaseTlsHandshaking

	// PhaseRunning is entered once the TLS handshake completes.
	// Control and per-service traffic flows encrypted.
	PhaseRunning

	// PhaseTerminated is entered on any fatal error or explicit
	// shutdown; the session does not recover from this state.
	PhaseTerminated
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhaseVersionSent:
		return "VersionSent"
	case PhaseTlsHandshaking:
		return "TlsHandshaking"
	case PhaseRunning:
		return "Running"
	case PhaseTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}
