package serviceability

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Verdict messages shown to the customer, per check flow.
const (
	MsgPincodeDeliverable    = "Deliverable to this pincode."
	MsgPincodeNotDeliverable = "We do not deliver to this pincode."
	MsgPincodeCheckFailed    = "Could not verify pincode."
	MsgAddressDeliverable    = "Deliverable to selected address."
	MsgAddressNotServiceable = "Selected address is not serviceable."
	MsgAddressCheckFailed    = "Could not verify address."
)

// State is the gate's check lifecycle.
type State int

const (
	StateUnknown State = iota
	StateChecking
	StateServiceable
	StateNotServiceable
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateServiceable:
		return "serviceable"
	case StateNotServiceable:
		return "not_serviceable"
	default:
		return "unknown"
	}
}

// Verdict is one completed serviceability decision.
type Verdict struct {
	Serviceable bool   `json:"serviceable"`
	Message     string `json:"message"`
	Pincode     string `json:"pincode,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
}

// Checker performs the remote lookup behind the gate.
type Checker interface {
	CheckPincode(ctx context.Context, code string) (Verdict, error)
	CheckAddress(ctx context.Context, addressID uint) (Verdict, error)
}

// Gate owns the serviceability state for one page session. Checks carry a
// generation so a stale completion never overwrites a newer verdict, and any
// lookup failure lands on NotServiceable.
type Gate struct {
	mu         sync.Mutex
	checker    Checker
	signedIn   bool
	addressID  *uint
	state      State
	verdict    *Verdict
	generation uint64
}

// NewGate builds a gate in the Unknown state.
func NewGate(checker Checker, signedIn bool) (*Gate, error) {
	if checker == nil {
		return nil, fmt.Errorf("serviceability checker required")
	}
	return &Gate{checker: checker, signedIn: signedIn}, nil
}

// CheckPincode verifies a typed pincode and applies the verdict unless a
// newer check has started in the meantime.
func (g *Gate) CheckPincode(ctx context.Context, code string) Verdict {
	code = strings.TrimSpace(code)
	gen := g.begin()

	verdict, err := g.checker.CheckPincode(ctx, code)
	if err != nil {
		verdict = Verdict{Serviceable: false, Message: MsgPincodeCheckFailed, Pincode: code}
	}

	g.apply(gen, verdict)
	return verdict
}

// SelectAddress records the new address, resets the verdict to Unknown, and
// immediately re-verifies (auto-verify-on-change).
func (g *Gate) SelectAddress(ctx context.Context, addressID uint) Verdict {
	g.mu.Lock()
	id := addressID
	g.addressID = &id
	g.state = StateUnknown
	g.verdict = nil
	g.mu.Unlock()

	return g.CheckAddress(ctx, addressID)
}

// CheckAddress verifies the given address. The result is discarded when the
// selected address has changed since the check started.
func (g *Gate) CheckAddress(ctx context.Context, addressID uint) Verdict {
	gen := g.begin()

	verdict, err := g.checker.CheckAddress(ctx, addressID)
	if err != nil {
		verdict = Verdict{Serviceable: false, Message: MsgAddressCheckFailed}
	}

	g.applyForAddress(gen, addressID, verdict)
	return verdict
}

// CanPurchase is false until a check lands on Serviceable. Signed-in sessions
// additionally require a selected address.
func (g *Gate) CanPurchase() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.signedIn {
		return g.addressID != nil && g.state == StateServiceable
	}
	return g.state == StateServiceable
}

// State returns the current lifecycle state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// CurrentVerdict returns the last applied verdict, nil while Unknown/Checking.
func (g *Gate) CurrentVerdict() *Verdict {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.verdict == nil {
		return nil
	}
	v := *g.verdict
	return &v
}

func (g *Gate) begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.generation++
	g.state = StateChecking
	return g.generation
}

func (g *Gate) apply(gen uint64, verdict Verdict) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.generation {
		// A newer check owns the state now.
		return
	}
	g.setVerdict(verdict)
}

func (g *Gate) applyForAddress(gen uint64, addressID uint, verdict Verdict) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.generation {
		return
	}
	if g.addressID == nil || *g.addressID != addressID {
		return
	}
	g.setVerdict(verdict)
}

func (g *Gate) setVerdict(verdict Verdict) {
	v := verdict
	g.verdict = &v
	if verdict.Serviceable {
		g.state = StateServiceable
	} else {
		g.state = StateNotServiceable
	}
}
