package serviceability

import (
	"context"
	"errors"
	"testing"
)

type stubChecker struct {
	pincodeFn func(ctx context.Context, code string) (Verdict, error)
	addressFn func(ctx context.Context, addressID uint) (Verdict, error)
}

func (c *stubChecker) CheckPincode(ctx context.Context, code string) (Verdict, error) {
	return c.pincodeFn(ctx, code)
}

func (c *stubChecker) CheckAddress(ctx context.Context, addressID uint) (Verdict, error) {
	return c.addressFn(ctx, addressID)
}

func serviceableChecker() *stubChecker {
	return &stubChecker{
		pincodeFn: func(_ context.Context, code string) (Verdict, error) {
			return Verdict{Serviceable: true, Message: MsgPincodeDeliverable, Pincode: code}, nil
		},
		addressFn: func(_ context.Context, _ uint) (Verdict, error) {
			return Verdict{Serviceable: true, Message: MsgAddressDeliverable}, nil
		},
	}
}

func TestCannotPurchaseWhileUnknown(t *testing.T) {
	for _, signedIn := range []bool{true, false} {
		g, err := NewGate(serviceableChecker(), signedIn)
		if err != nil {
			t.Fatalf("NewGate failed: %v", err)
		}
		if g.CanPurchase() {
			t.Fatalf("signedIn=%v: purchase must be blocked before any check", signedIn)
		}
		if g.State() != StateUnknown {
			t.Fatalf("expected unknown state, got %s", g.State())
		}
	}
}

func TestAnonymousDeniedPincode(t *testing.T) {
	checker := &stubChecker{
		pincodeFn: func(_ context.Context, code string) (Verdict, error) {
			return Verdict{Serviceable: false, Message: MsgPincodeNotDeliverable, Pincode: code}, nil
		},
	}
	g, _ := NewGate(checker, false)

	verdict := g.CheckPincode(context.Background(), "560001")

	if verdict.Message != "We do not deliver to this pincode." {
		t.Fatalf("unexpected message %q", verdict.Message)
	}
	if g.CanPurchase() {
		t.Fatal("denied pincode must block purchase")
	}
	if g.State() != StateNotServiceable {
		t.Fatalf("expected not_serviceable, got %s", g.State())
	}
}

func TestAnonymousServiceablePincodeAllowsPurchase(t *testing.T) {
	g, _ := NewGate(serviceableChecker(), false)

	g.CheckPincode(context.Background(), " 560001 ")

	if !g.CanPurchase() {
		t.Fatal("anonymous session with serviceable verdict must allow purchase")
	}
	if v := g.CurrentVerdict(); v == nil || v.Pincode != "560001" {
		t.Fatalf("expected trimmed pincode in verdict, got %+v", v)
	}
}

func TestSignedInRequiresSelectedAddress(t *testing.T) {
	g, _ := NewGate(serviceableChecker(), true)

	// A serviceable pincode alone is not enough when signed in.
	g.CheckPincode(context.Background(), "560001")
	if g.CanPurchase() {
		t.Fatal("signed-in session must also have an address selected")
	}

	g.SelectAddress(context.Background(), 42)
	if !g.CanPurchase() {
		t.Fatal("serviceable verdict for selected address must allow purchase")
	}
}

func TestCheckerErrorFailsClosed(t *testing.T) {
	checker := &stubChecker{
		pincodeFn: func(_ context.Context, _ string) (Verdict, error) {
			return Verdict{}, errors.New("connection refused")
		},
		addressFn: func(_ context.Context, _ uint) (Verdict, error) {
			return Verdict{}, errors.New("connection refused")
		},
	}
	g, _ := NewGate(checker, true)

	verdict := g.CheckPincode(context.Background(), "560001")
	if verdict.Serviceable || verdict.Message != "Could not verify pincode." {
		t.Fatalf("unexpected pincode failure verdict %+v", verdict)
	}

	verdict = g.SelectAddress(context.Background(), 1)
	if verdict.Serviceable || verdict.Message != "Could not verify address." {
		t.Fatalf("unexpected address failure verdict %+v", verdict)
	}
	if g.CanPurchase() {
		t.Fatal("failed checks must block purchase")
	}
}

func TestSelectAddressResetsVerdict(t *testing.T) {
	block := make(chan Verdict)
	checker := &stubChecker{
		addressFn: func(_ context.Context, _ uint) (Verdict, error) {
			return <-block, nil
		},
	}
	g, _ := NewGate(checker, true)

	done := make(chan Verdict)
	go func() { done <- g.SelectAddress(context.Background(), 1) }()

	// While the check is in flight the previous verdict is gone.
	if g.CurrentVerdict() != nil {
		t.Fatal("verdict must be cleared on address change")
	}

	block <- Verdict{Serviceable: true, Message: MsgAddressDeliverable}
	<-done

	if !g.CanPurchase() {
		t.Fatal("expected purchase allowed after serviceable verdict")
	}
}

func TestStaleAddressCheckDoesNotOverwriteNewerVerdict(t *testing.T) {
	started := make(chan uint)
	release := map[uint]chan Verdict{
		1: make(chan Verdict),
		2: make(chan Verdict),
	}
	checker := &stubChecker{
		addressFn: func(_ context.Context, id uint) (Verdict, error) {
			started <- id
			return <-release[id], nil
		},
	}
	g, _ := NewGate(checker, true)

	done1 := make(chan Verdict)
	go func() { done1 <- g.SelectAddress(context.Background(), 1) }()
	<-started

	done2 := make(chan Verdict)
	go func() { done2 <- g.SelectAddress(context.Background(), 2) }()
	<-started

	// Newer check for address 2 completes first.
	release[2] <- Verdict{Serviceable: true, Message: MsgAddressDeliverable}
	<-done2
	if !g.CanPurchase() {
		t.Fatal("expected serviceable verdict for address 2")
	}

	// Stale check for address 1 completes afterwards and must be discarded.
	release[1] <- Verdict{Serviceable: false, Message: MsgAddressNotServiceable}
	<-done1

	if g.State() != StateServiceable {
		t.Fatalf("stale verdict overwrote newer one, state %s", g.State())
	}
	if !g.CanPurchase() {
		t.Fatal("stale verdict must not block purchase")
	}
	if v := g.CurrentVerdict(); v == nil || !v.Serviceable {
		t.Fatalf("expected serviceable verdict retained, got %+v", v)
	}
}
