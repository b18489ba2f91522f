package icedrift

import (
	"reflect"
	"testing"
)

func TestSimulateCountsRounds(t *testing.T) {
	report := SimulateRTP(50, 10, 0, 1)

	if report.Rounds != 50 {
		t.Fatalf("Rounds = %d, want 50", report.Rounds)
	}
	if report.TotalStaked != 500 {
		t.Errorf("TotalStaked = %v, want 500", report.TotalStaked)
	}
	if report.Crashes+report.Lifeboats != 50 {
		t.Errorf("Crashes + Lifeboats = %d, want 50", report.Crashes+report.Lifeboats)
	}
}

func TestSimulateNeverCashOut(t *testing.T) {
	report := SimulateRTP(2000, 10, 0, 7)

	if report.CashOuts != 0 {
		t.Errorf("CashOuts = %d, want 0", report.CashOuts)
	}
	// Without cash-outs only lifeboat rescues return money, so the RTP
	// must sit far below break-even.
	if report.RTP < 0 || report.RTP > 0.6 {
		t.Errorf("ride-it-out RTP = %v, want well below 1", report.RTP)
	}
	if report.AvgSafeHits <= 0 {
		t.Errorf("AvgSafeHits = %v, want > 0", report.AvgSafeHits)
	}
}

func TestSimulateEarlyCashOut(t *testing.T) {
	report := SimulateRTP(2000, 10, 1, 7)

	if report.CashOuts == 0 {
		t.Fatal("expected some cash-outs with cash-after=1")
	}
	// Cashing out at the first safe contact should return a substantial
	// share of the stake but stay inside sane bounds.
	if report.RTP < 0.3 || report.RTP > 1.2 {
		t.Errorf("early cash-out RTP = %v, want within (0.3, 1.2)", report.RTP)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a := SimulateRTP(200, 10, 2, 42)
	b := SimulateRTP(200, 10, 2, 42)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("reports differ for the same seed:\n%+v\n%+v", a, b)
	}
}

func TestSimulateRejectsBadInput(t *testing.T) {
	if report := SimulateRTP(0, 10, 0, 1); report.Rounds != 0 {
		t.Errorf("zero rounds produced %d rounds", report.Rounds)
	}
	if report := SimulateRTP(10, 0, 0, 1); report.Rounds != 0 {
		t.Errorf("zero bet produced %d rounds", report.Rounds)
	}
}
