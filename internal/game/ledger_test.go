package game

import (
	"errors"
	"testing"
)

func TestLedgerPlaceBet(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		bet     int
		wantErr bool
	}{
		{name: "minimum bet", balance: 100, bet: 1},
		{name: "full balance", balance: 100, bet: 100},
		{name: "zero bet", balance: 100, bet: 0, wantErr: true},
		{name: "negative bet", balance: 100, bet: -5, wantErr: true},
		{name: "over balance", balance: 100, bet: 101, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(tt.balance)
			err := l.PlaceBet(tt.bet)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBet) {
					t.Errorf("expected ErrInvalidBet, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLedgerApply(t *testing.T) {
	l := NewLedger(1000)
	l.Apply(150)
	if l.Balance() != 1150 {
		t.Errorf("expected 1150, got %d", l.Balance())
	}
	l.Apply(-1150)
	if l.Balance() != 0 {
		t.Errorf("expected 0, got %d", l.Balance())
	}
}

func TestLedgerBroke(t *testing.T) {
	l := NewLedger(1)
	if l.Broke() {
		t.Error("balance of 1 is not broke")
	}
	l.Apply(-1)
	if !l.Broke() {
		t.Error("balance of 0 is broke")
	}
}
