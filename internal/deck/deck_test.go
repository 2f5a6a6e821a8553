package deck

import (
	"errors"
	"testing"

	"github.com/michaelamar-1/blackjack/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := New(randutil.New(1))
	if d.CardsRemaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.CardsRemaining())
	}

	seen := make(map[Card]bool)
	for {
		c, err := d.Deal()
		if err != nil {
			break
		}
		if seen[c] {
			t.Errorf("card %s dealt twice", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestDealRemovesExactlyOneCard(t *testing.T) {
	d := New(randutil.New(1))
	d.Shuffle()

	before := d.CardsRemaining()
	if _, err := d.Deal(); err != nil {
		t.Fatalf("Deal() error: %v", err)
	}
	if d.CardsRemaining() != before-1 {
		t.Errorf("expected %d cards after deal, got %d", before-1, d.CardsRemaining())
	}
}

func TestDealFromEmptyDeck(t *testing.T) {
	d := New(randutil.New(1))
	for i := 0; i < 52; i++ {
		if _, err := d.Deal(); err != nil {
			t.Fatalf("unexpected error on deal %d: %v", i, err)
		}
	}
	if _, err := d.Deal(); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("expected ErrEmptyDeck, got %v", err)
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a := New(randutil.New(42))
	b := New(randutil.New(42))
	a.Shuffle()
	b.Shuffle()

	for i := 0; i < 52; i++ {
		ca, _ := a.Deal()
		cb, _ := b.Deal()
		if ca != cb {
			t.Fatalf("deal %d differs: %s vs %s", i, ca, cb)
		}
	}
}

func TestResetRestoresFullDeck(t *testing.T) {
	d := New(randutil.New(7))
	d.Shuffle()
	for i := 0; i < 20; i++ {
		if _, err := d.Deal(); err != nil {
			t.Fatalf("Deal() error: %v", err)
		}
	}

	d.Reset()
	if d.CardsRemaining() != 52 {
		t.Errorf("expected 52 cards after reset, got %d", d.CardsRemaining())
	}
}

func TestStackedDealsInOrder(t *testing.T) {
	want := []Card{
		NewCard(Spades, Ace),
		NewCard(Hearts, King),
		NewCard(Diamonds, Five),
	}
	d := Stacked(want...)

	for i, expected := range want {
		c, err := d.Deal()
		if err != nil {
			t.Fatalf("Deal() error: %v", err)
		}
		if c != expected {
			t.Errorf("deal %d = %s, want %s", i, c, expected)
		}
	}
	if _, err := d.Deal(); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("expected ErrEmptyDeck after stacked cards run out, got %v", err)
	}
}

func TestStackedResetRestoresSequence(t *testing.T) {
	d := Stacked(NewCard(Spades, Ace), NewCard(Hearts, King))
	if _, err := d.Deal(); err != nil {
		t.Fatalf("Deal() error: %v", err)
	}

	d.Reset()
	c, err := d.Deal()
	if err != nil {
		t.Fatalf("Deal() error: %v", err)
	}
	if c != NewCard(Spades, Ace) {
		t.Errorf("expected A♠ after reset, got %s", c)
	}
}
