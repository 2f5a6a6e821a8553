package game

import (
	"github.com/michaelamar-1/blackjack/internal/deck"
)

// Hand is an ordered sequence of cards belonging to one participant.
// It only ever grows; scores are recomputed, never cached.
type Hand []deck.Card

// Add appends a dealt card to the hand
func (h *Hand) Add(c deck.Card) {
	*h = append(*h, c)
}

// Score returns the best blackjack total for the hand. Every Ace is
// counted as 11 first, then demoted to 1 while the total busts. The
// result is the maximal total <= 21 when one exists, otherwise the
// minimal bust total.
func (h Hand) Score() int {
	total, aces := 0, 0
	for _, c := range h {
		total += c.BlackjackValue()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// HardScore returns the total with every Ace counted as 1.
func (h Hand) HardScore() int {
	total := 0
	for _, c := range h {
		if c.IsAce() {
			total++
		} else {
			total += c.BlackjackValue()
		}
	}
	return total
}

// IsSoft reports whether the hand has two valid readings, i.e. an Ace
// is still counted as 11 and could count as 1 instead.
func (h Hand) IsSoft() bool {
	for _, c := range h {
		if c.IsAce() {
			return h.HardScore()+10 <= 21
		}
	}
	return false
}

// IsNatural reports whether the hand is a natural blackjack: exactly
// two cards, an Ace plus a ten-value card. A 21 reached via hits is
// never a natural.
func (h Hand) IsNatural() bool {
	if len(h) != 2 {
		return false
	}
	return (h[0].IsAce() && h[1].IsTenValue()) || (h[1].IsAce() && h[0].IsTenValue())
}

// CanSplit reports whether the two initial cards have equal blackjack
// value. Card value, not rank identity: a ten and a king qualify.
func (h Hand) CanSplit() bool {
	return len(h) == 2 && h[0].BlackjackValue() == h[1].BlackjackValue()
}

// IsAcePair reports whether the hand is a pair of Aces, which forces
// the split.
func (h Hand) IsAcePair() bool {
	return len(h) == 2 && h[0].IsAce() && h[1].IsAce()
}

// View builds a display snapshot of the hand. hideHole marks the
// second card as hidden from the player (dealer's hole card before
// resolution).
func (h Hand) View(hideHole bool) HandView {
	return HandView{
		Cards:     append([]deck.Card(nil), h...),
		Score:     h.Score(),
		HardScore: h.HardScore(),
		Soft:      h.IsSoft(),
		Natural:   h.IsNatural(),
		HideHole:  hideHole,
	}
}
