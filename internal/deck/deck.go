package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyDeck is returned when a deal is attempted on a depleted deck.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck represents an ordered deck of playing cards. Cards are dealt
// from the end of the sequence and never returned until Reset.
type Deck struct {
	cards   []Card
	stacked []Card // fixed order for rigged decks; nil for real play
	rng     *rand.Rand
}

// New creates a standard 52-card deck in canonical order (suit-major,
// rank-minor). The RNG is required to make shuffling deterministic in
// tests; use randutil.New for production seeding.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.fill()
	return d
}

// Stacked creates a deck that deals the given cards in order, and
// re-deals the same sequence after every Reset. Used to rig specific
// hands in tests.
func Stacked(cards ...Card) *Deck {
	stacked := make([]Card, len(cards))
	// Dealing pops from the end, so store in reverse.
	for i, c := range cards {
		stacked[len(cards)-1-i] = c
	}
	d := &Deck{stacked: stacked}
	d.cards = append(d.cards, stacked...)
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Reset restores the deck to a full 52-card deck and shuffles it.
// The session resets before every round so a long session can never
// run the shoe dry mid-hand. A stacked deck restores its fixed
// sequence instead.
func (d *Deck) Reset() {
	if d.stacked != nil {
		d.cards = append(d.cards[:0], d.stacked...)
		return
	}
	d.fill()
	d.Shuffle()
}
