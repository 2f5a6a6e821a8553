// Package display renders round state to the terminal and prompts the
// player for decisions. It is the interactive collaborator behind the
// game package's Agent, Observer and Cue interfaces; the engine hands
// it facts and it decides presentation.
package display

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/michaelamar-1/blackjack/internal/deck"
	"github.com/michaelamar-1/blackjack/internal/game"
)

const separatorWidth = 79

// Terminal implements game.Agent, game.Observer and game.Cue over a
// line-based terminal.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	output *termenv.Output
	styles Styles
	sound  bool
}

// Option configures a Terminal
type Option func(*Terminal)

// WithSound enables or disables the card-deal bell
func WithSound(enabled bool) Option {
	return func(t *Terminal) { t.sound = enabled }
}

// WithStyles overrides the default styles
func WithStyles(styles Styles) Option {
	return func(t *Terminal) { t.styles = styles }
}

// New creates a terminal over the given reader and writer
func New(in io.Reader, out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		output: termenv.NewOutput(out),
		styles: DefaultStyles(),
		sound:  true,
	}
	for _, opt := range opts {
		opt(t)
	}
	// Degrade styling to what the terminal actually supports.
	lipgloss.SetColorProfile(t.output.ColorProfile())
	return t
}

// PlaceBet implements game.Agent. Invalid input is recovered locally
// by re-prompting, never surfaced as fatal.
func (t *Terminal) PlaceBet(bankroll int) (int, error) {
	fmt.Fprintln(t.out, t.styles.Banner.Render("Welcome to the Blackjack table!"))
	for {
		prompt := fmt.Sprintf("Your bankroll is $%d. Place your bet: ", bankroll)
		fmt.Fprint(t.out, t.styles.Prompt.Render(prompt))

		line, err := t.readLine()
		if err != nil {
			return 0, err
		}
		amount, err := strconv.Atoi(line)
		if err == nil && amount >= 1 && amount <= bankroll {
			return amount, nil
		}
		fmt.Fprintln(t.out, t.styles.Error.Render(
			"Invalid bet: must be a whole number between 1 and your bankroll."))
	}
}

// ChooseAction implements game.Agent. Hit and double need an explicit
// keystroke; anything else stands.
func (t *Terminal) ChooseAction(view game.HandView, bet int, offered []game.Action) (game.Action, error) {
	opts := "(h)it, (s)tay"
	canDouble := false
	for _, a := range offered {
		if a == game.Double {
			canDouble = true
			opts += ", (d)ouble"
		}
	}

	prompt := fmt.Sprintf("Bet $%d. Choice %s: ", bet, opts)
	fmt.Fprint(t.out, t.styles.Prompt.Render(prompt))

	line, err := t.readLine()
	if err != nil {
		return game.Stand, err
	}
	switch line {
	case "h":
		return game.Hit, nil
	case "d":
		if canDouble {
			return game.Double, nil
		}
		return game.Stand, nil
	default:
		return game.Stand, nil
	}
}

// ConfirmSplit implements game.Agent
func (t *Terminal) ConfirmSplit(view game.HandView) (bool, error) {
	t.separator()
	t.panel(t.styles.PlayerPanel, "Your hand", view)
	fmt.Fprint(t.out, t.styles.Prompt.Render("Split? (y/n): "))

	line, err := t.readLine()
	if err != nil {
		return false, err
	}
	return line == "y", nil
}

// CardDealt implements game.Cue with a terminal bell. Fire and
// forget: write errors are ignored.
func (t *Terminal) CardDealt() {
	if t.sound {
		_, _ = t.output.WriteString("\a")
	}
}

// OnDeal implements game.Observer
func (t *Terminal) OnDeal(player, dealer game.HandView) {
	t.separator()
	t.panel(t.styles.PlayerPanel, "Your hand", player)
	t.panel(t.styles.DealerPanel, "Dealer", dealer)
}

// OnHandTurn implements game.Observer
func (t *Terminal) OnHandTurn(hand, of int) {
	t.separator()
	fmt.Fprintln(t.out, t.styles.Banner.Render(fmt.Sprintf("Playing hand %d of %d", hand, of)))
}

// OnPlayerHand implements game.Observer
func (t *Terminal) OnPlayerHand(hand, of int, view game.HandView) {
	fmt.Fprintln(t.out)
	t.panel(t.styles.PlayerPanel, handLabel(hand, of), view)
}

// OnBust implements game.Observer
func (t *Terminal) OnBust(hand, of int, view game.HandView) {
	t.panel(t.styles.PlayerPanel, handLabel(hand, of), view)
	fmt.Fprintln(t.out, t.styles.Lose.Render("Bust!"))
}

// OnDoubleDown implements game.Observer
func (t *Terminal) OnDoubleDown(hand, of int, bet int) {
	fmt.Fprintln(t.out, t.styles.Prompt.Render(fmt.Sprintf("Double down: bet is now $%d, standing", bet)))
}

// OnDealerTurn implements game.Observer
func (t *Terminal) OnDealerTurn() {
	t.separator()
	fmt.Fprintln(t.out, t.styles.Banner.Render("Dealer's turn..."))
}

// OnDealerHand implements game.Observer
func (t *Terminal) OnDealerHand(view game.HandView) {
	t.panel(t.styles.DealerPanel, "Dealer", view)
}

// OnDealerFinal implements game.Observer
func (t *Terminal) OnDealerFinal(view game.HandView) {
	t.panel(t.styles.DealerPanel, "Dealer final", view)
}

// OnResult implements game.Observer
func (t *Terminal) OnResult(hand, of int, view game.HandView, res game.Result) {
	t.separator()
	t.panel(t.styles.PlayerPanel, "Result "+handLabel(hand, of), view)

	label := ""
	if of > 1 {
		label = fmt.Sprintf("Hand %d: ", hand)
	}
	switch {
	case res.Outcome == game.OutcomePlayer && res.Status == game.StatusBlackjack:
		fmt.Fprintln(t.out, t.styles.Win.Render(fmt.Sprintf("%sBlackjack! You win $%d", label, res.Delta)))
	case res.Outcome == game.OutcomePlayer:
		fmt.Fprintln(t.out, t.styles.Win.Render(fmt.Sprintf("%sYou win $%d", label, res.Delta)))
	case res.Outcome == game.OutcomeDealer && res.DealerNatural:
		fmt.Fprintln(t.out, t.styles.Lose.Render(fmt.Sprintf("%sDealer blackjack! You lose $%d", label, -res.Delta)))
	case res.Outcome == game.OutcomeDealer:
		fmt.Fprintln(t.out, t.styles.Lose.Render(fmt.Sprintf("%sYou lose $%d", label, -res.Delta)))
	default:
		fmt.Fprintln(t.out, t.styles.Tie.Render(label+"Push: no change"))
	}
}

// OnStats implements game.Observer
func (t *Terminal) OnStats(stats game.Stats) {
	fmt.Fprintln(t.out)
	RenderStats(t.out, t.styles, stats)
}

// OnBankroll implements game.Observer
func (t *Terminal) OnBankroll(balance int) {
	fmt.Fprintln(t.out, t.styles.Bankroll.Render(fmt.Sprintf("New bankroll: $%d", balance)))
	fmt.Fprintln(t.out)
}

// OnGameOver implements game.Observer
func (t *Terminal) OnGameOver() {
	fmt.Fprintln(t.out, t.styles.GameOver.Render("You are out of money! Game over."))
}

// RenderStats writes the lifetime statistics block
func RenderStats(out io.Writer, styles Styles, stats game.Stats) {
	fmt.Fprintln(out, styles.Banner.Render("Game statistics"))
	fmt.Fprintf(out, "Games played: %d\n", stats.GamesPlayed)
	fmt.Fprintf(out, "Player wins:  %d\n", stats.PlayerWins)
	fmt.Fprintf(out, "Dealer wins:  %d\n", stats.DealerWins)
	fmt.Fprintf(out, "Ties:         %d\n", stats.Ties)
	fmt.Fprintf(out, "Player win rate: %.2f%%\n", stats.WinRate())
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

func (t *Terminal) separator() {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.styles.Separator.Render(strings.Repeat("─", separatorWidth)))
}

// panel renders a hand as a bordered box with a title line and the
// card row.
func (t *Terminal) panel(style lipgloss.Style, title string, view game.HandView) {
	header := title
	if !view.HideHole {
		header = fmt.Sprintf("%s (%s)", title, scoreLabel(view))
	}
	body := t.cards(view)
	if view.Natural {
		body += " (Blackjack!)"
	}
	fmt.Fprintln(t.out, style.Render(header+"\n"+body))
}

// scoreLabel shows both readings of a soft total, e.g. "7/17".
func scoreLabel(view game.HandView) string {
	if view.Natural {
		return "21"
	}
	if view.Soft {
		return fmt.Sprintf("%d/%d", view.HardScore, view.HardScore+10)
	}
	return strconv.Itoa(view.Score)
}

func (t *Terminal) cards(view game.HandView) string {
	if view.HideHole {
		return t.card(view.Cards[0]) + ", " + t.styles.Info.Render("[?]")
	}
	parts := make([]string, len(view.Cards))
	for i, c := range view.Cards {
		parts[i] = t.card(c)
	}
	return strings.Join(parts, ", ")
}

func (t *Terminal) card(c deck.Card) string {
	if c.IsRed() {
		return t.styles.CardRed.Render(c.String())
	}
	return t.styles.CardWhite.Render(c.String())
}

func handLabel(hand, of int) string {
	if of > 1 {
		return fmt.Sprintf("Hand %d", hand)
	}
	return "Your hand"
}
