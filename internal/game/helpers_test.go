package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/michaelamar-1/blackjack/internal/deck"
)

// scriptedAgent plays back queued bets, actions and split answers.
// It records every offered action set so tests can assert on
// eligibility rules.
type scriptedAgent struct {
	t       *testing.T
	bets    []int
	actions []Action
	splits  []bool
	offers  [][]Action
}

func (a *scriptedAgent) PlaceBet(bankroll int) (int, error) {
	if len(a.bets) == 0 {
		return 0, io.EOF
	}
	bet := a.bets[0]
	a.bets = a.bets[1:]
	return bet, nil
}

func (a *scriptedAgent) ChooseAction(view HandView, bet int, offered []Action) (Action, error) {
	a.offers = append(a.offers, append([]Action(nil), offered...))
	if len(a.actions) == 0 {
		a.t.Fatal("unexpected ChooseAction call")
	}
	action := a.actions[0]
	a.actions = a.actions[1:]
	return action, nil
}

func (a *scriptedAgent) ConfirmSplit(view HandView) (bool, error) {
	if len(a.splits) == 0 {
		a.t.Fatal("unexpected ConfirmSplit call")
	}
	answer := a.splits[0]
	a.splits = a.splits[1:]
	return answer, nil
}

func offersContain(offered []Action, action Action) bool {
	for _, a := range offered {
		if a == action {
			return true
		}
	}
	return false
}

// recordingObserver captures every snapshot the engine emits.
type recordingObserver struct {
	results     []Result
	resultViews []HandView
	handTurns   [][2]int
	busts       int
	dealerHits  int
	dealerFinal *HandView
	statsShown  []Stats
	bankrolls   []int
	gameOver    bool
}

func (o *recordingObserver) OnDeal(player, dealer HandView) {}
func (o *recordingObserver) OnHandTurn(hand, of int) {
	o.handTurns = append(o.handTurns, [2]int{hand, of})
}
func (o *recordingObserver) OnPlayerHand(hand, of int, view HandView) {}
func (o *recordingObserver) OnBust(hand, of int, view HandView)      { o.busts++ }
func (o *recordingObserver) OnDoubleDown(hand, of int, bet int)      {}
func (o *recordingObserver) OnDealerTurn()                           {}
func (o *recordingObserver) OnDealerHand(view HandView)              { o.dealerHits++ }
func (o *recordingObserver) OnDealerFinal(view HandView)             { o.dealerFinal = &view }
func (o *recordingObserver) OnResult(hand, of int, view HandView, res Result) {
	o.results = append(o.results, res)
	o.resultViews = append(o.resultViews, view)
}
func (o *recordingObserver) OnStats(stats Stats)    { o.statsShown = append(o.statsShown, stats) }
func (o *recordingObserver) OnBankroll(balance int) { o.bankrolls = append(o.bankrolls, balance) }
func (o *recordingObserver) OnGameOver()            { o.gameOver = true }

// memStore is an in-memory StatsStore.
type memStore struct {
	stats     Stats
	recordErr error
}

func (m *memStore) RecordOutcome(o Outcome) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.stats.GamesPlayed++
	switch o {
	case OutcomePlayer:
		m.stats.PlayerWins++
	case OutcomeDealer:
		m.stats.DealerWins++
	default:
		m.stats.Ties++
	}
	return nil
}

func (m *memStore) CurrentStats() (Stats, error) {
	return m.stats, nil
}

type testFixture struct {
	engine *Engine
	ledger *Ledger
	obs    *recordingObserver
	store  *memStore
}

func newTestEngine(d *deck.Deck, balance int, agent Agent) *testFixture {
	f := &testFixture{
		ledger: NewLedger(balance),
		obs:    &recordingObserver{},
		store:  &memStore{},
	}
	f.engine = NewEngine(EngineConfig{
		Deck:     d,
		Ledger:   f.ledger,
		Agent:    agent,
		Observer: f.obs,
		Cue:      NopCue{},
		Stats:    f.store,
		Logger:   log.New(io.Discard),
	})
	return f
}
