// Package game implements the core blackjack rules engine.
//
// The main type is Engine, which resolves a single round: the initial
// deal, natural blackjack checks, split and double-down decision
// points, the per-hand action loop, the dealer's fixed stand-on-17
// policy and final settlement against the bankroll ledger.
//
// # Basic Usage
//
// Wire up an engine and play a round with a committed bet:
//
//	e := game.NewEngine(game.EngineConfig{
//	    Deck:   d,
//	    Ledger: game.NewLedger(1000),
//	    Agent:  term,
//	    // ...
//	})
//	err := e.PlayRound(100)
//
// Session wraps the engine with the bet prompt, the per-round deck
// reset and the broke check, looping until the bankroll is gone.
//
// # Deterministic Testing
//
// Decks take an explicit *rand.Rand, and deck.Stacked builds a deck
// that deals a fixed card sequence, so every rules edge case can be
// rigged and asserted exactly.
//
// # Architecture
//
// The engine owns the rules only. Everything interactive is an
// injected collaborator: Agent supplies validated bets and choices,
// Observer receives structured snapshots for rendering, Cue fires per
// dealt card, and StatsStore persists outcome counters. The engine
// emits facts about hands, never presentation.
package game
