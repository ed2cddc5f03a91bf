package storage

import "github.com/vovakirdan/vampire-rescue/internal/core"

// Tracker follows one game session and saves each run exactly once:
// when the game reports it over, or as a quit when the player leaves mid-run
// or restarts it. A Tracker with a nil store never saves anything.
type Tracker struct {
	store  *Store
	gameID string
	player string
	seed   int64

	last  core.GameState
	saved bool // The current finished run is already stored
}

// NewTracker creates a tracker for a session.
func NewTracker(store *Store, gameID, player string, seed int64) *Tracker {
	return &Tracker{store: store, gameID: gameID, player: player, seed: seed}
}

// Observe records the state after a tick. It returns the record it saved,
// or nil when the tick did not end a run. A tick counter going backwards
// means the run was restarted; the abandoned run is saved as a quit.
func (t *Tracker) Observe(state core.GameState) (*RunRecord, error) {
	if state.Ticks < t.last.Ticks && !t.last.GameOver && t.last.Ticks > 0 {
		run, err := t.save(OutcomeQuit)
		t.last = state
		t.saved = false
		return run, err
	}

	t.last = state
	if !state.GameOver {
		t.saved = false
		return nil, nil
	}
	if t.saved {
		return nil, nil
	}
	t.saved = true

	outcome := OutcomeLoss
	if state.Won {
		outcome = OutcomeWin
	}
	return t.save(outcome)
}

// Quit saves the current run as abandoned if it is under way.
func (t *Tracker) Quit() (*RunRecord, error) {
	if t.last.GameOver || t.last.Ticks == 0 {
		return nil, nil
	}
	t.saved = true
	return t.save(OutcomeQuit)
}

func (t *Tracker) save(outcome Outcome) (*RunRecord, error) {
	if t.store == nil {
		return nil, nil
	}
	run := RunRecord{
		GameID:  t.gameID,
		Player:  t.player,
		Saved:   t.last.Score,
		Outcome: outcome,
		Ticks:   t.last.Ticks,
		Seed:    t.seed,
	}
	id, err := t.store.SaveRun(run)
	if err != nil {
		return nil, err
	}
	run.ID = id
	return &run, nil
}
