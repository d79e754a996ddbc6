package game

import (
	"github.com/jmakela/crossroads/internal/errors"
	"log/slog"
)

// Phase is a state of the per-session progression machine.
type Phase string

const (
	// PhaseAwaitingSetup means no player profile exists for the session yet.
	PhaseAwaitingSetup Phase = "awaiting-setup"
	// PhasePlaying means the current level's scenario is presented and no choice is recorded.
	PhasePlaying Phase = "playing"
	// PhaseChoiceMade means a choice was selected but its results are not shown yet.
	PhaseChoiceMade Phase = "choice-made"
	// PhaseResultsShown means the vote was recorded and aggregate stats were fetched.
	PhaseResultsShown Phase = "results-shown"
	// PhaseComplete means the catalog is exhausted. Terminal.
	PhaseComplete Phase = "complete"
)

// Progress sequences one player session through the leveled scenarios:
//
//	AwaitingSetup → Playing(1) → ChoiceMade → ResultsShown → Playing(2) → … → Complete
//
// Fields are exported so the progress survives gob encoding in session storage.
// All transition guards return ErrConflict; the ledger and catalog are callers'
// concerns, Progress itself never touches storage.
type Progress struct {
	Phase    Phase
	PlayerID int64
	Level    int64
	Choice   string
}

// NewProgress returns a progress awaiting player setup.
func NewProgress() Progress {
	return Progress{
		Phase:    PhaseAwaitingSetup,
		PlayerID: 0,
		Level:    0,
		Choice:   "",
	}
}

// Start moves the session to level 1 once a player has been created.
func (p *Progress) Start(playerID int64) error {
	if p.Phase != PhaseAwaitingSetup {
		return errors.Wrap(ErrConflict, "game already started", slog.String("phase", string(p.Phase)))
	}
	p.Phase = PhasePlaying
	p.PlayerID = playerID
	p.Level = 1
	return nil
}

// Choose records the selected choice token for the current level. A second
// submission for the same level is rejected so the ledger never receives two
// votes from one session for one level. Callers must persist the vote first
// and leave the progress untouched when the write fails.
func (p *Progress) Choose(choice string) error {
	if p.Phase != PhasePlaying {
		return errors.Wrap(ErrConflict, "choice already made for this level",
			slog.String("phase", string(p.Phase)), slog.Int64("level", p.Level))
	}
	p.Phase = PhaseChoiceMade
	p.Choice = choice
	return nil
}

// ShowResults marks that the vote write succeeded and aggregate stats were
// fetched for display.
func (p *Progress) ShowResults() error {
	if p.Phase != PhaseChoiceMade {
		return errors.Wrap(ErrConflict, "no choice pending results", slog.String("phase", string(p.Phase)))
	}
	p.Phase = PhaseResultsShown
	return nil
}

// Advance moves to the next level, clearing the per-level transient choice.
// When the catalog has no scenario for the next level, the progress enters the
// terminal Complete phase.
func (p *Progress) Advance(hasNext bool) error {
	if p.Phase != PhaseResultsShown {
		return errors.Wrap(ErrConflict, "results not shown yet", slog.String("phase", string(p.Phase)))
	}
	p.Choice = ""
	if !hasNext {
		p.Phase = PhaseComplete
		return nil
	}
	p.Level++
	p.Phase = PhasePlaying
	return nil
}
