package models

// Vote is one immutable ledger record: a player (optionally anonymous) chose
// one of a scenario's two tokens. Votes are never updated or deleted;
// deleting a scenario orphans its votes but keeps them in the ledger.
type Vote struct {
	ID         int64  `db:"id" json:"id"`
	ScenarioID int64  `db:"scenario_id" json:"scenarioId"`
	Choice     string `db:"choice" json:"choice"`
	PlayerID   *int64 `db:"player_id" json:"playerId"`
}
