package domain

import "time"

// Status is the lifecycle phase of a room session.
type Status string

const (
	StatusLobby   Status = "lobby"
	StatusPlaying Status = "playing"
	StatusEnded   Status = "ended"
)

// Player represents one connected participant in a room. It is owned by
// the room session and identified by its connection id, which is not
// stable across reconnects.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Ready bool   `json:"ready"`
}

// Question is one prompt in a game, created by the generator and tracked
// by the session while it is the current question. Attempts and SolvedBy
// are the only mutable fields; SolvedBy insertion order is solve order.
type Question struct {
	Level     int
	Text      string
	Target    string
	Attempts  map[string]int
	SolvedBy  []string
	StartTime time.Time
}

// LeaderboardEntry is one row of the persistent cross-game top list.
type LeaderboardEntry struct {
	Name       string    `json:"name"`
	Score      int       `json:"score"`
	RecordedAt time.Time `json:"recordedAt"`
}
