package game

import "geobattle-service/internal/domain"

// Event names on the outbound wire.
const (
	EventLobbyState        = "lobby_state"
	EventLobbyTimerStart   = "lobby_timer_start"
	EventLobbyTimerTick    = "lobby_timer_tick"
	EventStartedWithoutYou = "game_started_without_you"
	EventGameStart         = "game_start"
	EventNewQuestion       = "new_question"
	EventAnswerResult      = "answer_result"
	EventPlayerUpdate      = "player_update"
	EventPlayerMessage     = "player_message"
	EventGameOver          = "game_over"
	EventReset             = "reset"
	EventGameInProgress    = "game_in_progress"
)

// Broadcaster is the transport capability a session emits through. The
// underlying channel is assumed reliable and ordered per destination.
type Broadcaster interface {
	ToRoom(roomID, event string, payload any)
	ToConn(connID, event string, payload any)
}

// RosterPayload carries a point-in-time copy of the roster, plus the
// global leaderboard where the event calls for it.
type RosterPayload struct {
	Players     map[string]domain.Player  `json:"players"`
	Leaderboard []domain.LeaderboardEntry `json:"globalLeaderboard,omitempty"`
}

type TimerPayload struct {
	Seconds int `json:"seconds"`
}

type QuestionPayload struct {
	Index      int    `json:"index"`
	Total      int    `json:"total"`
	Text       string `json:"text"`
	Level      int    `json:"level"`
	LevelRules string `json:"levelRules,omitempty"`
}

// AnswerResultPayload is sent privately after every counted attempt.
// CorrectAnswer is revealed on a solve or on the final failed attempt.
type AnswerResultPayload struct {
	Correct       bool   `json:"correct"`
	Score         int    `json:"score,omitempty"`
	PointsAdded   int    `json:"pointsAdded,omitempty"`
	TimeBonus     int    `json:"timeBonus,omitempty"`
	CorrectAnswer string `json:"correctAnswer,omitempty"`
	AttemptsLeft  int    `json:"attemptsLeft"`
	Done          bool   `json:"done"`
}

type PlayerUpdatePayload struct {
	ID    string `json:"id"`
	Score int    `json:"score"`
}

type PlayerMessagePayload struct {
	ID  string `json:"id"`
	Msg string `json:"msg"`
}
