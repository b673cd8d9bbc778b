package game

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"geobattle-service/internal/domain"
	"geobattle-service/internal/geo"
	"geobattle-service/internal/scoring"
)

const maxAttempts = 3

// QuestionSource produces the question sequence for one game.
type QuestionSource interface {
	Generate() []domain.Question
}

// LeaderboardStore is the persistent cross-game top list. Implementations
// must serialize their own read-modify-write so simultaneous game endings
// in different rooms do not lose entries.
type LeaderboardStore interface {
	Top(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Record(ctx context.Context, players map[string]domain.Player) error
}

// Options are the game pacing tunables, loaded from config.
type Options struct {
	LobbyCountdown time.Duration // lobby countdown once somebody readies up
	GraceDelay     time.Duration // pause between a finished question and the next
	EndCooldown    time.Duration // time final standings stay up before reset
}

// DefaultOptions are the production pacing defaults.
func DefaultOptions() Options {
	return Options{
		LobbyCountdown: 10 * time.Second,
		GraceDelay:     2 * time.Second,
		EndCooldown:    10 * time.Second,
	}
}

// Deps are the collaborators a session emits through and draws from.
type Deps struct {
	Broadcast Broadcaster
	Board     LeaderboardStore
	Questions QuestionSource
	Scheduler Scheduler
	Now       func() time.Time
	Opts      Options
}

// Session is the per-room state machine. All mutation happens in short
// handlers under s.mu, so attempt counting and solve order need no other
// coordination; timer callbacks re-acquire the lock and check the
// generation counter so a fired timer from before a reset is a no-op.
type Session struct {
	roomID string
	deps   Deps

	mu          sync.Mutex
	players     map[string]*domain.Player
	status      domain.Status
	questions   []domain.Question
	current     int
	activeLevel int
	generation  uint64

	countdown     Timer
	countdownLeft int
}

// NewSession creates an empty lobby for roomID.
func NewSession(roomID string, deps Deps) *Session {
	if deps.Scheduler == nil {
		deps.Scheduler = NewScheduler()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Opts == (Options{}) {
		deps.Opts = DefaultOptions()
	}
	return &Session{
		roomID:  roomID,
		deps:    deps,
		players: make(map[string]*domain.Player),
		status:  domain.StatusLobby,
	}
}

// Join seats a player in the lobby and reports whether they were seated.
// While a game is running, late joiners get a read-only spectator
// snapshot instead of an error.
func (s *Session) Join(connID, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.StatusLobby {
		s.deps.Broadcast.ToConn(connID, EventGameInProgress, RosterPayload{Players: s.rosterLocked()})
		return false
	}
	s.players[connID] = &domain.Player{ID: connID, Name: name}
	s.broadcastLobbyLocked()
	return true
}

// SetReady flags a seated player as ready. The first ready player starts
// the lobby countdown; a second countdown is never started while one is
// running.
func (s *Session) SetReady(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.StatusLobby {
		return
	}
	player, ok := s.players[connID]
	if !ok {
		return
	}
	player.Ready = true
	s.broadcastLobbyLocked()

	if s.readyCountLocked() == 1 && s.countdown == nil {
		s.startCountdownLocked()
	}
}

// SubmitAnswer counts one attempt at the current question. Out-of-state
// submissions, already-solved players, and exhausted players are silently
// ignored.
func (s *Session) SubmitAnswer(connID, guess string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.StatusPlaying || s.current >= len(s.questions) {
		return
	}
	player, ok := s.players[connID]
	if !ok {
		return
	}
	q := &s.questions[s.current]
	if solvedBy(q, connID) {
		return
	}
	if q.Attempts[connID] >= maxAttempts {
		return
	}

	q.Attempts[connID]++
	attempt := q.Attempts[connID]

	if strings.EqualFold(guess, q.Target) {
		q.SolvedBy = append(q.SolvedBy, connID)
		first := len(q.SolvedBy) == 1
		elapsed := s.deps.Now().Sub(q.StartTime)
		points, timeBonus := scoring.Points(attempt, first, elapsed)
		player.Score += points

		if first {
			s.deps.Broadcast.ToRoom(s.roomID, EventPlayerMessage, PlayerMessagePayload{ID: connID, Msg: "Fastest!"})
		}
		s.deps.Broadcast.ToConn(connID, EventAnswerResult, AnswerResultPayload{
			Correct:       true,
			Score:         player.Score,
			PointsAdded:   points,
			TimeBonus:     timeBonus,
			CorrectAnswer: q.Target,
			AttemptsLeft:  maxAttempts - attempt,
			Done:          true,
		})
		s.deps.Broadcast.ToRoom(s.roomID, EventPlayerUpdate, PlayerUpdatePayload{ID: connID, Score: player.Score})
	} else {
		result := AnswerResultPayload{
			Correct:      false,
			AttemptsLeft: maxAttempts - attempt,
			Done:         attempt >= maxAttempts,
		}
		if result.Done {
			result.CorrectAnswer = q.Target
		}
		s.deps.Broadcast.ToConn(connID, EventAnswerResult, result)
	}

	s.checkQuestionEndLocked()
}

// RemovePlayer drops a player in any state. An empty roster resets the
// room; otherwise the remaining players get a fresh roster.
func (s *Session) RemovePlayer(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[connID]; !ok {
		return
	}
	delete(s.players, connID)
	if len(s.players) == 0 {
		s.resetLocked()
	} else {
		s.broadcastLobbyLocked()
	}
}

// ResetGame forces the room back to an empty lobby. Safe to call twice.
func (s *Session) ResetGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// Status reports the current lifecycle phase.
func (s *Session) Status() domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Players returns a point-in-time copy of the roster.
func (s *Session) Players() map[string]domain.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rosterLocked()
}

func (s *Session) startCountdownLocked() {
	s.countdownLeft = int(s.deps.Opts.LobbyCountdown / time.Second)
	if s.countdownLeft < 1 {
		s.countdownLeft = 1
	}
	s.deps.Broadcast.ToRoom(s.roomID, EventLobbyTimerStart, TimerPayload{Seconds: s.countdownLeft})
	s.scheduleTickLocked()
}

func (s *Session) scheduleTickLocked() {
	gen := s.generation
	s.countdown = s.deps.Scheduler.AfterFunc(time.Second, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generation != gen || s.status != domain.StatusLobby {
			return
		}
		s.countdownLeft--
		if s.countdownLeft > 0 {
			s.deps.Broadcast.ToRoom(s.roomID, EventLobbyTimerTick, TimerPayload{Seconds: s.countdownLeft})
			s.scheduleTickLocked()
			return
		}
		s.countdown = nil
		s.startGameLocked()
	})
}

// startGameLocked drops the not-ready half of the roster and moves the
// room into play, or resets if nobody readied up.
func (s *Session) startGameLocked() {
	for id, p := range s.players {
		if !p.Ready {
			s.deps.Broadcast.ToConn(id, EventStartedWithoutYou, struct{}{})
			delete(s.players, id)
		}
	}
	if len(s.players) == 0 {
		s.resetLocked()
		return
	}

	s.status = domain.StatusPlaying
	s.questions = s.deps.Questions.Generate()
	s.current = 0
	s.activeLevel = 0
	s.deps.Broadcast.ToRoom(s.roomID, EventGameStart, RosterPayload{Players: s.rosterLocked()})
	s.askQuestionLocked()
}

func (s *Session) askQuestionLocked() {
	if s.current >= len(s.questions) {
		s.endGameLocked()
		return
	}

	q := &s.questions[s.current]
	q.StartTime = s.deps.Now()
	q.SolvedBy = nil
	if q.Attempts == nil {
		q.Attempts = make(map[string]int)
	}

	payload := QuestionPayload{
		Index: s.current + 1,
		Total: len(s.questions),
		Text:  q.Text,
		Level: q.Level,
	}
	if q.Level > s.activeLevel {
		s.activeLevel = q.Level
		payload.LevelRules = geo.LevelRules(q.Level)
	}
	s.deps.Broadcast.ToRoom(s.roomID, EventNewQuestion, payload)
}

// checkQuestionEndLocked schedules the advance once every seated player
// has either solved the current question or burned all attempts. The
// grace delay lets clients show the result before the next prompt.
func (s *Session) checkQuestionEndLocked() {
	q := &s.questions[s.current]
	for id := range s.players {
		if !solvedBy(q, id) && q.Attempts[id] < maxAttempts {
			return
		}
	}

	gen, index := s.generation, s.current
	s.deps.Scheduler.AfterFunc(s.deps.Opts.GraceDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generation != gen || s.status != domain.StatusPlaying || s.current != index {
			return
		}
		s.current++
		s.askQuestionLocked()
	})
}

// endGameLocked records scores on the global board and broadcasts final
// standings. A store failure is logged and the game-over flow continues
// with whatever snapshot is available.
func (s *Session) endGameLocked() {
	s.status = domain.StatusEnded
	roster := s.rosterLocked()

	ctx := context.Background()
	if err := s.deps.Board.Record(ctx, roster); err != nil {
		log.Printf("room %s: record leaderboard: %v", s.roomID, err)
	}
	top, err := s.deps.Board.Top(ctx)
	if err != nil {
		log.Printf("room %s: read leaderboard: %v", s.roomID, err)
		top = nil
	}
	s.deps.Broadcast.ToRoom(s.roomID, EventGameOver, RosterPayload{Players: roster, Leaderboard: top})

	gen := s.generation
	s.deps.Scheduler.AfterFunc(s.deps.Opts.EndCooldown, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generation != gen {
			return
		}
		s.resetLocked()
	})
}

func (s *Session) resetLocked() {
	s.status = domain.StatusLobby
	s.players = make(map[string]*domain.Player)
	s.questions = nil
	s.current = 0
	s.activeLevel = 0
	if s.countdown != nil {
		s.countdown.Stop()
		s.countdown = nil
	}
	s.generation++
	s.deps.Broadcast.ToRoom(s.roomID, EventReset, struct{}{})
}

func (s *Session) broadcastLobbyLocked() {
	payload := RosterPayload{Players: s.rosterLocked()}
	if top, err := s.deps.Board.Top(context.Background()); err != nil {
		log.Printf("room %s: read leaderboard: %v", s.roomID, err)
	} else {
		payload.Leaderboard = top
	}
	s.deps.Broadcast.ToRoom(s.roomID, EventLobbyState, payload)
}

func (s *Session) rosterLocked() map[string]domain.Player {
	roster := make(map[string]domain.Player, len(s.players))
	for id, p := range s.players {
		roster[id] = *p
	}
	return roster
}

func (s *Session) readyCountLocked() int {
	count := 0
	for _, p := range s.players {
		if p.Ready {
			count++
		}
	}
	return count
}

func solvedBy(q *domain.Question, connID string) bool {
	for _, id := range q.SolvedBy {
		if id == connID {
			return true
		}
	}
	return false
}
