package session

import (
	"fmt"

	"github.com/JJ-Intelligence/N-In-A-Row/pkg/game"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func IsValidSessionID(sessionID string) bool {
	_, err := uuid.Parse(sessionID)
	return err == nil
}

// Replayer asks the player whether to start another game.
type Replayer interface {
	PlayAgain() (bool, error)
}

// Tally counts the outcomes of the games in a session.
type Tally struct {
	HumanWins    int
	ComputerWins int
	Draws        int
}

func (t *Tally) Record(outcome game.Outcome) {
	switch outcome {
	case game.HumanWin:
		t.HumanWins++
	case game.ComputerWin:
		t.ComputerWins++
	default:
		t.Draws++
	}
}

func (t Tally) Games() int {
	return t.HumanWins + t.ComputerWins + t.Draws
}

// Session plays games one after another until the player stops.
type Session struct {
	Log       *zap.Logger
	SessionID string

	Engine   *game.Engine
	Replayer Replayer
	Observer game.Observer

	Tally Tally
}

// New creates a session. An empty sessionID is replaced with a fresh uuid.
func New(
	sessionID string,
	rules game.Rules,
	human game.MoveSource,
	replayer Replayer,
	observer game.Observer,
	log *zap.Logger,
) (*Session, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	} else if !IsValidSessionID(sessionID) {
		return nil, fmt.Errorf("invalid session id %q", sessionID)
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("session", sessionID))

	return &Session{
		Log:       log,
		SessionID: sessionID,
		Engine:    game.NewEngine(rules, human, observer, log),
		Replayer:  replayer,
		Observer:  observer,
	}, nil
}

// Run plays the first game and then keeps playing while the Replayer says
// yes. The tally so far is returned even when a game is cut short.
func (s *Session) Run() (Tally, error) {
	s.notify(SessionStartedEvent{SessionID: s.SessionID})
	defer func() {
		s.notify(SessionOverEvent{
			SessionID:    s.SessionID,
			Games:        s.Tally.Games(),
			HumanWins:    s.Tally.HumanWins,
			ComputerWins: s.Tally.ComputerWins,
			Draws:        s.Tally.Draws,
		})
		s.Log.Info("Session over",
			zap.Int("humanWins", s.Tally.HumanWins),
			zap.Int("computerWins", s.Tally.ComputerWins),
			zap.Int("draws", s.Tally.Draws),
		)
	}()

	for {
		gameID := uuid.New().String()
		outcome, err := s.Engine.Play(gameID)
		if err != nil {
			return s.Tally, fmt.Errorf("game %s: %w", gameID, err)
		}
		s.Tally.Record(outcome)

		again, err := s.Replayer.PlayAgain()
		if err != nil {
			return s.Tally, err
		}
		if !again {
			return s.Tally, nil
		}
	}
}

func (s *Session) notify(event interface{}) {
	if s.Observer != nil {
		s.Observer.Notify(event)
	}
}
