package engine

import (
	"errors"
	"fmt"
	"io"

	"war/game"
	"war/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultMaxNameLength    = 29
	DefaultMaxFactionLength = 9
)

type Option func(s *Session)

func WithLabelLimits(name, faction int) Option {
	return func(s *Session) {
		if name > 0 {
			s.maxName = name
		}
		if faction > 0 {
			s.maxFaction = faction
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(s *Session) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session drives one console game: registration, then attacks until the player quits.
type Session struct {
	id         uuid.UUID
	in         *input
	out        io.Writer
	resolver   *game.Resolver
	registry   *game.Registry
	maxName    int
	maxFaction int
	metrics    metrics.Collector
	logger     zerolog.Logger
}

func NewSession(in io.Reader, out io.Writer, resolver *game.Resolver, options ...Option) *Session {
	s := &Session{ // Default values
		id:         uuid.New(),
		in:         newInput(in),
		out:        out,
		resolver:   resolver,
		maxName:    DefaultMaxNameLength,
		maxFaction: DefaultMaxFactionLength,
		metrics:    metrics.NewCollector(),
		logger:     log.Logger,
	}
	for _, option := range options {
		option(s)
	}
	s.logger = s.logger.With().Stringer("session", s.id).Logger()
	return s
}

// Run plays the whole session. Errors are returned only for failed setup;
// quitting, malformed indices and end of input all end the session normally.
func (s *Session) Run() (metrics.SessionMetric, error) {
	count, err := s.readCount()
	if err != nil {
		fmt.Fprintln(s.out, "Invalid number of territories. Exiting.")
		s.logger.Error().Err(err).Msg("session setup failed")
		return metrics.SessionMetric{}, err
	}

	registry, err := game.NewRegistry(count)
	if err != nil {
		fmt.Fprintln(s.out, "Could not allocate the territories!")
		s.logger.Error().Err(err).Int("count", count).Msg("session setup failed")
		return metrics.SessionMetric{}, fmt.Errorf("create registry: %w", err)
	}
	s.registry = registry
	defer s.release()

	s.metrics.Start(count)
	s.logger.Info().Int("territories", count).Msg("session started")

	if err := s.register(); err != nil {
		fmt.Fprintln(s.out, "\nInput ended before registration finished. Exiting.")
		s.logger.Error().Err(err).Msg("registration failed")
		return s.metrics.Complete(), err
	}

	for s.turn() {
	}

	sessionMetric := s.metrics.Complete()
	s.logger.Info().EmbedObject(sessionMetric).Msg("session ended")
	fmt.Fprintf(s.out, "\nAttacks resolved: %d (%d conquered, %d repelled), %d rejected.\n",
		sessionMetric.Attacks, sessionMetric.Conquests, sessionMetric.Repels, sessionMetric.Rejections)
	return sessionMetric, nil
}

func (s *Session) readCount() (int, error) {
	fmt.Fprint(s.out, "Enter the number of territories: ")
	count, err := s.in.readInt()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidCount, err)
	}
	if count <= 0 {
		return 0, fmt.Errorf("%w: %w", ErrInvalidCount, game.ErrInvalidCount)
	}
	return count, nil
}

func (s *Session) register() error {
	for i := 0; i < s.registry.Len(); i++ {
		fmt.Fprintf(s.out, "\n>>> Territory %d registration <<<\n", i+1)

		name, err := s.readLabel("Enter the territory name: ", s.maxName)
		if err != nil {
			return err
		}
		faction, err := s.readLabel("Enter the army faction: ", s.maxFaction)
		if err != nil {
			return err
		}
		troops, err := s.readTroops()
		if err != nil {
			return err
		}

		if err := s.registry.Populate(i, name, faction, troops); err != nil {
			return fmt.Errorf("register territory %d: %w", i+1, err)
		}
		s.logger.Debug().Int("index", i+1).Str("name", name).Str("faction", faction).Int("troops", troops).Msg("territory registered")
	}
	return nil
}

func (s *Session) readLabel(prompt string, limit int) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.readLine()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return truncateLabel(line, limit), nil
}

// readTroops prompts until it gets a non-negative integer.
func (s *Session) readTroops() (int, error) {
	for {
		fmt.Fprint(s.out, "Enter the number of troops: ")
		troops, err := s.in.readInt()
		switch {
		case errors.Is(err, ErrMalformedInput):
			fmt.Fprintln(s.out, "Invalid troop count. Enter a non-negative integer.")
		case err != nil:
			return 0, fmt.Errorf("%w: %w", ErrInputClosed, err)
		case troops < 0:
			fmt.Fprintln(s.out, "Invalid troop count. Enter a non-negative integer.")
		default:
			return troops, nil
		}
	}
}

// turn plays one iteration of the attack loop and reports whether to keep going.
func (s *Session) turn() bool {
	count := s.registry.Len()
	printTerritories(s.out, s.registry.Territories())

	attackerIndex, ok := s.readIndex(fmt.Sprintf("Enter the attacking territory (1-%d) or 0 to quit: ", count))
	if !ok {
		return false
	}
	if attackerIndex == 0 {
		fmt.Fprintln(s.out, "\nYou chose to end the game. Exiting...")
		s.logger.Debug().Msg("player quit")
		return false
	}
	if attackerIndex < 1 || attackerIndex > count {
		s.reject("[ERROR] Invalid attacking territory. Try again.", game.ErrIndexOutOfRange)
		return true
	}

	defenderIndex, ok := s.readIndex(fmt.Sprintf("Enter the defending territory (1-%d): ", count))
	if !ok {
		return false
	}

	attacker, defender, err := s.registry.Pair(attackerIndex-1, defenderIndex-1)
	switch {
	case errors.Is(err, game.ErrIndexOutOfRange):
		s.reject("[ERROR] Invalid defending territory. Try again.", err)
		return true
	case errors.Is(err, game.ErrSelfAttack):
		s.reject("[ERROR] A territory cannot attack itself. Try again.", err)
		return true
	case err != nil:
		panic(err)
	}

	before := [2]game.Territory{*attacker, *defender}
	outcome, err := s.resolver.Resolve(attacker, defender)
	switch {
	case errors.Is(err, game.ErrSameFaction):
		s.reject("[ERROR] You cannot attack a territory of your own faction!", err)
		return true
	case errors.Is(err, game.ErrInsufficientTroops):
		s.reject("[ERROR] The attacking territory needs more than 1 troop to attack!", err)
		return true
	case err != nil:
		panic(err)
	}

	if outcome.Result == game.Conquered {
		s.metrics.AddConquest()
	} else {
		s.metrics.AddRepel()
	}
	s.logger.Info().
		Int("attacker", attackerIndex).
		Int("defender", defenderIndex).
		Stringer("result", outcome.Result).
		Int("transfer", outcome.Transfer).
		Msg("attack resolved")

	printBattle(s.out, before[0], before[1], outcome)
	printAftermath(s.out, attackerIndex, attacker, defenderIndex, defender)
	return true
}

// readIndex reads a territory number. A malformed number or end of input ends the session.
func (s *Session) readIndex(prompt string) (int, bool) {
	fmt.Fprint(s.out, prompt)
	index, err := s.in.readInt()
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input. Exiting.")
		s.logger.Warn().Err(err).Msg("session ended by input")
		return 0, false
	}
	return index, true
}

func (s *Session) reject(message string, err error) {
	s.metrics.AddRejection()
	s.logger.Debug().Err(err).Msg("attack rejected")
	fmt.Fprintf(s.out, "\n%s\n", message)
}

func (s *Session) release() {
	if err := s.registry.Close(); err != nil {
		s.logger.Error().Err(err).Msg("release territories")
		return
	}
	fmt.Fprintln(s.out, "\nTerritories released.")
}
