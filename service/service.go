package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/lordvidex/errs"
	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordjourney/game"
	"github.com/kodekulture/wordjourney/game/word"
	"github.com/kodekulture/wordjourney/repository"
)

var (
	ErrNoPlayer          = errs.B().Code(errs.InvalidArgument).Msg("player not provided").Err()
	ErrNoAttempt         = errs.B().Code(errs.NotFound).Msg("attempt not found").Err()
	ErrUnknownDifficulty = errs.B().Code(errs.InvalidArgument).Msg("unknown difficulty").Err()
	ErrInvalidDate       = errs.B().Code(errs.InvalidArgument).Msg("date must be formatted as YYYY-MM-DD and not be in the future").Err()
	ErrDailyLength       = errs.B().Code(errs.InvalidArgument).Msg("no daily challenge for this word length").Err()
	ErrDailySolved       = errs.B().Code(errs.InvalidArgument).Msg("daily challenge already solved").Err()
	ErrNoBonus           = errs.B().Code(errs.InvalidArgument).Msg("attempt is not waiting for bonus guesses").Err()
)

type Service struct {
	*hub
	picker game.Picker
	src    word.Source
	sr     repository.Snapshot
	pr     repository.Progress

	now  func() time.Time
	intn func(n int) int
}

// New creates the service and starts collecting idle attempts until appCtx is done.
func New(appCtx context.Context, src word.Source, sr repository.Snapshot, pr repository.Progress) *Service {
	s := &Service{
		hub:    newHub(),
		picker: game.NewPicker(src),
		src:    src,
		sr:     sr,
		pr:     pr,
		now:    time.Now,
		intn:   rand.IntN,
	}
	go s.gc(appCtx, s.save)
	return s
}

// StartLevel opens the attempt of the level the player is on for a difficulty.
// An attempt saved earlier is resumed.
func (s *Service) StartLevel(ctx context.Context, player, difficulty string) (game.Response, error) {
	if player == "" {
		return game.Response{}, ErrNoPlayer
	}
	d, ok := game.ParseDifficulty(difficulty)
	if !ok {
		return game.Response{}, ErrUnknownDifficulty
	}
	level, err := s.pr.Level(ctx, player, d.SaveKey)
	if err != nil {
		return game.Response{}, internal(err, "error fetching progress")
	}
	if a, ok := s.GetByKey(game.LevelKey(player, d, level)); ok {
		return view(a), nil
	}

	target, err := s.picker.Level(d, level)
	if err != nil {
		return game.Response{}, internal(err, "error choosing the level word")
	}
	log.Debug().Str("player", player).Str("difficulty", d.Name).Int("game_level", level).
		Msg("level started")

	p, err := game.NewForLevel(target, d, level, s.src)
	if err != nil {
		return game.Response{}, internal(err, "error creating puzzle")
	}
	a := game.NewLevelAttempt(player, d, level, p)
	s.restore(ctx, a)
	return view(s.AddAttempt(a)), nil
}

// StartDaily opens the daily challenge of a date (today when empty) and word length.
func (s *Service) StartDaily(ctx context.Context, player, date string, length int) (game.Response, error) {
	if player == "" {
		return game.Response{}, ErrNoPlayer
	}
	day, err := s.parseDate(date)
	if err != nil {
		return game.Response{}, err
	}
	date = day.Format(game.DateLayout)

	solved, err := s.pr.DailyFinished(ctx, player, date, length)
	if err != nil {
		return game.Response{}, internal(err, "error fetching daily results")
	}
	if solved {
		return game.Response{}, ErrDailySolved
	}
	if a, ok := s.GetByKey(game.DailyKey(player, date, length)); ok {
		return view(a), nil
	}

	target, err := s.picker.Daily(day, length)
	if errors.Is(err, game.ErrDailyLength) {
		return game.Response{}, ErrDailyLength
	}
	if err != nil {
		return game.Response{}, internal(err, "error choosing the daily word")
	}
	log.Debug().Str("player", player).Str("date", date).Int("length", length).
		Msg("daily started")

	d := game.Daily(length)
	p, err := game.New(target, length, d.MaxGuesses, s.src)
	if err != nil {
		return game.Response{}, internal(err, "error creating puzzle")
	}
	a := game.NewDailyAttempt(player, day, p)
	s.restore(ctx, a)
	return view(s.AddAttempt(a)), nil
}

// Attempt returns the current state of an attempt.
func (s *Service) Attempt(_ context.Context, player string, id uuid.UUID) (game.Response, error) {
	a, err := s.attempt(player, id)
	if err != nil {
		return game.Response{}, err
	}
	return view(a), nil
}

// Press types keys into the attempt. Keys the puzzle refuses are skipped.
func (s *Service) Press(ctx context.Context, player string, id uuid.UUID, keys string) (game.Response, error) {
	a, err := s.attempt(player, id)
	if err != nil {
		return game.Response{}, err
	}
	a.Lock()
	defer a.Unlock()
	changed := false
	for _, ch := range keys {
		if a.Puzzle.Press(ch) {
			changed = true
		}
	}
	if changed {
		s.touch(ctx, a)
	}
	return game.ToResponse(a), nil
}

// Delete removes the last typed key.
func (s *Service) Delete(ctx context.Context, player string, id uuid.UUID) (game.Response, error) {
	a, err := s.attempt(player, id)
	if err != nil {
		return game.Response{}, err
	}
	a.Lock()
	defer a.Unlock()
	if a.Puzzle.Delete() {
		s.touch(ctx, a)
	}
	return game.ToResponse(a), nil
}

// Submit evaluates the typed word. A win deletes the saved snapshot and records the progress.
func (s *Service) Submit(ctx context.Context, player string, id uuid.UUID) (game.SubmitResponse, error) {
	a, err := s.attempt(player, id)
	if err != nil {
		return game.SubmitResponse{}, err
	}
	a.Lock()
	defer a.Unlock()

	out, err := a.Puzzle.Submit(ctx)
	if err != nil {
		return game.SubmitResponse{}, internal(err, "error validating guess")
	}
	switch out.Result {
	case game.ResultWon:
		a.Touch()
		s.finish(ctx, a)
	case game.ResultContinue, game.ResultOutOfGuesses:
		s.touch(ctx, a)
	}
	return game.ToSubmitResponse(a, out), nil
}

// GrantBonus resumes an attempt that ran out of guesses with the difficulty's bonus guesses.
func (s *Service) GrantBonus(ctx context.Context, player string, id uuid.UUID) (game.Response, error) {
	a, err := s.attempt(player, id)
	if err != nil {
		return game.Response{}, err
	}
	a.Lock()
	defer a.Unlock()
	if a.Puzzle.Status() != game.WaitingForExtra {
		return game.Response{}, ErrNoBonus
	}
	a.Puzzle.GrantBonusGuesses(a.Difficulty.BonusGuessGrant)
	s.touch(ctx, a)
	return game.ToResponse(a), nil
}

// Eliminate removes a random letter that is not in the target from the keyboard.
// Applied is false when every such letter is already known.
func (s *Service) Eliminate(ctx context.Context, player string, id uuid.UUID) (game.PowerUpResponse, error) {
	a, err := s.attempt(player, id)
	if err != nil {
		return game.PowerUpResponse{}, err
	}
	a.Lock()
	defer a.Unlock()

	var res game.PowerUpResponse
	if a.Puzzle.Status() == game.InProgress {
		if candidates := a.Puzzle.EliminationCandidates(); len(candidates) > 0 {
			ch := candidates[s.intn(len(candidates))]
			if a.Puzzle.Eliminate(ch) {
				res.Applied = true
				res.Letter = string(ch)
				s.touch(ctx, a)
			}
		}
	}
	res.Attempt = game.ToResponse(a)
	return res, nil
}

// Reveal fills the first position the player has not found with the target's letter.
func (s *Service) Reveal(ctx context.Context, player string, id uuid.UUID) (game.PowerUpResponse, error) {
	a, err := s.attempt(player, id)
	if err != nil {
		return game.PowerUpResponse{}, err
	}
	a.Lock()
	defer a.Unlock()

	var res game.PowerUpResponse
	if a.Puzzle.Status() == game.InProgress {
		if positions := a.Puzzle.UnrevealedPositions(); len(positions) > 0 {
			i := positions[0]
			ch := []rune(a.Puzzle.Target())[i]
			if a.Puzzle.Reveal(i, ch) {
				res.Applied = true
				res.Letter = string(ch)
				res.Position = &i
				s.touch(ctx, a)
			}
		}
	}
	res.Attempt = game.ToResponse(a)
	return res, nil
}

// Stop saves every open attempt.
func (s *Service) Stop(ctx context.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.attempts {
		a.Lock()
		if a.Puzzle.Status() != game.Won {
			s.save(ctx, a)
		}
		a.Unlock()
	}
	log.Info().Int("attempts", len(s.attempts)).Msg("attempts saved")
}

func (s *Service) attempt(player string, id uuid.UUID) (*game.Attempt, error) {
	if player == "" {
		return nil, ErrNoPlayer
	}
	a, ok := s.GetAttempt(id)
	// attempts of other players are not revealed
	if !ok || a.Player != player {
		return nil, ErrNoAttempt
	}
	return a, nil
}

// restore resumes a from its saved snapshot. A snapshot that does not fit the puzzle is dropped.
func (s *Service) restore(ctx context.Context, a *game.Attempt) {
	snap, err := s.sr.Load(ctx, a.Key())
	if errors.Is(err, repository.ErrNotFound) {
		return
	}
	if err != nil {
		log.Err(err).Caller().Str("key", a.Key()).Msg("failed to load snapshot")
		return
	}
	if err = a.Puzzle.Restore(*snap); err != nil {
		log.Warn().Err(err).Str("key", a.Key()).Msg("dropping snapshot")
		if err = s.sr.Delete(ctx, a.Key()); err != nil {
			log.Err(err).Caller().Str("key", a.Key()).Msg("failed to delete snapshot")
		}
	}
}

// touch records activity and saves the snapshot. The caller must hold a's lock.
func (s *Service) touch(ctx context.Context, a *game.Attempt) {
	a.Touch()
	s.save(ctx, a)
}

// save persists the progress of a, an attempt without progress has its snapshot deleted.
// The caller must hold a's lock.
func (s *Service) save(ctx context.Context, a *game.Attempt) {
	snap := a.Puzzle.Snapshot()
	if snap.Empty() {
		if err := s.sr.Delete(ctx, a.Key()); err != nil {
			log.Err(err).Caller().Str("key", a.Key()).Msg("failed to delete snapshot")
		}
		return
	}
	if err := s.sr.Save(ctx, a.Key(), snap); err != nil {
		log.Err(err).Caller().Str("key", a.Key()).Msg("failed to save snapshot")
	}
}

// finish records a won attempt. The caller must hold a's lock.
func (s *Service) finish(ctx context.Context, a *game.Attempt) {
	if err := s.sr.Delete(ctx, a.Key()); err != nil {
		log.Err(err).Caller().Str("key", a.Key()).Msg("failed to delete snapshot")
	}
	var err error
	switch a.Mode {
	case game.ModeDaily:
		err = s.pr.FinishDaily(ctx, game.DailyResult{
			Player:  a.Player,
			Date:    a.Date,
			Length:  a.Puzzle.Length(),
			Guesses: len(a.Puzzle.Guesses()),
		})
	default:
		err = s.pr.SetLevel(ctx, a.Player, a.Difficulty.SaveKey, a.Level+1)
	}
	if err != nil {
		log.Err(err).Caller().Str("key", a.Key()).Msg("failed to record progress")
		return
	}
	log.Info().Str("player", a.Player).Str("key", a.Key()).Int("guesses", len(a.Puzzle.Guesses())).Msg("attempt won")
}

func (s *Service) parseDate(date string) (time.Time, error) {
	y, m, d := s.now().UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if date == "" {
		return today, nil
	}
	day, err := time.Parse(game.DateLayout, date)
	if err != nil || day.After(today) {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

func view(a *game.Attempt) game.Response {
	a.Lock()
	defer a.Unlock()
	return game.ToResponse(a)
}

func internal(err error, msg string) error {
	log.Err(err).Caller(1).Msg(msg)
	return errs.B().Code(errs.Internal).Msg(msg).Err()
}
