package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kodekulture/wordjourney/game"
	"github.com/kodekulture/wordjourney/game/word"
	"github.com/kodekulture/wordjourney/internal/mocks"
	"github.com/kodekulture/wordjourney/repository"
)

var today = time.Date(2026, 3, 9, 10, 30, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *mocks.MockSnapshot, *mocks.MockProgress) {
	t.Helper()
	ctrl := gomock.NewController(t)
	src, err := word.NewLocal()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	sr := mocks.NewMockSnapshot(ctrl)
	pr := mocks.NewMockProgress(ctrl)
	s := New(ctx, src, sr, pr)
	s.now = func() time.Time { return today }
	s.intn = func(int) int { return 0 }
	return s, sr, pr
}

// startEasy opens easy level 1 for fela with nothing saved.
func startEasy(t *testing.T, s *Service, sr *mocks.MockSnapshot, pr *mocks.MockProgress) *game.Attempt {
	t.Helper()
	pr.EXPECT().Level(gomock.Any(), "fela", game.Easy.SaveKey).Return(1, nil)
	sr.EXPECT().Load(gomock.Any(), "fela:easy_progress:1").Return(nil, repository.ErrNotFound)

	res, err := s.StartLevel(context.Background(), "fela", "easy")
	require.NoError(t, err)
	a, ok := s.GetAttempt(res.ID)
	require.True(t, ok)
	return a
}

// otherWord returns a valid word of the same length that is not target.
func otherWord(target string) string {
	for _, w := range []string{"CARE", "BOLT", "SLATE", "TRAIN"} {
		if len(w) == len(target) && w != target {
			return w
		}
	}
	return ""
}

func TestService_StartLevel(t *testing.T) {
	progressErr := errors.New("connection refused")
	tests := []struct {
		name       string
		difficulty string
		mockFn     func(sr *mocks.MockSnapshot, pr *mocks.MockProgress)
		wantErr    error
		check      func(t *testing.T, res game.Response)
	}{
		{
			name:       "new attempt",
			difficulty: "easy",
			mockFn: func(sr *mocks.MockSnapshot, pr *mocks.MockProgress) {
				pr.EXPECT().Level(gomock.Any(), "fela", "easy_progress").Return(1, nil)
				sr.EXPECT().Load(gomock.Any(), "fela:easy_progress:1").Return(nil, repository.ErrNotFound)
			},
			check: func(t *testing.T, res game.Response) {
				assert.Equal(t, game.ModeLevel, res.Mode)
				assert.Equal(t, 1, res.Level)
				assert.Equal(t, 4, res.Length)
				assert.Equal(t, 6, res.Remaining)
				assert.Empty(t, res.Guesses)
				assert.Nil(t, res.CorrectWord)
			},
		},
		{
			name:       "journey follows the level length",
			difficulty: "journey",
			mockFn: func(sr *mocks.MockSnapshot, pr *mocks.MockProgress) {
				pr.EXPECT().Level(gomock.Any(), "fela", "journey_progress").Return(3, nil)
				sr.EXPECT().Load(gomock.Any(), "fela:journey_progress:3").Return(nil, repository.ErrNotFound)
			},
			check: func(t *testing.T, res game.Response) {
				assert.Equal(t, 3, res.Level)
				assert.Equal(t, 5, res.Length)
			},
		},
		{
			name:       "resumes the saved snapshot",
			difficulty: "medium",
			mockFn: func(sr *mocks.MockSnapshot, pr *mocks.MockProgress) {
				pr.EXPECT().Level(gomock.Any(), "fela", "medium_progress").Return(2, nil)
				sr.EXPECT().Load(gomock.Any(), "fela:medium_progress:2").
					Return(&game.Snapshot{Input: "CR", MaxGuesses: 8}, nil)
			},
			check: func(t *testing.T, res game.Response) {
				assert.Equal(t, 8, res.MaxGuesses)
				require.Len(t, res.Input, 5)
				assert.Equal(t, "C", res.Input[0].Letter)
				assert.Equal(t, "R", res.Input[1].Letter)
				assert.Equal(t, "", res.Input[2].Letter)
			},
		},
		{
			name:       "drops a snapshot that does not fit",
			difficulty: "hard",
			mockFn: func(sr *mocks.MockSnapshot, pr *mocks.MockProgress) {
				pr.EXPECT().Level(gomock.Any(), "fela", "hard_progress").Return(1, nil)
				sr.EXPECT().Load(gomock.Any(), "fela:hard_progress:1").
					Return(&game.Snapshot{Guesses: []string{"CAT"}, MaxGuesses: 6}, nil)
				sr.EXPECT().Delete(gomock.Any(), "fela:hard_progress:1").Return(nil)
			},
			check: func(t *testing.T, res game.Response) {
				assert.Empty(t, res.Guesses)
				assert.Equal(t, 6, res.MaxGuesses)
			},
		},
		{
			name:       "snapshot store failure starts fresh",
			difficulty: "easy",
			mockFn: func(sr *mocks.MockSnapshot, pr *mocks.MockProgress) {
				pr.EXPECT().Level(gomock.Any(), "fela", "easy_progress").Return(1, nil)
				sr.EXPECT().Load(gomock.Any(), "fela:easy_progress:1").Return(nil, errors.New("timeout"))
			},
			check: func(t *testing.T, res game.Response) {
				assert.Empty(t, res.Guesses)
			},
		},
		{
			name:       "unknown difficulty",
			difficulty: "brutal",
			wantErr:    ErrUnknownDifficulty,
		},
		{
			name:       "progress store failure",
			difficulty: "easy",
			mockFn: func(sr *mocks.MockSnapshot, pr *mocks.MockProgress) {
				pr.EXPECT().Level(gomock.Any(), "fela", "easy_progress").Return(0, progressErr)
			},
			wantErr: progressErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// given
			s, sr, pr := newService(t)
			if tt.mockFn != nil {
				tt.mockFn(sr, pr)
			}

			// when
			res, err := s.StartLevel(context.Background(), "fela", tt.difficulty)

			// assert
			if tt.wantErr != nil {
				require.Error(t, err)
				if !errors.Is(tt.wantErr, progressErr) {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestService_StartLevel_NoPlayer(t *testing.T) {
	s, _, _ := newService(t)
	_, err := s.StartLevel(context.Background(), "", "easy")
	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestService_StartLevel_ReusesOpenAttempt(t *testing.T) {
	s, sr, pr := newService(t)
	first := startEasy(t, s, sr, pr)

	pr.EXPECT().Level(gomock.Any(), "fela", "easy_progress").Return(1, nil)
	res, err := s.StartLevel(context.Background(), "fela", "easy")

	require.NoError(t, err)
	assert.Equal(t, first.ID, res.ID)
	assert.Equal(t, 1, s.Len())
}

func TestService_SubmitWin(t *testing.T) {
	s, sr, pr := newService(t)
	a := startEasy(t, s, sr, pr)
	ctx := context.Background()
	target := a.Puzzle.Target()

	sr.EXPECT().Save(gomock.Any(), a.Key(), gomock.Any()).Return(nil)
	_, err := s.Press(ctx, "fela", a.ID, target)
	require.NoError(t, err)

	sr.EXPECT().Delete(gomock.Any(), a.Key()).Return(nil)
	pr.EXPECT().SetLevel(gomock.Any(), "fela", "easy_progress", 2).Return(nil)
	res, err := s.Submit(ctx, "fela", a.ID)

	require.NoError(t, err)
	assert.Equal(t, game.ResultWon.String(), res.Result)
	require.NotNil(t, res.Guess)
	assert.Equal(t, []int{4, 4, 4, 4}, res.Guess.Status)
	require.NotNil(t, res.Attempt.CorrectWord)
	assert.Equal(t, target, *res.Attempt.CorrectWord)
	assert.Equal(t, game.Won.String(), res.Attempt.Status)

	// a won attempt accepts no more keys
	res2, err := s.Press(ctx, "fela", a.ID, "A")
	require.NoError(t, err)
	assert.Empty(t, res2.Input[0].Letter)
}

func TestService_SubmitInvalidWord(t *testing.T) {
	s, sr, pr := newService(t)
	a := startEasy(t, s, sr, pr)
	ctx := context.Background()

	sr.EXPECT().Save(gomock.Any(), a.Key(), gomock.Any()).Return(nil)
	_, err := s.Press(ctx, "fela", a.ID, "QQQQ")
	require.NoError(t, err)

	res, err := s.Submit(ctx, "fela", a.ID)

	require.NoError(t, err)
	assert.Equal(t, game.ResultInvalidWord.String(), res.Result)
	require.NotNil(t, res.Invalid)
	assert.Equal(t, "QQQQ", *res.Invalid)
	assert.Empty(t, res.Attempt.Guesses)
	assert.Equal(t, 6, res.Attempt.Remaining)
}

func TestService_OutOfGuessesAndBonus(t *testing.T) {
	s, sr, pr := newService(t)
	a := startEasy(t, s, sr, pr)
	ctx := context.Background()
	wrong := otherWord(a.Puzzle.Target())
	sr.EXPECT().Save(gomock.Any(), a.Key(), gomock.Any()).Return(nil).AnyTimes()

	_, err := s.GrantBonus(ctx, "fela", a.ID)
	assert.ErrorIs(t, err, ErrNoBonus)

	var res game.SubmitResponse
	for range 6 {
		_, err = s.Press(ctx, "fela", a.ID, wrong)
		require.NoError(t, err)
		res, err = s.Submit(ctx, "fela", a.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, game.ResultOutOfGuesses.String(), res.Result)
	assert.Equal(t, game.WaitingForExtra.String(), res.Attempt.Status)
	assert.Zero(t, res.Attempt.Remaining)

	bonus, err := s.GrantBonus(ctx, "fela", a.ID)
	require.NoError(t, err)
	assert.Equal(t, game.InProgress.String(), bonus.Status)
	assert.Equal(t, 8, bonus.MaxGuesses)
	assert.Equal(t, 2, bonus.Remaining)
}

func TestService_StartDaily(t *testing.T) {
	dailyErr := errors.New("connection refused")
	tests := []struct {
		name    string
		date    string
		length  int
		mockFn  func(sr *mocks.MockSnapshot, pr *mocks.MockProgress)
		wantErr error
		check   func(t *testing.T, res game.Response)
	}{
		{
			name:   "today by default",
			length: 5,
			mockFn: func(sr *mocks.MockSnapshot, pr *mocks.MockProgress) {
				pr.EXPECT().DailyFinished(gomock.Any(), "fela", "2026-03-09", 5).Return(false, nil)
				sr.EXPECT().Load(gomock.Any(), "fela:daily:2026-03-09:5").Return(nil, repository.ErrNotFound)
			},
			check: func(t *testing.T, res game.Response) {
				assert.Equal(t, game.ModeDaily, res.Mode)
				assert.Equal(t, "2026-03-09", res.Date)
				assert.Equal(t, 5, res.Length)
				assert.Equal(t, "daily", res.Difficulty)
				assert.Zero(t, res.Level)
			},
		},
		{
			name:   "past date",
			date:   "2026-01-31",
			length: 4,
			mockFn: func(sr *mocks.MockSnapshot, pr *mocks.MockProgress) {
				pr.EXPECT().DailyFinished(gomock.Any(), "fela", "2026-01-31", 4).Return(false, nil)
				sr.EXPECT().Load(gomock.Any(), "fela:daily:2026-01-31:4").Return(nil, repository.ErrNotFound)
			},
			check: func(t *testing.T, res game.Response) {
				assert.Equal(t, "2026-01-31", res.Date)
				assert.Equal(t, 4, res.Length)
			},
		},
		{
			name:    "future date",
			date:    "2026-03-10",
			length:  5,
			wantErr: ErrInvalidDate,
		},
		{
			name:    "malformed date",
			date:    "09/03/2026",
			length:  5,
			wantErr: ErrInvalidDate,
		},
		{
			name:   "length without a daily pool",
			length: 7,
			mockFn: func(sr *mocks.MockSnapshot, pr *mocks.MockProgress) {
				pr.EXPECT().DailyFinished(gomock.Any(), "fela", "2026-03-09", 7).Return(false, nil)
			},
			wantErr: ErrDailyLength,
		},
		{
			name:   "already solved",
			length: 6,
			mockFn: func(sr *mocks.MockSnapshot, pr *mocks.MockProgress) {
				pr.EXPECT().DailyFinished(gomock.Any(), "fela", "2026-03-09", 6).Return(true, nil)
			},
			wantErr: ErrDailySolved,
		},
		{
			name:   "progress store failure",
			length: 5,
			mockFn: func(sr *mocks.MockSnapshot, pr *mocks.MockProgress) {
				pr.EXPECT().DailyFinished(gomock.Any(), "fela", "2026-03-09", 5).Return(false, dailyErr)
			},
			wantErr: dailyErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// given
			s, sr, pr := newService(t)
			if tt.mockFn != nil {
				tt.mockFn(sr, pr)
			}

			// when
			res, err := s.StartDaily(context.Background(), "fela", tt.date, tt.length)

			// assert
			if tt.wantErr != nil {
				require.Error(t, err)
				if !errors.Is(tt.wantErr, dailyErr) {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestService_DailyWin(t *testing.T) {
	s, sr, pr := newService(t)
	ctx := context.Background()
	pr.EXPECT().DailyFinished(gomock.Any(), "fela", "2026-03-09", 5).Return(false, nil)
	sr.EXPECT().Load(gomock.Any(), "fela:daily:2026-03-09:5").Return(nil, repository.ErrNotFound)

	start, err := s.StartDaily(ctx, "fela", "", 5)
	require.NoError(t, err)
	a, ok := s.GetAttempt(start.ID)
	require.True(t, ok)

	sr.EXPECT().Save(gomock.Any(), a.Key(), gomock.Any()).Return(nil)
	_, err = s.Press(ctx, "fela", a.ID, a.Puzzle.Target())
	require.NoError(t, err)

	sr.EXPECT().Delete(gomock.Any(), a.Key()).Return(nil)
	pr.EXPECT().FinishDaily(gomock.Any(), game.DailyResult{
		Player: "fela", Date: "2026-03-09", Length: 5, Guesses: 1,
	}).Return(nil)
	res, err := s.Submit(ctx, "fela", a.ID)

	require.NoError(t, err)
	assert.Equal(t, game.ResultWon.String(), res.Result)
}

func TestService_ProgressFailureKeepsTheWin(t *testing.T) {
	s, sr, pr := newService(t)
	a := startEasy(t, s, sr, pr)
	ctx := context.Background()

	sr.EXPECT().Save(gomock.Any(), a.Key(), gomock.Any()).Return(errors.New("disk full"))
	_, err := s.Press(ctx, "fela", a.ID, a.Puzzle.Target())
	require.NoError(t, err)

	sr.EXPECT().Delete(gomock.Any(), a.Key()).Return(errors.New("disk full"))
	pr.EXPECT().SetLevel(gomock.Any(), "fela", "easy_progress", 2).Return(errors.New("disk full"))
	res, err := s.Submit(ctx, "fela", a.ID)

	require.NoError(t, err)
	assert.Equal(t, game.ResultWon.String(), res.Result)
}

func TestService_AttemptOwnership(t *testing.T) {
	s, sr, pr := newService(t)
	a := startEasy(t, s, sr, pr)
	ctx := context.Background()

	_, err := s.Attempt(ctx, "ada", a.ID)
	assert.ErrorIs(t, err, ErrNoAttempt)
	_, err = s.Press(ctx, "ada", a.ID, "A")
	assert.ErrorIs(t, err, ErrNoAttempt)
	_, err = s.Submit(ctx, "ada", a.ID)
	assert.ErrorIs(t, err, ErrNoAttempt)
	_, err = s.Attempt(ctx, "", a.ID)
	assert.ErrorIs(t, err, ErrNoPlayer)

	res, err := s.Attempt(ctx, "fela", a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, res.ID)
}

func TestService_PressAndDelete(t *testing.T) {
	s, sr, pr := newService(t)
	a := startEasy(t, s, sr, pr)
	ctx := context.Background()
	sr.EXPECT().Save(gomock.Any(), a.Key(), gomock.Any()).Return(nil).Times(2)

	res, err := s.Press(ctx, "fela", a.ID, "ab1")
	require.NoError(t, err)
	assert.Equal(t, "A", res.Input[0].Letter)
	assert.Equal(t, "B", res.Input[1].Letter)
	assert.Empty(t, res.Input[2].Letter)

	res, err = s.Delete(ctx, "fela", a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", res.Input[0].Letter)
	assert.Empty(t, res.Input[1].Letter)

	// nothing typed: no save
	res, err = s.Press(ctx, "fela", a.ID, "!!")
	require.NoError(t, err)
	assert.Empty(t, res.Input[1].Letter)
}

func TestService_Eliminate(t *testing.T) {
	s, sr, pr := newService(t)
	a := startEasy(t, s, sr, pr)
	ctx := context.Background()
	sr.EXPECT().Save(gomock.Any(), a.Key(), gomock.Any()).Return(nil)

	res, err := s.Eliminate(ctx, "fela", a.ID)

	require.NoError(t, err)
	require.True(t, res.Applied)
	assert.NotContains(t, a.Puzzle.Target(), res.Letter)
	assert.Contains(t, res.Attempt.Eliminated, res.Letter)
	assert.Equal(t, int(word.Absent), res.Attempt.Keyboard[res.Letter])
}

func TestService_Reveal(t *testing.T) {
	s, sr, pr := newService(t)
	a := startEasy(t, s, sr, pr)
	ctx := context.Background()
	target := a.Puzzle.Target()
	sr.EXPECT().Save(gomock.Any(), a.Key(), gomock.Any()).Return(nil).Times(2)

	first, err := s.Reveal(ctx, "fela", a.ID)
	require.NoError(t, err)
	require.True(t, first.Applied)
	require.NotNil(t, first.Position)
	assert.Equal(t, 0, *first.Position)
	assert.Equal(t, target[:1], first.Letter)

	second, err := s.Reveal(ctx, "fela", a.ID)
	require.NoError(t, err)
	require.NotNil(t, second.Position)
	assert.Equal(t, 1, *second.Position)
	assert.Equal(t, target[1:2], second.Letter)
	assert.Equal(t, target[:1], second.Attempt.Revealed["0"])
}

func TestService_Stop(t *testing.T) {
	s, sr, pr := newService(t)
	a := startEasy(t, s, sr, pr)
	ctx := context.Background()

	// an untouched attempt has nothing to save
	sr.EXPECT().Delete(gomock.Any(), a.Key()).Return(nil)
	s.Stop(ctx)

	sr.EXPECT().Save(gomock.Any(), a.Key(), gomock.Any()).Return(nil).Times(2)
	_, err := s.Press(ctx, "fela", a.ID, "A")
	require.NoError(t, err)
	s.Stop(ctx)
}

func TestService_DeletingAllInputDropsTheSnapshot(t *testing.T) {
	s, sr, pr := newService(t)
	a := startEasy(t, s, sr, pr)
	ctx := context.Background()

	gomock.InOrder(
		sr.EXPECT().Save(gomock.Any(), a.Key(), game.Snapshot{Guesses: []string{}, Input: "A", MaxGuesses: 6}).Return(nil),
		sr.EXPECT().Delete(gomock.Any(), a.Key()).Return(nil),
	)
	_, err := s.Press(ctx, "fela", a.ID, "A")
	require.NoError(t, err)
	res, err := s.Delete(ctx, "fela", a.ID)
	require.NoError(t, err)
	assert.Empty(t, res.Input[0].Letter)

	// nothing saved, so nothing comes back
	s.DeleteAttempt(a.ID)
	pr.EXPECT().Level(gomock.Any(), "fela", "easy_progress").Return(1, nil)
	sr.EXPECT().Load(gomock.Any(), a.Key()).Return(nil, repository.ErrNotFound)
	again, err := s.StartLevel(ctx, "fela", "easy")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, again.ID)
	assert.Empty(t, again.Input[0].Letter)
}

func TestService_TodayIsTheUTCDate(t *testing.T) {
	s, sr, pr := newService(t)
	// 01:00 on the 10th east of Greenwich is still the 9th in UTC
	s.now = func() time.Time { return time.Date(2026, 3, 10, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60)) }
	ctx := context.Background()

	_, err := s.StartDaily(ctx, "fela", "2026-03-10", 5)
	assert.ErrorIs(t, err, ErrInvalidDate)

	pr.EXPECT().DailyFinished(gomock.Any(), "fela", "2026-03-09", 5).Return(false, nil)
	sr.EXPECT().Load(gomock.Any(), "fela:daily:2026-03-09:5").Return(nil, repository.ErrNotFound)
	res, err := s.StartDaily(ctx, "fela", "", 5)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", res.Date)
}

func TestService_StartLogsNoTarget(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = prev })

	s, sr, pr := newService(t)
	a := startEasy(t, s, sr, pr)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line), buf.String())
	assert.Equal(t, "debug", line["level"])
	assert.EqualValues(t, 1, line["game_level"])
	assert.NotContains(t, buf.String(), a.Puzzle.Target())
}
