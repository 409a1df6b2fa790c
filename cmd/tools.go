package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kodekulture/wordjourney/game"
	"github.com/kodekulture/wordjourney/game/word"
)

type wordOptions struct {
	difficulty string
	level      int
	daily      string
	length     int
}

// newWordCmd prints the target of a level or of a daily challenge.
func newWordCmd() *cobra.Command {
	opts := &wordOptions{}
	cmd := &cobra.Command{
		Use:   "word",
		Short: "Print the word of a level or a daily challenge",
		Example: `  wordjourney word --difficulty journey --level 12
  wordjourney word --daily 2026-03-09 --length 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := word.NewLocal()
			if err != nil {
				return err
			}
			picker := game.NewPicker(src)

			var target word.Entry
			if opts.daily != "" {
				date, err := time.Parse(game.DateLayout, opts.daily)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", opts.daily, err)
				}
				target, err = picker.Daily(date, opts.length)
				if err != nil {
					return err
				}
			} else {
				d, ok := game.ParseDifficulty(opts.difficulty)
				if !ok {
					return fmt.Errorf("unknown difficulty %q", opts.difficulty)
				}
				if opts.level < 1 {
					return fmt.Errorf("level must be at least 1")
				}
				target, err = picker.Level(d, opts.level)
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), target.Word)
			if target.Definition != "" {
				fmt.Fprintln(cmd.OutOrStdout(), target.Definition)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", game.Journey.Name, "easy, medium, hard or journey")
	cmd.Flags().IntVar(&opts.level, "level", 1, "level, starting at 1")
	cmd.Flags().StringVar(&opts.daily, "daily", "", "date of the daily challenge (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.length, "length", 5, "word length of the daily challenge")
	cmd.MarkFlagsMutuallyExclusive("daily", "difficulty")
	cmd.MarkFlagsMutuallyExclusive("daily", "level")
	return cmd
}

// newCheckCmd prints the tiles of a guess against a target.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <guess> <target>",
		Short: "Evaluate a guess against a target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			guess, target := strings.ToUpper(args[0]), strings.ToUpper(args[1])
			if len(guess) != len(target) {
				return fmt.Errorf("%s and %s differ in length", guess, target)
			}
			if !word.IsUpper(guess) || !word.IsUpper(target) {
				return fmt.Errorf("only the letters A to Z are allowed")
			}
			w := word.Evaluate(guess, target)
			for _, t := range w.Tiles() {
				fmt.Fprintf(cmd.OutOrStdout(), "%c %s\n", t.Letter, t.Status)
			}
			return nil
		},
	}
}
