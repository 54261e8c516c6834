package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gpsshowcase/models"
	"gpsshowcase/questionnaire"
	"gpsshowcase/settings"
	"gpsshowcase/storage"
)

func settingsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show saved dashboard settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(flags)
			if err != nil {
				return err
			}
			defer env.Close()

			store := settings.NewStore(env.store, nil)
			store.Load()
			return printSettings(cmd, store)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <flag> <true|false>",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q: want true or false", args[1])
			}
			env, err := openEnv(flags)
			if err != nil {
				return err
			}
			defer env.Close()

			store := settings.NewStore(env.store, nil)
			store.Load()
			if err := store.SetFlag(args[0], value); err != nil {
				if errors.Is(err, settings.ErrUnknownFlag) {
					return err
				}
				return fmt.Errorf("failed to save setting: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %t\n", args[0], value)
			return nil
		},
	})
	return cmd
}

func printSettings(cmd *cobra.Command, store *settings.Store) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, name := range settings.Names {
		on, err := store.Flag(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%t\n", name, on)
	}
	return w.Flush()
}

func answersCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "answers",
		Short: "Show the saved questionnaire answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(flags)
			if err != nil {
				return err
			}
			defer env.Close()

			out := cmd.OutOrStdout()
			raw, ok, err := env.store.Get(storage.QuestionnaireKey)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "No questionnaire answers saved yet.")
				return nil
			}
			var answers models.Answers
			if err := json.Unmarshal([]byte(raw), &answers); err != nil {
				return fmt.Errorf("saved answers are unreadable: %w", err)
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, q := range questionnaire.Questions() {
				if a, ok := answers[q.ID]; ok {
					fmt.Fprintf(w, "%s\t%s\n", q.ID, a)
				}
			}
			return w.Flush()
		},
	}
}
