package cli

import (
	"fmt"
	"strconv"
	"strings"

	"cartlab/internal/todoclient"

	"github.com/spf13/cobra"
)

func newTodoCommand(opts Options) *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Client for the /api/todos endpoint",
	}
	cmd.PersistentFlags().StringVar(&baseURL, "base-url", opts.TodoAPIURL, "todo endpoint URL")

	client := func() *todoclient.Client { return todoclient.New(baseURL) }

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return client().Refresh(cmd.Context(), cmd.OutOrStdout())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <title>",
		Short: "Add a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client()
			if _, err := c.Create(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}
			return c.Refresh(cmd.Context(), cmd.OutOrStdout())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Change a todo's title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c := client()
			// タイトルが空なら何もしない
			title := strings.TrimSpace(strings.Join(args[1:], " "))
			if title != "" {
				if _, err := c.Update(cmd.Context(), id, title); err != nil {
					return err
				}
			}
			return c.Refresh(cmd.Context(), cmd.OutOrStdout())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c := client()
			if err := c.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return c.Refresh(cmd.Context(), cmd.OutOrStdout())
		},
	})

	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %q", s)
	}
	return id, nil
}
