package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
)

func newTopicsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics [TOPIC]",
		Short: "List topics and the controls each one offers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := playground.TopicIDs()
			if len(args) == 1 {
				id, err := parseTopic(args[0])
				if err != nil {
					return err
				}
				ids = []playground.TopicID{id}
			}
			return renderTopics(cmd, ids)
		},
	}

	return cmd
}

func renderTopics(cmd *cobra.Command, ids []playground.TopicID) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	for i, id := range ids {
		topic, _ := playground.NewTopic(id)
		info := topic.Info()
		if i > 0 {
			fmt.Fprintln(writer)
		}
		fmt.Fprintf(writer, "%s\t%s\n", info.ID, info.Title)
		fmt.Fprintf(writer, "\t%s\n", info.Description)
		fmt.Fprintln(writer, "\tCONTROL\tKIND\tVALUES\tDEFAULT")
		for _, c := range topic.Controls() {
			fmt.Fprintf(writer, "\t%s\t%s\t%s\t%s\n", c.ID, c.Kind, describeValues(c), valueOrFallback(c.Value, "-"))
		}
	}

	return writer.Flush()
}

func describeValues(c playground.Control) string {
	switch c.Kind {
	case playground.KindRange:
		step := ""
		if c.Step != 1 {
			step = fmt.Sprintf(" step %g", c.Step)
		}
		return fmt.Sprintf("%g..%g%s%s", c.Min, c.Max, c.Unit, step)
	case playground.KindChoice:
		values := make([]string, len(c.Options))
		for i, opt := range c.Options {
			values[i] = opt.Value
		}
		return strings.Join(values, " | ")
	default:
		return "-"
	}
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
