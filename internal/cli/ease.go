// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeranaias/textshell/internal/anim"
	"github.com/jeranaias/textshell/internal/ui/styles"
)

const (
	maxSamples  = 100
	maxBarWidth = 120
)

func newEaseCmd(g *globalOptions) *cobra.Command {
	var samples, width int
	cmd := &cobra.Command{
		Use:   "ease [kind]",
		Short: "Print sampled easing curves",
		Long:  "Prints progress, eased value and a bar for each sample of one easing kind, or of all of them.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples < 1 || samples > maxSamples {
				return &UsageError{Field: "--samples", Value: strconv.Itoa(samples), Reason: fmt.Sprintf("must be between 1 and %d", maxSamples)}
			}
			if width < 1 || width > maxBarWidth {
				return &UsageError{Field: "--width", Value: strconv.Itoa(width), Reason: fmt.Sprintf("must be between 1 and %d", maxBarWidth)}
			}

			kinds := anim.Easings()
			if len(args) == 1 {
				k, err := anim.ParseEasing(args[0])
				if err != nil {
					return err
				}
				kinds = []anim.Easing{k}
			}
			g.logger.Debug("printing easing table", "kinds", len(kinds), "samples", samples)

			out := cmd.OutOrStdout()
			for i, k := range kinds {
				if i > 0 {
					fmt.Fprintln(out)
				}
				writeEaseTable(out, k, samples, width)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 10, "samples per curve")
	cmd.Flags().IntVar(&width, "width", 30, "bar width in cells")
	return cmd
}

func writeEaseTable(w io.Writer, k anim.Easing, samples, width int) {
	fmt.Fprintln(w, TitleStyle.Render(k.String()))
	fmt.Fprintln(w, RenderSeparator(width+16))
	for i := 0; i <= samples; i++ {
		p := float64(i) / float64(samples)
		v := anim.Ease(k, p)
		fmt.Fprintf(w, "%s %s %s\n",
			LabelStyle.Render(fmt.Sprintf("%4.2f", p)),
			ValueStyle.Render(fmt.Sprintf("%7.4f", v)),
			BarStyle.Render(styles.RenderProgressBar(width, v)),
		)
	}
}
