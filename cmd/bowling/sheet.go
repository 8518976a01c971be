package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	gamedomain "github.com/Black-And-White-Club/bowling-bot/app/modules/game/domain"
	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
)

// writeSheet prints a score sheet: one row of marks and one row of running
// totals per bowler. Totals appear only for settled frames.
func writeSheet(w io.Writer, view gamedto.GameView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"Bowler"}
	for i := 1; i <= gamedomain.FrameCount; i++ {
		header = append(header, fmt.Sprint(i))
	}
	header = append(header, "Total")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, p := range view.Players {
		marks := []string{p.Name}
		running := []string{""}
		for _, f := range p.Frames {
			marks = append(marks, strings.Join(f.Rolls, " "))
			if f.Settled {
				running = append(running, fmt.Sprint(f.Cumulative))
			} else {
				running = append(running, "")
			}
		}
		marks = append(marks, fmt.Sprint(p.TotalScore))
		running = append(running, "")
		fmt.Fprintln(tw, strings.Join(marks, "\t"))
		fmt.Fprintln(tw, strings.Join(running, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if view.Complete {
		switch {
		case view.Tie:
			_, err := fmt.Fprintf(w, "Tie: %s\n", strings.Join(view.Winners, ", "))
			return err
		case len(view.Winners) == 1:
			_, err := fmt.Fprintf(w, "Winner: %s\n", view.Winners[0])
			return err
		}
	}
	return nil
}
