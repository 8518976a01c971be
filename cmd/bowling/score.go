package main

import (
	"fmt"
	"strings"
	"time"

	gamedomain "github.com/Black-And-White-Club/bowling-bot/app/modules/game/domain"
	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	"github.com/urfave/cli/v2"
)

func scoreCommand() *cli.Command {
	return &cli.Command{
		Name:      "score",
		Usage:     "score one bowler's rolls",
		ArgsUsage: "<marks...>  e.g. X 7/ 9- or X7/9-",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Value: "Bowler",
				Usage: "name printed on the sheet",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("no rolls given")
			}

			view, err := scoreMarks(c.String("name"), splitMarks(c.Args().Slice()))
			if err != nil {
				return err
			}
			return writeSheet(c.App.Writer, view)
		},
	}
}

// splitMarks accepts marks as separate arguments, run together, or both.
func splitMarks(args []string) []string {
	var marks []string
	for _, a := range args {
		for _, r := range strings.TrimSpace(a) {
			if r == ' ' || r == ',' {
				continue
			}
			marks = append(marks, string(r))
		}
	}
	return marks
}

// scoreMarks bowls marks for a single bowler and stops at the first one the
// game refuses.
func scoreMarks(name string, marks []string) (gamedto.GameView, error) {
	g, err := gamedomain.NewGame([]string{name})
	if err != nil {
		return gamedto.GameView{}, err
	}

	for i, m := range marks {
		at := g.Turn()
		if v := g.Roll(m); !v.OK() {
			return gamedto.GameView{}, fmt.Errorf("roll %d (%q) at %s rejected: %s", i+1, m, at, v)
		}
	}
	return gamedto.NewGameView("", time.Time{}, g), nil
}
