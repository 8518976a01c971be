package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	gamedomain "github.com/Black-And-White-Club/bowling-bot/app/modules/game/domain"
	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	"github.com/urfave/cli/v2"
)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "score a game interactively, one ball per line",
		Action: func(c *cli.Context) error {
			return play(c.App.Reader, c.App.Writer)
		},
	}
}

// play collects up to MaxPlayers names, then reads one mark per line until
// the game is complete. A blank name starts the game; "q" quits.
func play(r io.Reader, w io.Writer) error {
	in := bufio.NewScanner(r)
	roster := gamedomain.NewRoster()

	for slot := 0; ; slot++ {
		fmt.Fprintf(w, "Bowler %d name (blank to start): ", slot+1)
		if !in.Scan() {
			return in.Err()
		}
		name := strings.TrimSpace(in.Text())
		if name == "" {
			if slot == 0 {
				fmt.Fprintln(w, "At least one bowler is needed.")
				slot--
				continue
			}
			roster.Remove(slot)
			break
		}
		roster.Rename(slot, name)
		if !roster.Add() {
			break
		}
	}

	g, err := roster.Start()
	if err != nil {
		return err
	}

	for !g.Complete() {
		p, _ := g.Current()
		t := g.Turn()
		fmt.Fprintf(w, "%s, frame %d ball %d: ", p.Name, t.Frame+1, t.Roll+1)
		if !in.Scan() {
			return in.Err()
		}

		raw := strings.TrimSpace(in.Text())
		if strings.EqualFold(raw, "q") {
			fmt.Fprintln(w, "Game abandoned.")
			return nil
		}

		v := g.Roll(raw)
		if !v.OK() {
			fmt.Fprintf(w, "%q not accepted (%s)\n", raw, v)
			continue
		}
		if next := g.Turn(); next.Player != t.Player || next.Frame != t.Frame {
			if err := writeSheet(w, gamedto.NewGameView("", time.Time{}, g)); err != nil {
				return err
			}
		}
	}
	return nil
}
