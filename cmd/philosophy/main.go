package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.yaml.in/yaml/v3"

	"philosophy/internal/config"
	"philosophy/internal/game"
	"philosophy/internal/log"
	"philosophy/internal/room"
	"philosophy/internal/store"
)

func main() {
	err := newApp().Run(os.Args)
	_ = log.Default().Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var cfg config.Config
	return &cli.App{
		Name:  "philosophy",
		Usage: "play and replay games of Philosophy",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "env", Usage: "dotenv files to load"},
			&cli.StringFlag{Name: "log-level", Usage: "error, warn, info, debug or trace"},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = config.Load(c.StringSlice("env")...)
			if err != nil {
				return err
			}
			if c.IsSet("log-level") {
				cfg.LogLevel = c.String("log-level")
			}
			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "play a game at the terminal, one event per line",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "continue a recorded game"},
					&cli.StringFlag{Name: "save", Usage: "write the record here on exit"},
				},
				Action: func(c *cli.Context) error {
					return play(c, cfg)
				},
			},
			{
				Name:      "replay",
				Usage:     "replay a recorded game and print its final state",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: "text", Usage: "text, json or yaml"},
					&cli.BoolFlag{Name: "ordinals", Usage: "number history entries"},
				},
				Action: func(c *cli.Context) error {
					return replay(c, cfg)
				},
			},
		},
	}
}

func replay(c *cli.Context, cfg config.Config) error {
	if c.NArg() != 1 {
		return cli.Exit("replay needs exactly one file", 2)
	}
	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return err
	}
	rules, err := game.RulesFromConfig(cfg.Rules)
	if err != nil {
		return err
	}
	g, err := game.FromPGN(string(data), game.WithRules(rules))
	if err != nil {
		return err
	}
	return export(c.App.Writer, g, c.String("format"), game.HistoryOptions{
		Delimiter: cfg.HistoryDelimiter,
		Ordinals:  c.Bool("ordinals"),
	})
}

func export(w io.Writer, g *game.Game, format string, opts game.HistoryOptions) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(g.Export())
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g.Export()); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		printStatus(w, g)
		fmt.Fprintf(w, "\n%s\n", g.History().Notation(opts))
		return nil
	default:
		return cli.Exit(fmt.Sprintf("unknown format %q", format), 2)
	}
}

const help = `Enter events such as "In+:indigo", "In:C4PuNo", "C5" or "R:In".
Commands: :board  :history  :pgn  :quit`

func play(c *cli.Context, cfg config.Config) error {
	m := room.NewManager(store.NewMemoryStore(), cfg, room.LogBroadcaster{})

	var (
		r   *room.Room
		err error
	)
	if from := c.String("from"); from != "" {
		data, err := os.ReadFile(from)
		if err != nil {
			return err
		}
		r, err = m.Load("LOCAL", string(data))
		if err != nil {
			return err
		}
	} else if r, err = m.CreateRoom(nil); err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintln(out, help)
	show := func() {
		_ = r.Do(func(g *game.Game) error {
			fmt.Fprintln(out)
			printStatus(out, g)
			return nil
		})
	}
	show()

	reader := bufio.NewScanner(c.App.Reader)
	for {
		fmt.Fprint(out, "> ")
		if !reader.Scan() {
			break
		}
		line := strings.TrimSpace(reader.Text())
		switch line {
		case "":
			continue
		case ":quit":
			return save(c, r)
		case ":board":
			show()
			continue
		case ":history":
			_ = r.Do(func(g *game.Game) error {
				fmt.Fprintln(out, g.History().Notation(game.HistoryOptions{Delimiter: cfg.HistoryDelimiter, Ordinals: true}))
				return nil
			})
			continue
		case ":pgn":
			_ = r.Do(func(g *game.Game) error {
				fmt.Fprint(out, g.PGN())
				return nil
			})
			continue
		}
		if err := m.Apply(r.Code, line); err != nil {
			fmt.Fprintln(out, "Invalid event:", err)
			continue
		}
		show()
	}
	if err := reader.Err(); err != nil {
		return err
	}
	return save(c, r)
}

func save(c *cli.Context, r *room.Room) error {
	path := c.String("save")
	if path == "" {
		return nil
	}
	return r.Do(func(g *game.Game) error {
		return os.WriteFile(path, []byte(g.PGN()), 0o644)
	})
}
