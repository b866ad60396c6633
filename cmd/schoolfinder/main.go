// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/schoolfinder"
	"github.com/poiesic/schoolfinder/config"
	"github.com/poiesic/schoolfinder/core"
	"github.com/poiesic/schoolfinder/httpapi"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "schoolfinder",
		Usage: "Find and rank schools from the school directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a config file (YAML, TOML or JSON); SCHOOLFINDER_* environment variables override it",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search schools by free-text query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "state",
						Aliases: []string{"s"},
						Usage:   "Restrict the search to a two-letter state code",
					},
					&cli.IntFlag{
						Name:    "max",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   core.DefaultMaxResults,
					},
					&cli.BoolFlag{
						Name:  "no-fuzzy",
						Usage: "Disable fuzzy (edit distance) token matching",
					},
					&cli.BoolFlag{
						Name:  "no-geo",
						Usage: "Disable city-scoped search strategies",
					},
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Print each stage of the search",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print results as JSON",
					},
				},
			},
			{
				Name:      "get",
				Usage:     "Fetch one school by directory id",
				ArgsUsage: "<id>",
				Action:    getCommand,
			},
			{
				Name:   "serve",
				Usage:  "Serve the JSON HTTP API",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address (defaults to SCHOOLFINDER_LISTEN_ADDR or :8080)",
					},
				},
			},
		},
	}
}

func openFinder(c *cli.Context) (*schoolfinder.Finder, *config.Settings, error) {
	settings, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	finder, err := schoolfinder.NewFinderFromSettings(settings, schoolfinder.WithLogger(slog.Default()))
	if err != nil {
		return nil, nil, err
	}
	return finder, settings, nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a search query is required")
	}
	if c.Int("max") < 0 {
		return fmt.Errorf("--max cannot be negative")
	}

	finder, _, err := openFinder(c)
	if err != nil {
		return err
	}
	defer finder.Close()

	opts := &core.SearchOptions{
		MaxResults:             c.Int("max"),
		EnableFuzzySearch:      !c.Bool("no-fuzzy"),
		EnableGeographicSearch: !c.Bool("no-geo"),
	}

	out := c.App.Writer
	var results []core.SchoolRecord
	if c.Bool("explain") {
		results = finder.SearchWithMonitor(c.Context, query, c.String("state"), opts, &explainMonitor{out: out})
	} else {
		results = finder.Search(c.Context, query, c.String("state"), opts)
	}

	if c.Bool("json") {
		return writeJSON(out, results)
	}

	fmt.Fprintf(out, "Found %d schools\n", len(results))
	for i, rec := range results {
		printRecord(out, i+1, &rec)
	}
	return nil
}

func getCommand(c *cli.Context) error {
	id := strings.TrimSpace(c.Args().First())
	if id == "" {
		return fmt.Errorf("a school id is required")
	}

	finder, _, err := openFinder(c)
	if err != nil {
		return err
	}
	defer finder.Close()

	rec, err := finder.GetByID(c.Context, id)
	if err != nil {
		return err
	}
	return writeJSON(c.App.Writer, rec)
}

func serveCommand(c *cli.Context) error {
	finder, settings, err := openFinder(c)
	if err != nil {
		return err
	}
	defer finder.Close()

	addr := c.String("addr")
	if addr == "" {
		addr = settings.ListenAddr
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpapi.Serve(ctx, addr, finder, slog.Default())
}

func printRecord(w io.Writer, n int, rec *core.SchoolRecord) {
	fmt.Fprintf(w, "%2d. %s (%s, %s) [%s] score=%.1f via %s\n",
		n, rec.Name, rec.City, rec.State, rec.Level, rec.RelevanceScore, rec.SearchSource)
	if rec.ID != "" {
		fmt.Fprintf(w, "    id=%s grades=%s rating=%.1f", rec.ID, rec.Grades, rec.Rating)
		if rec.RankTotal > 0 {
			fmt.Fprintf(w, " rank=%d/%d", rec.Rank, rec.RankTotal)
		}
		fmt.Fprintln(w)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
