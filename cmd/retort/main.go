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
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/retort"
	"github.com/poiesic/retort/logic"
	"github.com/poiesic/retort/training"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "retort",
		Usage: "Best-match response engine for conversational corpora",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "train",
				Usage:     "Train the corpus from a JSON corpus file or an inline conversation",
				ArgsUsage: "[statement ...]",
				Action:    trainCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "corpus",
						Usage: "Path to a JSON corpus file of conversations",
					},
					&cli.StringFlag{
						Name:  "conversation",
						Usage: "Conversation tag for trained statements",
						Value: "training",
					},
				},
			},
			{
				Name:      "respond",
				Usage:     "Answer a single input statement",
				ArgsUsage: "<statement>",
				Action:    respondCommand,
				Flags:     append(adapterFlags(), dbFlag()),
			},
			{
				Name:   "chat",
				Usage:  "Interactive session reading statements from stdin",
				Action: chatCommand,
				Flags:  append(adapterFlags(), dbFlag()),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
}

func adapterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:  "threshold",
			Usage: "Similarity at which the corpus scan stops early",
			Value: 0.95,
		},
		&cli.StringFlag{
			Name:  "comparator",
			Usage: "Comparison function (levenshtein_distance, jaro_winkler_similarity, jaccard_similarity)",
			Value: logic.ComparatorLevenshtein,
		},
		&cli.StringFlag{
			Name:  "selector",
			Usage: "Selection method among candidate responses (first, random, most_frequent)",
			Value: logic.SelectorFirst,
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Words that disqualify a statement from being returned",
		},
		&cli.IntFlag{
			Name:  "page-size",
			Usage: "Number of statements loaded per search page",
			Value: 1000,
		},
	}
}

func openEngine(c *cli.Context) (*retort.Engine, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	return retort.NewEngine(dbPath, retort.WithAdapterOptions(
		logic.WithComparatorName(c.String("comparator")),
		logic.WithSelectorName(c.String("selector")),
		logic.WithMaximumSimilarityThreshold(c.Float64("threshold")),
		logic.WithExcludedWords(c.StringSlice("exclude")...),
		logic.WithSearchPageSize(c.Int("page-size")),
	))
}

func trainCommand(c *cli.Context) error {
	ctx := context.Background()

	dbPath := c.String("db")
	corpusPath := c.String("corpus")
	if corpusPath == "" && c.NArg() < 2 {
		return fmt.Errorf("provide --corpus or an inline conversation of at least two statements")
	}

	engine, err := retort.NewEngine(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	if corpusPath != "" {
		trainer, err := engine.NewCorpusTrainer(training.WithConversation(c.String("conversation")))
		if err != nil {
			return err
		}
		if err := trainer.TrainFromFile(ctx, corpusPath); err != nil {
			return fmt.Errorf("training failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Trained corpus file %s\n", corpusPath)
		return nil
	}

	trainer, err := engine.NewListTrainer(training.WithConversation(c.String("conversation")))
	if err != nil {
		return err
	}
	if err := trainer.Train(ctx, c.Args().Slice()...); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Trained %d statements\n", c.NArg())
	return nil
}

func respondCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("exactly one input statement required")
	}

	engine, err := openEngine(c)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	result, err := engine.Respond(ctx, c.Args().First())
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if result == nil {
		fmt.Fprintln(os.Stderr, "No response found")
		return nil
	}

	fmt.Println(result.Response.Text)
	fmt.Fprintf(os.Stderr, "confidence: %.3f\n", result.Confidence)
	return nil
}

func chatCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := openEngine(c)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprintln(os.Stderr, "Enter a statement (Ctrl-D to quit)")
	for {
		fmt.Fprint(os.Stderr, "> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		result, err := engine.Respond(ctx, input)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if result == nil {
			fmt.Fprintln(os.Stderr, "No response found")
			continue
		}
		fmt.Printf("%s  [%.3f]\n", result.Response.Text, result.Confidence)
	}
	return scanner.Err()
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
