// Command labyrinth reads a grid maze and prints a shortest path from 'A'
// to 'B' as a sequence of U/D/L/R moves, or NO when 'B' cannot be reached.
//
// Usage:
//
//	labyrinth [flags] [FILE]
//
// The maze is read from FILE, or from standard input when FILE is omitted.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/mazeio"
)

// main is the entrypoint for the labyrinth command.
func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "labyrinth:", err)
		os.Exit(1)
	}
}

// run encapsulates the command for easier testing and error handling.
func run(ctx context.Context, in io.Reader, out, errOut io.Writer, args []string) error {
	cmd, err := newRootCommand(in, out, errOut)
	if err != nil {
		return err
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// newRootCommand wires flags, configuration, and the solve step.
func newRootCommand(in io.Reader, out, errOut io.Writer) (*cobra.Command, error) {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "labyrinth [FILE]",
		Short: "Find a shortest path through a grid maze",
		Long: `labyrinth reads a maze: a line "n m", then n rows of m symbols
('.' floor, '#' wall, 'A' start, 'B' end, either case). It prints NO if B is
unreachable, otherwise YES, the number of moves, and the moves as U/D/L/R.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger := newLogger(cfg, errOut)

			src := in
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
				logger.WithField("file", args[0]).Debug("reading maze from file")
			}
			return solve(cmd.Context(), src, out, logger, cfg)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	if err := registerFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}
	return cmd, nil
}

// solve decodes the maze, searches it, verifies the path, and writes the result.
func solve(ctx context.Context, src io.Reader, out io.Writer, log *logrus.Logger, cfg Config) error {
	g, err := mazeio.Read(src)
	if err != nil {
		return err
	}
	n, m := g.Dims()
	log.WithFields(logrus.Fields{
		"rows":  n,
		"cols":  m,
		"start": g.Start().String(),
		"end":   g.End().String(),
	}).Debug("maze loaded")

	opts := []bfs.Option{bfs.WithContext(ctx), bfs.WithMaxDepth(cfg.MaxDepth)}
	if log.IsLevelEnabled(logrus.TraceLevel) {
		opts = append(opts, bfs.WithOnDiscover(func(c maze.Coordinate, depth int) {
			log.WithFields(logrus.Fields{"cell": c.String(), "depth": depth}).Trace("discovered")
		}))
	}
	path, found, err := bfs.ShortestPath(g, opts...)
	if err != nil {
		return err
	}
	if found {
		at, err := g.Walk(path)
		if err != nil {
			return fmt.Errorf("path %s failed verification: %w", path, err)
		}
		if at != g.End() {
			return fmt.Errorf("path %s ends at %v, not %v", path, at, g.End())
		}
	}
	log.WithFields(logrus.Fields{"found": found, "length": len(path)}).Info("search finished")

	return mazeio.Write(out, path, found)
}
