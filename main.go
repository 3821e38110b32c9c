// Command craneyard solves the N-crane container yard puzzle.
//
// It reads a problem (yard size plus per-row intake queues), plans a
// turn-by-turn schedule for all cranes, and prints one action line per
// crane. Subcommands cover solving, tracing the board turn by turn,
// verifying a transcript by replay, listing solver configurations, and
// serving the solver over MCP stdio.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"

	yardmcp "github.com/harborsim/craneyard/transport/mcp"
	"github.com/harborsim/craneyard/yard/config"
	"github.com/harborsim/craneyard/yard/engine"
	"github.com/harborsim/craneyard/yard/problem"
	"github.com/harborsim/craneyard/yard/render"
	"github.com/harborsim/craneyard/yard/solver"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Crane Yard Solver"
)

// solverFlags are shared by the commands that run the solver.
var solverFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config-dir",
		Value:   "configs",
		Usage:   "Directory containing solver configurations",
		Sources: cli.EnvVars("CONFIG_DIR"),
	},
	&cli.StringFlag{
		Name:  "config",
		Usage: "Solver configuration name",
	},
	&cli.IntFlag{
		Name:  "max-turns",
		Usage: "Override the configured turn ceiling",
	},
	&cli.BoolFlag{
		Name:  "verbose",
		Usage: "Log every turn's move vector",
	},
}

func main() {
	// Optional .env for CONFIG_DIR and friends.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:    "craneyard",
		Usage:   AppName,
		Version: Version,
		Commands: []*cli.Command{
			{
				Name:      "solve",
				Usage:     "Solve a problem and print the per-crane transcript",
				ArgsUsage: "[problem-file]",
				Flags:     solverFlags,
				Action:    runSolve,
			},
			{
				Name:      "trace",
				Usage:     "Solve a problem, rendering the board after every turn",
				ArgsUsage: "[problem-file]",
				Flags:     solverFlags,
				Action:    runTrace,
			},
			{
				Name:      "verify",
				Usage:     "Replay a transcript against a problem and verify it",
				ArgsUsage: "<problem-file> <transcript-file>",
				Action:    runVerify,
			},
			{
				Name:  "configs",
				Usage: "List available solver configurations",
				Flags: solverFlags,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					mgr, err := config.NewManager(cmd.String("config-dir"))
					if err != nil {
						return err
					}
					infos, err := mgr.ListConfigs()
					if err != nil {
						return err
					}
					for _, info := range infos {
						fmt.Printf("%-16s max_turns=%-6d %s\n", info.ConfigID, info.MaxTurns, info.Description)
					}
					return nil
				},
			},
			{
				Name:  "mcp",
				Usage: "Serve the solver over MCP stdio",
				Flags: solverFlags,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := loadConfig(cmd)
					srv := yardmcp.NewServer(Version, cfg.MaxTurns)
					return mcpserver.ServeStdio(srv.MCPServer())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig resolves the solver configuration from flags, falling back to
// the built-in default when no config directory or name is usable.
func loadConfig(cmd *cli.Command) *config.Config {
	cfg := config.Default()
	if mgr, err := config.NewManager(cmd.String("config-dir")); err == nil {
		cfg = mgr.GetDefault()
		if name := cmd.String("config"); name != "" {
			loaded, err := mgr.LoadConfig(name)
			if err != nil {
				log.Printf("config %q: %v; using default", name, err)
			} else {
				cfg = loaded
			}
		}
	}
	if mt := int(cmd.Int("max-turns")); mt > 0 {
		out := *cfg
		out.MaxTurns = mt
		cfg = &out
	}
	return cfg
}

// readProblem loads the problem from the first argument, or stdin when the
// argument is missing or "-".
func readProblem(cmd *cli.Command) (*problem.Problem, error) {
	path := cmd.Args().First()
	if path == "" || path == "-" {
		return problem.Parse(os.Stdin)
	}
	return problem.ParseFile(path)
}

// newSolver builds a solver for the command's problem and configuration.
func newSolver(cmd *cli.Command) (*solver.Solver, error) {
	p, err := readProblem(cmd)
	if err != nil {
		return nil, err
	}
	cfg := loadConfig(cmd)
	sv, err := solver.New(p, cfg.MaxTurns)
	if err != nil {
		return nil, err
	}
	sv.SetLogTurns(cfg.LogTurns || cmd.Bool("verbose"))
	return sv, nil
}

func runSolve(ctx context.Context, cmd *cli.Command) error {
	sv, err := newSolver(cmd)
	if err != nil {
		return err
	}
	sol, err := sv.Solve()
	if err != nil {
		return err
	}
	for _, line := range sol.Lines() {
		fmt.Println(line)
	}
	if sol.Status != solver.StatusDone {
		log.Printf("incomplete schedule: %s after %d turns", sol.Status, sol.Turns)
	}
	return nil
}

func runTrace(ctx context.Context, cmd *cli.Command) error {
	sv, err := newSolver(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("initial board:\n%s\n", render.Board(sv.State()))
	sv.Trace = func(turn int, moves []engine.Move, st *engine.State) {
		fmt.Printf("turn %d: %s\n%s\n", turn, engine.FormatMoves(moves), render.Board(st))
	}
	sol, err := sv.Solve()
	if err != nil {
		return err
	}
	fmt.Printf("%s in %d turns\n", sol.Status, sol.Turns)
	return nil
}

func runVerify(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("usage: verify <problem-file> <transcript-file>")
	}
	p, err := problem.ParseFile(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	data, err := os.ReadFile(cmd.Args().Get(1))
	if err != nil {
		return err
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if err := solver.Verify(p, lines); err != nil {
		return fmt.Errorf("transcript invalid: %w", err)
	}
	fmt.Println("transcript valid: all containers delivered in order")
	return nil
}
