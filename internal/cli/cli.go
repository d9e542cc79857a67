// Package cli implements the terminal command loop both the cmd/amazons-cli
// binary and the repository's root binary delegate to: it loads a position,
// alternates between a human typing moves and the engine searching its own,
// and persists match statistics between runs, in the same scanner-driven
// command-loop shape as the teacher's UCI protocol handler.
package cli

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/amazonsengine/amazons/internal/amazons"
	"github.com/amazonsengine/amazons/internal/engine"
	"github.com/amazonsengine/amazons/internal/eval"
	"github.com/amazonsengine/amazons/internal/store"
)

var (
	boardFile       = flag.String("board", "", "path to a board file (spec.md §6 format); defaults to the opening position")
	moveTime        = flag.Duration("movetime", 0, "per-move search budget; 0 uses the saved or default configuration")
	enginePl        = flag.Int("engine", 1, "which player (0 or 1) the engine plays")
	cpuProfile      = flag.String("cpuprofile", "", "write a CPU profile to this file")
	weightsOverride weightsFlag
)

func init() {
	flag.Var(&weightsOverride, "weights", "override evaluator weights, e.g. mobility=2,territory=8,reachability=8,relativeterritory=2")
}

// weightsFlag parses a comma-separated list of key=value terms into
// eval.Weights, starting from eval.DefaultWeights for any term left unset.
type weightsFlag struct {
	weights *eval.Weights
}

func (w *weightsFlag) String() string {
	if w == nil || w.weights == nil {
		return ""
	}
	return fmt.Sprintf("mobility=%d,territory=%d,reachability=%d,relativeterritory=%d",
		w.weights.Mobility, w.weights.Territory, w.weights.Reachability, w.weights.RelativeTerritory)
}

func (w *weightsFlag) Set(s string) error {
	parsed := eval.DefaultWeights
	for _, term := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(term, "=")
		if !ok {
			return fmt.Errorf("malformed weight term %q: expected key=value", term)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("malformed weight value in %q: %w", term, err)
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "mobility":
			parsed.Mobility = n
		case "territory":
			parsed.Territory = n
		case "reachability":
			parsed.Reachability = n
		case "relativeterritory":
			parsed.RelativeTerritory = n
		default:
			return fmt.Errorf("unknown weight %q", key)
		}
	}
	w.weights = &parsed
	return nil
}

// Run reads the already-parsed flags and drives the command loop to
// completion. Both cmd/amazons-cli/main.go and the repository's root
// main.go call this directly after flag.Parse.
func Run() {
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("amazons-cli: creating CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("amazons-cli: starting CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("amazons-cli: CPU profiling enabled, writing to %s", *cpuProfile)
	}

	s, err := store.Open()
	if err != nil {
		log.Fatalf("amazons-cli: opening store: %v", err)
	}
	defer s.Close()

	cfg, err := s.LoadConfig()
	if err != nil {
		log.Fatalf("amazons-cli: loading config: %v", err)
	}
	if *moveTime > 0 {
		cfg.TimeBudget = *moveTime
	}
	if weightsOverride.weights != nil {
		cfg.Weights = *weightsOverride.weights
	}

	board, err := loadBoard(*boardFile)
	if err != nil {
		log.Fatalf("amazons-cli: %v", err)
	}

	self := amazons.Player(*enginePl)
	eng := engine.New(board, self, cfg.TimeBudget)
	eng.SetWeights(cfg.Weights)

	session := &session{
		board:  board,
		self:   self,
		engine: eng,
		store:  s,
		start:  time.Now(),
	}
	session.runLoop()
}

// loadBoard reads boardFile in the spec's board-file format, or falls back
// to the canonical opening position if no file is given or its contents
// are invalid. A file that cannot be read is an error.
func loadBoard(path string) (*amazons.Board, error) {
	if path == "" {
		return amazons.DefaultOpeningBoard(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board file: %w", err)
	}
	b, err := amazons.ParseBoardFile(string(data))
	if err != nil {
		log.Printf("amazons-cli: parsing board file: %v; using the default opening position", err)
		return amazons.DefaultOpeningBoard(), nil
	}
	return b, nil
}

// session holds the mutable state of one command-loop run: the shared
// board both the human and the engine play on, the engine itself (which
// keeps its own internal copy synchronised via ChooseAction), and the
// accumulated history of opponent actions awaiting the engine's next turn.
type session struct {
	board  *amazons.Board
	self   amazons.Player
	engine *engine.Engine
	store  *store.Store
	start  time.Time

	pending []amazons.Action
}

// runLoop reads commands from stdin until "quit" or EOF, in the same
// scanner-driven shape as a UCI-style command loop.
func (s *session) runLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(s.board)
	fmt.Printf("engine plays player %d; commands: move <a>b>c>, go, d, quit\n", s.self)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "move":
			s.handleMove(args)
		case "go":
			s.handleGo()
		case "d":
			fmt.Println(s.board)
		case "quit", "exit":
			s.handleQuit()
			return
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}

// handleMove applies a human-entered action for the non-engine player.
func (s *session) handleMove(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: move <source>><destination>><arrow>")
		return
	}
	human := s.self.Other()
	action, err := amazons.ParseAction(args[0], human)
	if err != nil {
		fmt.Printf("invalid move: %v\n", err)
		return
	}
	if err := s.board.ApplyChecked(action); err != nil {
		fmt.Printf("illegal move: %v\n", err)
		return
	}
	s.pending = append(s.pending, action)
	fmt.Println(s.board)
	s.reportStatus(s.self)
}

// handleGo resynchronises the engine with any moves played since its last
// turn, searches, and applies the chosen action to the shared board.
func (s *session) handleGo() {
	if status := s.board.Status(s.self); status.Over {
		fmt.Println("engine has no legal move; game already decided")
		return
	}

	action, err := s.engine.ChooseAction(s.pending)
	if err != nil {
		fmt.Printf("search failed: %v\n", err)
		return
	}
	s.pending = nil

	s.board.Apply(action)
	fmt.Printf("engine plays %s\n", action)
	fmt.Println(s.board)
	s.reportStatus(s.self.Other())
}

// reportStatus checks whether toMove -- the player whose turn is next --
// has any legal action left.
func (s *session) reportStatus(toMove amazons.Player) {
	status := s.board.Status(toMove)
	if status.Over {
		fmt.Printf("game over: player %d wins\n", status.Winner)
	}
}

// handleQuit records the match result, if the game actually concluded,
// before the process exits.
func (s *session) handleQuit() {
	status := s.board.Status(s.self)
	if !status.Over {
		status = s.board.Status(s.self.Other())
		if !status.Over {
			return
		}
	}

	result := store.MatchResult{
		Won:       status.Winner == s.self,
		BoardSize: s.board.N,
		Duration:  time.Since(s.start),
	}
	if err := s.store.RecordMatch(result); err != nil {
		log.Printf("amazons-cli: recording match: %v", err)
	}
}
