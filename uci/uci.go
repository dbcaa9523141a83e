// Package uci implements a line-oriented command loop for the engine,
// following the subset of the UCI protocol described at
// http://wbec-ridderkerk.nl/html/UCIProtocol.html that the teacher's
// own uci.go covers, minus pondering and multi-PV (both out of scope).
package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/stockshrimp/shrimpcore/board"
	"github.com/stockshrimp/shrimpcore/repetition"
	"github.com/stockshrimp/shrimpcore/search"
)

// ErrQuit is returned by Execute for the "quit" command, telling the
// caller's read loop to stop.
var ErrQuit = errors.New("uci: quit")

const defaultHashSizeMB = 64

// Engine bundles the mutable state a UCI session accumulates: the
// current position, the draw-detection set built up from the game's
// move history, and the search controller itself.
type Engine struct {
	pos        *board.Board
	draws      *repetition.Set
	ctx        *search.Context
	controller *search.Controller

	out io.Writer

	wtime, btime, winc, binc time.Duration
	movestogo                int
	fixedDepth               int
	fixedNodes               uint64
	movetime                 time.Duration
}

// NewEngine returns an Engine ready to receive commands, writing all
// protocol output to out.
func NewEngine(out io.Writer) *Engine {
	ctx := search.NewContext(defaultHashSizeMB)
	draws := repetition.New()
	ctx.Draws = draws
	ctx.Log = &protocolLogger{out: out}
	pos, _ := board.ParseFEN(board.StartFEN)
	return &Engine{
		pos:        pos,
		draws:      draws,
		ctx:        ctx,
		controller: search.NewController(ctx),
		out:        out,
		movestogo:  40,
	}
}

// protocolLogger formats search progress as UCI "info" lines, grounded
// on the teacher's uciLogger.
type protocolLogger struct {
	out   io.Writer
	start time.Time
}

func (l *protocolLogger) BeginSearch() { l.start = time.Now() }
func (l *protocolLogger) EndSearch()   {}

func (l *protocolLogger) PrintPV(depth, seldepth int, nodes uint64, elapsed time.Duration, score int16, pv []string) {
	var scorePart string
	if search.IsMateScore(score) {
		abs := score
		if abs < 0 {
			abs = -abs
		}
		movesToMate := (int(search.MateScore-abs) + 1) / 2
		if score < 0 {
			movesToMate = -movesToMate
		}
		scorePart = fmt.Sprintf("mate %d", movesToMate)
	} else {
		scorePart = fmt.Sprintf("cp %d", score)
	}

	millis := elapsed.Milliseconds()
	if millis <= 0 {
		millis = 1
	}
	nps := nodes * 1000 / uint64(millis)

	fmt.Fprintf(l.out, "info depth %d seldepth %d score %s nodes %d time %d nps %d pv %s\n",
		depth, seldepth, scorePart, nodes, millis, nps, strings.Join(pv, " "))
}

// Execute parses and runs a single input line, writing any protocol
// response to the engine's out writer.
func (e *Engine) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "uci":
		return e.handleUCI()
	case "isready":
		fmt.Fprintln(e.out, "readyok")
		return nil
	case "ucinewgame":
		e.ctx.Reset()
		e.draws.Reset()
		return nil
	case "position":
		return e.handlePosition(args)
	case "go":
		return e.handleGo(args)
	case "stop":
		return nil
	case "quit":
		return ErrQuit
	case "perft":
		return e.handlePerft(args)
	case "print":
		fmt.Fprintln(e.out, e.pos.FEN())
		return nil
	case "ischeck":
		fmt.Fprintln(e.out, e.pos.IsKingInCheck(e.pos.SideToMove()))
		return nil
	default:
		return fmt.Errorf("uci: unhandled command %q", cmd)
	}
}

func (e *Engine) handleUCI() error {
	fmt.Fprintln(e.out, "id name shrimpcore")
	fmt.Fprintln(e.out, "id author the shrimpcore authors")
	fmt.Fprintln(e.out)
	fmt.Fprintf(e.out, "option name Hash type spin default %d min 1 max 65536\n", defaultHashSizeMB)
	fmt.Fprintln(e.out, "uciok")
	return nil
}

func (e *Engine) handlePosition(args []string) error {
	if len(args) == 0 {
		return errors.New("uci: position requires an argument")
	}

	var pos *board.Board
	var err error
	i := 0
	switch args[0] {
	case "startpos":
		pos, err = board.ParseFEN(board.StartFEN)
		i = 1
	case "fen":
		j := 1
		for j < len(args) && args[j] != "moves" {
			j++
		}
		pos, err = board.ParseFEN(strings.Join(args[1:j], " "))
		i = j
	default:
		return fmt.Errorf("uci: unknown position argument %q", args[0])
	}
	if err != nil {
		return err
	}

	e.draws.Reset()
	e.draws.Push(pos.Zobrist())

	if i < len(args) {
		if args[i] != "moves" {
			return fmt.Errorf("uci: expected 'moves', got %q", args[i])
		}
		for _, s := range args[i+1:] {
			m, err := pos.ParseUCIMove(s)
			if err != nil {
				return err
			}
			pos.DoMove(m)
			e.draws.Push(pos.Zobrist())
		}
	}

	e.pos = pos
	return nil
}

func (e *Engine) handleGo(args []string) error {
	e.wtime, e.btime, e.winc, e.binc = 0, 0, 0, 0
	e.movestogo = 40
	e.fixedDepth = 0
	e.fixedNodes = 0
	e.movetime = 0

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			i++
			e.wtime = parseMillis(args[i])
		case "btime":
			i++
			e.btime = parseMillis(args[i])
		case "winc":
			i++
			e.winc = parseMillis(args[i])
		case "binc":
			i++
			e.binc = parseMillis(args[i])
		case "movestogo":
			i++
			n, _ := strconv.Atoi(args[i])
			if n > 0 {
				e.movestogo = n
			}
		case "depth":
			i++
			e.fixedDepth, _ = strconv.Atoi(args[i])
		case "nodes":
			i++
			n, _ := strconv.ParseUint(args[i], 10, 64)
			e.fixedNodes = n
		case "movetime":
			i++
			e.movetime = parseMillis(args[i])
		case "infinite":
			// leave budgets at zero: Controller.Run treats a zero
			// time budget and zero node budget as "run to MaxDepth".
		}
	}

	budget, maxDepth := e.timeBudget()
	if e.fixedDepth > 0 {
		maxDepth = e.fixedDepth
	}
	e.controller.MaxDepth = maxDepth

	_, pv := e.controller.Run(e.pos, budget, e.fixedNodes)
	if len(pv) == 0 {
		fmt.Fprintln(e.out, "bestmove 0000")
		return nil
	}
	fmt.Fprintf(e.out, "bestmove %s\n", pv[0].String())
	return nil
}

// timeBudget derives the per-move thinking time from the remaining
// clock, grounded on the teacher's TimeControl allocation of "time
// left divided by moves left", spread over a third of that share so
// that a slow iteration doesn't blow through the allotment.
func (e *Engine) timeBudget() (time.Duration, int) {
	if e.movetime > 0 {
		return e.movetime, search.DefaultMaxDepth
	}

	var mine, inc time.Duration
	if e.pos.SideToMove() == board.White {
		mine, inc = e.wtime, e.winc
	} else {
		mine, inc = e.btime, e.binc
	}
	if mine <= 0 {
		return 0, search.DefaultMaxDepth
	}

	share := mine / time.Duration(3*e.movestogo)
	if share <= 0 {
		share = time.Millisecond
	}
	return share + inc/2, search.DefaultMaxDepth
}

func parseMillis(s string) time.Duration {
	n, _ := strconv.Atoi(s)
	return time.Duration(n) * time.Millisecond
}

func (e *Engine) handlePerft(args []string) error {
	if len(args) == 0 {
		return errors.New("uci: perft requires a depth argument")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("uci: invalid perft depth: %w", err)
	}
	divide := e.pos.Divide(depth)
	var total uint64
	for move, count := range divide {
		fmt.Fprintf(e.out, "%s: %d\n", move, count)
		total += count
	}
	fmt.Fprintf(e.out, "\nnodes searched: %d\n", total)
	return nil
}

// Loop reads newline-delimited commands from in until EOF or a "quit"
// command, writing responses to out.
func Loop(in io.Reader, out io.Writer) {
	e := NewEngine(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := e.Execute(scanner.Text()); err != nil {
			if errors.Is(err, ErrQuit) {
				return
			}
			fmt.Fprintln(out, "info string error:", err)
		}
	}
}
