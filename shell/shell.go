package shell

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/iafisher/boggle/alphabet"
	"github.com/iafisher/boggle/board"
	"github.com/iafisher/boggle/config"
	"github.com/iafisher/boggle/lexicon"
	"github.com/iafisher/boggle/solver"
)

// How many random boards to evaluate at once while looking for one with at
// least one possible word.
const boardCandidates = 8

// A Controller runs one interactive timed game: it deals a board, reads
// guesses until the clock runs out, and prints the final tally against
// everything the solver found.
type Controller struct {
	l   *readline.Instance
	cfg *config.Config

	board     *board.Board
	lex       *lexicon.Lexicon
	possible  map[string]bool
	bestScore int

	yourWords map[string]bool
	yourScore int

	minLength int
	end       time.Time
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewController(cfg *config.Config) *Controller {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     "/tmp/boggle_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	if err != nil {
		panic(err)
	}
	return &Controller{l: l, cfg: cfg}
}

func (sc *Controller) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *Controller) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// newGame loads the word list, deals a playable board, and starts the clock.
func (sc *Controller) newGame() error {
	lex, err := lexicon.Load(sc.cfg.WordsFile())
	if err != nil {
		return err
	}
	sc.lex = lex

	ld := alphabet.EnglishLetterDistribution()
	if sc.cfg.GetBool(config.KeyRussian) {
		ld = alphabet.RussianLetterDistribution()
	}

	sc.minLength = sc.cfg.GetInt(config.KeyMinLength)
	b, possible, best, err := findPlayableBoard(ld, sc.cfg.GetInt(config.KeySize),
		lex, sc.minLength)
	if err != nil {
		return err
	}
	sc.board = b
	sc.possible = possible
	sc.bestScore = best
	log.Debug().Int("possible-words", len(possible)).
		Int("best-score", sc.bestScore).Msg("dealt a playable board")

	sc.yourWords = make(map[string]bool)
	sc.yourScore = 0
	duration := time.Duration(sc.cfg.GetInt(config.KeyDuration)) * time.Second
	sc.end = time.Now().Add(duration)
	return nil
}

// possibleScore is the summed point value of a set of found words: the best
// score a player could reach on the board that produced it.
func possibleScore(words map[string]bool) int {
	return lo.SumBy(lo.Keys(words), solver.Score)
}

// findPlayableBoard deals random boards until one of them is worth at least
// one point. A board whose only words score zero (possible at small
// min-length settings) is dealt again, so the score ratios shown to the
// player never divide by zero. Candidates are dealt and solved in small
// concurrent batches; the board and lexicon are read-only during the
// search, so the workers need no coordination beyond picking a winner.
func findPlayableBoard(ld *alphabet.LetterDistribution, dim int,
	lex *lexicon.Lexicon, minLength int) (*board.Board, map[string]bool, int, error) {

	for {
		var mu sync.Mutex
		var winner *board.Board
		var winnerWords map[string]bool
		var winnerScore int

		g := errgroup.Group{}
		for i := 0; i < boardCandidates; i++ {
			g.Go(func() error {
				b, err := board.NewRandom(ld, dim)
				if err != nil {
					return err
				}
				words := solver.AllWords(b, lex, minLength)
				score := possibleScore(words)
				if score == 0 {
					return nil
				}
				mu.Lock()
				defer mu.Unlock()
				if winner == nil {
					winner = b
					winnerWords = words
					winnerScore = score
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, 0, err
		}
		if winner != nil {
			return winner, winnerWords, winnerScore, nil
		}
		log.Debug().Msg("no candidate board was worth any points; dealing again")
	}
}

func (sc *Controller) remaining() (int, int) {
	left := time.Until(sc.end)
	if left < 0 {
		left = 0
	}
	secs := int(left.Seconds())
	return secs / 60, secs % 60
}

func (sc *Controller) scoreLine() string {
	perc := float64(sc.yourScore) / float64(sc.bestScore)
	return fmt.Sprintf("%d / %d (%.1f%%)", sc.yourScore, sc.bestScore, perc*100)
}

// handleGuess judges one guess, tallying it if it counts. It returns the
// feedback to show the player, or "" for an accepted word.
func (sc *Controller) handleGuess(word string) string {
	if sc.yourWords[word] {
		return "You already said that."
	}
	if utf8.RuneCountInString(word) < sc.minLength {
		return fmt.Sprintf("Too short. (minimum length: %d)", sc.minLength)
	}
	if !solver.Check(sc.board, word) {
		return "Not on the board."
	}
	if !sc.lex.Contains(word) {
		return "Not in dictionary."
	}
	sc.yourWords[word] = true
	sc.yourScore += solver.Score(word)
	return ""
}

func (sc *Controller) finalReport() string {
	missed := lo.Without(lo.Keys(sc.possible), lo.Keys(sc.yourWords)...)
	sort.Strings(missed)
	perc := float64(sc.yourScore) / float64(sc.bestScore)

	var str strings.Builder
	str.WriteString("\n")
	str.WriteString(fmt.Sprintf("Your score:         %d\n", sc.yourScore))
	str.WriteString(fmt.Sprintf("Max possible score: %d\n", sc.bestScore))
	str.WriteString(fmt.Sprintf("Efficiency:         %.1f%%\n", perc*100))
	str.WriteString("\n")
	str.WriteString("MISSED: " + strings.Join(missed, ", "))
	return str.String()
}

// Loop runs the game until the clock expires or the player quits. It sends
// an interrupt on `sig` when done so that main can shut down.
func (sc *Controller) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	if err := sc.newGame(); err != nil {
		sc.showError(err)
		sig <- syscall.SIGINT
		return
	}

	sc.showMessage(sc.board.ToDisplayText())
	sc.showMessage("Enter !p to print the board again.\n")

	for {
		minutes, seconds := sc.remaining()
		sc.l.SetPrompt(fmt.Sprintf("(%d:%02d) > ", minutes, seconds))

		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		}
		line = strings.ToLower(strings.TrimSpace(line))

		if time.Now().After(sc.end) {
			sc.showMessage("Time is up.")
			break
		}

		switch {
		case line == "!p":
			sc.showMessage(sc.board.ToDisplayText())
		case line == "!s":
			sc.showMessage(sc.scoreLine())
		case line == "!ps" || line == "!sp":
			sc.showMessage(sc.board.ToDisplayText())
			sc.showMessage(sc.scoreLine())
		case line != "":
			if msg := sc.handleGuess(line); msg != "" {
				sc.showMessage(msg)
			}
		}
	}

	sc.showMessage(sc.finalReport())
	log.Debug().Msg("Exiting readline loop...")
	sig <- syscall.SIGINT
}
