package shell

import (
	"sort"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/iafisher/boggle/alphabet"
	"github.com/iafisher/boggle/board"
	"github.com/iafisher/boggle/lexicon"
	"github.com/iafisher/boggle/solver"
)

// E Z O A
// L T A R
// N E L K
// T S I B
func testController(t *testing.T, words ...string) *Controller {
	t.Helper()
	b, err := board.New(strings.Split("ezoaltarnelktsib", ""))
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(words)
	lex := lexicon.New("test", words)
	possible := solver.AllWords(b, lex, 3)
	best := possibleScore(possible)
	return &Controller{
		board:     b,
		lex:       lex,
		possible:  possible,
		bestScore: best,
		yourWords: make(map[string]bool),
		minLength: 3,
	}
}

func TestHandleGuess(t *testing.T) {
	is := is.New(t)
	sc := testController(t, "late", "listen", "tar", "zo")

	is.Equal(sc.handleGuess("tar"), "")
	is.Equal(sc.yourScore, 1)
	is.Equal(sc.handleGuess("tar"), "You already said that.")
	is.Equal(sc.handleGuess("zo"), "Too short. (minimum length: 3)")
	is.Equal(sc.handleGuess("tore"), "Not on the board.")
	is.Equal(sc.handleGuess("ale"), "Not in dictionary.")
	is.Equal(sc.handleGuess("listen"), "")
	is.Equal(sc.yourScore, 4)
	is.Equal(len(sc.yourWords), 2)
}

func TestScoreLine(t *testing.T) {
	is := is.New(t)
	sc := testController(t, "late", "listen", "tar")
	is.Equal(sc.bestScore, 5)
	is.Equal(sc.handleGuess("tar"), "")
	is.Equal(sc.scoreLine(), "1 / 5 (20.0%)")
}

func TestFinalReport(t *testing.T) {
	is := is.New(t)
	sc := testController(t, "late", "listen", "tar")
	is.Equal(sc.handleGuess("listen"), "")
	report := sc.finalReport()
	is.True(strings.Contains(report, "Your score:         3"))
	is.True(strings.Contains(report, "Max possible score: 5"))
	is.True(strings.Contains(report, "MISSED: late, tar"))
	is.True(!strings.Contains(report, "listen"))
}

func TestFindPlayableBoard(t *testing.T) {
	is := is.New(t)
	words := []string{"ant", "ate", "eat", "net", "one", "rat", "sea", "tan", "tar", "tea", "ten"}
	lex := lexicon.New("test", words)
	b, possible, best, err := findPlayableBoard(alphabet.EnglishLetterDistribution(), 4, lex, 3)
	is.NoErr(err)
	is.True(len(possible) > 0)
	is.True(best > 0)
	is.Equal(best, possibleScore(possible))
	for word := range possible {
		is.True(lex.Contains(word))
		is.True(solver.Check(b, word))
	}
}

func TestZeroScoreBoardNotPlayable(t *testing.T) {
	is := is.New(t)
	// At min-length 1 a board can have possible words yet be worth zero
	// points, since words under three letters score nothing. Such a board
	// must not be accepted: every score ratio would divide by zero.
	b, err := board.New(strings.Split("ezoaltarnelktsib", ""))
	is.NoErr(err)
	lex := lexicon.New("test", []string{"at", "el"})
	possible := solver.AllWords(b, lex, 1)
	is.True(len(possible) > 0)
	is.Equal(possibleScore(possible), 0)
}

func TestFindPlayableBoardMinLengthOne(t *testing.T) {
	is := is.New(t)
	words := []string{"an", "at", "ate", "eat", "it", "on", "one", "rat", "tan", "tar", "tea", "ten", "to"}
	lex := lexicon.New("test", words)
	_, possible, best, err := findPlayableBoard(alphabet.EnglishLetterDistribution(), 4, lex, 1)
	is.NoErr(err)
	is.True(best > 0) // a board worth zero points is dealt again
	is.Equal(best, possibleScore(possible))
}
