package lexicon

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"

	"github.com/iafisher/boggle/cache"
)

// Load reads a newline-delimited word list, lowercases it, drops duplicates
// and blank lines, and sorts it. Loaded lexica are cached by path, so
// starting a new game with the same word list does not hit the disk again.
func Load(path string) (*Lexicon, error) {
	obj, err := cache.Load(path, func(key string) (interface{}, error) {
		return loadFile(key)
	})
	if err != nil {
		return nil, err
	}
	return obj.(*Lexicon), nil
}

func loadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		// Some Russian word lists ship in Windows-1251 rather than UTF-8.
		log.Debug().Str("path", path).Msg("word list is not UTF-8; decoding as Windows-1251")
		data, err = charmap.Windows1251.NewDecoder().Bytes(data)
		if err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool)
	words := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	sort.Strings(words)

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	log.Info().Str("lexicon", name).Int("words", len(words)).Msg("loaded word list")
	return New(name, words), nil
}
