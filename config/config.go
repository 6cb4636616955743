package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Known configuration keys.
const (
	KeyDuration    = "duration"
	KeyMinLength   = "min-length"
	KeySize        = "size"
	KeyRussian     = "russian"
	KeyWords       = "words"
	KeyLexiconPath = "lexicon-path"
	KeyDebug       = "debug"
	KeyCPUProfile  = "cpu-profile"
	KeyMemProfile  = "mem-profile"
)

// Default word list files, relative to lexicon-path.
const (
	EnglishWordsFile = "en_abridged.txt"
	RussianWordsFile = "ru.txt"
)

// A Config holds every game setting. Settings come from command-line flags,
// with BOGGLE_* environment variables as fallbacks.
type Config struct {
	*viper.Viper
}

func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("boggle", pflag.ContinueOnError)
	fs.Int(KeyDuration, 180, "duration of the game, in seconds")
	fs.Int(KeyMinLength, 3, "minimum length for a word to count")
	fs.Int(KeySize, 4, "number of letters per side of the board")
	fs.Bool(KeyRussian, false, "use the Russian alphabet for the board")
	fs.String(KeyWords, "", "path to a dictionary file; overrides lexicon-path")
	fs.String(KeyLexiconPath, "./data/words", "directory holding word list files")
	fs.Bool(KeyDebug, false, "debug logging on")
	fs.String(KeyCPUProfile, "", "write CPU profile to file")
	fs.String(KeyMemProfile, "", "write memory profile to file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("boggle")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	return c.validate()
}

func (c *Config) validate() error {
	if c.GetInt(KeyDuration) <= 0 {
		return fmt.Errorf("%s must be a positive integer", KeyDuration)
	}
	if c.GetInt(KeySize) < 3 {
		return fmt.Errorf("%s must be at least 3", KeySize)
	}
	if c.GetInt(KeyMinLength) < 1 {
		return fmt.Errorf("%s must be a positive integer", KeyMinLength)
	}
	return nil
}

// WordsFile returns the path of the dictionary file to load: the explicit
// words flag if given, otherwise the default file for the chosen alphabet
// inside lexicon-path.
func (c *Config) WordsFile() string {
	if words := c.GetString(KeyWords); words != "" {
		return words
	}
	file := EnglishWordsFile
	if c.GetBool(KeyRussian) {
		file = RussianWordsFile
	}
	return filepath.Join(c.GetString(KeyLexiconPath), file)
}

// AdjustRelativePaths rebases relative data paths onto the executable's
// directory, so the binary finds its data files no matter where it is
// invoked from.
func (c *Config) AdjustRelativePaths(basepath string) {
	for _, key := range []string{KeyLexiconPath, KeyWords} {
		path := c.GetString(key)
		if path == "" || filepath.IsAbs(path) {
			continue
		}
		c.Set(key, filepath.Join(basepath, path))
	}
}
