// internal/words/words.go
//
// Themed word banks for the game engine.
//
// Responsibilities:
//   - Map a raw menu selection ("1".."4") to a Theme.
//   - Load each theme's word list from the embedded assets exactly once.
//   - Supply the bank for a theme and a random pick from it.
//
// Themes:
//   - Animals, Nature, Objects: 10 four-letter words each.
//   - Random: a 20-word mix, also the fallback for any unknown selection.
//
// Constraints:
//   • Words are lowercase alphabetic (a–z); anything else in a list fails Init.
//   • Initialization is run once (sync.Once).

package words

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"github.com/robalobadob/hangman/assets"
)

// Theme identifies one of the fixed word banks.
type Theme int

const (
	Animals Theme = iota
	Nature
	Objects
	Random
)

// Themes lists every theme in menu order.
var Themes = []Theme{Animals, Nature, Objects, Random}

func (t Theme) String() string {
	switch t {
	case Animals:
		return "Animals"
	case Nature:
		return "Nature"
	case Objects:
		return "Objects"
	default:
		return "Random"
	}
}

// ResolveTheme maps a menu selection to a Theme.
// Unrecognized input falls back to Random; it is never an error.
func ResolveTheme(raw string) Theme {
	switch raw {
	case "1":
		return Animals
	case "2":
		return Nature
	case "3":
		return Objects
	default:
		return Random
	}
}

var (
	initOnce   sync.Once
	banks      map[Theme][]string
	initialErr error
)

// Init loads all theme banks exactly once.
// Returns an error if any embedded list is missing, empty, or holds a non-alphabetic word.
func Init() error {
	initOnce.Do(func() {
		loaded := make(map[Theme][]string, len(Themes))
		for _, t := range Themes {
			list, err := assets.ThemeList(t.String())
			if err != nil {
				initialErr = fmt.Errorf("words: load %s: %w", t, err)
				return
			}
			if len(list) == 0 {
				initialErr = fmt.Errorf("words: %s list is empty", t)
				return
			}
			for _, w := range list {
				if !isAlpha(w) {
					initialErr = fmt.Errorf("words: %s list has invalid word %q", t, w)
					return
				}
			}
			loaded[t] = list
		}
		banks = loaded
	})
	return initialErr
}

// Bank returns a copy of the word list for t.
// Init is called lazily; on failure the result is empty.
func Bank(t Theme) []string {
	if err := Init(); err != nil {
		return nil
	}
	list, ok := banks[t]
	if !ok {
		list = banks[Random]
	}
	return append([]string(nil), list...)
}

// PickSecret returns a cryptographically random element of bank.
// If bank is empty, falls back to "word".
func PickSecret(bank []string) string {
	if len(bank) == 0 {
		return "word"
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(bank))))
	if err != nil {
		return bank[0]
	}
	return bank[nBig.Int64()]
}

// isAlpha reports whether s is non-empty and all lowercase ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
