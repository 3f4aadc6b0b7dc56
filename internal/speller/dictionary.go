// Package speller flags probable spelling errors in Russian text and ranks
// correction candidates against a weighted dictionary.
package speller

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DomainWords is a small whitelist of terms absent from generic frequency
// lists but legitimate in our traffic.
var DomainWords = []string{"чат-бот", "телеграм", "онлайн", "веб"}

// Dictionary is a weighted word list. Lookups are lowercase; the weight is a
// corpus frequency used to rank correction candidates.
type Dictionary struct {
	words map[string]int64
}

func NewDictionary() *Dictionary {
	return &Dictionary{words: make(map[string]int64)}
}

// Load reads "word frequency" lines from r into the dictionary. The
// frequency column is optional and defaults to 1. Blank lines and lines
// starting with '#' are skipped.
func (d *Dictionary) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word := line
		weight := int64(1)
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			word = line[:i]
			raw := strings.TrimSpace(line[i+1:])
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("bad frequency %q for word %q: %w", raw, word, err)
			}
			weight = n
		}
		d.Add(word, weight)
	}
	return scanner.Err()
}

// LoadFile opens path and loads it into a fresh dictionary, with DomainWords
// added on top.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	d := NewDictionary()
	if err := d.Load(f); err != nil {
		return nil, fmt.Errorf("failed to load dictionary %s: %w", path, err)
	}
	for _, w := range DomainWords {
		d.Add(w, 1)
	}
	return d, nil
}

// Add inserts a word with the given weight, keeping the larger weight on
// duplicates. The word is normalized to lowercase.
func (d *Dictionary) Add(word string, weight int64) {
	word = strings.ToLower(word)
	if cur, ok := d.words[word]; !ok || weight > cur {
		d.words[word] = weight
	}
}

// Has reports whether the lowercased word is known.
func (d *Dictionary) Has(word string) bool {
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.words)
}
