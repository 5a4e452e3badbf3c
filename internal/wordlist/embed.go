package wordlist

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed data/*.txt
var embedded embed.FS

const (
	answersPrefix = "answers_"
	allowedPrefix = "allowed_"
)

// EmbeddedLangs lists the languages that ship with the binary.
func EmbeddedLangs() []string {
	entries, err := fs.ReadDir(embedded, "data")
	if err != nil {
		return nil
	}
	var langs []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, answersPrefix) {
			continue
		}
		langs = append(langs, strings.TrimSuffix(strings.TrimPrefix(name, answersPrefix), ".txt"))
	}
	sort.Strings(langs)
	return langs
}

// Embedded returns the built-in answer and extra allowed lists for lang.
func Embedded(lang string) (answers, allowed []string, err error) {
	answers, err = readEmbedded(answersPrefix + lang + ".txt")
	if err != nil {
		return nil, nil, fmt.Errorf("no built-in word list for %q: %w", lang, err)
	}
	allowed, err = readEmbedded(allowedPrefix + lang + ".txt")
	if err != nil {
		// Answers alone are a valid dictionary.
		return answers, nil, nil
	}
	return answers, allowed, nil
}

func readEmbedded(name string) ([]string, error) {
	file, err := embedded.Open("data/" + name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return ReadWords(file)
}
