// Package lessons is the catalog of teaching programs: what each one shows,
// its markdown notes, and, where the program needs no input, a snippet the
// sandbox can run.
package lessons

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed notes/*.md
var notesFS embed.FS

// ErrUnknownLesson is returned by Lookup for names not in the catalog.
var ErrUnknownLesson = errors.New("unknown lesson")

// Lesson describes one teaching program.
type Lesson struct {
	Name    string
	Title   string
	Summary string
	Notes   string // markdown
	Snippet string // Go source exposing func Run(); empty when the program reads stdin
}

// Runnable reports whether the lesson carries a snippet.
func (l Lesson) Runnable() bool {
	return l.Snippet != ""
}

var catalog = []Lesson{
	{
		Name:    "hello",
		Title:   "Hello, world",
		Summary: "Print one line to standard output.",
		Snippet: helloSnippet,
	},
	{
		Name:    "guess",
		Title:   "Guess the number",
		Summary: "Read guesses from stdin until one matches a random secret.",
	},
	{
		Name:    "variables",
		Title:   "Variables, constants and shadowing",
		Summary: "Reassign, shadow in nested blocks, and rebind a name to a new type.",
		Snippet: variablesSnippet,
	},
}

// Catalog returns every lesson, sorted by name, with notes loaded.
func Catalog() ([]Lesson, error) {
	out := make([]Lesson, 0, len(catalog))
	for _, l := range catalog {
		notes, err := notesFS.ReadFile("notes/" + l.Name + ".md")
		if err != nil {
			return nil, fmt.Errorf("failed to load notes for %s: %w", l.Name, err)
		}
		l.Notes = string(notes)
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Names returns the lesson names, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, l := range catalog {
		names = append(names, l.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a lesson by name, case-insensitively.
func Lookup(name string) (Lesson, error) {
	all, err := Catalog()
	if err != nil {
		return Lesson{}, err
	}
	key := strings.ToLower(strings.TrimSpace(name))
	for _, l := range all {
		if l.Name == key {
			return l, nil
		}
	}
	return Lesson{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownLesson, name, strings.Join(Names(), ", "))
}
