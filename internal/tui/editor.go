package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"timepick/internal/domain"
)

// Picker is the part of picker.Picker the editor drives.
type Picker interface {
	Display(field domain.Field) string
	HandleKey(field domain.Field, key domain.Key) bool
	HandleText(field domain.Field, text string) bool
}

// Editor is an interactive line editor over a Picker.
//
// readline decodes keys on its own goroutine while Run blocks in Readline,
// so all picker access goes through mu.
type Editor struct {
	mu        sync.Mutex
	picker    Picker
	focus     domain.Field
	setPrompt func(string)
}

// NewEditor returns an Editor with focus on the hours field.
func NewEditor(p Picker) *Editor {
	return &Editor{picker: p, focus: domain.FieldHours}
}

// Focus returns the field that currently has focus.
func (e *Editor) Focus() domain.Field {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.focus
}

// Prompt renders both fields with the focused one bracketed.
func (e *Editor) Prompt() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prompt()
}

func (e *Editor) prompt() string {
	h := e.picker.Display(domain.FieldHours)
	m := e.picker.Display(domain.FieldMinutes)
	if e.focus == domain.FieldHours {
		return fmt.Sprintf("[%s]:%s > ", h, m)
	}
	return fmt.Sprintf("%s:[%s] > ", h, m)
}

// FilterRune is installed as readline's FuncFilterInputRune. It consumes
// step keys and Tab; every other rune is passed through to readline.
func (e *Editor) FilterRune(r rune) (rune, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if r == readline.CharTab {
		e.focus = e.focus.Other()
		e.refresh()
		return r, false
	}
	if e.picker.HandleKey(e.focus, DecodeKey(r)) {
		e.refresh()
		return r, false
	}
	return r, true
}

// HandleLine applies an entered line and reports whether the editor should
// exit.
func (e *Editor) HandleLine(line string) (quit bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch cmd := strings.TrimSpace(line); cmd {
	case "":
	case "q", "quit", "exit":
		return true
	case "h", "hours":
		e.focus = domain.FieldHours
	case "m", "minutes":
		e.focus = domain.FieldMinutes
	case "+":
		e.picker.HandleKey(e.focus, domain.KeyIncrease)
	case "-":
		e.picker.HandleKey(e.focus, domain.KeyDecrease)
	default:
		e.picker.HandleText(e.focus, cmd)
	}
	e.refresh()
	return false
}

func (e *Editor) refresh() {
	if e.setPrompt != nil {
		e.setPrompt(e.prompt())
	}
}

// DecodeKey maps readline's key runes to picker keys. readline translates the
// Up and Down arrow escape sequences to CharPrev and CharNext.
func DecodeKey(r rune) domain.Key {
	switch r {
	case readline.CharPrev:
		return domain.KeyIncrease
	case readline.CharNext:
		return domain.KeyDecrease
	default:
		return domain.KeyOther
	}
}

// Run reads lines until the user quits or input ends. A nil stdin or stdout
// uses the process's standard streams.
func (e *Editor) Run(stdin io.ReadCloser, stdout io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              e.Prompt(),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		FuncFilterInputRune: e.FilterRune,
		Stdin:               stdin,
		Stdout:              stdout,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	e.mu.Lock()
	e.setPrompt = rl.SetPrompt
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.setPrompt = nil
		e.mu.Unlock()
	}()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if e.HandleLine(line) {
			return nil
		}
	}
}
