package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Terminal is a line based console: a human types decisions on in and reads the match on
// out. It renders matches, listens to their events and prompts human players.
type Terminal struct {
	in                *bufio.Reader
	out               io.Writer
	hideComputerHands bool
	viewers           map[string]bool
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:                bufio.NewReader(in),
		out:               out,
		hideComputerHands: true,
		viewers:           make(map[string]bool),
	}
}

// HideComputerHands controls whether computer hands are printed with the board.
func (t *Terminal) HideComputerHands(hide bool) {
	t.hideComputerHands = hide
}

// Watch lets the player with id see the cards they draw.
func (t *Terminal) Watch(id string) {
	t.viewers[id] = true
}

func (t *Terminal) Print(text string) {
	_, _ = io.WriteString(t.out, text)
}

func (t *Terminal) Println(args ...interface{}) {
	_, _ = fmt.Fprintln(t.out, args...)
}

func (t *Terminal) Printfln(format string, args ...interface{}) {
	t.Println(fmt.Sprintf(format, args...))
}

func (t *Terminal) Printlns(lines []string) {
	t.Println(strings.Join(lines, "\n"))
}

// ReadLine returns the next input line without its line ending.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
