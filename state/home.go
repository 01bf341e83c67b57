package state

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/session"
	"github.com/ratel-online/uno/uno/game"
)

type home struct{}

const (
	homeAddHuman = iota + 1
	homeAddComputer
	homeRemove
	homeSettings
	homePlay
	homeScores
	homeResume
	homeQuit
)

func (h *home) Next(ctx context.Context, s *session.Session) (consts.StateID, error) {
	terminal := s.Terminal()
	selected, err := terminal.PromptIntegerInRange(homeAddHuman, homeQuit, h.menu(s))
	if err != nil {
		return 0, err
	}
	switch selected {
	case homeAddHuman:
		name, err := terminal.PromptString("Name: ")
		if err != nil {
			return 0, err
		}
		return 0, terminal.WriteError(s.AddHuman(name))
	case homeAddComputer:
		name, err := s.AddComputer()
		if err != nil {
			return 0, terminal.WriteError(err)
		}
		terminal.Printfln("%s joined", name)
	case homeRemove:
		players := s.Players()
		if len(players) == 0 {
			return 0, nil
		}
		seat, err := terminal.PromptIntegerInRange(1, len(players), "Remove which player?")
		if err != nil {
			return 0, err
		}
		return 0, terminal.WriteError(s.Remove(seat - 1))
	case homeSettings:
		return consts.StateSettings, nil
	case homePlay:
		if !s.CanBegin() {
			return 0, terminal.WriteError(consts.ErrorsRosterTooSmall)
		}
		return consts.StateGame, nil
	case homeScores:
		return consts.StateScores, nil
	case homeResume:
		return 0, resume(ctx, s)
	case homeQuit:
		return consts.StateExit, nil
	}
	return 0, nil
}

func (*home) menu(s *session.Session) string {
	names := make([]string, 0)
	for i, p := range s.Players() {
		kind := ""
		if p.Kind() == game.Computer {
			kind = " (computer)"
		}
		names = append(names, fmt.Sprintf("%d. %s%s", i+1, p.Name(), kind))
	}
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Players: %s\n", strings.Join(names, ", ")))
	buf.WriteString("1. Add human player\n")
	buf.WriteString("2. Add computer player\n")
	buf.WriteString("3. Remove player\n")
	buf.WriteString("4. Settings\n")
	buf.WriteString("5. Play\n")
	buf.WriteString("6. Scores\n")
	buf.WriteString("7. Resume a quit match\n")
	buf.WriteString("8. Quit")
	return buf.String()
}

func resume(ctx context.Context, s *session.Session) error {
	terminal := s.Terminal()
	ids, err := s.Suspended(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		terminal.Println("No quit matches to resume")
		return nil
	}
	lines := make([]string, 0, len(ids)+1)
	for i, id := range ids {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, id))
	}
	lines = append(lines, "Resume which match?")
	selected, err := terminal.PromptIntegerInRange(1, len(ids), strings.Join(lines, "\n"))
	if err != nil {
		return err
	}
	result, err := s.Resume(ctx, ids[selected-1])
	return report(s, result, err)
}
