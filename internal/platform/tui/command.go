package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/anmitsu/go-shlex"

	"github.com/vovakirdan/tui-glimmer/internal/page"
)

// ErrEmptyCommand is returned for a blank command line.
var ErrEmptyCommand = errors.New("empty command")

// Command is one parsed command-bar line.
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits a command line shell-style, so quoted arguments may
// contain spaces: message "Happy birthday" "from all of us".
func ParseCommand(line string) (Command, error) {
	fields, err := shlex.Split(line, true)
	if err != nil {
		return Command{}, fmt.Errorf("parse command: %w", err)
	}
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}
	return Command{Name: strings.ToLower(fields[0]), Args: fields[1:]}, nil
}

// Execute runs the command against the session's utility surface and
// returns a status line.
func (c Command) Execute(s *page.Session) (string, error) {
	switch c.Name {
	case "message", "msg":
		if len(c.Args) < 1 || len(c.Args) > 2 {
			return "", errors.New("usage: message <title> [subtitle]")
		}
		subtitle := ""
		if len(c.Args) == 2 {
			subtitle = c.Args[1]
		}
		s.SetMessage(c.Args[0], subtitle)
		return "message set", nil

	case "color", "colour":
		if len(c.Args) != 1 {
			return "", errors.New("usage: color <#hex|name>")
		}
		if err := s.SetParticleColor(c.Args[0]); err != nil {
			return "", err
		}
		return "particle color " + string(s.ParticleColor()), nil

	case "add":
		if len(c.Args) != 1 {
			return "", errors.New("usage: add <count>")
		}
		n, err := strconv.Atoi(c.Args[0])
		if err != nil {
			return "", fmt.Errorf("add: invalid count %q", c.Args[0])
		}
		if err := s.AddParticles(n); err != nil {
			return "", err
		}
		ambient, _ := s.ParticleCounts()
		return fmt.Sprintf("%d particles", ambient), nil
	}

	return "", fmt.Errorf("unknown command %q (message, color, add)", c.Name)
}
