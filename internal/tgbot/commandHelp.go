package tgbot

import (
	"context"
	"sort"
	"strings"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(_ context.Context, _ int64, args string) (string, error) {
	args = strings.TrimPrefix(strings.TrimSpace(args), "/")
	if command, ok := c.commands[args]; ok {
		return command.Help(), nil
	}
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range names {
		b.WriteString("/")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("Use /help and a command name for details")
	return b.String(), nil
}

func (c *HelpCommand) Help() string {
	return "Lists available commands"
}
