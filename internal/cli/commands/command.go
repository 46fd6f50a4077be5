package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"StockKeeper/internal/config"
)

// Out — вывод команд; подменяется в тестах.
var Out io.Writer = os.Stdout

// ErrUsage возвращается командой при неверных аргументах.
var ErrUsage = errors.New("invalid usage")

// Command — единый контракт консольной команды.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Run(cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Register добавляет команду в реестр. Вызывается из init() файлов команд.
func Register(c Command) {
	registry[strings.ToLower(c.Name())] = c
}

// Get возвращает команду по имени.
func Get(name string) (Command, bool) {
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}

// All возвращает команды в алфавитном порядке.
func All() []Command {
	out := make([]Command, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// FormatGlobalUsage печатает общую справку по командам.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("skcli - StockKeeper API client\n\n")
	b.WriteString("Usage: skcli <command> [args]\n\nCommands:\n")
	for _, c := range All() {
		fmt.Fprintf(&b, "  %-10s %s\n", c.Name(), c.Description())
	}
	b.WriteString("\nUse \"skcli help <command>\" for command usage.\n")
	return b.String()
}
