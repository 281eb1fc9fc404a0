package main

import (
	"fmt"
	"strings"

	"github.com/revelaction/adpos/render"
	"github.com/revelaction/adpos/token"
)

var commands = []string{
	"extract",
	"normalize",
	"compare",
	"report",
	"run",
	"ls",
	"version",
	"bash",
	"help",
}

// completeCommand handles the autocompletion requests triggered by the bash completion script.
func completeCommand(args []string, ui UI) error {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	for _, c := range getCompletions(args) {
		_, _ = fmt.Fprintln(ui.Out, c)
	}
	return nil
}

func getCompletions(args []string) []string {
	if len(args) < 2 {
		return nil
	}

	// args[0] is "adpos" (binary name from COMP_WORDS[0])
	commandIndex := 1
	cursorIndex := len(args) - 1
	lastWord := args[cursorIndex]

	if cursorIndex == commandIndex {
		return withPrefix(commands, lastWord)
	}

	// values of the flags with a closed set
	switch args[cursorIndex-1] {
	case "--format", "-f":
		return withPrefix(render.SupportedFormats(), lastWord)
	case "--tokenizer":
		return withPrefix(token.Names(), lastWord)
	}

	return nil
}

func withPrefix(words []string, prefix string) []string {
	var completions []string
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			completions = append(completions, w)
		}
	}
	return completions
}
