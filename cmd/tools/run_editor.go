package tools

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/bgraf/figurekit/config"
)

// RunEditor opens file in the editor configured as `tools.editor`, falling
// back to $EDITOR. A positive line is passed as "+line", which vi, nano and
// emacs understand as the initial cursor line.
func RunEditor(file string, line int) error {
	editorName, err := lookupEditor()
	if err != nil {
		return err
	}

	args := []string{file}
	if line > 0 {
		args = []string{"+" + strconv.Itoa(line), file}
	}

	cmd := exec.Command(editorName, args...)

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

func lookupEditor() (string, error) {
	if editor := config.Editor(); editor != "" {
		return exec.LookPath(editor)
	}

	editor, ok := os.LookupEnv("EDITOR")
	if !ok {
		return "", fmt.Errorf("neither tools.editor nor EDITOR is set")
	}

	return exec.LookPath(editor)
}

// LineOf returns the 1-based line of byte offset in text.
func LineOf(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}

	line := 1
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
		}
	}
	return line
}
