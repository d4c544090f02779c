package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ChiobiJason/asa-policy-frontend/cmd/asa/ui"
	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
	"github.com/ChiobiJason/asa-policy-frontend/internal/session"
)

// styles used by the non-interactive commands for tables and status lines.
var cliStyles = ui.DefaultStyles()

// renderError converts any error into the line printed to the user,
// applying the session policy first so an expired token clears itself.
func renderError(err error) string {
	if gate != nil {
		err = gate.HandleAuthError(err)
	}
	if errors.Is(err, session.ErrNotLoggedIn) {
		return "not logged in. Run: asa login"
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return api.UserMessage(err)
	}
	return err.Error()
}

// confirm asks before a destructive action. --yes skips the prompt.
func confirm(prompt string) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// readPassword reads a password without echo when stdin is a terminal.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(data), nil
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readBody collects document content either from --file or interactively
// until an EOF (ctrl+d) when the flag is empty.
func readBody(file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(data), nil
	}
	fmt.Println("Enter content, finish with ctrl+d:")
	var sb strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return sb.String(), nil
}

// requireAuth aborts the command when no token is stored.
func requireAuth() error {
	return gate.Require()
}

func printSuccess(msg string) {
	fmt.Println(cliStyles.Success.Render("✓ ") + msg)
}
