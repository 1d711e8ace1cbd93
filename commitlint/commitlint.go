// Package commitlint checks commit messages against the repository policy:
//
//	<type>(<optional scope>)!?: <optional TICKET> <subject>
//
// e.g. "feat(api): PROJ-123 add user lookup endpoint".
package commitlint

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmptyMessage  = errors.New("commitlint: message is empty")
	ErrHeaderFormat  = errors.New("commitlint: header does not match type(scope): [TICKET ]subject")
	ErrInvalidConfig = errors.New("commitlint: invalid config")
)

var (
	headerPattern = regexp.MustCompile(`^(\w+)(?:\(([^)]+)\))?(!)?: (?:([A-Z]{2,5}-\d+) )?(.+)$`)
	footerPattern = regexp.MustCompile(`^(BREAKING CHANGE|[A-Za-z-]+)(: | #)`)
)

type Header struct {
	Type     string
	Scope    string
	Ticket   string
	Subject  string
	Breaking bool
}

type Message struct {
	Header    Header
	RawHeader string
	Body      []string
	Footer    []string
}

// Parse splits a commit message into header, body and footer. Lines starting
// with '#' are git comments and are dropped.
func Parse(message string) (*Message, error) {
	lines := stripComments(message)
	if len(lines) == 0 {
		return nil, ErrEmptyMessage
	}

	msg := &Message{
		Header:    Header{}, //nolint:exhaustruct
		RawHeader: lines[0],
		Body:      nil,
		Footer:    nil,
	}

	match := headerPattern.FindStringSubmatch(lines[0])
	if match == nil {
		return msg, fmt.Errorf("%w: %q", ErrHeaderFormat, lines[0])
	}

	msg.Header = Header{
		Type:     match[1],
		Scope:    match[2],
		Breaking: match[3] == "!",
		Ticket:   match[4],
		Subject:  match[5],
	}

	msg.Body, msg.Footer = splitFooter(lines[1:])

	return msg, nil
}

func stripComments(message string) []string {
	raw := strings.Split(strings.ReplaceAll(message, "\r\n", "\n"), "\n")

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.HasPrefix(line, "#") {
			continue
		}

		lines = append(lines, strings.TrimRight(line, " \t"))
	}

	// Trim blank lines at both ends.
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// splitFooter separates a trailing "Token: value" paragraph from the body.
// rest keeps its leading blank line, if any, so the lint can check for it.
func splitFooter(rest []string) ([]string, []string) {
	if len(rest) == 0 {
		return nil, nil
	}

	start := len(rest)
	for start > 0 && rest[start-1] != "" {
		start--
	}

	if start == len(rest) || !footerPattern.MatchString(rest[start]) {
		return rest, nil
	}

	body := rest[:start]
	if len(body) > 0 && body[len(body)-1] == "" && len(body) > 1 {
		body = body[:len(body)-1]
	}

	return body, rest[start:]
}
