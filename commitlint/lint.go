package commitlint

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/andyle182810/apicheck/validator"
)

type Level int

const (
	LevelWarning Level = 1
	LevelError   Level = 2
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}

	return "warning"
}

type Violation struct {
	Rule    string
	Level   Level
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s [%s] %s", v.Level, v.Rule, v.Message)
}

type Config struct {
	Types             []string `json:"types"             validate:"required,min=1,dive,required"`
	HeaderMaxLength   int      `json:"headerMaxLength"   validate:"gt=0"`
	BodyMaxLineLength int      `json:"bodyMaxLineLength" validate:"gt=0"`
}

func DefaultConfig() Config {
	return Config{
		Types: []string{
			"feat", "fix", "chore", "refactor", "docs", "test",
			"perf", "build", "ci", "style", "revert",
		},
		HeaderMaxLength:   120,
		BodyMaxLineLength: 100,
	}
}

func (c Config) Validate() error {
	if err := validator.New().Validate(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Lint returns every rule the message breaks, errors and warnings alike. An
// unparsable header yields a single header-pattern error alongside any
// length violation.
func Lint(message string, cfg Config) []Violation {
	var violations []Violation

	add := func(rule string, level Level, format string, args ...any) {
		violations = append(violations, Violation{Rule: rule, Level: level, Message: fmt.Sprintf(format, args...)})
	}

	msg, err := Parse(message)
	if err != nil {
		if msg == nil {
			add("header-empty", LevelError, "commit message may not be empty")

			return violations
		}

		add("header-pattern", LevelError, "header must look like type(scope): [TICKET ]subject")
		checkHeaderLength(msg.RawHeader, cfg, add)

		return violations
	}

	checkHeaderLength(msg.RawHeader, cfg, add)

	h := msg.Header

	if h.Type != strings.ToLower(h.Type) {
		add("type-case", LevelError, "type must be lower-case")
	}

	if !slices.Contains(cfg.Types, h.Type) {
		add("type-enum", LevelError, "type must be one of [%s]", strings.Join(cfg.Types, ", "))
	}

	if h.Scope != "" && h.Scope != strings.ToLower(h.Scope) {
		add("scope-case", LevelError, "scope must be lower-case")
	}

	if strings.TrimSpace(h.Subject) == "" {
		add("subject-empty", LevelError, "subject may not be empty")
	}

	if strings.HasSuffix(h.Subject, ".") {
		add("subject-full-stop", LevelError, "subject may not end with full stop")
	}

	if len(msg.Body) > 0 && msg.Body[0] != "" {
		add("body-leading-blank", LevelWarning, "body must have leading blank line")
	}

	for _, line := range msg.Body {
		if len(line) > cfg.BodyMaxLineLength {
			add("body-max-line-length", LevelError,
				"body's lines must not be longer than %d characters", cfg.BodyMaxLineLength)

			break
		}
	}

	for _, line := range msg.Footer {
		if len(line) > cfg.BodyMaxLineLength {
			add("footer-max-line-length", LevelError,
				"footer's lines must not be longer than %d characters", cfg.BodyMaxLineLength)

			break
		}
	}

	return violations
}

func checkHeaderLength(header string, cfg Config, add func(string, Level, string, ...any)) {
	if n := len([]rune(header)); n > cfg.HeaderMaxLength {
		add("header-max-length", LevelError,
			"header must not be longer than %d characters, current length is %d", cfg.HeaderMaxLength, n)
	}
}

func HasErrors(violations []Violation) bool {
	return slices.ContainsFunc(violations, func(v Violation) bool {
		return v.Level == LevelError
	})
}

// Summary renders violations one per line, the way commit hooks print them.
func Summary(header string, violations []Violation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "input: %s\n", strings.TrimRightFunc(header, unicode.IsSpace))

	for _, v := range violations {
		b.WriteString(v.String())
		b.WriteByte('\n')
	}

	errs, warns := 0, 0

	for _, v := range violations {
		if v.Level == LevelError {
			errs++
		} else {
			warns++
		}
	}

	fmt.Fprintf(&b, "found %d problems, %d warnings\n", errs, warns)

	return b.String()
}
