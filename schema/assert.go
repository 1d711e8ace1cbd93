package schema

import (
	"errors"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
	"github.com/stretchr/testify/require"
)

// Expect fails the test unless value conforms to s. It has no effect on
// success and can be repeated on the same value.
func Expect(t require.TestingT, value any, s *Schema, msgAndArgs ...any) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	require.NoError(t, s.Validate(value), msgAndArgs...)
}

// MatchSchema is the gomega form of Expect:
//
//	Expect(user).To(schema.MatchSchema(schema.User()))
func MatchSchema(s *Schema) types.GomegaMatcher {
	return &schemaMatcher{schema: s, lastErr: nil}
}

type schemaMatcher struct {
	schema  *Schema
	lastErr error
}

func (m *schemaMatcher) Match(actual any) (bool, error) {
	err := m.schema.Validate(actual)
	if err == nil {
		return true, nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		m.lastErr = err

		return false, nil
	}

	return false, err
}

func (m *schemaMatcher) FailureMessage(actual any) string {
	return format.Message(actual, "to match JSON schema "+m.schema.Name(), m.lastErr.Error())
}

func (m *schemaMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(actual, "not to match JSON schema "+m.schema.Name())
}
