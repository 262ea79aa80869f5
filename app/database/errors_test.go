package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassify_SentinelErrors(t *testing.T) {
	assert.Equal(t, KindNotFound, Classify(sql.ErrNoRows).Kind)
	assert.Equal(t, KindConnection, Classify(sql.ErrConnDone).Kind)
	assert.Equal(t, KindConnection, Classify(sql.ErrTxDone).Kind)
}

func TestClassify_WrappedNoRows(t *testing.T) {
	err := fmt.Errorf("fetching module: %w", sql.ErrNoRows)
	assert.Equal(t, KindNotFound, Classify(err).Kind)
}

func TestClassify_PqCodes(t *testing.T) {
	tests := []struct {
		name string
		code pq.ErrorCode
		want ErrorKind
	}{
		{"connection failure", "08006", KindConnection},
		{"invalid password", "28P01", KindAuth},
		{"unique violation", "23505", KindConstraint},
		{"foreign key violation", "23503", KindConstraint},
		{"check violation", "23514", KindConstraint},
		{"invalid text representation", "22P02", KindValidation},
		{"numeric out of range", "22003", KindValidation},
		{"undefined table", "42P01", KindSchema},
		{"undefined column", "42703", KindSchema},
		{"syntax error", "42601", KindSyntax},
		{"invalid catalog name", "3D000", KindSchema},
		{"too many connections", "53300", KindConnection},
		{"admin shutdown", "57P01", KindConnection},
		{"unrecognized code", "P0001", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &pq.Error{Code: tt.code, Message: tt.name}
			got := Classify(err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}

func TestClassify_PassesThroughTypedErrors(t *testing.T) {
	orig := NotFound("module")
	got := Classify(fmt.Errorf("loading: %w", orig))
	assert.Same(t, orig, got)
}

func TestClassify_IgnoresMessageText(t *testing.T) {
	// A plain error whose text mentions a connection must not be promoted
	// to a connection failure; classification reads SQLSTATE only.
	err := errors.New("connection refused while doing something unrelated")
	assert.Equal(t, KindUnknown, Classify(err).Kind)
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	wrapped := &Error{Kind: KindUnknown, Err: inner}
	assert.True(t, errors.Is(wrapped, inner))
	assert.Equal(t, "unknown: boom", wrapped.Error())
}

func TestKindSeverity(t *testing.T) {
	assert.Equal(t, "critical", KindConnection.Severity())
	assert.Equal(t, "high", KindAuth.Severity())
	assert.Equal(t, "medium", KindValidation.Severity())
	assert.Equal(t, "medium", KindUnknown.Severity())
}
