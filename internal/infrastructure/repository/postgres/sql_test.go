package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"
)

func TestIsBindParameterMismatch(t *testing.T) {
	t.Run("matches bind mismatch error", func(t *testing.T) {
		err := fakeErr("pq: bind message supplies 2 parameters, but prepared statement \"\" requires 1 (08P01)")
		if !isBindParameterMismatch(err) {
			t.Fatalf("expected true for bind mismatch error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation matches does not exist")
		if isBindParameterMismatch(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})

	t.Run("ignores nil", func(t *testing.T) {
		if isBindParameterMismatch(nil) {
			t.Fatalf("expected false for nil")
		}
	})
}

func TestIsUnnamedPreparedStatementMissing(t *testing.T) {
	t.Run("matches statement missing message", func(t *testing.T) {
		err := fakeErr("pq: unnamed prepared statement does not exist (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for statement missing error")
		}
	})

	t.Run("matches by 26000 code", func(t *testing.T) {
		err := fakeErr("pq: prepared statement missing (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for 26000 prepared statement error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation matches does not exist")
		if isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsNotFound_Wrapped(t *testing.T) {
	if !isNotFound(fmt.Errorf("get season: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("boom")) {
		t.Fatalf("expected unrelated error to be found")
	}
}

func TestNullConversions(t *testing.T) {
	if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil score for NULL, got %v", *got)
	}
	if got := nullInt64ToIntPtr(sql.NullInt64{Int64: 3, Valid: true}); got == nil || *got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if nullInt64ToInt(sql.NullInt64{}) != 0 {
		t.Fatalf("expected zero for NULL int")
	}

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	got := nullTimePtr(sql.NullTime{Time: at, Valid: true})
	if got == nil || got.Location() != time.UTC || !got.Equal(at) {
		t.Fatalf("expected UTC copy of the timestamp, got %v", got)
	}
	if nullTimePtr(sql.NullTime{}) != nil {
		t.Fatalf("expected nil for NULL time")
	}
	if nullString(sql.NullString{String: "x"}) != "" {
		t.Fatalf("expected invalid string to be empty")
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
