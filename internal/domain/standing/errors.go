package standing

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrReferentialIntegrity = crerr.New("referential integrity violation")
	ErrMalformedRecord      = crerr.New("malformed match record")
)

// ReferentialIntegrityError marks a completed match whose participant is not
// part of the team set. The match is skipped.
type ReferentialIntegrityError struct {
	MatchID string
	TeamID  string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("match %s references unknown team %q", e.MatchID, e.TeamID)
}

func (e *ReferentialIntegrityError) Unwrap() error {
	return ErrReferentialIntegrity
}

// MalformedRecordError marks a completed match that cannot be tallied, such
// as one without a score. The match is skipped.
type MalformedRecordError struct {
	MatchID string
	Reason  string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("match %s is malformed: %s", e.MatchID, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}
