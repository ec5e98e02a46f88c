package domain

import "github.com/google/uuid"

// UserID identifies the owner of a chart.
type UserID uuid.UUID

// SystemUserID owns charts created by the periodic sky snapshot.
var SystemUserID = UserID(uuid.MustParse("00000000-0000-0000-0000-000000000001")) //nolint: gochecknoglobals

// String returns the canonical UUID text.
func (u UserID) String() string { return uuid.UUID(u).String() }
