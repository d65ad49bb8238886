package app

import (
	"time"

	"github.com/google/uuid"
)

// newID returns a time-ordered UUID so ids sort by creation.
var newID = func() string { return uuid.Must(uuid.NewV7()).String() }

var now = func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }
