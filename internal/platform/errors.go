package platform

import (
	"errors"
)

// ErrPartnerNotFound is returned when a command references a partner missing from storage.
var ErrPartnerNotFound = errors.New("partner not found")
