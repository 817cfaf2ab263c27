package session

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"timepick/internal/domain"
)

// Resolve returns explicit when set, otherwise the id of the invoking shell.
func Resolve(explicit string) domain.SessionID {
	if explicit != "" {
		return domain.SessionID(explicit)
	}
	return ShellID(os.Getppid())
}

// ShellID returns the session id for the shell with process id ppid.
func ShellID(ppid int) domain.SessionID {
	return domain.SessionID(fmt.Sprintf("ppid-%d", ppid))
}

// NewID returns a fresh random session id.
func NewID() domain.SessionID {
	return domain.SessionID(uuid.NewString())
}
