package sysinfo

import (
	"os"
	"os/user"
	"strings"

	"github.com/lte-simulator/simctl/internal/verify"
)

// UserProbe implements verify.UserProbe with os/user.
type UserProbe struct{}

// NewUserProbe creates a host-backed user probe.
func NewUserProbe() *UserProbe {
	return &UserProbe{}
}

// Compile-time assertion that UserProbe implements verify.UserProbe
var _ verify.UserProbe = (*UserProbe)(nil)

// UID returns the real user id of the invoking process.
func (p *UserProbe) UID() int {
	return os.Getuid()
}

// Username returns the invoking user's name, or "unknown" when the user
// database is unreadable.
func (p *UserProbe) Username() string {
	current, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return current.Username
}

// Groups returns the names of the groups the current user belongs to.
// Group ids that do not resolve to names are skipped.
func (p *UserProbe) Groups() ([]string, error) {
	current, err := user.Current()
	if err != nil {
		return nil, err
	}
	ids, err := current.GroupIds()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		group, err := user.LookupGroupId(id)
		if err != nil {
			continue
		}
		names = append(names, group.Name)
	}
	return names, nil
}

// GroupExists reports whether a named OS group is defined.
func (p *UserProbe) GroupExists(name string) (bool, error) {
	_, err := user.LookupGroup(name)
	if err == nil {
		return true, nil
	}
	if _, ok := err.(user.UnknownGroupError); ok {
		return false, nil
	}
	// user.LookupGroup wraps some lookup failures in plain errors that
	// still mean "no such group".
	if strings.Contains(err.Error(), "unknown group") {
		return false, nil
	}
	return false, err
}
