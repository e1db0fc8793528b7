package browser

import (
	"fmt"
	"strings"
)

// Identity names one of the browser engines the harness can drive.
type Identity string

const (
	Chrome  Identity = "chrome"
	Firefox Identity = "firefox"
	Edge    Identity = "edge"
)

// SupportedIdentities lists every value accepted by ParseIdentity.
var SupportedIdentities = []Identity{Chrome, Firefox, Edge}

// ParseIdentity maps an operator-supplied browser name to an Identity. Matching is exact; there is
// no default browser.
func ParseIdentity(name string) (Identity, error) {
	for _, id := range SupportedIdentities {
		if string(id) == name {
			return id, nil
		}
	}
	return "", &UnsupportedBrowserError{Value: name}
}

// SupportedNames returns the supported identities as a display string such as "chrome|firefox|edge".
func SupportedNames() string {
	names := make([]string, 0, len(SupportedIdentities))
	for _, id := range SupportedIdentities {
		names = append(names, string(id))
	}
	return strings.Join(names, "|")
}

// UnsupportedBrowserError is a configuration error: the requested browser is not one of the
// supported identities.
type UnsupportedBrowserError struct {
	Value string
}

func (e *UnsupportedBrowserError) Error() string {
	return fmt.Sprintf("browser %q is not supported (expected one of %s)", e.Value, SupportedNames())
}

// ProvisioningError means a supported browser could not be made ready.
type ProvisioningError struct {
	Identity Identity
	Stage    string
	Err      error
}

const (
	StageResolve = "resolve"
	StageLaunch  = "launch"
)

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("could not %s driver for %s: %s", e.Stage, e.Identity, e.Err)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}
