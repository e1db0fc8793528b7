package browser

import (
	"github.com/rcvacademy/browser-test-harness/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Installation describes where the driver for one browser identity was found.
type Installation struct {
	Identity        Identity
	DriverDirectory string
}

// Resolver locates, and if necessary downloads, the driver executable for a browser identity.
type Resolver interface {
	Resolve(id Identity) (Installation, error)
}

// Launcher starts a browser using a resolved driver and opens a control connection to it.
type Launcher interface {
	Launch(inst Installation, opts LaunchOptions) (Driver, error)
}

// LaunchOptions are passed through to the launcher for every browser it starts.
type LaunchOptions struct {
	Headless  bool
	TimeoutMS ldvalue.OptionalInt
	SlowMoMS  ldvalue.OptionalInt
}

// Provisioner turns a browser name into a live Driver.
type Provisioner struct {
	resolver Resolver
	launcher Launcher
	options  LaunchOptions
	logger   framework.Logger
}

// NewProvisioner creates a Provisioner. If logger is nil, nothing is logged.
func NewProvisioner(resolver Resolver, launcher Launcher, options LaunchOptions, logger framework.Logger) *Provisioner {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Provisioner{
		resolver: resolver,
		launcher: launcher,
		options:  options,
		logger:   logger,
	}
}

// Provision resolves the driver for the named browser and starts it.
//
// An unsupported name fails with *UnsupportedBrowserError before anything is resolved or
// launched. Resolution and launch failures are returned as *ProvisioningError. Nothing is
// retried and no other browser is tried instead.
func (p *Provisioner) Provision(name string) (Driver, error) {
	id, err := ParseIdentity(name)
	if err != nil {
		return nil, err
	}

	p.logger.Printf("Resolving driver for %s", id)
	inst, err := p.resolver.Resolve(id)
	if err != nil {
		return nil, &ProvisioningError{Identity: id, Stage: StageResolve, Err: err}
	}

	p.logger.Printf("Launching %s (headless: %t)", id, p.options.Headless)
	d, err := p.launcher.Launch(inst, p.options)
	if err != nil {
		return nil, &ProvisioningError{Identity: id, Stage: StageLaunch, Err: err}
	}
	return d, nil
}
