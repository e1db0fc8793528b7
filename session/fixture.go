package session

import (
	"fmt"

	"github.com/rcvacademy/browser-test-harness/browser"
	"github.com/rcvacademy/browser-test-harness/framework"
)

// DriverKey is the ClassScope key under which the fixture binds the class's driver.
const DriverKey framework.BindingKey = "session.driver"

// State is the lifecycle state of a Fixture.
type State int

const (
	StateUninitialized State = iota
	StateProvisioning
	StateReady
	StateTornDown
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateProvisioning:
		return "provisioning"
	case StateReady:
		return "ready"
	case StateTornDown:
		return "torn_down"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DriverProvisioner creates a driver for a browser name. *browser.Provisioner implements it.
type DriverProvisioner interface {
	Provision(name string) (browser.Driver, error)
}

// Fixture owns the browser driver of one test class. It is the only thing that creates or
// closes that driver; everything else reaches it through the class scope.
type Fixture struct {
	config      Config
	provisioner DriverProvisioner
	logger      framework.Logger
	state       State
	driver      browser.Driver
}

// NewFixture creates a Fixture in the uninitialized state.
func NewFixture(config Config, provisioner DriverProvisioner, logger framework.Logger) *Fixture {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Fixture{
		config:      config,
		provisioner: provisioner,
		logger:      logger,
	}
}

// NewFixtureFactory returns a factory that gives every test class its own Fixture. Registering
// it in framework.Options makes the fixture apply to all classes without any opt-in.
func NewFixtureFactory(config Config, provisioner DriverProvisioner, logger framework.Logger) framework.ClassFixtureFactory {
	return func() framework.ClassFixture {
		return NewFixture(config, provisioner, logger)
	}
}

// SetUp provisions the driver, opens the configured URL, maximizes the window, and binds the
// driver into the scope. Errors are returned as-is to fail the class; nothing is retried.
func (f *Fixture) SetUp(scope *framework.ClassScope) error {
	f.state = StateProvisioning
	f.logger.Printf("[%s] provisioning %q", scope.Name(), f.config.Browser())

	d, err := f.provisioner.Provision(f.config.Browser())
	if err != nil {
		return err
	}
	f.driver = d

	if err := d.Navigate(f.config.URL()); err != nil {
		return fmt.Errorf("could not open %s: %w", f.config.URL(), err)
	}
	if err := d.Maximize(); err != nil {
		return fmt.Errorf("could not maximize browser window: %w", err)
	}

	scope.Bind(DriverKey, d)
	f.state = StateReady
	f.logger.Printf("[%s] driver ready at %s", scope.Name(), d.CurrentURL())
	return nil
}

// TearDown closes the driver if one was created. It is safe to call in any state.
func (f *Fixture) TearDown(scope *framework.ClassScope) error {
	scope.Unbind(DriverKey)
	f.state = StateTornDown
	if f.driver == nil {
		return nil
	}
	d := f.driver
	f.driver = nil
	f.logger.Printf("[%s] closing driver", scope.Name())
	if err := d.Close(); err != nil {
		return fmt.Errorf("could not close browser: %w", err)
	}
	return nil
}

// State returns the current lifecycle state.
func (f *Fixture) State() State {
	return f.state
}

// DriverFrom returns the driver bound to a class scope, or nil if there is none.
func DriverFrom(scope *framework.ClassScope) browser.Driver {
	d, _ := scope.Value(DriverKey).(browser.Driver)
	return d
}

// RequireDriver returns the driver for the class that the test is running in. The test fails
// immediately if there is none, which means the fixture was not registered.
func RequireDriver(t *framework.Context) browser.Driver {
	d := DriverFrom(t.Scope())
	if d == nil {
		t.Errorf("no browser driver is bound to this test; the session fixture was not registered")
		t.FailNow()
	}
	return d
}
