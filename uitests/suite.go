package uitests

import (
	"github.com/rcvacademy/browser-test-harness/framework"
	"github.com/rcvacademy/browser-test-harness/session"
)

// RunTestSuite runs every test class with the session fixture applied to each of them.
func RunTestSuite(
	config session.Config,
	provisioner session.DriverProvisioner,
	filter framework.Filter,
	testLogger framework.TestLogger,
	fixtureLogger framework.Logger,
	observers ...framework.OutcomeObserver,
) framework.Results {
	return framework.Run(framework.Options{
		Filter:        filter,
		TestLogger:    testLogger,
		Observers:     observers,
		ClassFixtures: []framework.ClassFixtureFactory{session.NewFixtureFactory(config, provisioner, fixtureLogger)},
	}, func(c *framework.Context) {
		c.RunClass(HomePageTests())
	})
}
