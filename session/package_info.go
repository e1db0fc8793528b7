// Package session binds a browser driver to each test class and adds failure diagnostics to the
// report.
//
// A Fixture is created for every class through NewFixtureFactory. It provisions the driver,
// opens the configured URL, maximizes the window and binds the driver into the class scope, and
// it closes the driver after the class no matter how the tests ended. The FailureReporter is an
// outcome observer that reads the driver from the same scope when it needs a screenshot, so it
// can never see a driver that belongs to a class that has already finished.
package session
