package uitests

import (
	"github.com/rcvacademy/browser-test-harness/framework"
	"github.com/rcvacademy/browser-test-harness/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func HomePageTests() framework.TestClass {
	return framework.TestClass{
		Name: "TestHomePage",
		Tests: []framework.TestCase{
			{Name: "page has a title", Action: func(t *framework.Context) {
				d := session.RequireDriver(t)
				title, err := d.Title()
				require.NoError(t, err)
				t.Debug("title: %q", title)
				assert.NotEmpty(t, title)
			}},
			{Name: "page is loaded", Action: func(t *framework.Context) {
				d := session.RequireDriver(t)
				u := d.CurrentURL()
				t.Debug("current URL: %s", u)
				assert.NotEqual(t, "about:blank", u)
				assert.NotEmpty(t, u)
			}},
		},
	}
}
