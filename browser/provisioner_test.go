package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	calls []Identity
	err   error
}

func (r *fakeResolver) Resolve(id Identity) (Installation, error) {
	r.calls = append(r.calls, id)
	if r.err != nil {
		return Installation{}, r.err
	}
	return Installation{Identity: id, DriverDirectory: "/drivers/" + string(id)}, nil
}

type fakeLauncher struct {
	launched []Installation
	options  []LaunchOptions
	err      error
}

func (l *fakeLauncher) Launch(inst Installation, opts LaunchOptions) (Driver, error) {
	l.launched = append(l.launched, inst)
	l.options = append(l.options, opts)
	if l.err != nil {
		return nil, l.err
	}
	return &stubDriver{id: inst.Identity}, nil
}

type stubDriver struct {
	id Identity
}

func (d *stubDriver) Navigate(string) error   { return nil }
func (d *stubDriver) Maximize() error         { return nil }
func (d *stubDriver) Screenshot(string) error { return nil }
func (d *stubDriver) Title() (string, error)  { return "", nil }
func (d *stubDriver) CurrentURL() string      { return "" }
func (d *stubDriver) Close() error            { return nil }

func TestProvisionSupportedBrowsers(t *testing.T) {
	for _, id := range SupportedIdentities {
		t.Run(string(id), func(t *testing.T) {
			resolver, launcher := &fakeResolver{}, &fakeLauncher{}
			p := NewProvisioner(resolver, launcher, LaunchOptions{Headless: true}, nil)

			d, err := p.Provision(string(id))
			require.NoError(t, err)
			require.NotNil(t, d)
			assert.Equal(t, id, d.(*stubDriver).id)
			assert.Equal(t, []Identity{id}, resolver.calls)
			require.Len(t, launcher.launched, 1)
			assert.Equal(t, "/drivers/"+string(id), launcher.launched[0].DriverDirectory)
			assert.True(t, launcher.options[0].Headless)
		})
	}
}

func TestProvisionUnsupportedBrowserFailsFast(t *testing.T) {
	for _, name := range []string{"safari", "", "Chrome", "chromium", " edge"} {
		t.Run(name, func(t *testing.T) {
			resolver, launcher := &fakeResolver{}, &fakeLauncher{}
			p := NewProvisioner(resolver, launcher, LaunchOptions{}, nil)

			d, err := p.Provision(name)
			assert.Nil(t, d)
			var unsupported *UnsupportedBrowserError
			require.True(t, errors.As(err, &unsupported))
			assert.Equal(t, name, unsupported.Value)
			assert.Contains(t, err.Error(), "chrome|firefox|edge")
			assert.Empty(t, resolver.calls)
			assert.Empty(t, launcher.launched)
		})
	}
}

func TestProvisionResolveFailureIsNotRetried(t *testing.T) {
	cause := errors.New("download failed")
	resolver, launcher := &fakeResolver{err: cause}, &fakeLauncher{}
	p := NewProvisioner(resolver, launcher, LaunchOptions{}, nil)

	d, err := p.Provision("firefox")
	assert.Nil(t, d)
	var perr *ProvisioningError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, Firefox, perr.Identity)
	assert.Equal(t, StageResolve, perr.Stage)
	assert.True(t, errors.Is(err, cause))
	assert.Len(t, resolver.calls, 1)
	assert.Empty(t, launcher.launched)
}

func TestProvisionLaunchFailureIsNotRetried(t *testing.T) {
	cause := errors.New("browser crashed")
	resolver, launcher := &fakeResolver{}, &fakeLauncher{err: cause}
	p := NewProvisioner(resolver, launcher, LaunchOptions{}, nil)

	d, err := p.Provision("edge")
	assert.Nil(t, d)
	var perr *ProvisioningError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, StageLaunch, perr.Stage)
	assert.True(t, errors.Is(err, cause))
	assert.Len(t, launcher.launched, 1)
}

func TestParseIdentity(t *testing.T) {
	id, err := ParseIdentity("edge")
	require.NoError(t, err)
	assert.Equal(t, Edge, id)

	_, err = ParseIdentity("opera")
	assert.EqualError(t, err, `browser "opera" is not supported (expected one of chrome|firefox|edge)`)
}

func TestEngineForEveryIdentity(t *testing.T) {
	for _, id := range SupportedIdentities {
		e, ok := engines[id]
		require.True(t, ok, id)
		assert.NotEmpty(t, e.installName)
	}
	assert.Equal(t, "msedge", engines[Edge].channel)
	assert.Equal(t, "firefox", engines[Firefox].browserType)
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 1920, toInt(1920))
	assert.Equal(t, 1080, toInt(float64(1080)))
	assert.Equal(t, 5, toInt(int64(5)))
	assert.Equal(t, 0, toInt("wide"))
}
