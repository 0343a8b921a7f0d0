package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPlatform(t *testing.T) {
	cases := []struct {
		url  string
		want Platform
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/abc-def", PlatformLever},
		{"https://acme.wd5.myworkdayjobs.com/careers/job/123", PlatformWorkday},
		{"https://careers.example.com/jobs/123", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectPlatform(tc.url), tc.url)
	}
}

func TestJobText_UsesContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs</nav>
		<div class="job-description">Senior Python engineer. 5 years of experience required.</div>
		<footer>Copyright</footer>
	</body></html>`

	got, err := JobText(html, PlatformUnknown)

	require.NoError(t, err)
	assert.Contains(t, got, "Senior Python engineer")
	assert.NotContains(t, got, "Home | Jobs")
	assert.NotContains(t, got, "Copyright")
}

func TestJobText_RemovesApplicationNoise(t *testing.T) {
	html := `<html><body>
		<div class="job__description body">
			We need a Go developer.
			<div class="eeo-statement">Equal opportunity employer statement.</div>
		</div>
		<form class="application-form">First name</form>
	</body></html>`

	got, err := JobText(html, PlatformGreenhouse)

	require.NoError(t, err)
	assert.Contains(t, got, "We need a Go developer.")
	assert.NotContains(t, got, "Equal opportunity")
	assert.NotContains(t, got, "First name")
}

func TestJobText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting with no recognizable containers.</p></body></html>`

	got, err := JobText(html, PlatformUnknown)

	require.NoError(t, err)
	assert.Equal(t, "Plain posting with no recognizable containers.", got)
}

func TestNeedsBrowser(t *testing.T) {
	assert.True(t, NeedsBrowser("   "))
	assert.True(t, NeedsBrowser("short stub"))

	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, NeedsBrowser(string(long)))
}
