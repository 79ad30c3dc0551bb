package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFixesInjectsBothBlocks(t *testing.T) {
	fixed := ApplyFixes(unpatchedPage)

	assert.Contains(t, fixed, "aos-animate")
	assert.Less(t, strings.Index(fixed, "<style"), strings.Index(fixed, "</head>"))
	assert.Less(t, strings.Index(fixed, "window.addEventListener"), strings.Index(fixed, "</body>"))
}

func TestApplyFixesIdempotent(t *testing.T) {
	once := ApplyFixes(unpatchedPage)
	twice := ApplyFixes(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, 1, strings.Count(twice, "AOS Visibility Fallback"))
	assert.Equal(t, 1, strings.Count(twice, "window.addEventListener"))
}

func TestApplyFixesSkipsPatchedPage(t *testing.T) {
	assert.Equal(t, patchedPage, ApplyFixes(patchedPage))
}

func TestApplyFixesGuardCaseInsensitive(t *testing.T) {
	page := strings.ReplaceAll(patchedPage, "aos-animate", "AOS-ANIMATE")
	assert.Equal(t, page, ApplyFixes(page))
}

func TestApplyFixesWithoutHeadOrBody(t *testing.T) {
	fragment := "<div>just a fragment</div>"
	assert.Equal(t, fragment, ApplyFixes(fragment))
}
