package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCountSinglePage(t *testing.T) {
	html := `<html><body><div class="o-contents-section"></div></body></html>`
	assert.Equal(t, 1, PageCount(strings.NewReader(html)))
}

func TestPageCountMultiplePages(t *testing.T) {
	html := `<html><body>
		<a data-ga-category="ページネーション" href="?page=1">1</a>
		<a data-ga-category="ページネーション" href="?page=2">2</a>
	</body></html>`
	assert.Equal(t, 2, PageCount(strings.NewReader(html)))
}

func TestPageCountIgnoresArrowControls(t *testing.T) {
	html := `<html><body>
		<a data-ga-category="ページネーション" href="?page=1">1</a>
		<a data-ga-category="ページネーション" href="?page=2">2</a>
		<a data-ga-category="ページネーション" href="?page=3">3</a>
		<a data-ga-category="ページネーション" href="?page=2">次へ</a>
	</body></html>`
	assert.Equal(t, 3, PageCount(strings.NewReader(html)))
}

func TestPageCountNilReader(t *testing.T) {
	assert.Equal(t, 0, PageCount(nil))
}
