package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseTags are element types removed from the content region regardless of
// their attributes.
var noiseTags = []string{
	"script",
	"style",
	"nav",
	"header",
	"footer",
	"aside",
}

// noiseClasses are conventional site-chrome class names removed from the
// content region: navigation menus, header/footer/sidebar/tab-bar regions
// and their title/button sub-elements.
var noiseClasses = []string{
	".md-nav",
	".md-header",
	".md-footer",
	".md-sidebar",
	".md-tabs",
	".md-tabs__list",
	".md-tabs__item",
	".md-header__title",
	".md-header__button",
	".md-footer__title",
	".md-footer__link",
}

// Strip removes noise subtrees from the selection in place. Removing a
// matched element removes its whole subtree; removing a descendant of an
// already-removed element is a no-op, so the two passes are idempotent and
// order-independent.
func Strip(sel *goquery.Selection) {
	sel.Find(strings.Join(noiseTags, ", ")).Remove()
	sel.Find(strings.Join(noiseClasses, ", ")).Remove()
}
