package collector

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/brandex/internal/models"
)

// inlinableSVGProps are the paint-related properties considered when
// resolving CSS variable references inside an exported vector graphic.
var inlinableSVGProps = map[string]bool{
	"fill":              true,
	"stroke":            true,
	"color":             true,
	"stop-color":        true,
	"flood-color":       true,
	"lighting-color":    true,
	"stroke-width":      true,
	"stroke-dasharray":  true,
	"stroke-dashoffset": true,
	"stroke-linecap":    true,
	"stroke-linejoin":   true,
	"opacity":           true,
	"fill-opacity":      true,
	"stroke-opacity":    true,
}

// InlineSVGVariables rewrites an inline vector graphic so it renders
// identically without the page's stylesheets: for every node whose paint
// attributes reference a CSS variable, the computed literal value recorded
// by the script replaces the reference. Nodes and properties the script did
// not flag are left untouched to avoid noisy output.
func InlineSVGVariables(markup string, nodes []models.SVGNodeStyle) (string, error) {
	if len(nodes) == 0 {
		return markup, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return markup, fmt.Errorf("failed to parse svg markup: %w", err)
	}
	root := doc.Find("svg").First()
	if root.Length() == 0 {
		return markup, fmt.Errorf("no svg element in markup")
	}

	// Document order, root first, matching the script's node indexing.
	ordered := []*goquery.Selection{root}
	root.Find("*").Each(func(_ int, s *goquery.Selection) {
		ordered = append(ordered, s)
	})

	for _, node := range nodes {
		if node.Index < 0 || node.Index >= len(ordered) {
			continue
		}
		sel := ordered[node.Index]
		for prop, value := range node.Props {
			if !inlinableSVGProps[prop] || strings.TrimSpace(value) == "" {
				continue
			}
			sel.SetAttr(prop, value)
			rewriteStyleProp(sel, prop, value)
		}
	}

	out, err := goquery.OuterHtml(root)
	if err != nil {
		return markup, fmt.Errorf("failed to serialize svg markup: %w", err)
	}
	return out, nil
}

// rewriteStyleProp replaces a var()-based declaration in the element's
// inline style with the computed literal, since inline style would
// otherwise shadow the presentation attribute just set.
func rewriteStyleProp(sel *goquery.Selection, prop, value string) {
	style, exists := sel.Attr("style")
	if !exists || !strings.Contains(style, "var(") {
		return
	}

	decls := strings.Split(style, ";")
	changed := false
	for i, decl := range decls {
		name, _, found := strings.Cut(decl, ":")
		if !found || strings.TrimSpace(strings.ToLower(name)) != prop {
			continue
		}
		if strings.Contains(decl, "var(") {
			decls[i] = name + ": " + value
			changed = true
		}
	}
	if changed {
		sel.SetAttr("style", strings.Join(decls, ";"))
	}
}
