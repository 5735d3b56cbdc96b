package collector

import (
	"strconv"
	"strings"

	"github.com/ternarybob/brandex/internal/common"
)

// BuildCollectScript renders the in-page sampling script with the
// configured bounds substituted. The script is a single self-contained
// expression evaluating to the PageSignals JSON; it reads only computed
// style and never mutates the page.
func BuildCollectScript(cfg common.CollectorConfig) string {
	script := collectScript
	script = strings.ReplaceAll(script, "__MAX_BUTTONS__", strconv.Itoa(orDefault(cfg.MaxButtons, 50)))
	script = strings.ReplaceAll(script, "__MAX_FORM_CONTROLS__", strconv.Itoa(orDefault(cfg.MaxFormControls, 25)))
	script = strings.ReplaceAll(script, "__MAX_TEXT_ELEMENTS__", strconv.Itoa(orDefault(cfg.MaxTextElements, 50)))
	script = strings.ReplaceAll(script, "__MAX_HEADER_IMAGES__", strconv.Itoa(orDefault(cfg.MaxHeaderImages, 5)))
	return script
}

func orDefault(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

const collectScript = `(() => {
	const MAX_BUTTONS = __MAX_BUTTONS__;
	const MAX_FORM_CONTROLS = __MAX_FORM_CONTROLS__;
	const MAX_TEXT_ELEMENTS = __MAX_TEXT_ELEMENTS__;
	const MAX_HEADER_IMAGES = __MAX_HEADER_IMAGES__;

	const seen = new Set();
	const take = (nodes, max) => {
		const out = [];
		for (const el of nodes) {
			if (out.length >= max) break;
			if (seen.has(el)) continue;
			seen.add(el);
			out.push(el);
		}
		return out;
	};

	const classesOf = (el) => {
		const c = el.className;
		const v = (c && c.baseVal !== undefined) ? c.baseVal : (c || '');
		return String(v);
	};
	const textOf = (el) => ((el.innerText || el.textContent || '').trim()).slice(0, 200);
	const ctaPattern = /(^|[-_ ])(cta|call-to-action|btn-primary|button-primary|primary)([-_ ]|$)/i;

	const snapshot = (el, flags) => {
		const s = getComputedStyle(el);
		const r = el.getBoundingClientRect();
		return Object.assign({
			tag: el.tagName.toLowerCase(),
			classes: classesOf(el),
			text: textOf(el),
			w: Math.round(r.width),
			h: Math.round(r.height),
			color: s.color,
			backgroundColor: s.backgroundColor,
			borderColor: s.borderTopColor,
			borderWidth: s.borderTopWidth,
			borderRadius: s.borderTopLeftRadius,
			fontFamily: s.fontFamily,
			fontSize: s.fontSize,
			fontWeight: s.fontWeight,
			shadow: s.boxShadow !== 'none' ? s.boxShadow : ''
		}, flags);
	};

	const elements = [];
	const buttonNodes = take(document.querySelectorAll(
		'button, [role="button"], input[type="submit"], a[class*="btn" i], a[class*="button" i], [class*="cta" i]'), MAX_BUTTONS);
	for (const el of buttonNodes) {
		const hasCTA = el.hasAttribute('data-cta') || ctaPattern.test(classesOf(el));
		elements.push(snapshot(el, { isButton: true, hasCTAIndicator: hasCTA }));
	}
	for (const el of take(document.querySelectorAll('input, select, textarea'), MAX_FORM_CONTROLS)) {
		elements.push(snapshot(el, { isInput: true }));
	}
	for (const el of take(document.querySelectorAll('h1, h2, h3, p, a'), MAX_TEXT_ELEMENTS)) {
		elements.push(snapshot(el, { isLink: el.tagName === 'A' }));
	}

	const sheets = { colors: [], borderRadii: [], spacing: [], customProps: {}, skips: [] };
	const colorPattern = /#[0-9a-fA-F]{3,8}\b|rgba?\([^)]*\)/g;
	// Bare keywords pass through for host-side named-color resolution;
	// CSS-wide keywords and non-color values are filtered there.
	const namedPattern = /^[a-z]+$/i;
	const nonColorKeywords = new Set(['inherit', 'initial', 'unset', 'revert', 'none',
		'transparent', 'currentcolor', 'auto']);
	const spacingProps = ['margin-top', 'margin-bottom', 'padding-top', 'padding-bottom', 'gap', 'row-gap', 'column-gap'];
	for (const sheet of Array.from(document.styleSheets)) {
		let rules;
		try {
			rules = sheet.cssRules;
		} catch (e) {
			sheets.skips.push({ source: sheet.href || 'inline-stylesheet', reason: String(e) });
			continue;
		}
		if (!rules) continue;
		for (const rule of Array.from(rules)) {
			try {
				const st = rule.style;
				if (!st) continue;
				for (const prop of ['color', 'background-color', 'border-color', 'background']) {
					const v = st.getPropertyValue(prop);
					if (!v || sheets.colors.length >= 500) continue;
					const found = v.match(colorPattern);
					if (found) {
						sheets.colors.push(...found);
						continue;
					}
					const word = v.trim().toLowerCase();
					if (namedPattern.test(word) && !nonColorKeywords.has(word)) sheets.colors.push(word);
				}
				const radius = st.getPropertyValue('border-radius');
				if (radius && sheets.borderRadii.length < 200) sheets.borderRadii.push(...radius.split(' '));
				for (const prop of spacingProps) {
					const v = st.getPropertyValue(prop);
					if (v && sheets.spacing.length < 500) sheets.spacing.push(...v.split(' '));
				}
				if (rule.selectorText === ':root' || rule.selectorText === 'html') {
					for (const name of Array.from(st)) {
						if (name.startsWith('--')) sheets.customProps[name] = st.getPropertyValue(name).trim();
					}
				}
			} catch (e) {
				sheets.skips.push({ source: 'rule', reason: String(e) });
			}
		}
	}

	const svgPaintProps = ['fill', 'stroke', 'color', 'stop-color', 'flood-color', 'lighting-color',
		'stroke-width', 'stroke-dasharray', 'stroke-dashoffset', 'stroke-linecap', 'stroke-linejoin',
		'opacity', 'fill-opacity', 'stroke-opacity'];
	const svgPaintDefaults = {
		'fill': 'rgb(0, 0, 0)', 'stroke': 'none', 'stop-color': 'rgb(0, 0, 0)',
		'flood-color': 'rgb(0, 0, 0)', 'lighting-color': 'rgb(255, 255, 255)',
		'stroke-width': '1px', 'stroke-dasharray': 'none', 'stroke-dashoffset': '0px',
		'stroke-linecap': 'butt', 'stroke-linejoin': 'miter',
		'opacity': '1', 'fill-opacity': '1', 'stroke-opacity': '1'
	};
	const referencesVar = (el) => {
		for (const attr of el.attributes || []) {
			if (attr.value && attr.value.includes('var(')) return true;
		}
		return false;
	};
	const varNodesOf = (svg) => {
		const out = [];
		const nodes = [svg, ...svg.querySelectorAll('*')];
		for (let i = 0; i < nodes.length; i++) {
			if (!referencesVar(nodes[i])) continue;
			const cs = getComputedStyle(nodes[i]);
			const props = {};
			for (const prop of svgPaintProps) {
				const v = cs.getPropertyValue(prop);
				if (v && v !== svgPaintDefaults[prop]) props[prop] = v;
			}
			if (Object.keys(props).length > 0) out.push({ index: i, props: props });
		}
		return out;
	};

	const containerHintOf = (el) => {
		const hints = [];
		let node = el.parentElement;
		for (let depth = 0; node && depth < 4; depth++) {
			hints.push(classesOf(node), node.id || '');
			node = node.parentElement;
		}
		return hints.filter(Boolean).join(' ').slice(0, 300);
	};
	const inHeader = (el) => !!el.closest('header, nav, [role="banner"], .header, .navbar');
	const inLink = (el) => !!el.closest('a');

	const logoCandidates = [];
	const imgNodes = take(document.querySelectorAll(
		'header img, nav img, [role="banner"] img, img[alt*="logo" i], img[src*="logo" i], img[class*="logo" i]'), MAX_HEADER_IMAGES);
	for (const el of imgNodes) {
		const r = el.getBoundingClientRect();
		logoCandidates.push({
			kind: 'img', src: el.currentSrc || el.src || '', alt: el.alt || '',
			classes: classesOf(el), containerHint: containerHintOf(el),
			inHeader: inHeader(el), inLink: inLink(el), top: Math.round(r.top + window.scrollY)
		});
	}
	const svgNodes = take(document.querySelectorAll(
		'header svg, nav svg, [role="banner"] svg, svg[class*="logo" i], svg[id*="logo" i]'), MAX_HEADER_IMAGES);
	for (const el of svgNodes) {
		const r = el.getBoundingClientRect();
		logoCandidates.push({
			kind: 'svg', src: '', alt: el.getAttribute('aria-label') || '',
			classes: classesOf(el), containerHint: containerHintOf(el),
			inHeader: inHeader(el), inLink: inLink(el), top: Math.round(r.top + window.scrollY),
			markup: el.outerHTML.slice(0, 20000), varNodes: varNodesOf(el)
		});
	}

	const metaContent = (sel) => {
		const el = document.querySelector(sel);
		return el ? (el.content || '') : '';
	};
	const favicon = document.querySelector('link[rel~="icon"], link[rel="shortcut icon"]');
	const meta = {
		favicon: favicon ? favicon.href : '',
		ogImage: metaContent('meta[property="og:image"]'),
		twitterImage: metaContent('meta[name="twitter:image"], meta[property="twitter:image"]'),
		siteName: metaContent('meta[property="og:site_name"]'),
		title: document.title || '',
		generator: metaContent('meta[name="generator"]'),
		scriptSrcs: Array.from(document.scripts).map((s) => s.src).filter(Boolean).slice(0, 30)
	};

	const rootStyle = getComputedStyle(document.documentElement);
	const body = document.body;
	const bodyStyle = body ? getComputedStyle(body) : rootStyle;
	const heading = document.querySelector('h1') || document.querySelector('h2');
	const headingStyle = heading ? getComputedStyle(heading) : bodyStyle;
	const h1 = document.querySelector('h1');
	const h2 = document.querySelector('h2');

	const backgroundCandidates = [];
	for (const sel of ['body', 'html', '#root', '#app', '#__next', 'main']) {
		const el = document.querySelector(sel);
		if (el) backgroundCandidates.push(getComputedStyle(el).backgroundColor);
	}

	return {
		url: location.href,
		meta: meta,
		rootFontSize: parseFloat(rootStyle.fontSize) || 16,
		rootClasses: (document.documentElement.className + ' ' + (body ? body.className : '')).trim(),
		dataTheme: document.documentElement.getAttribute('data-theme') ||
			document.documentElement.getAttribute('data-bs-theme') ||
			(body ? body.getAttribute('data-theme') : '') || '',
		backgroundCandidates: backgroundCandidates,
		stylesheets: sheets,
		elements: elements,
		logoCandidates: logoCandidates,
		typography: {
			bodyStack: bodyStyle.fontFamily,
			headingStack: headingStyle.fontFamily,
			h1Size: h1 ? getComputedStyle(h1).fontSize : '',
			h2Size: h2 ? getComputedStyle(h2).fontSize : '',
			bodySize: bodyStyle.fontSize
		}
	};
})()`
