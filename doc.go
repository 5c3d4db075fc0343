// Package html2mark converts HTML fragments to Markdown for terminal display.
//
// The converter is built for tolerance rather than compliance: it walks the
// token stream of an HTML tokenizer with an explicit stack of open tags and
// renders every tag into Markdown when its scope closes. Unclosed tags, tags
// closed out of order and stray closing tags are all legal input; the
// conversion itself never fails.
//
// Core properties:
//   - Stack-based folding, no DOM construction
//   - Reference-style links for long URLs
//   - Optional ANSI colors driven by a Theme
//   - Optional hard wrapping that counts visible codepoints only and keeps
//     colors intact across wrapped lines
//
// Example:
//
//	out := html2mark.Convert("<h1>Hello</h1><p>HTML <b>in</b>, Markdown out.</p>",
//		html2mark.UnderscoredHeadings|html2mark.Wrap,
//		html2mark.WithWrapWidth(72),
//	)
//	fmt.Print(out)
//
// Every call owns its own state, so Convert is safe for concurrent use.
package html2mark
