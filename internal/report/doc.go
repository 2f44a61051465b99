// Package report renders calculation results.
//
// This package contains writers for different output formats:
//   - SimpleWriter: localized plain text for terminal display
//   - JSONWriter: structured JSON for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown with tables and alerts
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed with MultiWriter. Labels are looked up through
// an i18n.Translator; numbers are printed as computed, with "-" for
// indeterminate values.
package report
