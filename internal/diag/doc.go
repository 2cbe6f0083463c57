// Package diag defines the diagnostic model shared by the tokenizer, the
// indentation normalizer and the parser.
//
// Producers emit through a Reporter so they never depend on storage or
// rendering; BagReporter collects into a bounded Bag that the driver sorts
// and hands to internal/diagfmt. Lint findings are not diagnostics: they are
// lint.Problem values with their own rendering.
//
// Codes are grouped by phase:
//
//   - LEX1xxx – tokenizer
//   - SYN2xxx – grammar parser
//   - IND3xxx – indentation normalizer
//   - IO4xxx  – file access and formatter safety checks
package diag
