// Package mapping defines how spreadsheet columns map to output fields.
//
// A mapping file is YAML:
//
//	version: "1"
//	variant: questions            # or catalogue
//	sheet: 最终结果                # optional, overrides the configured sheet
//	columns:
//	  - column: "【必填】question（题干）"
//	    target: question
//	  - column: "【必填】bookIsbn（书本isbn）"
//	    target: [bookname, bookIsbn] # one column feeding several fields
//
// Column names are matched verbatim against the sheet header, annotations
// included. The section and lesson targets are chapter builder inputs and are
// never written as fields of their own.
//
// Validation runs when a mapping is loaded and rejects duplicate columns,
// targets claimed by more than one column, targets unknown to the variant, and
// section or lesson columns without a chapters column.
package mapping
