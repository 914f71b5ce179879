// Package barcode encodes the records of a filtration scan.
//
// Three encodings are provided:
//
//	JSON    – a Document (scan parameters + records), via segmentio/encoding.
//	Parquet – long format, one Row per (record, degree), zstd-compressed.
//	Table   – aligned plain text for terminals.
//
// JSON and Parquet round-trip exactly; empty torsion lists are restored as
// empty (non-nil) slices.
package barcode
