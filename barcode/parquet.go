package barcode

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/parquet-go/parquet-go"

	"github.com/katalvlaran/lvlath-persistence/rips"
)

// Row is one (record, degree) cell of a barcode in long format.
type Row struct {
	Record  int32   `parquet:"record"`
	Start   float64 `parquet:"start"`
	End     float64 `parquet:"end"`
	Degree  int32   `parquet:"degree"`
	Rank    int64   `parquet:"rank"`
	Torsion []int64 `parquet:"torsion"`
}

// Rows flattens records, ordered by record then degree.
func Rows(records []rips.Record) []Row {
	var out []Row
	for i, r := range records {
		for k := range r.Ranks {
			row := Row{
				Record: int32(i),
				Start:  r.Start,
				End:    r.End,
				Degree: int32(k),
				Rank:   int64(r.Ranks[k]),
			}
			if k < len(r.Torsions) {
				row.Torsion = append([]int64{}, r.Torsions[k]...)
			}
			out = append(out, row)
		}
	}

	return out
}

// FromRows regroups rows produced by Rows.
func FromRows(rows []Row) ([]rips.Record, error) {
	var out []rips.Record
	for i, row := range rows {
		switch {
		case int(row.Record) == len(out):
			out = append(out, rips.Record{Start: row.Start, End: row.End})
		case int(row.Record) != len(out)-1:
			return nil, errors.Wrapf(ErrMalformed, "row %d: record %d out of order", i, row.Record)
		}
		rec := &out[len(out)-1]
		if int(row.Degree) != len(rec.Ranks) {
			return nil, errors.Wrapf(ErrMalformed, "row %d: degree %d out of order", i, row.Degree)
		}
		rec.Ranks = append(rec.Ranks, int(row.Rank))
		rec.Torsions = append(rec.Torsions, append([]int64{}, row.Torsion...))
	}

	return out, nil
}

// WriteParquet writes records as one zstd-compressed Parquet file.
func WriteParquet(w io.Writer, records []rips.Record) error {
	pw := parquet.NewGenericWriter[Row](w, parquet.Compression(&parquet.Zstd))
	if _, err := pw.Write(Rows(records)); err != nil {
		_ = pw.Close()
		return errors.Wrap(err, "barcode: write parquet")
	}

	return errors.Wrap(pw.Close(), "barcode: close parquet")
}

// ReadParquet reads a file written by WriteParquet.
func ReadParquet(r io.ReaderAt, size int64) ([]rips.Record, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "parquet: %v", err)
	}
	pr := parquet.NewGenericReader[Row](pf)
	defer pr.Close()

	rows := make([]Row, pr.NumRows())
	n, err := pr.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "barcode: read parquet")
	}

	return FromRows(rows[:n])
}
