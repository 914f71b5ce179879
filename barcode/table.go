package barcode

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvlath-persistence/rips"
)

// Cell renders one homology group: the rank followed by "+Z/d" per torsion
// coefficient, e.g. "1", "0+Z/2".
func Cell(rank int, torsion []int64) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(rank))
	for _, d := range torsion {
		b.WriteString("+Z/")
		b.WriteString(strconv.FormatInt(d, 10))
	}

	return b.String()
}

// WriteTable prints records as aligned columns: start, end, H_0..H_{T-1}.
func WriteTable(w io.Writer, records []rips.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	degrees := 0
	if len(records) > 0 {
		degrees = len(records[0].Ranks)
	}
	head := []string{"START", "END"}
	for k := 0; k < degrees; k++ {
		head = append(head, "H"+strconv.Itoa(k))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(head, "\t")); err != nil {
		return err
	}
	for _, r := range records {
		cells := []string{strconv.FormatFloat(r.Start, 'g', -1, 64), strconv.FormatFloat(r.End, 'g', -1, 64)}
		for k := range r.Ranks {
			var tor []int64
			if k < len(r.Torsions) {
				tor = r.Torsions[k]
			}
			cells = append(cells, Cell(r.Ranks[k], tor))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}
