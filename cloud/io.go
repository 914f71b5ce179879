// SPDX-License-Identifier: MIT

package cloud

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/encoding/json"
)

// ReadCSV parses one point per record. Fields are trimmed; records whose
// first field starts with '#' are comments.
func ReadCSV(r io.Reader) (*Cloud, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var points []Point
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrParse, "csv: %v", err)
		}
		line, _ := cr.FieldPos(0)
		p := make(Point, 0, len(rec))
		for _, f := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, errors.Wrapf(ErrParse, "line %d: %q", line, f)
			}
			p = append(p, v)
		}
		points = append(points, p)
	}

	return New(points)
}

// ReadJSON decodes an array of coordinate arrays.
func ReadJSON(r io.Reader) (*Cloud, error) {
	var raw [][]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrapf(ErrParse, "json: %v", err)
	}
	points := make([]Point, len(raw))
	for i := range raw {
		points[i] = raw[i]
	}

	return New(points)
}

// WriteJSON encodes the cloud in the format ReadJSON accepts.
func (c *Cloud) WriteJSON(w io.Writer) error {
	raw := make([][]float64, len(c.points))
	for i, p := range c.points {
		raw[i] = p
	}

	return json.NewEncoder(w).Encode(raw)
}

// WriteCSV encodes the cloud in the format ReadCSV accepts.
func (c *Cloud) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	rec := make([]string, c.dim)
	for _, p := range c.points {
		for k, v := range p {
			rec[k] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
