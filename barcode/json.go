package barcode

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/encoding/json"

	"github.com/katalvlaran/lvlath-persistence/rips"
)

// Document is a self-describing scan result.
type Document struct {
	RunID   string        `json:"run_id,omitempty"`
	Ring    string        `json:"ring"`
	End     float64       `json:"end"`
	Step    float64       `json:"step"`
	Degrees int           `json:"degrees"`
	Points  int           `json:"points"`
	Dim     int           `json:"dim"`
	Records []rips.Record `json:"records"`
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "barcode: encode json")
	}
	b = append(b, '\n')
	_, err = w.Write(b)

	return err
}

// ReadJSON decodes a Document and checks record shapes.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, errors.Wrapf(ErrMalformed, "json: %v", err)
	}
	for i := range doc.Records {
		rec := &doc.Records[i]
		if len(rec.Ranks) != len(rec.Torsions) {
			return Document{}, errors.Wrapf(ErrMalformed, "record %d: %d ranks, %d torsion lists", i, len(rec.Ranks), len(rec.Torsions))
		}
		for k := range rec.Torsions {
			if rec.Torsions[k] == nil {
				rec.Torsions[k] = []int64{}
			}
		}
	}

	return doc, nil
}
