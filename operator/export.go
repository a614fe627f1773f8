// SPDX-License-Identifier: MIT

package operator

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/qsym/pauli"
	"gopkg.in/yaml.v3"
)

// FactorRecord is the exported form of a Factor.
type FactorRecord struct {
	Site  int    `json:"site" yaml:"site"`
	Label string `json:"label" yaml:"label"`
}

// Record is the exported form of a Term: a site/label list plus the
// coefficient split into real and imaginary parts.
type Record struct {
	Factors []FactorRecord `json:"factors" yaml:"factors"`
	Re      float64        `json:"re" yaml:"re"`
	Im      float64        `json:"im" yaml:"im"`
}

// Record returns the exported form of t.
func (t Term) Record() Record {
	fs := make([]FactorRecord, len(t.factors))
	for i, f := range t.factors {
		fs[i] = FactorRecord{Site: f.Site, Label: f.Label.String()}
	}

	return Record{Factors: fs, Re: real(t.coeff), Im: imag(t.coeff)}
}

// Export returns one record per term, in canonical order. The slice is
// never nil, so an empty sum encodes as an empty list.
func (s Sum) Export() []Record {
	out := make([]Record, len(s.terms))
	for i, t := range s.terms {
		out[i] = t.Record()
	}

	return out
}

// TermFromRecord rebuilds a term through NewTerm.
// Errors: ErrMalformedRecord joined with the underlying cause.
func TermFromRecord(r Record) (Term, error) {
	fs := make([]Factor, len(r.Factors))
	for i, fr := range r.Factors {
		l, err := pauli.ParseLabel(fr.Label)
		if err != nil {
			return Term{}, fmt.Errorf("TermFromRecord: %w: %w", ErrMalformedRecord, err)
		}
		fs[i] = Factor{Site: fr.Site, Label: l}
	}
	t, err := NewTerm(complex(r.Re, r.Im), fs...)
	if err != nil {
		return Term{}, fmt.Errorf("TermFromRecord: %w: %w", ErrMalformedRecord, err)
	}

	return t, nil
}

// Import rebuilds a Sum from records using the default policy. Records need
// not be canonical: duplicates are merged and the result is re-sorted.
func Import(records []Record) (Sum, error) {
	return defaultOptions().Import(records)
}

// Import rebuilds a Sum from records under o.
func (o Options) Import(records []Record) (Sum, error) {
	terms := make([]Term, len(records))
	for i, r := range records {
		t, err := TermFromRecord(r)
		if err != nil {
			return Sum{}, fmt.Errorf("Import: record %d: %w", i, err)
		}
		terms[i] = t
	}

	return o.merge(terms), nil
}

// MarshalJSON encodes the canonical record list.
func (s Sum) MarshalJSON() ([]byte, error) { return json.Marshal(s.Export()) }

// UnmarshalJSON decodes a record list and canonicalizes it.
func (s *Sum) UnmarshalJSON(b []byte) error {
	var records []Record
	if err := json.Unmarshal(b, &records); err != nil {
		return fmt.Errorf("UnmarshalJSON: %w: %w", ErrMalformedRecord, err)
	}
	v, err := Import(records)
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Sum) MarshalYAML() (interface{}, error) { return s.Export(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Sum) UnmarshalYAML(node *yaml.Node) error {
	var records []Record
	if err := node.Decode(&records); err != nil {
		return fmt.Errorf("UnmarshalYAML: %w: %w", ErrMalformedRecord, err)
	}
	v, err := Import(records)
	if err != nil {
		return err
	}
	*s = v

	return nil
}
