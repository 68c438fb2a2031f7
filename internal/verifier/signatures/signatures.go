// Package signatures holds the static document-type reference data the
// verification pipeline scores against. The table is ordered: when two
// signatures reach the same match score the earlier one wins.
package signatures

import (
	"strings"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
)

// Signature is the keyword/required-field profile of one document category.
type Signature struct {
	Key            domain.DocumentType `yaml:"key"`
	Label          string              `yaml:"label"`
	Keywords       []string            `yaml:"keywords"`
	RequiredFields []string            `yaml:"required_fields"`
}

// Table is an ordered, immutable set of signatures loaded at startup.
type Table struct {
	entries []Signature
	byKey   map[domain.DocumentType]Signature
}

func NewTable(entries []Signature) *Table {
	byKey := make(map[domain.DocumentType]Signature, len(entries))
	for _, sig := range entries {
		byKey[sig.Key] = sig
	}
	return &Table{entries: entries, byKey: byKey}
}

// Entries returns signatures in declaration order.
func (t *Table) Entries() []Signature {
	return t.entries
}

// Lookup returns the signature for a type key.
func (t *Table) Lookup(key domain.DocumentType) (Signature, bool) {
	sig, ok := t.byKey[key]
	return sig, ok
}

// Known reports whether the key names a configured document type.
func (t *Table) Known(key domain.DocumentType) bool {
	_, ok := t.byKey[key]
	return ok
}

// Label humanizes a type key for user-facing text. Unknown or empty keys
// get a generic label instead of an error; the classifier can legitimately
// detect nothing.
func (t *Table) Label(key domain.DocumentType) string {
	if sig, ok := t.byKey[key]; ok && sig.Label != "" {
		return sig.Label
	}
	return Humanize(key)
}

// Humanize converts a snake_case type key into a title-cased label.
func Humanize(key domain.DocumentType) string {
	trimmed := strings.TrimSpace(string(key))
	if trimmed == "" {
		return "Unknown Document"
	}
	words := strings.Split(trimmed, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Default returns the built-in signature table for the admissions flow.
// Grade 7/9/12 mirror the national exam certificates parents upload; the
// parent ID signature targets NRC-style identity cards.
func Default() *Table {
	return NewTable([]Signature{
		{
			Key:   domain.TypeBirthCertificate,
			Label: "Birth Certificate",
			Keywords: []string{
				"birth", "certificate of birth", "born", "registrar",
				"date of birth", "place of birth",
			},
			RequiredFields: []string{"child name", "date of birth", "place of birth", "parent name"},
		},
		{
			Key:   domain.TypeGrade7Certificate,
			Label: "Grade 7 Certificate",
			Keywords: []string{
				"grade 7", "primary school", "examination", "certificate",
				"results", "composite examination",
			},
			RequiredFields: []string{"student name", "school", "examination year"},
		},
		{
			Key:   domain.TypeGrade9Certificate,
			Label: "Grade 9 Certificate",
			Keywords: []string{
				"grade 9", "junior secondary", "examination", "certificate",
				"results",
			},
			RequiredFields: []string{"student name", "school", "examination year"},
		},
		{
			Key:   domain.TypeGrade12Certificate,
			Label: "Grade 12 Certificate",
			Keywords: []string{
				"grade 12", "school certificate", "examinations council",
				"general certificate", "results",
			},
			RequiredFields: []string{"student name", "school", "examination year"},
		},
		{
			Key:   domain.TypeMedicalReport,
			Label: "Medical Report",
			Keywords: []string{
				"medical", "patient", "doctor", "clinic", "hospital",
				"diagnosis", "examination report",
			},
			RequiredFields: []string{"patient name", "date", "doctor"},
		},
		{
			Key:   domain.TypePassportPhoto,
			Label: "Passport Photo",
			Keywords: []string{
				"photo", "passport size", "photograph",
			},
			RequiredFields: []string{},
		},
		{
			Key:   domain.TypeParentID,
			Label: "Parent ID",
			Keywords: []string{
				"national registration", "identity", "nrc", "id number",
				"registration card",
			},
			RequiredFields: []string{"full name", "id number"},
		},
		{
			Key:   domain.TypeProofOfResidence,
			Label: "Proof of Residence",
			Keywords: []string{
				"utility", "bill", "address", "residence", "tenancy",
				"lease", "council",
			},
			RequiredFields: []string{"name", "address"},
		},
		{
			Key:            domain.TypeOther,
			Label:          "Other Document",
			Keywords:       []string{},
			RequiredFields: []string{},
		},
	})
}
