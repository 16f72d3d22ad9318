package models

// Tier identifies which prompt level a term or change applies to.
type Tier string

const (
	TierGlobal     Tier = "global"
	TierInstrument Tier = "instrument"
	TierSection    Tier = "section"
)

// GlossaryTerm is one entry in the static musical vocabulary catalog.
// The catalog is loaded once at process start and never mutated.
type GlossaryTerm struct {
	ID           string   `json:"id"`
	Term         string   `json:"term"`
	Definition   string   `json:"definition"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory,omitempty"`
	AppliesTo    []Tier   `json:"applies_to"`
	Examples     []string `json:"examples"`
	RelatedTerms []string `json:"related_terms,omitempty"`
	Synonyms     []string `json:"synonyms,omitempty"`
}

// DetectedTerm is a glossary term found in free text, with its span.
type DetectedTerm struct {
	Term     string `json:"term"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Category string `json:"category"`
}
