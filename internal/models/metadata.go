package models

// TechnicalDetails holds structured musical facts pattern-matched out
// of prompt text. Absent values stay nil/empty rather than erroring.
type TechnicalDetails struct {
	BPM           *int   `json:"bpm,omitempty"`
	Key           string `json:"key,omitempty"`
	TimeSignature string `json:"time_signature,omitempty"`
}

// TagBuckets is the five-way classification of extracted terms.
type TagBuckets struct {
	GenreTags       []string `json:"genre_tags"`
	MoodTags        []string `json:"mood_tags"`
	InstrumentTags  []string `json:"instrument_tags"`
	PerformanceTags []string `json:"performance_tags"`
	ProductionTags  []string `json:"production_tags"`
}

// CategorizedMetadata is the searchable-tag record derived from a
// prompt on submission: positive buckets, mirrored negative buckets,
// and technical details. Recomputed each time, never stored.
type CategorizedMetadata struct {
	TagBuckets
	TechnicalDetails TechnicalDetails `json:"technical_details"`

	NegativeGenreTags       []string `json:"negative_genre_tags"`
	NegativeMoodTags        []string `json:"negative_mood_tags"`
	NegativeInstrumentTags  []string `json:"negative_instrument_tags"`
	NegativePerformanceTags []string `json:"negative_performance_tags"`
	NegativeProductionTags  []string `json:"negative_production_tags"`
}
