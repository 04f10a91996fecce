package sample

// Sample is one concrete observation: a sample name, positionally paired
// label names and values, and a float64 value.
//
// LabelNames and LabelValues always have the same length; the pair at index i
// forms one label. Samples are read-only views: the match engine never
// mutates them.
type Sample struct {
	// Name is the full sample name, e.g. "count_sum" for the _sum sample
	// of a histogram family named "count".
	Name string

	// LabelNames holds the label names in the order the source reported them.
	LabelNames []string

	// LabelValues holds the label values, positionally paired with LabelNames.
	LabelValues []string

	// Value is the sampled value.
	Value float64
}

// FamilyGroup is a named group of related samples, e.g. everything a single
// histogram family emits.
type FamilyGroup struct {
	// Name is the family name, without any derived suffix.
	Name string

	// Samples holds the family's samples in emission order.
	Samples []Sample
}
