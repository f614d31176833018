package domain

type Provenance string

const (
	ProvenanceLive Provenance = "live"
	ProvenanceDemo Provenance = "demo"
)

// AdSetSource é o resultado da resolução da fonte de dados: registros ao vivo ou de
// demonstração, nunca uma mistura dos dois.
type AdSetSource struct {
	provenance Provenance
	records    []AdSet
}

func LiveSource(records []AdSet) AdSetSource {
	if records == nil {
		records = []AdSet{}
	}
	return AdSetSource{provenance: ProvenanceLive, records: records}
}

func FallbackSource(records []AdSet) AdSetSource {
	if records == nil {
		records = []AdSet{}
	}
	return AdSetSource{provenance: ProvenanceDemo, records: records}
}

func (s AdSetSource) Records() []AdSet {
	return s.records
}

func (s AdSetSource) IsLive() bool {
	return s.provenance == ProvenanceLive
}

func (s AdSetSource) Provenance() Provenance {
	if s.provenance == "" {
		return ProvenanceDemo
	}
	return s.provenance
}

func (s AdSetSource) Len() int {
	return len(s.records)
}
