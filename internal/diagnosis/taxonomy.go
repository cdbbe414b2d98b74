package diagnosis

// Misconception is one known wrong-answer pattern the tutor can name, tied
// to the error kind whose classifier detects it.
type Misconception struct {
	ID          string
	Kind        ErrorKind
	Label       string
	Description string
	Examples    []string
}

var (
	byID   map[string]*Misconception
	byKind map[ErrorKind][]*Misconception
)

func init() {
	byID = make(map[string]*Misconception, len(seedMisconceptions))
	byKind = make(map[ErrorKind][]*Misconception)
	for i := range seedMisconceptions {
		m := &seedMisconceptions[i]
		byID[m.ID] = m
		byKind[m.Kind] = append(byKind[m.Kind], m)
	}
}

// GetMisconception looks an ID up, returning nil for unknown IDs.
func GetMisconception(id string) *Misconception {
	return byID[id]
}

// MisconceptionsByKind lists the misconceptions that explain one error kind.
func MisconceptionsByKind(kind ErrorKind) []*Misconception {
	return byKind[kind]
}

// AllMisconceptions lists the taxonomy in seed order.
func AllMisconceptions() []*Misconception {
	all := make([]*Misconception, len(seedMisconceptions))
	for i := range seedMisconceptions {
		all[i] = &seedMisconceptions[i]
	}
	return all
}
