package grammar

import (
	"fmt"
	"sort"

	"github.com/npillmayer/slogo"
	"gopkg.in/yaml.v3"
)

// Arity is the number of numeric and list arguments a command consumes.
type Arity struct {
	Numeric int
	Lists   int
}

func (a Arity) String() string {
	return fmt.Sprintf("(%d,%d)", a.Numeric, a.Lists)
}

// ArityTable maps canonical command names to arities. It is not changed
// after loading.
type ArityTable struct {
	arities map[string]Arity
}

// ParseArityTable reads an arity table in YAML format. Every entry maps a
// canonical command name to a pair [numeric, lists].
func ParseArityTable(data []byte) (*ArityTable, error) {
	var raw map[string][]int
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, slogo.Errorf(slogo.KindConfiguration, "", "cannot read arity table: %v", err)
	}
	at := &ArityTable{arities: make(map[string]Arity, len(raw))}
	for name, pair := range raw {
		if len(pair) != 2 || pair[0] < 0 || pair[1] < 0 {
			return nil, slogo.Errorf(slogo.KindConfiguration, name, "malformed arity %v", pair)
		}
		at.arities[name] = Arity{Numeric: pair[0], Lists: pair[1]}
	}
	return at, nil
}

// StandardArityTable returns the arity table shipped with this package.
func StandardArityTable() (*ArityTable, error) {
	data, err := tables.ReadFile("tables/arity.yaml")
	if err != nil {
		return nil, slogo.Errorf(slogo.KindConfiguration, "", "cannot read arity table: %v", err)
	}
	return ParseArityTable(data)
}

// ArityOf returns the arity of a canonical command. A missing entry means
// the deployment is broken and yields an error of kind
// slogo.KindConfiguration.
func (at *ArityTable) ArityOf(canonical string) (Arity, error) {
	a, ok := at.arities[canonical]
	if !ok {
		return Arity{}, slogo.Errorf(slogo.KindConfiguration, canonical, "no arity configured for command")
	}
	return a, nil
}

// Commands returns all canonical names with an arity entry, sorted.
func (at *ArityTable) Commands() []string {
	names := make([]string, 0, len(at.arities))
	for name := range at.arities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
