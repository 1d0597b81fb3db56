package schema

// File is the root of a binding file.
type File struct {
	Version string        `yaml:"version,omitempty"`
	Types   []TypeBinding `yaml:"types"`
}

// TypeBinding configures the converter of one type.
type TypeBinding struct {
	// Type is the type name as printed by converter.TypeKey, e.g. "store.Customer".
	Type   string            `yaml:"type"`
	Naming string            `yaml:"naming,omitempty"`
	Rename map[string]string `yaml:"rename,omitempty"`
	Filter *FilterDef        `yaml:"filter,omitempty"`
	Fields []FieldBinding    `yaml:"fields,omitempty"`
}

// FieldBinding attaches a strategy and/or a filter to a field.
type FieldBinding struct {
	Name     string       `yaml:"name"`
	Strategy *StrategyDef `yaml:"strategy,omitempty"`
	Filter   *FilterDef   `yaml:"filter,omitempty"`
}

// StrategyDef describes a value strategy.
type StrategyDef struct {
	Boolean    *BooleanDef   `yaml:"boolean,omitempty"`
	Chain      []StrategyDef `yaml:"chain,omitempty"`
	Caster     *CasterDef    `yaml:"caster,omitempty"`
	Nested     string        `yaml:"nested,omitempty"`
	Collection string        `yaml:"collection,omitempty"`
}

// BooleanDef holds the two representations of a boolean strategy.
type BooleanDef struct {
	TrueValue  any `yaml:"true_value"`
	FalseValue any `yaml:"false_value"`
}

// CasterDef names the catalog functions of a caster strategy.
type CasterDef struct {
	Extract string `yaml:"extract"`
	Hydrate string `yaml:"hydrate"`
}

// FilterDef describes a field filter.
type FilterDef struct {
	Match  *MatchDef   `yaml:"match,omitempty"`
	Prefix string      `yaml:"prefix,omitempty"`
	Not    *FilterDef  `yaml:"not,omitempty"`
	Any    []FilterDef `yaml:"any,omitempty"`
	All    []FilterDef `yaml:"all,omitempty"`
}

// MatchDef selects a single field by name.
type MatchDef struct {
	Name    string `yaml:"name,omitempty"`
	Exclude bool   `yaml:"exclude,omitempty"`
}

// Naming strategy names.
const (
	NamingIdentity   = "identity"
	NamingUnderscore = "underscore"
	NamingMap        = "map"
)

// Kinds returns the strategy keys set in s, in declaration order.
func (s *StrategyDef) Kinds() []string {
	var kinds []string

	if s.Boolean != nil {
		kinds = append(kinds, "boolean")
	}

	if s.Chain != nil {
		kinds = append(kinds, "chain")
	}

	if s.Caster != nil {
		kinds = append(kinds, "caster")
	}

	if s.Nested != "" {
		kinds = append(kinds, "nested")
	}

	if s.Collection != "" {
		kinds = append(kinds, "collection")
	}

	return kinds
}

// Kinds returns the filter keys set in f, in declaration order.
func (f *FilterDef) Kinds() []string {
	var kinds []string

	if f.Match != nil {
		kinds = append(kinds, "match")
	}

	if f.Prefix != "" {
		kinds = append(kinds, "prefix")
	}

	if f.Not != nil {
		kinds = append(kinds, "not")
	}

	if f.Any != nil {
		kinds = append(kinds, "any")
	}

	if f.All != nil {
		kinds = append(kinds, "all")
	}

	return kinds
}

// Binding returns the binding of the named type.
func (f *File) Binding(typeName string) (*TypeBinding, bool) {
	for i := range f.Types {
		if f.Types[i].Type == typeName {
			return &f.Types[i], true
		}
	}

	return nil, false
}
