package enum

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"gopkg.in/yaml.v3"

	"github.com/osse101/pogoutil/internal/domain"
	"github.com/osse101/pogoutil/internal/utils"
)

//go:embed enums.yaml
var defaultTables []byte

// Registry holds named enum tables in declaration order and memoizes their labels.
// It is safe for concurrent use.
type Registry struct {
	names  []string
	tables map[string]domain.EnumMapping
	labels *lru.Cache[string, string]
}

// Default returns a registry of the tables embedded in the binary
func Default(cacheSize int) (*Registry, error) {
	return Parse(defaultTables, cacheSize)
}

// LoadFile reads enum tables from a YAML file
func LoadFile(path string, cacheSize int) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, path, err)
	}
	return Parse(data, cacheSize)
}

// Parse builds a registry from YAML of the form
//
//	EnumName:
//	  SYMBOL_A: 0
//	  SYMBOL_B: 1
//
// The document is walked as a yaml.Node so both enum order and symbol order
// are kept. A cacheSize below 1 falls back to DefaultCacheSize.
func Parse(data []byte, cacheSize int) (*Registry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFailed, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: no enum tables defined", domain.ErrInvalidInput)
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf(ErrFmtNotMapping, domain.ErrInvalidInput, "document", doc.Line)
	}

	if cacheSize < 1 {
		cacheSize = DefaultCacheSize
	}
	labels, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create label cache: %w", err)
	}

	r := &Registry{
		names:  make([]string, 0, len(doc.Content)/2),
		tables: make(map[string]domain.EnumMapping, len(doc.Content)/2),
		labels: labels,
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, body := doc.Content[i], doc.Content[i+1]
		if _, exists := r.tables[key.Value]; exists {
			return nil, fmt.Errorf(ErrFmtDuplicateEnum, domain.ErrInvalidInput, key.Value, key.Line)
		}

		mapping, err := parseTable(key.Value, body)
		if err != nil {
			return nil, err
		}

		r.names = append(r.names, key.Value)
		r.tables[key.Value] = mapping
	}

	return r, nil
}

func parseTable(enumName string, body *yaml.Node) (domain.EnumMapping, error) {
	if body.Kind != yaml.MappingNode {
		return nil, fmt.Errorf(ErrFmtNotMapping, domain.ErrInvalidInput, enumName, body.Line)
	}

	mapping := make(domain.EnumMapping, 0, len(body.Content)/2)
	seen := make(map[string]bool, len(body.Content)/2)

	for j := 0; j+1 < len(body.Content); j += 2 {
		sym, val := body.Content[j], body.Content[j+1]
		if seen[sym.Value] {
			return nil, fmt.Errorf(ErrFmtDuplicateName, domain.ErrInvalidInput, enumName, sym.Value, sym.Line)
		}
		seen[sym.Value] = true

		var value int32
		if err := val.Decode(&value); err != nil {
			return nil, fmt.Errorf(ErrFmtBadValue, domain.ErrInvalidInput, enumName, sym.Value, val.Line)
		}

		mapping = append(mapping, domain.EnumValue{Name: sym.Value, Value: value})
	}

	return mapping, nil
}

// Names returns the enum names in declaration order
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Mapping returns the table registered under name
func (r *Registry) Mapping(name string) (domain.EnumMapping, bool) {
	m, ok := r.tables[name]
	return m, ok
}

// Label returns the humanized symbol for value in the named enum.
// Returns ErrUnknownEnum for a missing table and ErrEnumNotFound for a missing value.
func (r *Registry) Label(name string, value int32) (string, error) {
	key := name + ":" + strconv.FormatInt(int64(value), 10)
	if label, ok := r.labels.Get(key); ok {
		return label, nil
	}

	mapping, ok := r.tables[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownEnum, name)
	}

	label, found := utils.EnumKeyByValue(mapping, value)
	if !found {
		return "", fmt.Errorf("%w: %s has no symbol for %d", domain.ErrEnumNotFound, name, value)
	}

	r.labels.Add(key, label)
	return label, nil
}

// CachedLabels reports how many labels are currently memoized
func (r *Registry) CachedLabels() int {
	return r.labels.Len()
}
