package report

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v2"

	"github.com/matthelmer/edinet-tools/pkg/core/extract"
)

// Override rebinds one mapped field to a different XBRL element. The
// EDINET taxonomies get revised yearly; overrides absorb element
// renames without a code change.
type Override struct {
	Field         string `yaml:"field"`
	ElementID     string `yaml:"element_id"`
	IFRSElementID string `yaml:"ifrs_element_id,omitempty"`
	Period        string `yaml:"period,omitempty"`
}

// Overrides maps a document type code to its field overrides.
type Overrides map[string][]Override

// LoadOverrides parses a YAML override document:
//
//	"120":
//	  - field: net_sales_fs
//	    element_id: jppfs_cor:NetSalesRevised
func LoadOverrides(data []byte) (Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse mapping overrides: %w", err)
	}
	return o, nil
}

// Apply returns a copy of the table with the overrides for the given
// code applied. The input table is never mutated. Overrides naming a
// field the table does not declare are rejected: a typo must not
// silently leave the original binding in place.
func (o Overrides) Apply(code string, table []extract.FieldMapping) ([]extract.FieldMapping, error) {
	ovs := o[code]
	out := append([]extract.FieldMapping(nil), table...)
	if len(ovs) == 0 {
		return out, nil
	}
	byField := make(map[string]int, len(out))
	for i, m := range out {
		byField[m.Field] = i
	}
	for _, ov := range ovs {
		i, ok := byField[ov.Field]
		if !ok {
			return nil, fmt.Errorf("override for doc type %s names unknown field %q", code, ov.Field)
		}
		if ov.ElementID != "" {
			out[i].ElementID = ov.ElementID
		}
		if ov.IFRSElementID != "" {
			out[i].IFRSElementID = ov.IFRSElementID
		}
		if ov.Period != "" {
			out[i].Period = ov.Period
		}
	}
	return out, nil
}

var (
	overridesMu      sync.Mutex
	overridesApplied bool
)

// ConfigureOverrides applies a YAML override document to the package
// mapping tables. At most one document takes effect, before any
// parsing; tables are immutable afterwards and later calls are no-ops.
// A rejected document leaves every table untouched, so the caller can
// fix it and try again.
func ConfigureOverrides(data []byte) error {
	o, err := LoadOverrides(data)
	if err != nil {
		return err
	}

	overridesMu.Lock()
	defer overridesMu.Unlock()
	if overridesApplied {
		return nil
	}

	tables := map[string]*[]extract.FieldMapping{
		"120": &securitiesTable,
		"140": &quarterlyTable,
		"160": &semiAnnualTable,
		"180": &extraordinaryTable,
		"220": &treasuryTable,
		"350": &largeHoldingTable,
	}

	// Validate everything before mutating anything.
	adjusted := make(map[string][]extract.FieldMapping, len(tables))
	for code, tbl := range tables {
		a, err := o.Apply(code, *tbl)
		if err != nil {
			return err
		}
		adjusted[code] = a
	}
	for code, tbl := range tables {
		*tbl = adjusted[code]
	}
	overridesApplied = true
	return nil
}
