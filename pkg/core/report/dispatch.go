package report

import (
	"errors"

	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

// Fatal classification errors. Anything less than a structurally
// unusable fact set degrades the output instead of failing dispatch.
var (
	ErrEmptyFactSet   = errors.New("report: empty fact set")
	ErrMissingDocType = errors.New("report: fact set has no document type code")
)

type processorFunc func(fs *xbrl.FactSet) Report

// processors routes document type codes to their processor. Amendment
// codes share the processor of the report they amend. Codes not listed
// here fall through to the raw processor; an unknown code is not an
// error.
var processors = map[string]processorFunc{
	"120": processSecurities,
	"130": processSecurities,
	"140": processQuarterly,
	"150": processQuarterly,
	"160": processSemiAnnual,
	"170": processSemiAnnual,
	"180": processExtraordinary,
	"190": processExtraordinary,
	"220": processTreasuryStock,
	"230": processTreasuryStock,
	"350": processLargeHolding,
	"360": processLargeHolding,
	"370": processLargeHolding,
	"380": processLargeHolding,
}

// Dispatch routes a fact set to the processor for its document type
// code and returns the typed record. Dispatch is total over the code
// space: codes without a processor produce a RawReport. It fails only
// on structurally unusable input.
func Dispatch(fs *xbrl.FactSet) (Report, error) {
	if fs == nil || fs.Len() == 0 {
		return nil, ErrEmptyFactSet
	}
	code := fs.DocTypeCode()
	if code == "" {
		return nil, ErrMissingDocType
	}
	if p, ok := processors[code]; ok {
		return p(fs), nil
	}
	return processRaw(fs), nil
}
