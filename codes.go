package docaroo

import "fmt"

// CodeType identifies the medical billing code standard a condition code
// belongs to. Values serialize to the exact tokens the Care Navigation API
// expects (e.g. "MS-DRG", not "MSDRG").
type CodeType string

// Medical billing code standards supported by the API.
const (
	// CodeTypeCPT is Current Procedural Terminology.
	CodeTypeCPT CodeType = "CPT"
	// CodeTypeNDC is National Drug Code.
	CodeTypeNDC CodeType = "NDC"
	// CodeTypeHCPCS is Healthcare Common Procedure Coding System.
	CodeTypeHCPCS CodeType = "HCPCS"
	// CodeTypeRC is Revenue Code.
	CodeTypeRC CodeType = "RC"
	// CodeTypeICD is International Classification of Diseases.
	CodeTypeICD CodeType = "ICD"
	// CodeTypeMSDRG is Medicare Severity Diagnosis Related Group.
	CodeTypeMSDRG CodeType = "MS-DRG"
	// CodeTypeRDRG is Refined Diagnosis Related Group.
	CodeTypeRDRG CodeType = "R-DRG"
	// CodeTypeSDRG is Severity Diagnosis Related Group.
	CodeTypeSDRG CodeType = "S-DRG"
	// CodeTypeAPSDRG is All Patient Severity Diagnosis Related Group.
	CodeTypeAPSDRG CodeType = "APS-DRG"
	// CodeTypeAPDRG is All Patient Diagnosis Related Group.
	CodeTypeAPDRG CodeType = "AP-DRG"
	// CodeTypeAPRDRG is All Patient Refined Diagnosis Related Group.
	CodeTypeAPRDRG CodeType = "APR-DRG"
	// CodeTypeAPC is Ambulatory Payment Classification.
	CodeTypeAPC CodeType = "APC"
	// CodeTypeLocal is a payer-local code.
	CodeTypeLocal CodeType = "LOCAL"
	// CodeTypeEAPG is Enhanced Ambulatory Patient Grouping.
	CodeTypeEAPG CodeType = "EAPG"
	// CodeTypeHIPPS is Health Insurance Prospective Payment System.
	CodeTypeHIPPS CodeType = "HIPPS"
	// CodeTypeCDT is Current Dental Terminology.
	CodeTypeCDT CodeType = "CDT"
	// CodeTypeCustomAll matches any code standard.
	CodeTypeCustomAll CodeType = "CSTM-ALL"
)

// DefaultCodeType is applied when a request leaves the code type unset.
const DefaultCodeType = CodeTypeCPT

var knownCodeTypes = map[CodeType]struct{}{
	CodeTypeCPT:       {},
	CodeTypeNDC:       {},
	CodeTypeHCPCS:     {},
	CodeTypeRC:        {},
	CodeTypeICD:       {},
	CodeTypeMSDRG:     {},
	CodeTypeRDRG:      {},
	CodeTypeSDRG:      {},
	CodeTypeAPSDRG:    {},
	CodeTypeAPDRG:     {},
	CodeTypeAPRDRG:    {},
	CodeTypeAPC:       {},
	CodeTypeLocal:     {},
	CodeTypeEAPG:      {},
	CodeTypeHIPPS:     {},
	CodeTypeCDT:       {},
	CodeTypeCustomAll: {},
}

// Valid reports whether c is one of the code standards the API accepts.
func (c CodeType) Valid() bool {
	_, ok := knownCodeTypes[c]
	return ok
}

// String returns the wire token for the code type.
func (c CodeType) String() string {
	return string(c)
}

// ParseCodeType converts a wire token into a CodeType, rejecting tokens the
// API does not recognize.
func ParseCodeType(s string) (CodeType, error) {
	ct := CodeType(s)
	if !ct.Valid() {
		return "", fmt.Errorf("unknown code type %q", s)
	}
	return ct, nil
}
