package docaroo

import (
	"encoding/json"
	"strconv"
	"time"
)

// NPI limits enforced by the API for bulk lookups.
const (
	// MinNPIsPerRequest is the minimum number of NPIs in a single request.
	MinNPIsPerRequest = 1

	// MaxNPIsPerRequest is the maximum number of NPIs in a single request.
	MaxNPIsPerRequest = 10

	// npiLength is the fixed length of a National Provider Identifier.
	npiLength = 10
)

// DefaultPlanID is the insurance plan identifier applied when a pricing
// request leaves the plan unset.
const DefaultPlanID = "942404110"

// FlexInt is a custom type that handles flexible JSON unmarshaling for numeric
// values. The gateway inconsistently returns numeric metadata (processing
// times, record counts) as either strings ("123") or integers (123). FlexInt
// automatically handles both formats during JSON unmarshaling.
type FlexInt int64

// UnmarshalJSON implements custom unmarshaling to handle both string and
// integer values. Empty strings are treated as 0.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as int first
	var i int64
	if err := json.Unmarshal(data, &i); err == nil {
		*f = FlexInt(i)
		return nil
	}

	// Try to unmarshal as string
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*f = 0
		return nil
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}

	*f = FlexInt(i)
	return nil
}

// Int64 returns the underlying int64 value of the FlexInt.
func (f FlexInt) Int64() int64 {
	return int64(f)
}

// PricingRequest asks for in-network contracted rates for a set of providers.
//
// NPIs must contain between 1 and 10 unique 10-digit provider identifiers.
// PlanID and CodeType are optional; when left empty they default to
// DefaultPlanID and CPT before the request is sent.
type PricingRequest struct {
	// NPIs are the National Provider Identifiers to look up rates for.
	NPIs []string `json:"npis"`

	// ConditionCode is the medical billing code to retrieve pricing for.
	ConditionCode string `json:"conditionCode"`

	// PlanID is the insurance plan identifier (EIN, HIOS ID, or custom
	// plan ID).
	PlanID string `json:"planId,omitempty"`

	// CodeType is the billing code standard ConditionCode belongs to.
	CodeType CodeType `json:"codeType,omitempty"`
}

// Validate checks the request against the API's constraints without touching
// the network. It returns an *APIError with code ErrCodeInvalidRequest on the
// first violation found.
func (r *PricingRequest) Validate() error {
	if err := validateNPIs(r.NPIs); err != nil {
		return err
	}
	if err := validateConditionCode(r.ConditionCode); err != nil {
		return err
	}
	if r.CodeType != "" && !r.CodeType.Valid() {
		return invalidRequestf("unknown code type %q", r.CodeType)
	}
	return nil
}

// withDefaults returns a copy of the request with the published defaults
// filled in.
func (r *PricingRequest) withDefaults() *PricingRequest {
	out := *r
	if out.PlanID == "" {
		out.PlanID = DefaultPlanID
	}
	if out.CodeType == "" {
		out.CodeType = DefaultCodeType
	}
	return &out
}

// LikelihoodRequest asks how likely a set of providers is to perform the
// procedure identified by ConditionCode.
type LikelihoodRequest struct {
	// NPIs are the National Provider Identifiers to evaluate.
	NPIs []string `json:"npis"`

	// ConditionCode is the medical billing code to evaluate likelihood for.
	ConditionCode string `json:"conditionCode"`

	// CodeType is the billing code standard ConditionCode belongs to.
	// Defaults to CPT when empty.
	CodeType CodeType `json:"codeType,omitempty"`
}

// Validate checks the request against the API's constraints without touching
// the network.
func (r *LikelihoodRequest) Validate() error {
	if err := validateNPIs(r.NPIs); err != nil {
		return err
	}
	if err := validateConditionCode(r.ConditionCode); err != nil {
		return err
	}
	if r.CodeType != "" && !r.CodeType.Valid() {
		return invalidRequestf("unknown code type %q", r.CodeType)
	}
	return nil
}

func (r *LikelihoodRequest) withDefaults() *LikelihoodRequest {
	out := *r
	if out.CodeType == "" {
		out.CodeType = DefaultCodeType
	}
	return &out
}

// validateNPIs enforces the cardinality, format, and uniqueness rules shared
// by both request types.
func validateNPIs(npis []string) error {
	if len(npis) < MinNPIsPerRequest {
		return invalidRequestf("at least one NPI must be provided")
	}
	if len(npis) > MaxNPIsPerRequest {
		return invalidRequestf("maximum %d NPIs allowed per request, got %d", MaxNPIsPerRequest, len(npis))
	}

	seen := make(map[string]struct{}, len(npis))
	for _, npi := range npis {
		if !isValidNPI(npi) {
			return invalidRequestf("invalid NPI format %q: NPIs must be %d-digit numbers", npi, npiLength)
		}
		if _, dup := seen[npi]; dup {
			return invalidRequestf("duplicate NPI %q in request", npi)
		}
		seen[npi] = struct{}{}
	}
	return nil
}

func validateConditionCode(code string) error {
	if code == "" {
		return invalidRequestf("condition code cannot be empty")
	}
	return nil
}

// isValidNPI reports whether s is a well-formed 10-digit NPI.
func isValidNPI(s string) bool {
	if len(s) != npiLength {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// RateData is a single contracted-rate record for a billing code at one
// provider.
type RateData struct {
	// Code is the medical billing code the rate applies to.
	Code string `json:"code"`

	// CodeType is the billing code standard for Code.
	CodeType string `json:"codeType"`

	// NegotiatedType describes the kind of negotiated rate
	// (e.g. "negotiated", "fee schedule").
	NegotiatedType string `json:"negotiatedType"`

	// MinRate is the minimum contracted rate found.
	MinRate float64 `json:"minRate"`

	// MaxRate is the maximum contracted rate found.
	MaxRate float64 `json:"maxRate"`

	// AvgRate is the average contracted rate.
	AvgRate float64 `json:"avgRate"`

	// Instances is the number of rate records the average is based on.
	Instances FlexInt `json:"instances"`
}

// PricingMeta describes a pricing response: which plan was priced, who the
// payer is, and the usual request bookkeeping.
type PricingMeta struct {
	PlanID                string    `json:"planId"`
	Payer                 string    `json:"payer"`
	RequestID             string    `json:"requestId"`
	Timestamp             time.Time `json:"timestamp"`
	ProcessingTimeMS      FlexInt   `json:"processingTimeMs"`
	InNetworkRecordsCount FlexInt   `json:"inNetworkRecordsCount"`
}

// PricingResponse holds contracted-rate records keyed by NPI.
type PricingResponse struct {
	// Data maps each requested NPI to its rate records.
	Data map[string][]RateData `json:"data"`

	// Meta is the response metadata.
	Meta PricingMeta `json:"meta"`
}

// LikelihoodData is the likelihood score for one provider and billing code.
type LikelihoodData struct {
	// Code is the medical billing code that was evaluated.
	Code string `json:"code"`

	// CodeType is the billing code standard for Code.
	CodeType string `json:"codeType"`

	// Likelihood ranges from 0.0 (unlikely) to 1.0 (highly likely).
	Likelihood float64 `json:"likelihood"`
}

// LikelihoodMeta describes a likelihood response.
type LikelihoodMeta struct {
	RequestID                string    `json:"requestId"`
	Timestamp                time.Time `json:"timestamp"`
	ProcessingTimeMS         FlexInt   `json:"processingTimeMs"`
	OutOfNetworkRecordsCount FlexInt   `json:"outOfNetworkRecordsCount"`
}

// LikelihoodResponse holds likelihood scores keyed by NPI.
type LikelihoodResponse struct {
	// Data maps each requested NPI to its likelihood score.
	Data map[string]LikelihoodData `json:"data"`

	// Meta is the response metadata.
	Meta LikelihoodMeta `json:"meta"`
}

// ErrorResponse is the error body the API returns alongside non-2xx statuses.
type ErrorResponse struct {
	Error     string          `json:"error"`
	Message   string          `json:"message"`
	Details   json.RawMessage `json:"details,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
	Timestamp *time.Time      `json:"timestamp,omitempty"`
}
