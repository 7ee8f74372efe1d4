package docaroo

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// endpointLikelihood is the procedure likelihood scoring endpoint.
const endpointLikelihood = "/procedures/likelihood"

// ProceduresClient handles procedure likelihood operations. Obtain one from
// Client.Procedures.
type ProceduresClient struct {
	client *Client
}

// GetLikelihood scores how likely each provider is to perform the procedure
// identified by the request's billing code. Scores range from 0.0 (unlikely)
// to 1.0 (highly likely). The request is validated locally first; validation
// failures are returned as ErrCodeInvalidRequest without a network call.
func (p *ProceduresClient) GetLikelihood(ctx context.Context, req *LikelihoodRequest) (*LikelihoodResponse, error) {
	if req == nil {
		return nil, invalidRequestf("likelihood request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req = req.withDefaults()

	var resp LikelihoodResponse
	err := p.client.post(ctx, "docaroo.procedures.get_likelihood", endpointLikelihood, req, &resp,
		attribute.Int("docaroo.npi_count", len(req.NPIs)),
		attribute.String("docaroo.condition_code", req.ConditionCode),
		attribute.String("docaroo.code_type", req.CodeType.String()),
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CheckProviders is a convenience wrapper that evaluates several providers
// for the same procedure in one request.
func (p *ProceduresClient) CheckProviders(ctx context.Context, npis []string, conditionCode string, codeType CodeType) (*LikelihoodResponse, error) {
	return p.GetLikelihood(ctx, &LikelihoodRequest{
		NPIs:          npis,
		ConditionCode: conditionCode,
		CodeType:      codeType,
	})
}
