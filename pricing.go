package docaroo

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// endpointInNetwork is the in-network contracted rates endpoint.
const endpointInNetwork = "/pricing/in-network"

// PricingClient handles in-network rate operations. Obtain one from
// Client.Pricing.
type PricingClient struct {
	client *Client
}

// GetInNetworkRates retrieves contracted rates for up to 10 providers for a
// single billing code and insurance plan. The request is validated locally
// first; validation failures are returned as ErrCodeInvalidRequest without a
// network call. Omitted plan ID and code type fall back to DefaultPlanID and
// CPT.
func (p *PricingClient) GetInNetworkRates(ctx context.Context, req *PricingRequest) (*PricingResponse, error) {
	if req == nil {
		return nil, invalidRequestf("pricing request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req = req.withDefaults()

	var resp PricingResponse
	err := p.client.post(ctx, "docaroo.pricing.get_in_network_rates", endpointInNetwork, req, &resp,
		attribute.Int("docaroo.npi_count", len(req.NPIs)),
		attribute.String("docaroo.condition_code", req.ConditionCode),
		attribute.String("docaroo.code_type", req.CodeType.String()),
		attribute.String("docaroo.plan_id", req.PlanID),
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
