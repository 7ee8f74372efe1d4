// Package docaroo provides a Go client for the Docaroo Care Navigation Data API.
//
// The API answers two questions about healthcare providers, identified by
// their National Provider Identifier (NPI): what in-network contracted rates
// apply for a billing code under an insurance plan, and how likely a provider
// is to perform a given procedure. Bulk lookups accept up to 10 NPIs per
// request.
//
// # Quick Start
//
// Create a client and look up in-network rates:
//
//	client := docaroo.NewClient("your-api-key")
//	resp, err := client.Pricing().GetInNetworkRates(context.Background(), &docaroo.PricingRequest{
//	    NPIs:          []string{"1043566623", "1972767655"},
//	    ConditionCode: "99214",
//	    PlanID:        "942404110",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for npi, rates := range resp.Data {
//	    fmt.Printf("NPI %s: %d rates found\n", npi, len(rates))
//	}
//
// # Likelihood Scoring
//
// Score how likely providers are to perform a procedure:
//
//	resp, err := client.Procedures().CheckProviders(
//	    context.Background(),
//	    []string{"1487648176"},
//	    "99214",
//	    docaroo.CodeTypeCPT,
//	)
//
// # Configuration
//
// Configure the client with custom options, or from the environment:
//
//	client := docaroo.NewClient("your-api-key",
//	    docaroo.WithBaseURL("https://staging.example.com"),
//	    docaroo.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
//	)
//
//	client, err := docaroo.NewFromEnv() // reads DOCAROO_API_KEY
//
// # Error Handling
//
// Every failure is returned as an *APIError tagged with a closed set of
// codes. The client never retries on its own; use IsRetryable and RetryAfter
// to drive caller-side retries:
//
//	resp, err := client.Pricing().GetInNetworkRates(ctx, req)
//	if docaroo.IsRetryable(err) {
//	    if delay, ok := docaroo.RetryAfter(err); ok {
//	        time.Sleep(delay)
//	    }
//	    // retry
//	}
//
// For more information, see the examples directory and README.md.
package docaroo
