package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/napolitain/solver-estate/internal/models"
	"github.com/napolitain/solver-estate/internal/solver/profit"
)

func testHandler() *handler {
	return &handler{solver: profit.NewSolverWithConfig(models.SolverConfig{MaxBudget: 1000})}
}

func TestHandleCompute(t *testing.T) {
	resp, err := testHandler().handle(context.Background(), events.LambdaFunctionURLRequest{
		Body: `{"n": 30}`,
	})
	if err != nil {
		t.Fatalf("handle returned error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Status = %d, body = %s", resp.StatusCode, resp.Body)
	}

	var got computeResult
	if err := json.Unmarshal([]byte(resp.Body), &got); err != nil {
		t.Fatalf("Body is not JSON: %v", err)
	}

	want := computeResult{Budget: 30, Earnings: 113500, Theatre: 5, Pub: 1, Display: "$113,500"}
	if got != want {
		t.Errorf("Result = %+v, want %+v", got, want)
	}
}

func TestHandleBase64Body(t *testing.T) {
	resp, _ := testHandler().handle(context.Background(), events.LambdaFunctionURLRequest{
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"n": 5}`)),
		IsBase64Encoded: true,
	})

	if resp.StatusCode != 200 || !strings.Contains(resp.Body, `"earnings":1000`) {
		t.Errorf("Status = %d, body = %s", resp.StatusCode, resp.Body)
	}
}

func TestHandleBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		event  events.LambdaFunctionURLRequest
		errMsg string
	}{
		{"bad base64", events.LambdaFunctionURLRequest{Body: "%%%", IsBase64Encoded: true}, "base64"},
		{"invalid json", events.LambdaFunctionURLRequest{Body: `{"n":`}, "invalid JSON"},
		{"missing n", events.LambdaFunctionURLRequest{Body: `{}`}, "missing n"},
		{"string n", events.LambdaFunctionURLRequest{Body: `{"n": "5"}`}, "integer"},
		{"fractional n", events.LambdaFunctionURLRequest{Body: `{"n": 2.5}`}, "integer"},
		{"negative n", events.LambdaFunctionURLRequest{Body: `{"n": -1}`}, "negative"},
		{"too large", events.LambdaFunctionURLRequest{Body: `{"n": 1001}`}, "too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := testHandler().handle(context.Background(), tt.event)
			if err != nil {
				t.Fatalf("handle returned error: %v", err)
			}
			if resp.StatusCode != 400 {
				t.Errorf("Status = %d, want 400", resp.StatusCode)
			}
			if !strings.Contains(resp.Body, tt.errMsg) {
				t.Errorf("Body %s does not mention %q", resp.Body, tt.errMsg)
			}
		})
	}
}
