package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/tidwall/gjson"

	"github.com/napolitain/solver-estate/internal/models"
	"github.com/napolitain/solver-estate/internal/solver/profit"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type computeResult struct {
	Budget         int    `json:"budget"`
	Earnings       int    `json:"earnings"`
	Theatre        int    `json:"theatre"`
	Pub            int    `json:"pub"`
	CommercialPark int    `json:"commercialPark"`
	Display        string `json:"display"`
}

type handler struct {
	solver *profit.Solver
}

func (h *handler) handle(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	if !gjson.Valid(body) {
		return errResp(400, "invalid JSON")
	}
	n := gjson.Get(body, "n")
	if !n.Exists() {
		return errResp(400, "missing n")
	}
	if n.Type != gjson.Number || n.Num != math.Trunc(n.Num) {
		return errResp(400, "n must be an integer")
	}

	allocation, err := h.solver.Solve(int(n.Int()))
	if err != nil {
		if errors.Is(err, profit.ErrNegativeBudget) || errors.Is(err, profit.ErrBudgetTooLarge) {
			return errResp(400, err.Error())
		}
		return errResp(500, err.Error())
	}

	resp := computeResult{
		Budget:         allocation.Budget,
		Earnings:       allocation.Earnings,
		Theatre:        allocation.Counts.Theatre,
		Pub:            allocation.Counts.Pub,
		CommercialPark: allocation.Counts.CommercialPark,
		Display:        models.FormatEarnings(allocation.Earnings),
	}
	respJSON, err := json.Marshal(resp)
	if err != nil {
		return errResp(500, fmt.Sprintf("encode response: %v", err))
	}
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	cfg, err := models.ResolveConfig("")
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	h := &handler{solver: profit.NewSolverWithConfig(cfg.Solver)}
	lambda.Start(h.handle)
}
