package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/graph-to-terraform/compiler/internal/compiler"
	_ "github.com/graph-to-terraform/compiler/internal/emitter" // register emitters
	"github.com/graph-to-terraform/compiler/internal/logger"
	"github.com/graph-to-terraform/compiler/internal/resource"
	"github.com/graph-to-terraform/compiler/internal/result"
	"github.com/graph-to-terraform/compiler/internal/terraform"
)

// CompileEvent is the invocation payload (e.g. from API Gateway): the graph
// JSON the diagram editor exports.
type CompileEvent struct {
	Body     string `json:"body"` // graph JSON (raw, or base64 if isBase64)
	IsBase64 bool   `json:"isBase64,omitempty"`
}

// CompileResponse is returned to the client.
type CompileResponse struct {
	StatusCode int               `json:"statusCode"`
	Success    bool              `json:"success"`
	Error      string            `json:"error,omitempty"`
	Warnings   []result.Warning  `json:"warnings,omitempty"`
	Files      map[string]string `json:"files,omitempty"` // filename -> content (base64)
}

// APIGatewayResponse is the shape expected by API Gateway proxy integration.
type APIGatewayResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

func handler(ctx context.Context, event CompileEvent) (APIGatewayResponse, error) {
	body := event.Body
	if event.IsBase64 {
		dec, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return fail(400, "invalid base64 body: "+err.Error()), nil
		}
		body = string(dec)
	}

	var g resource.Graph
	if err := json.Unmarshal([]byte(body), &g); err != nil {
		return fail(400, "invalid graph JSON: "+err.Error()), nil
	}
	store := resource.NewStore()
	if err := store.Load(g.Nodes); err != nil {
		return fail(422, err.Error()), nil
	}

	res, err := compiler.New().Compile(store.List())
	if errors.Is(err, compiler.ErrEmptyGraph) {
		return fail(422, "the graph has no nodes, nothing to generate"), nil
	}
	if err != nil {
		logger.Default.Error("compile failed", "error", err)
		return fail(500, err.Error()), nil
	}

	out := CompileResponse{
		StatusCode: 200,
		Success:    true,
		Warnings:   res.Warnings,
		Files: map[string]string{
			terraform.ArtifactName: base64.StdEncoding.EncodeToString([]byte(res.Text)),
		},
	}
	return wrap(out), nil
}

func fail(status int, msg string) APIGatewayResponse {
	return wrap(CompileResponse{StatusCode: status, Success: false, Error: msg})
}

func wrap(out CompileResponse) APIGatewayResponse {
	bodyBytes, _ := json.Marshal(out)
	return APIGatewayResponse{
		StatusCode: out.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(bodyBytes),
	}
}

func main() {
	lambda.Start(handler)
}
