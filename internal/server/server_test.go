package server

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/k021c1498/lifeplan-suisoku/internal/calculation"
)

func newTestServer() *Server {
	return New(calculation.NewSimulationEngine(), nil, 0)
}

func do(s *Server, method, uri, body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	s.Handler(&ctx)
	return &ctx
}

func decodeError(t *testing.T, ctx *fasthttp.RequestCtx) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	return resp
}

func TestHealthz(t *testing.T) {
	ctx := do(newTestServer(), "GET", "/healthz", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, string(ctx.Response.Body()))
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))
}

func TestDefaults(t *testing.T) {
	ctx := do(newTestServer(), "GET", "/v1/defaults", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var body struct {
		Name     string `json:"name"`
		StartAge int    `json:"start_age"`
		Events   []any  `json:"events"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	assert.Equal(t, "Baseline", body.Name)
	assert.Equal(t, 22, body.StartAge)
	assert.Len(t, body.Events, 6)
}

func TestSimulate(t *testing.T) {
	req := `{"name":"API","events":[{"age":30,"kind":"marriage"},{"age":40,"kind":"house_purchase"}]}`
	ctx := do(newTestServer(), "POST", "/v1/simulate", req)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))

	var result struct {
		Name    string `json:"name"`
		Records []struct {
			CumulativeSavings string `json:"cumulative_savings"`
			EventLabel        string `json:"event_label"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &result))
	assert.Equal(t, "API", result.Name)
	require.Len(t, result.Records, 44)
	assert.Equal(t, "770620", result.Records[0].CumulativeSavings)
	assert.Equal(t, "House Purchase", result.Records[18].EventLabel)
}

func TestSimulate_DefaultScheduleIsRejected(t *testing.T) {
	ctx := do(newTestServer(), "POST", "/v1/simulate", `{"name":"Defaults"}`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	resp := decodeError(t, ctx)
	assert.Equal(t, 400, resp.Status)
	assert.Contains(t, resp.Message, "duplicate event age 45")
}

func TestCompare(t *testing.T) {
	req := `{"scenarios":[
		{"name":"A","events":[]},
		{"name":"B","annual_income":"5000000","events":[]}
	]}`
	ctx := do(newTestServer(), "POST", "/v1/compare", req)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))

	var cmp struct {
		Results []struct {
			Name string `json:"name"`
		} `json:"results"`
		Best string `json:"best_scenario_for_savings"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &cmp))
	require.Len(t, cmp.Results, 2)
	assert.Equal(t, "A", cmp.Results[0].Name)
	assert.Equal(t, "B", cmp.Best)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		uri    string
		body   string
		status int
	}{
		{"unknown path", "GET", "/v2/nothing", "", fasthttp.StatusNotFound},
		{"wrong method", "GET", "/v1/simulate", "", fasthttp.StatusMethodNotAllowed},
		{"post to healthz", "POST", "/healthz", "{}", fasthttp.StatusMethodNotAllowed},
		{"bad json", "POST", "/v1/simulate", "{not json", fasthttp.StatusBadRequest},
		{"empty body", "POST", "/v1/simulate", "", fasthttp.StatusBadRequest},
		{"no scenarios", "POST", "/v1/compare", `{"scenarios":[]}`, fasthttp.StatusBadRequest},
		{"invalid scenario", "POST", "/v1/compare", `{"scenarios":[{"name":"X","start_age":70,"events":[]}]}`, fasthttp.StatusBadRequest},
	}

	s := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := do(s, tt.method, tt.uri, tt.body)
			assert.Equal(t, tt.status, ctx.Response.StatusCode())
			assert.Equal(t, tt.status, decodeError(t, ctx).Status)
		})
	}
}

func TestBodyLimit(t *testing.T) {
	s := New(calculation.NewSimulationEngine(), nil, 64)
	ctx := do(s, "POST", "/v1/simulate", `{"name":"`+strings.Repeat("x", 100)+`"}`)
	assert.Equal(t, fasthttp.StatusRequestEntityTooLarge, ctx.Response.StatusCode())
}
