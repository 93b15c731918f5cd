package server

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/planfolio/projector/internal/domain"
)

func doRequest(t *testing.T, srv *Server, method, uri string, body []byte) *fasthttp.RequestCtx {
	t.Helper()
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != nil {
		req.SetBody(body)
	}
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	srv.Handler(ctx)
	return ctx
}

func TestHealthz(t *testing.T) {
	srv := New(2025, nil)
	ctx := doRequest(t, srv, fasthttp.MethodGet, "http://localhost/healthz", nil)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, string(ctx.Response.Body()))
}

func TestProjectionEndpoint(t *testing.T) {
	plan := map[string]any{
		"assumptions": map[string]any{
			"tax_percentage":         20,
			"inflation_percentage":   2,
			"planning_horizon_years": 5,
		},
		"wages": map[string]any{
			"main": map[string]any{
				"annual": 60000,
				"raise":  0,
			},
		},
	}
	body, err := json.Marshal(plan)
	require.NoError(t, err)

	srv := New(2025, nil)
	ctx := doRequest(t, srv, fasthttp.MethodPost, "http://localhost/api/v1/projection", body)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var chart domain.ChartData
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &chart))
	assert.Equal(t, 2025, chart.BeginYear)
	assert.Equal(t, 2030, chart.EndYear)
	require.NotEmpty(t, chart.IncomeSeries)

	var total *domain.ChartSeries
	for i := range chart.IncomeSeries {
		if chart.IncomeSeries[i].Label == "Total income" {
			total = &chart.IncomeSeries[i]
		}
	}
	require.NotNil(t, total)
	require.Len(t, total.Points, 6)
	require.NotNil(t, total.Points[0].Value)
	assert.InDelta(t, 5000, *total.Points[0].Value, 0.001)
}

func TestProjectionAsOfYearOverride(t *testing.T) {
	body, err := json.Marshal(map[string]any{
		"assumptions": map[string]any{"planning_horizon_years": 1},
	})
	require.NoError(t, err)

	srv := New(2025, nil)
	ctx := doRequest(t, srv, fasthttp.MethodPost, "http://localhost/api/v1/projection?as_of_year=2040", body)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var chart domain.ChartData
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &chart))
	assert.Equal(t, 2040, chart.BeginYear)
}

func TestProjectionRejectsGet(t *testing.T) {
	srv := New(2025, nil)
	ctx := doRequest(t, srv, fasthttp.MethodGet, "http://localhost/api/v1/projection", nil)

	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, resp.Status)
}

func TestProjectionRejectsBadJSON(t *testing.T) {
	srv := New(2025, nil)
	ctx := doRequest(t, srv, fasthttp.MethodPost, "http://localhost/api/v1/projection", []byte("{not json"))

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Contains(t, resp.Message, "invalid plan body")
}

func TestUnknownPath(t *testing.T) {
	srv := New(2025, nil)
	ctx := doRequest(t, srv, fasthttp.MethodGet, "http://localhost/api/v2/other", nil)

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
