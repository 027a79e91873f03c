package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"portfolio/internal/platform/config"
	perr "portfolio/internal/platform/errors"
	pnet "portfolio/internal/platform/net"
	docs "portfolio/internal/services/api/docs"
)

// docReader returns the generated document; tests swap it
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

const exampleRequestID = "579f33bf50b1/abc-000001"

// sharedErrors can come out of any route. Their envelopes are built by the
// same code the server writes with
var sharedErrors = []error{
	perr.Newf(perr.ErrorCodeValidation, "limit must be at most 100"),
	perr.Newf(perr.ErrorCodeTooManyRequests, "github request failed: GitHub API error: 403 Forbidden"),
	perr.PanicErrf("panic recovered"),
}

func serveDocJSON(server string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		spec, err := buildSpec(docReader(), server, config.New().Prefix("CORE_API_"))
		if err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

func buildSpec(raw, server string, cfg config.Conf) (map[string]any, error) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return nil, err
	}
	toOAS3(spec, server)

	if suffix := cfg.MayString("DOCS_TITLE_SUFFIX", ""); suffix != "" {
		info := child(spec, "info")
		if title, ok := info["title"].(string); ok {
			info["title"] = title + " " + suffix
		}
	}

	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = errorSchema()
	}
	for _, err := range sharedErrors {
		status, env := pnet.Error(err, exampleRequestID)
		documentEverywhere(spec, strconv.Itoa(status), errorResponse(env))
	}
	return spec, nil
}

// toOAS3 rewrites swagger 2 and 3.1 documents as 3.0.3, the newest the UI renders
func toOAS3(spec map[string]any, server string) {
	delete(spec, "swagger")
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": server}}
	}
}

// child returns m[key] as an object, creating it if absent
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

func errorSchema() map[string]any {
	integer := map[string]any{"type": "integer", "format": "int32"}
	str := map[string]any{"type": "string"}
	return map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"properties": map[string]any{
			"status_code": integer,
			"status":      str,
			"code":        integer,
			"error":       str,
			"request_id":  str,
		},
		"required": []any{"status_code", "status"},
	}
}

func errorResponse(env pnet.Wire) map[string]any {
	return map[string]any{
		"description": env.Status,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": env,
			},
		},
	}
}

// documentEverywhere adds resp under status to every operation lacking one
func documentEverywhere(spec map[string]any, status string, resp map[string]any) {
	paths, _ := spec["paths"].(map[string]any)
	for _, item := range paths {
		ops, _ := item.(map[string]any)
		for _, o := range ops {
			op, ok := o.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			if _, ok := responses[status]; !ok {
				responses[status] = resp
			}
		}
	}
}
