package server

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// openAPIDoc is a minimal OpenAPI 3 document describing the route table.
type openAPIDoc struct {
	OpenAPI string                          `json:"openapi"`
	Info    openAPIInfo                     `json:"info"`
	Paths   map[string]map[string]operation `json:"paths"`
}

type openAPIInfo struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type operation struct {
	OperationID string              `json:"operationId"`
	Responses   map[string]response `json:"responses"`
}

type response struct {
	Description string `json:"description"`
}

// OpenAPIHandler builds an OpenAPI document for the given routes and
// returns a handler serving it as JSON. The document is generated once at
// registration time; the route table is fixed after startup.
func OpenAPIHandler(title, version string, routes []Route) gin.HandlerFunc {
	doc := openAPIDoc{
		OpenAPI: "3.0.3",
		Info:    openAPIInfo{Title: title, Version: version},
		Paths:   make(map[string]map[string]operation),
	}

	sorted := make([]Route, len(routes))
	copy(sorted, routes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key() < sorted[j].Key() })

	for _, r := range sorted {
		path := doc.Paths[r.Path]
		if path == nil {
			path = make(map[string]operation)
			doc.Paths[r.Path] = path
		}
		path[strings.ToLower(r.Method)] = operation{
			OperationID: operationID(r),
			Responses: map[string]response{
				"default": {Description: "response"},
			},
		}
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, doc)
	}
}

// operationID derives a stable identifier like "get_status" from a route.
func operationID(r Route) string {
	path := strings.Trim(r.Path, "/")
	path = strings.NewReplacer("/", "_", ":", "", ".", "_").Replace(path)
	if path == "" {
		path = "root"
	}
	return strings.ToLower(r.Method) + "_" + path
}
