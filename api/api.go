// Package api embeds the OpenAPI document of the HTTP API and serves it as
// JSON and through Swagger UI.
package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

//go:embed openapi.yml
var spec []byte

var (
	load = sync.OnceValues(func() (*openapi3.T, error) {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(spec)
		if err != nil {
			return nil, fmt.Errorf("load openapi document: %w", err)
		}
		if err = doc.Validate(loader.Context); err != nil {
			return nil, fmt.Errorf("validate openapi document: %w", err)
		}
		return doc, nil
	})

	registerDoc sync.Once
)

// Document returns the parsed and validated OpenAPI document.
func Document() (*openapi3.T, error) {
	return load()
}

// JSON returns the OpenAPI document encoded as JSON.
func JSON() ([]byte, error) {
	doc, err := Document()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// swaggerDoc hands the document to swag, which Swagger UI reads it from.
type swaggerDoc struct {
	body string
}

func (d swaggerDoc) ReadDoc() string {
	return d.body
}

// RegisterRoutes serves the document at /api/openapi.json and Swagger UI
// under /swagger/.
func RegisterRoutes(e *echo.Echo) error {
	body, err := JSON()
	if err != nil {
		return err
	}

	registerDoc.Do(func() {
		swag.Register(swag.Name, swaggerDoc{body: string(body)})
	})

	e.GET("/api/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, body)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
