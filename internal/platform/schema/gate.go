// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

package schema

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/freightdeskhq/freightdesk/internal/platform/apperr"
	"github.com/freightdeskhq/freightdesk/internal/platform/ctxutil"
	"github.com/freightdeskhq/freightdesk/internal/platform/respond"
)

// Gate returns a pipeline step that validates the request body against the
// schema before the controller runs.
//
// On any violation the request short-circuits with a 400 listing every
// violated field; downstream handlers never run. On success the sanitized
// body is attached to the request context for [ctxutil.GetBody].
//
// An empty body is treated as an empty object, so an empty schema accepts
// any request and forwards `{}`.
func Gate(responder *respond.Responder, schema Schema) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			body := map[string]any{}

			if request.Body != nil {
				err := json.NewDecoder(request.Body).Decode(&body)
				if err != nil && err != io.EOF {
					responder.Error(writer, request, apperr.BadRequest("Invalid JSON payload"))
					return
				}
			}

			sanitized, violations := schema.Check(body)
			if len(violations) > 0 {
				responder.Error(writer, request, apperr.Validation(violations...))
				return
			}

			ctx := ctxutil.WithBody(request.Context(), sanitized)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
