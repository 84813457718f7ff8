package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

// RequestValidator checks parameters and bodies against the OpenAPI
// document. Authentication is enforced by Authentication, so the
// document's security requirements are accepted here as-is.
func RequestValidator(doc *openapi3.T, log logger.Logger) (func(http.Handler) http.Handler, error) {
	// Server URLs would otherwise constrain host matching.
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building openapi router: %w", err)
	}

	log = log.Component("request_validator")
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)

				return
			}

			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				// Routes outside the document (docs, admin) are left to chi.
				if errors.Is(err, routers.ErrMethodNotAllowed) {
					MethodNotAllowed(w, r)

					return
				}

				next.ServeHTTP(w, r)

				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}

			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				var reqErr *openapi3filter.RequestError
				if errors.As(err, &reqErr) {
					writeError(w, http.StatusBadRequest, codeValidationFailed, validationMessage(reqErr))

					return
				}

				reqLog := log.WithContext(r.Context())
				reqLog.Error().Err(err).Msg("unexpected request validation error")
				writeError(w, http.StatusInternalServerError, codeInternalError, "request validation failed")

				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

func validationMessage(err *openapi3filter.RequestError) string {
	var b strings.Builder

	if err.Parameter != nil {
		fmt.Fprintf(&b, "parameter %q in %s: ", err.Parameter.Name, err.Parameter.In)
	} else if err.RequestBody != nil {
		b.WriteString("request body: ")
	}

	switch {
	case err.Err != nil:
		var schemaErr *openapi3.SchemaError
		if errors.As(err.Err, &schemaErr) {
			if field := schemaErr.JSONPointer(); len(field) > 0 {
				fmt.Fprintf(&b, "field %q ", strings.Join(field, "."))
			}

			b.WriteString(schemaErr.Reason)
		} else {
			b.WriteString(err.Err.Error())
		}
	case err.Reason != "":
		b.WriteString(err.Reason)
	default:
		b.WriteString("invalid request")
	}

	return b.String()
}
