package http

import (
	"net/http"

	"github.com/utafrali/paintstore/pkg/httputil"
	"github.com/utafrali/paintstore/pkg/validator"
)

const maxBodyBytes = 1 << 20

// decode reads and validates a JSON body into dst. It writes the 400
// response itself and reports false when the body is rejected.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := validator.DecodeAndValidate(r, dst); err != nil {
		httputil.WriteValidationError(w, err)
		return false
	}
	return true
}
