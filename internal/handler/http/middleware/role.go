package middleware

import (
	"net/http"

	"github.com/clockwise-hr/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// HROnly restricts a route to tokens carrying the hr or admin role. Payslip
// approval and aggregate generation are HR actions.
func HROnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Invalid token")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (role != "hr" && role != "admin") {
			response.Forbidden(w, "HR privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
