package middleware

import (
	"net/http"
	"strconv"
	"talent/shared/constant"
	"talent/transport/http/response"
	"time"
)

// RateLimit bounds request volume for the given action, keyed by client IP.
// The public scheduling endpoints carry no authentication, so the IP is the
// only identity available for quota accounting.
func (a *appMiddleware) RateLimit(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			clientIP := a.getClientIP(r)

			res, err := a.limiter.Check(r.Context(), action, clientIP)

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(res.Limit))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, res.Remaining)))

			if !res.ResetAt.IsZero() {
				w.Header().Set(constant.RequestHeaderRateLimitReset, strconv.FormatInt(res.ResetAt.Unix(), 10))
			}

			if err != nil {
				if !res.ResetAt.IsZero() {
					retryAfter := max(1, int(time.Until(res.ResetAt).Seconds()))
					w.Header().Set(constant.RequestHeaderRetryAfter, strconv.Itoa(retryAfter))
				}

				response.WithError(w, err)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
