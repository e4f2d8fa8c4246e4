package middlewares

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-template-studio/internal/dbtx"
	"github.com/sbilibin2017/gw-template-studio/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction. The
// transaction commits when the handler answers below 400 and rolls back
// otherwise. Only mount it on routes that make no external calls.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				log.Errorw("failed to begin transaction", "error", err)
				reject(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			rw := &bufferedWriter{header: http.Header{}, status: http.StatusOK}
			next.ServeHTTP(rw, r.WithContext(dbtx.WithTx(r.Context(), tx)))

			if rw.status >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					log.Errorw("failed to rollback transaction", "error", err)
				}
				rw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				log.Errorw("failed to commit transaction", "error", err)
				reject(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			rw.flush(w)
		})
	}
}

// bufferedWriter holds the response until the transaction outcome is known,
// so a failed commit can still be reported to the client.
type bufferedWriter struct {
	header http.Header
	status int
	body   []byte
}

func (b *bufferedWriter) Header() http.Header { return b.header }

func (b *bufferedWriter) WriteHeader(code int) { b.status = code }

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.body = append(b.body, p...)
	return len(p), nil
}

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range b.header {
		w.Header()[k] = v
	}
	w.WriteHeader(b.status)
	w.Write(b.body)
}
