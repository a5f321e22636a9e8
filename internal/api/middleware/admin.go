package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	customerRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/customer"
)

const msgAdminOnly = "доступ только для администратора"

// CustomerRepository источник ролей клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequireAdmin пропускает только администраторов. Ставится после Auth.
func RequireAdmin(customers CustomerRepository, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			customer, err := customers.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, customerRepo.ErrCustomerNotFound) {
					logger.Warn("RequireAdmin - unknown customer: user_id=%d", userID)
					handlers.RespondForbidden(w, msgAdminOnly)
					return
				}
				logger.Error("RequireAdmin - failed to load customer: user_id=%d, error=%v", userID, err)
				handlers.RespondInternalError(w)
				return
			}

			if !customer.IsAdmin() {
				logger.Warn("RequireAdmin - access denied: user_id=%d", userID)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
