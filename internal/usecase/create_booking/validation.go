package create_booking

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

// defaultPhoneRegion регион для номеров без международного префикса
const defaultPhoneRegion = "TR"

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.CustomerID != nil && *req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is blank", ErrInvalidInput)
	}

	return nil
}

// normalizePhone приводит номер к E.164
func normalizePhone(phone string) (string, error) {
	parsed, err := phonenumbers.Parse(strings.TrimSpace(phone), defaultPhoneRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return "", ErrInvalidPhone
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
