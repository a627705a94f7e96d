package create_booking

import "fmt"

// validateRequest валидирует входные данные запроса
// Отсутствие обязательных полей проверяется раньше, на уровне HTTP-модели,
// где известны исходные имена полей JSON; здесь проверяются значения
func validateRequest(req *Request) error {
	if req.ClientID == "" {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.StoreID <= 0 {
		return fmt.Errorf("%w: storeID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: startsAt is required", ErrInvalidInput)
	}

	return nil
}
