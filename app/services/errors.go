package services

// ValidationError reports a local pre-check failure. It never reaches the
// network: the flow fails before any I/O happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthenticationError carries a backend-reported login/registration failure.
type AuthenticationError struct {
	Status  int
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// OrderError carries a backend-reported order placement failure.
type OrderError struct {
	Status  int
	Message string
}

func (e *OrderError) Error() string { return e.Message }
