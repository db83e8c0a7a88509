package models

// ValidationError is a single violated validation rule. The create-conflict
// outcome reuses this envelope so clients handle every 400 body uniformly.
type ValidationError struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
}
