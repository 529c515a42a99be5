package request

import (
	"bytes"
	"encoding/json"
)

type FieldErrorKind int

const (
	MissingField FieldErrorKind = iota
	WrongType
	OutOfRange
)

// FieldError is a single validation failure. Failures are accumulated and
// returned as one list, never one at a time.
type FieldError struct {
	Field   string
	Kind    FieldErrorKind
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

func Messages(errs []FieldError) []string {
	if len(errs) == 0 {
		return nil
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}

	return messages
}

// Options hold the validation switches that historically differed between
// the gated and ungated deployments.
type Options struct {
	// StrictPrice rejects integer literals without a fractional part,
	// e.g. 10 fails while 10.0 passes.
	StrictPrice bool
	// CheckDescriptionType enables the description type check the ungated
	// deployment used to skip.
	CheckDescriptionType bool
}

// ProductRequest keeps each field as raw JSON so that a payload with several
// bad fields reports every failure at once. Binding into typed fields would
// stop at the first type mismatch.
type ProductRequest struct {
	Name        json.RawMessage `json:"name"`
	Description json.RawMessage `json:"description"`
	Price       json.RawMessage `json:"price"`
	Qty         json.RawMessage `json:"qty"`
}

// ProductPayload is the decoded payload. It is only meaningful when
// validation returned no errors.
type ProductPayload struct {
	Name        string
	Description string
	Price       float64
	Qty         int
}

// ValidateCreate checks the payload for the create path: every field must be
// present and non-empty (an empty string, a zero price and a zero qty all
// count as missing here), then types and ranges are checked.
func (req *ProductRequest) ValidateCreate(opts Options) (ProductPayload, []FieldError) {
	var errs []FieldError

	for _, f := range []struct {
		name string
		raw  json.RawMessage
	}{
		{"name", req.Name},
		{"description", req.Description},
		{"price", req.Price},
		{"qty", req.Qty},
	} {
		if isEmptyValue(f.raw) {
			errs = append(errs, FieldError{f.name, MissingField, "Key " + f.name + " is required!"})
		}
	}

	payload := ProductPayload{}
	errs = append(errs, req.checkPrice(&payload, opts)...)
	errs = append(errs, req.checkDescription(&payload, opts)...)
	errs = append(errs, req.checkName(&payload)...)
	errs = append(errs, req.checkQty(&payload)...)

	return payload, errs
}

// ValidateUpdate checks the payload for the update path: all four keys must
// be present, but empty or zero values are allowed through to the type and
// range checks.
func (req *ProductRequest) ValidateUpdate(opts Options) (ProductPayload, []FieldError) {
	var errs []FieldError

	payload := ProductPayload{}

	if isAbsent(req.Name) {
		errs = append(errs, FieldError{"name", MissingField, "Key name is required!"})
	} else {
		errs = append(errs, req.checkName(&payload)...)
	}
	if isAbsent(req.Description) {
		errs = append(errs, FieldError{"description", MissingField, "Key description is required!"})
	} else {
		errs = append(errs, req.checkDescription(&payload, opts)...)
	}
	if isAbsent(req.Price) {
		errs = append(errs, FieldError{"price", MissingField, "Key price is required!"})
	} else {
		errs = append(errs, req.checkPrice(&payload, opts)...)
	}
	if isAbsent(req.Qty) {
		errs = append(errs, FieldError{"qty", MissingField, "Key qty is required!"})
	} else {
		errs = append(errs, req.checkQty(&payload)...)
	}

	return payload, errs
}

func (req *ProductRequest) checkName(payload *ProductPayload) []FieldError {
	if isAbsent(req.Name) {
		return nil
	}

	name, ok := asString(req.Name)
	if !ok {
		return []FieldError{{"name", WrongType, "Name must be a string!"}}
	}
	payload.Name = name

	return nil
}

func (req *ProductRequest) checkDescription(payload *ProductPayload, opts Options) []FieldError {
	if isAbsent(req.Description) {
		return nil
	}

	description, ok := asString(req.Description)
	if !ok {
		if opts.CheckDescriptionType {
			return []FieldError{{"description", WrongType, "Description must be a string!"}}
		}

		return nil
	}
	payload.Description = description

	return nil
}

func (req *ProductRequest) checkPrice(payload *ProductPayload, opts Options) []FieldError {
	if isAbsent(req.Price) {
		return nil
	}

	price, ok := asFloat(req.Price, opts.StrictPrice)
	if !ok {
		return []FieldError{{"price", WrongType, "Price must be a float!"}}
	}
	payload.Price = price

	if price < 0 {
		return []FieldError{{"price", OutOfRange, "Price must be a positive number or 0"}}
	}

	return nil
}

func (req *ProductRequest) checkQty(payload *ProductPayload) []FieldError {
	if isAbsent(req.Qty) {
		return nil
	}

	qty, ok := asInt(req.Qty)
	if !ok {
		return []FieldError{{"qty", WrongType, "Qty must be an integer!"}}
	}
	payload.Qty = qty

	if qty < 0 {
		return []FieldError{{"qty", OutOfRange, "Qty must be a positive number or 0"}}
	}

	return nil
}

// isAbsent reports whether the key was left out of the payload entirely
// (or explicitly set to null).
func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// isEmptyValue additionally treats "", 0, false and empty collections as
// missing, which is what the create path requires.
func isEmptyValue(raw json.RawMessage) bool {
	if isAbsent(raw) {
		return true
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch t := v.(type) {
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	case []interface{}:
		return len(t) == 0
	case map[string]interface{}:
		return len(t) == 0
	}

	return false
}

func asString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}

	return s, true
}

func asFloat(raw json.RawMessage, strict bool) (float64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}

	if strict && !bytes.ContainsAny(raw, ".eE") {
		return 0, false
	}

	return f, true
}

func asInt(raw json.RawMessage) (int, bool) {
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}

	return n, true
}
