package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// DecodeStrict decodes a JSON object into v, rejecting fields v does not
// declare. An empty body leaves v untouched.
func DecodeStrict(body []byte, v interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badRequest(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fiber.NewError(fiber.StatusBadRequest, "Request body must contain a single JSON object")
	}
	return nil
}

func badRequest(err error) error {
	msg := err.Error()
	if field, ok := strings.CutPrefix(msg, "json: unknown field "); ok {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Unknown field %s", field))
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Field %s has an invalid type", typeErr.Field))
	}
	return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
}
