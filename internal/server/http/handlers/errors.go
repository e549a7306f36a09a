package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	domainErrors "github.com/polkiloo/authgate/internal/domain/errors"
	"github.com/polkiloo/authgate/internal/server/http/dto"
	"github.com/polkiloo/authgate/internal/server/http/middleware"
)

var errTrailingData = errors.New("unexpected data after JSON body")

// bindCredentials decodes the request body as exactly one JSON value and
// answers 400 or 413 itself on failure.
func bindCredentials(c *gin.Context) (dto.CredentialsRequest, bool) {
	var req dto.CredentialsRequest
	raw, err := c.GetRawData()
	if err == nil {
		err = binding.JSON.BindBody(raw, &req)
	}
	if err == nil {
		err = ensureSingleValue(raw)
	}
	if err == nil {
		return req, true
	}

	var (
		typeErr *json.UnmarshalTypeError
		maxErr  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &maxErr):
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: dto.ErrMessageBodyTooLarge})
	case errors.As(err, &typeErr) && typeErr.Field != "":
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: capitalize(typeErr.Field) + " must be a string."})
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrMessageInvalidBody})
	}
	return req, false
}

// writeError maps domain errors onto status codes. Anything unrecognised is
// logged and hidden behind a generic 500.
func writeError(c *gin.Context, logger *slog.Logger, op string, err error) {
	var validationErr *domainErrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationErr.Message})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrMessageUserExists})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: dto.ErrMessageUserNotFound})
	case errors.Is(err, domainErrors.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: dto.ErrMessageInvalidPassword})
	default:
		middleware.LoggerFrom(c, logger).Error(op+" failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ErrMessageInternal})
	}
}

// ensureSingleValue rejects bodies carrying anything but whitespace after the first JSON value.
func ensureSingleValue(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	var first json.RawMessage
	if err := dec.Decode(&first); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
