package queries

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

// EncodeAfterCursor packs a calendar day and id as base64url("v1:<yyyy-mm-dd>_<uuid>").
func EncodeAfterCursor(date time.Time, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%s_%s", CursorVersionV1, date.Format(reservation.DateLayout), id.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (*CursorKey, error) {
	if cursor == "" {
		return nil, errs.Mark(fmt.Errorf("cursor cannot be empty"), errs.ErrInvalidCursor)
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, errs.Mark(fmt.Errorf("invalid cursor encoding: %w", err), errs.ErrInvalidCursor)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return nil, errs.Mark(fmt.Errorf("unsupported cursor version"), errs.ErrInvalidCursor)
	}

	datePart, idPart, ok := strings.Cut(payload, "_")
	if !ok {
		return nil, errs.Mark(fmt.Errorf("invalid cursor format: expected '<date>_<uuid>'"), errs.ErrInvalidCursor)
	}
	date, err := reservation.ParseDate(datePart)
	if err != nil {
		return nil, errs.Mark(fmt.Errorf("invalid cursor date: %w", err), errs.ErrInvalidCursor)
	}
	id, err := uuid.Parse(idPart)
	if err != nil {
		return nil, errs.Mark(fmt.Errorf("invalid cursor id: %w", err), errs.ErrInvalidCursor)
	}

	return &CursorKey{Date: date, ID: id}, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
