package utils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

var ErrEmptyDate = errors.New("date is required")

// layouts aceitos para datas ISO-8601, do mais específico para o mais simples
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseDate converte uma data ISO-8601 (somente data ou timestamp RFC 3339)
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, ErrEmptyDate
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return date, nil
		}
	}

	return time.Time{}, errors.Errorf("invalid ISO-8601 date: %q", dateStr)
}
