package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

const genreSeparator = ","

// MaxGenresLength is the width of the genres column. Encoded lists longer
// than this are rejected before they reach the store.
const MaxGenresLength = 500

// Genres is an ordered list of genre tags. In the store it is a single
// comma-joined string; everywhere else it is a slice.
//
// A genre containing a comma does not survive the round trip. The form
// layer rejects such values before they get here.
type Genres []string

// EncodeGenres joins genres for storage. An empty list encodes to "".
func EncodeGenres(genres []string) string {
	return strings.Join(genres, genreSeparator)
}

// DecodeGenres splits a stored genre string. "" decodes to an empty list.
func DecodeGenres(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, genreSeparator)
}

// Value implements driver.Valuer.
func (g Genres) Value() (driver.Value, error) {
	return EncodeGenres(g), nil
}

// Scan implements sql.Scanner.
func (g *Genres) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*g = Genres{}
	case string:
		*g = DecodeGenres(v)
	case []byte:
		*g = DecodeGenres(string(v))
	default:
		return fmt.Errorf("genres: cannot scan %T", src)
	}
	return nil
}

// Strings returns the genres as a plain slice, never nil.
func (g Genres) Strings() []string {
	if g == nil {
		return []string{}
	}
	return []string(g)
}
