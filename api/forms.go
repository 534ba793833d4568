package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/fyyur-app/fyyur/errs"
	"github.com/fyyur-app/fyyur/models"
	"github.com/go-playground/validator/v10"
)

const maxFormMemory = 1 << 20

var genreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

var stateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN",
	"MS", "MO", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

var startTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields by their form name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	states := make(map[string]bool, len(stateChoices))
	for _, s := range stateChoices {
		states[s] = true
	}
	mustRegister(v, "usstate", func(fl validator.FieldLevel) bool {
		return states[fl.Field().String()]
	})
	mustRegister(v, "genre", func(fl validator.FieldLevel) bool {
		return !strings.Contains(fl.Field().String(), ",")
	})
	mustRegister(v, "genrelist", func(fl validator.FieldLevel) bool {
		genres, ok := fl.Field().Interface().([]string)
		return ok && len(models.EncodeGenres(genres)) <= models.MaxGenresLength
	})
	mustRegister(v, "weburl", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

type venueForm struct {
	Name               string   `json:"name" validate:"required,max=255"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,usstate"`
	Address            string   `json:"address" validate:"required,max=120"`
	Phone              string   `json:"phone" validate:"max=120"`
	Genres             []string `json:"genres" validate:"min=1,genrelist,dive,required,genre"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,weburl,max=120"`
	ImageLink          string   `json:"image_link" validate:"omitempty,weburl,max=500"`
	WebsiteLink        string   `json:"website_link" validate:"omitempty,weburl,max=120"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" validate:"max=500"`
}

func decodeVenueForm(r *http.Request) (venueForm, error) {
	values, err := parseForm(r)
	if err != nil {
		return venueForm{}, err
	}

	form := venueForm{
		Name:               field(values, "name"),
		City:               field(values, "city"),
		State:              strings.ToUpper(field(values, "state")),
		Address:            field(values, "address"),
		Phone:              field(values, "phone"),
		Genres:             fields(values, "genres"),
		FacebookLink:       field(values, "facebook_link"),
		ImageLink:          field(values, "image_link"),
		WebsiteLink:        field(values, "website_link"),
		SeekingTalent:      checkbox(values, "seeking_talent"),
		SeekingDescription: field(values, "seeking_description"),
	}
	return form, validateForm(form)
}

func newVenueForm(v *models.Venue) venueForm {
	return venueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres.Strings(),
		FacebookLink:       v.FacebookLink,
		ImageLink:          v.ImageLink,
		WebsiteLink:        v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

func (f venueForm) toVenue() *models.Venue {
	return &models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             models.Genres(f.Genres),
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		Website:            f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

type artistForm struct {
	Name               string   `json:"name" validate:"required,max=255"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,usstate"`
	Phone              string   `json:"phone" validate:"max=120"`
	Genres             []string `json:"genres" validate:"min=1,genrelist,dive,required,genre"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,weburl,max=120"`
	ImageLink          string   `json:"image_link" validate:"omitempty,weburl,max=500"`
	WebsiteLink        string   `json:"website_link" validate:"omitempty,weburl,max=120"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" validate:"max=500"`
}

func decodeArtistForm(r *http.Request) (artistForm, error) {
	values, err := parseForm(r)
	if err != nil {
		return artistForm{}, err
	}

	form := artistForm{
		Name:               field(values, "name"),
		City:               field(values, "city"),
		State:              strings.ToUpper(field(values, "state")),
		Phone:              field(values, "phone"),
		Genres:             fields(values, "genres"),
		FacebookLink:       field(values, "facebook_link"),
		ImageLink:          field(values, "image_link"),
		WebsiteLink:        field(values, "website_link"),
		SeekingVenue:       checkbox(values, "seeking_venue"),
		SeekingDescription: field(values, "seeking_description"),
	}
	return form, validateForm(form)
}

func newArtistForm(a *models.Artist) artistForm {
	return artistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres.Strings(),
		FacebookLink:       a.FacebookLink,
		ImageLink:          a.ImageLink,
		WebsiteLink:        a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

func (f artistForm) toArtist() *models.Artist {
	return &models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             models.Genres(f.Genres),
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		Website:            f.WebsiteLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

type showForm struct {
	ArtistID  uint      `json:"artist_id" validate:"required"`
	VenueID   uint      `json:"venue_id" validate:"required"`
	StartTime time.Time `json:"start_time"`
}

func decodeShowForm(r *http.Request) (showForm, error) {
	values, err := parseForm(r)
	if err != nil {
		return showForm{}, err
	}

	var form showForm
	if form.ArtistID, err = formID(values, "artist_id"); err != nil {
		return form, err
	}
	if form.VenueID, err = formID(values, "venue_id"); err != nil {
		return form, err
	}
	if form.StartTime, err = parseStartTime(field(values, "start_time")); err != nil {
		return form, err
	}
	return form, validateForm(form)
}

func parseForm(r *http.Request) (url.Values, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, errs.NewMalformedFormError(err)
	}
	return r.PostForm, nil
}

func field(values url.Values, name string) string {
	return strings.TrimSpace(values.Get(name))
}

// fields returns every value of a repeated field, trimmed, never nil.
func fields(values url.Values, name string) []string {
	out := make([]string, 0, len(values[name]))
	for _, v := range values[name] {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

func checkbox(values url.Values, name string) bool {
	switch strings.ToLower(field(values, name)) {
	case "y", "on", "true", "1":
		return true
	}
	return false
}

func formID(values url.Values, name string) (uint, error) {
	raw := field(values, name)
	if raw == "" {
		return 0, errs.NewValidationError(name, "is required")
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, errs.NewValidationError(name, "must be a positive integer")
	}
	return uint(id), nil
}

func parseStartTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errs.NewValidationError("start_time", "is required")
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.NewValidationError("start_time", "must look like 2006-01-02 15:04:05")
}

// validateForm reports the first failing field as a validation error.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewMalformedFormError(err)
	}
	fe := fieldErrs[0]
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return errs.NewValidationError(name, reasonFor(fe))
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "pick at least one"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "usstate":
		return "must be a US state code"
	case "genre":
		return "must not contain a comma"
	case "genrelist":
		return fmt.Sprintf("must be at most %d characters once joined", models.MaxGenresLength)
	case "weburl":
		return "must be an http or https URL"
	}
	return "is invalid"
}

func formChoices() *FormChoices {
	return &FormChoices{Genres: genreChoices, States: stateChoices}
}
