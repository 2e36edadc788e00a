package view

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/ziadkadry99/hana-site/internal/content"
)

// Form field names, shared by the HTML form, the JSON channel and BlockedError.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldDate      = "date"
	FieldTime      = "time"
	FieldPartySize = "party_size"
	FieldRequests  = "requests"
)

// ErrSubmissionBlocked is returned when the form fails its native constraints.
var ErrSubmissionBlocked = errors.New("reservation submission blocked")

// BlockedError lists the fields that stopped a submission, keyed by field
// name, with the message a browser would show.
type BlockedError struct {
	Fields map[string]string
}

func (e *BlockedError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", ErrSubmissionBlocked, strings.Join(names, ", "))
}

func (e *BlockedError) Unwrap() error { return ErrSubmissionBlocked }

// ReservationForm is the booking form. It is never stored or sent anywhere.
type ReservationForm struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize string `json:"party_size"`
	Requests  string `json:"requests"`
}

// IsEmpty reports whether every field is blank.
func (f ReservationForm) IsEmpty() bool {
	return f == ReservationForm{}
}

// emailPattern is the HTML "valid e-mail address" production used by
// <input type=email>.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

const (
	msgRequired = "Please fill out this field."
	msgEmail    = "Please enter an email address."
	msgDate     = "Please enter a valid date."
	msgSelect   = "Please select an item in the list."
)

// Check applies the constraints the browser enforces from the form's markup:
// required, type=email, type=date and the fixed <select> options. It adds
// nothing else; phone format and dates in the past are accepted.
func (f ReservationForm) Check() error {
	fields := make(map[string]string)

	if f.Name == "" {
		fields[FieldName] = msgRequired
	}

	// type=email strips surrounding whitespace before checking.
	switch email := strings.TrimSpace(f.Email); {
	case email == "":
		fields[FieldEmail] = msgRequired
	case !emailPattern.MatchString(email):
		fields[FieldEmail] = msgEmail
	}

	if f.Phone == "" {
		fields[FieldPhone] = msgRequired
	}

	// An unparseable type=date value is sanitised to "" by the browser.
	if f.Date == "" {
		fields[FieldDate] = msgRequired
	} else if _, err := time.Parse(time.DateOnly, f.Date); err != nil {
		fields[FieldDate] = msgDate
	}

	if !slices.Contains(content.TimeSlots(), f.Time) {
		fields[FieldTime] = msgSelect
	}
	if !slices.Contains(content.PartySizes(), f.PartySize) {
		fields[FieldPartySize] = msgSelect
	}

	if len(fields) > 0 {
		return &BlockedError{Fields: fields}
	}
	return nil
}

// SubmitReservation handles a submit event. When the form passes Check the
// panel switches to the confirmation and the returned form is empty. When it
// does not, the state is left alone and f is returned unchanged with a
// *BlockedError.
func (c *Controller) SubmitReservation(f ReservationForm) (ReservationForm, error) {
	if err := f.Check(); err != nil {
		return f, err
	}
	c.SetReservationSubmitted(true)
	return ReservationForm{}, nil
}

// ResetReservation is the "submit another reservation" action.
func (c *Controller) ResetReservation() {
	c.SetReservationSubmitted(false)
}
