package reservation

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"

	basisPointsScale = 10000
	centsPerUnit     = 100
)

// Money is a non-floating amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int64) Money {
	return Money{cents: m.cents * n}
}

// ApplyBasisPoints scales the amount by bp/10000 and rounds half-up to the cent.
func (m Money) ApplyBasisPoints(bp int64) Money {
	return Money{cents: divRoundHalfUp(m.cents*bp, basisPointsScale)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// String renders the amount with two decimals, e.g. "370.00".
func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/centsPerUnit, c%centsPerUnit)
}

// divRoundHalfUp divides num by den (den > 0) rounding halves away from zero.
func divRoundHalfUp(num, den int64) int64 {
	if num < 0 {
		return -((-num + den/2) / den)
	}
	return (num + den/2) / den
}

// StayPeriod is a check-in/check-out pair of calendar dates. Dates are
// truncated to midnight UTC so that day arithmetic is exact.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{
		checkIn:  CalendarDate(checkIn),
		checkOut: CalendarDate(checkOut),
	}
}

func ParseStayPeriod(checkIn, checkOut string) (StayPeriod, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return StayPeriod{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return StayPeriod{}, err
	}
	return NewStayPeriod(in, out), nil
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

// Days is the number of calendar days between check-in and check-out. It can
// be zero or negative for malformed periods.
func (p StayPeriod) Days() int {
	return DaysBetween(p.checkIn, p.checkOut)
}

func (p StayPeriod) IsValid() bool {
	return p.checkOut.After(p.checkIn)
}

func (p StayPeriod) String() string {
	return p.checkIn.Format(DateLayout) + "/" + p.checkOut.Format(DateLayout)
}

// CalendarDate drops the clock part of t, keeping its calendar day in t's location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func DaysBetween(from, to time.Time) int {
	return int(CalendarDate(to).Sub(CalendarDate(from)) / (24 * time.Hour))
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

// Payment holds the recorded payment state. Nothing is charged by this service.
type Payment struct {
	IsPaid    bool
	PaidAt    *time.Time
	Method    string
	Reference string
}
