package chart

import (
	"encoding/json"
	"errors"
	"math"
	"time"
)

type Kind string

const (
	KindLine Kind = "line"
	KindBar  Kind = "bar"
)

var ErrUnknownKind = errors.New("unknown chart kind")

func ParseKind(value string) (Kind, error) {
	switch Kind(value) {
	case KindLine:
		return KindLine, nil
	case KindBar:
		return KindBar, nil
	default:
		return "", ErrUnknownKind
	}
}

const labelDateLayout = "2006-01-02"

// Label is one x-axis entry. Temporal labels carry the parsed date; an
// unparsable date stays in the series as an invalid label.
type Label struct {
	Text     string
	Time     time.Time
	Temporal bool
	Valid    bool
}

func (l Label) String() string {
	if l.Temporal && l.Valid {
		return l.Time.Format(labelDateLayout)
	}
	return l.Text
}

func (l Label) MarshalJSON() ([]byte, error) {
	if !l.Temporal {
		return json.Marshal(l.Text)
	}
	if !l.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(l.Time.UTC().Format(time.RFC3339))
}

// Number is a y value. NaN and infinities encode as JSON null.
type Number float64

func (n Number) Finite() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Finite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(n))
}

type Series struct {
	Kind         Kind
	DatasetLabel string
	XTitle       string
	YTitle       string
	Labels       []Label
	Values       []Number
}

func (s Series) Len() int {
	return len(s.Values)
}
