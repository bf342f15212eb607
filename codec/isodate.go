package codec

import (
	"context"
	"time"

	formdata "github.com/Abyrd9/zod-form-data"
)

const isoDateLayout = "2006-01-02"

// ISODate returns a Codec converting between "YYYY-MM-DD" strings and
// time.Time. Decoded times are midnight UTC; Encode normalizes to UTC before
// formatting so a decode/encode round trip is stable.
func ISODate() Codec[string, time.Time] { return isoDateCodec{} }

type isoDateCodec struct{}

func (isoDateCodec) Decode(ctx context.Context, a string) (time.Time, error) {
	t, err := time.Parse(isoDateLayout, a)
	if err != nil {
		return time.Time{}, formdata.Issues{{
			Code:    formdata.CodeCoercionDate,
			Message: "expected date in YYYY-MM-DD format",
			Cause:   err,
		}}
	}
	return t, nil
}

func (isoDateCodec) Encode(ctx context.Context, b time.Time) (string, error) {
	return b.UTC().Format(isoDateLayout), nil
}
