package result

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestSuccess_CarriesData(t *testing.T) {
	body := decode(t, Success(map[string]string{"token": "abc"}))

	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, CodeSuccess, body["code"])
	assert.Equal(t, MessageSuccess, body["message"])
	assert.Equal(t, map[string]any{"token": "abc"}, body["data"])
	assert.Greater(t, body["timestamp"], float64(0))
}

func TestMessage_OmitsData(t *testing.T) {
	body := decode(t, Message("registered"))

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "registered", body["message"])
	_, present := body["data"]
	assert.False(t, present, "data must be omitted, not null")
}

func TestError_Defaults(t *testing.T) {
	body := decode(t, Error(0, ""))

	assert.Equal(t, false, body["success"])
	assert.EqualValues(t, CodeFailure, body["code"])
	assert.Equal(t, MessageFailure, body["message"])
	_, present := body["data"]
	assert.False(t, present)
}

func TestErrorWithData(t *testing.T) {
	r := ErrorWithData(400, "validation failed", []string{"email is required"})

	assert.False(t, r.Success)
	assert.Equal(t, 400, r.Code)
	assert.Equal(t, []string{"email is required"}, r.Data)
}

func TestOf(t *testing.T) {
	assert.True(t, Of(true, "").Success)
	assert.Equal(t, MessageSuccess, Of(true, "").Message)

	failed := Of(false, "could not save")
	assert.False(t, failed.Success)
	assert.Equal(t, CodeFailure, failed.Code)
	assert.Equal(t, "could not save", failed.Message)
}

func TestNewPage_Math(t *testing.T) {
	cases := []struct {
		name                 string
		total, current, size int64
		pages                int64
		hasNext, hasPrevious bool
	}{
		{"exact multiple", 20, 1, 10, 2, true, false},
		{"remainder", 21, 3, 10, 3, false, true},
		{"empty", 0, 1, 10, 0, false, false},
		{"zero size", 5, 1, 0, 0, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPage[int](nil, tc.total, tc.current, tc.size)
			assert.Equal(t, tc.pages, p.Pages)
			assert.Equal(t, tc.hasNext, p.HasNext)
			assert.Equal(t, tc.hasPrevious, p.HasPrevious)
			assert.NotNil(t, p.Records)
		})
	}
}

func TestNewPage_RecordsSerializeAsArray(t *testing.T) {
	body := decode(t, Success(EmptyPage[string]()))
	data := body["data"].(map[string]any)
	assert.Equal(t, []any{}, data["records"])
}

func TestNewPageRequest(t *testing.T) {
	p := NewPageRequest(0, 0)
	assert.Equal(t, Page{Number: 1, Size: DefaultPageSize}, p)
	assert.EqualValues(t, 0, p.Skip())

	p = NewPageRequest(3, 500)
	assert.EqualValues(t, MaxPageSize, p.Size)
	assert.EqualValues(t, 200, p.Skip())
}

func TestNewPageRequest_HugePageNumber(t *testing.T) {
	p := NewPageRequest(100_000_000_000_000_000, 100)
	assert.EqualValues(t, MaxPageNumber, p.Number)
	assert.Positive(t, p.Skip())

	p = NewPageRequest(math.MaxInt64, 7)
	assert.Positive(t, p.Skip())
}

func TestPage_SkipSaturates(t *testing.T) {
	p := Page{Number: math.MaxInt64, Size: MaxPageSize}
	assert.EqualValues(t, int64(math.MaxInt64), p.Skip())
	assert.EqualValues(t, 0, Page{Number: 0, Size: 10}.Skip())
}
