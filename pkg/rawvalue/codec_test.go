package rawvalue

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plainfield/notespace/pkg/types"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ts := time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		fieldType string
		value     any
	}{
		{"string", types.FieldString, "hello"},
		{"markdown", types.FieldMarkdown, "# Title"},
		{"boolean true", types.FieldBoolean, true},
		{"boolean false", types.FieldBoolean, false},
		{"string_choice", types.FieldStringChoice, "open"},
		{"tags", types.FieldTags, []string{"drum", "bass"}},
		{"user", types.FieldUser, "0189c7f2-aaaa-7bbb-8ccc-0123456789ab"},
		{"datetime", types.FieldDatetime, ts},
		{"int", types.FieldInt, int64(42)},
		{"float", types.FieldFloat, 2.5},
		{"image", types.FieldImage, "cover.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := Encode(tt.fieldType, tt.value)
			require.NoError(t, err)

			got, err := Decode(tt.fieldType, raw)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.value, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeForms(t *testing.T) {
	raw, err := Encode(types.FieldTags, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a, b", raw)

	raw, err = Encode(types.FieldDatetime, types.SentinelNow)
	require.NoError(t, err)
	assert.Equal(t, "$now", raw)

	raw, err = Encode(types.FieldInt, 7)
	require.NoError(t, err)
	assert.Equal(t, "7", raw)

	_, err = Encode("enum", "x")
	assert.ErrorIs(t, err, types.ErrUnknownFieldType)

	_, err = Encode(types.FieldBoolean, "maybe")
	assert.ErrorIs(t, err, types.ErrInvalidFieldValue)
}

func TestEncodeQueryValue(t *testing.T) {
	raw, err := EncodeQueryValue(types.FieldTags, []string{"urgent"})
	require.NoError(t, err)
	assert.Equal(t, `["urgent"]`, raw)

	// A single scalar is wrapped into an array.
	raw, err = EncodeQueryValue(types.FieldTags, "urgent")
	require.NoError(t, err)
	assert.Equal(t, `["urgent"]`, raw)

	raw, err = EncodeQueryValue(types.FieldStringChoice, "open")
	require.NoError(t, err)
	assert.Equal(t, "open", raw)
}

func TestDecodeRejectsUnparseable(t *testing.T) {
	tests := []struct {
		fieldType string
		raw       string
	}{
		{types.FieldInt, "abc"},
		{types.FieldInt, "2.5"},
		{types.FieldFloat, "abc"},
		{types.FieldDatetime, "next tuesday"},
		{types.FieldBoolean, "yes"},
		{types.FieldUser, "alice"},
	}

	for _, tt := range tests {
		_, err := Decode(tt.fieldType, tt.raw)
		assert.ErrorIs(t, err, types.ErrInvalidFieldValue, "%s %q", tt.fieldType, tt.raw)
	}
}

func TestDecodeTagsSplitting(t *testing.T) {
	got, err := Decode(types.FieldTags, "a, b ,c,,")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	got, err = Decode(types.FieldTags, "")
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestDecodeFieldNamesField(t *testing.T) {
	field := types.SpaceField{ID: "priority", Type: types.FieldInt}
	_, err := DecodeField(field, "high")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidFieldValue)
	assert.Contains(t, err.Error(), "priority")
}

func TestDecodeFieldEnforcesOptions(t *testing.T) {
	choice := types.SpaceField{
		ID:   "status",
		Type: types.FieldStringChoice,
		Options: &types.FieldOptions{
			Values: []string{"open", "closed"},
		},
	}
	_, err := DecodeField(choice, "stale")
	assert.ErrorIs(t, err, types.ErrInvalidFieldValue)

	v, err := DecodeField(choice, "open")
	require.NoError(t, err)
	assert.Equal(t, "open", v)

	min, max := 1.0, 5.0
	bounded := types.SpaceField{
		ID:      "priority",
		Type:    types.FieldInt,
		Options: &types.FieldOptions{Min: &min, Max: &max},
	}
	_, err = DecodeField(bounded, "9")
	assert.ErrorIs(t, err, types.ErrInvalidFieldValue)

	v, err = DecodeField(bounded, "3")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

func TestDisplay(t *testing.T) {
	ts := time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		fieldType string
		value     any
		want      string
	}{
		{"nil is dash", types.FieldString, nil, "-"},
		{"boolean yes", types.FieldBoolean, true, "Yes"},
		{"boolean no", types.FieldBoolean, false, "No"},
		{"tags joined", types.FieldTags, []string{"a", "b"}, "a, b"},
		{"datetime formatted", types.FieldDatetime, ts, "2025-10-20 10:00 UTC"},
		{"datetime from string", types.FieldDatetime, "2025-10-20T10:00:00Z", "2025-10-20 10:00 UTC"},
		{"int", types.FieldInt, int64(3), "3"},
		{"float trims zeros", types.FieldFloat, 2.5, "2.5"},
		{"string", types.FieldString, "x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Display(tt.fieldType, tt.value))
		})
	}
}
