/*
 * Copyright (c) 2026-present TypeStore authors
 */

package schemas

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidTypeName(t *testing.T) {
	require := require.New(t)

	t.Run("valid names", func(t *testing.T) {
		for _, name := range []string{"coffee", "whisky", "a", "A-1_b", "0type", " padded \t"} {
			got, err := ValidTypeName(name)
			require.NoError(err, name)
			require.NotContains(got, " ")
		}
	})

	t.Run("invalid names", func(t *testing.T) {
		for _, name := range []string{"", "   ", "two words", "semi;colon", "dot.name", "naïve", "slash/name"} {
			_, err := ValidTypeName(name)
			require.ErrorIs(err, ErrInvalidNameError, name)
		}
	})

	t.Run("too long", func(t *testing.T) {
		long := make([]byte, MaxTypeNameLen+1)
		for i := range long {
			long[i] = 'x'
		}
		_, err := ValidTypeName(string(long))
		require.ErrorIs(err, ErrInvalidNameError)
	})
}

func TestValidFieldDef(t *testing.T) {
	require := require.New(t)

	require.NoError(ValidFieldDef(FieldDef{Name: "flavor", Kind: FieldKind_string}))
	require.NoError(ValidFieldDef(FieldDef{Name: "rating", Kind: FieldKind_number}))
	require.NoError(ValidFieldDef(FieldDef{Name: "peated", Kind: FieldKind_boolean}))
	require.NoError(ValidFieldDef(FieldDef{Name: "tasted", Kind: FieldKind_date}))

	require.ErrorIs(ValidFieldDef(FieldDef{Name: "", Kind: FieldKind_string}), ErrInvalidFieldError)
	require.ErrorIs(ValidFieldDef(FieldDef{Name: "x", Kind: "json"}), ErrInvalidFieldError)
	require.ErrorIs(ValidFieldDef(FieldDef{Name: "x", Kind: ""}), ErrInvalidFieldError)
}

func TestDuplicateFieldName(t *testing.T) {
	require := require.New(t)

	_, dup := DuplicateFieldName([]FieldDef{{Name: "a"}, {Name: "b"}})
	require.False(dup)

	name, dup := DuplicateFieldName([]FieldDef{{Name: "a"}, {Name: "b"}, {Name: "a"}})
	require.True(dup)
	require.Equal("a", name)
}

func TestValidRecordData(t *testing.T) {
	schema := []FieldDef{
		{Name: "flavor", Kind: FieldKind_string},
		{Name: "rating", Kind: FieldKind_number},
		{Name: "peated", Kind: FieldKind_boolean},
		{Name: "tasted", Kind: FieldKind_date},
	}
	valid := func() map[string]any {
		return map[string]any{
			"flavor": "nutty",
			"rating": 8.5,
			"peated": true,
			"tasted": "2026-08-28T10:00:00Z",
		}
	}

	t.Run("valid record", func(t *testing.T) {
		require.NoError(t, ValidRecordData(valid(), schema))
	})

	t.Run("missing field", func(t *testing.T) {
		data := valid()
		delete(data, "rating")
		require.ErrorIs(t, ValidRecordData(data, schema), ErrMissingFieldError)
	})

	t.Run("unknown field", func(t *testing.T) {
		data := valid()
		data["color"] = "amber"
		require.ErrorIs(t, ValidRecordData(data, schema), ErrUnknownFieldError)
	})

	t.Run("kind mismatches", func(t *testing.T) {
		require := require.New(t)
		for field, wrong := range map[string]any{
			"flavor": 42,
			"rating": "8.5",
			"peated": "yes",
			"tasted": 1724800000,
		} {
			data := valid()
			data[field] = wrong
			require.ErrorIs(ValidRecordData(data, schema), ErrTypeMismatchError, field)
		}
	})

	t.Run("number accepts int and json.Number, rejects NaN and Inf", func(t *testing.T) {
		require := require.New(t)

		data := valid()
		data["rating"] = 8
		require.NoError(ValidRecordData(data, schema))

		data["rating"] = json.Number("8.5")
		require.NoError(ValidRecordData(data, schema))

		data["rating"] = math.NaN()
		require.ErrorIs(ValidRecordData(data, schema), ErrTypeMismatchError)

		data["rating"] = math.Inf(1)
		require.ErrorIs(ValidRecordData(data, schema), ErrTypeMismatchError)
	})

	t.Run("date accepts date-only form", func(t *testing.T) {
		require := require.New(t)

		data := valid()
		data["tasted"] = "2026-08-28"
		require.NoError(ValidRecordData(data, schema))

		data["tasted"] = "yesterday"
		require.ErrorIs(ValidRecordData(data, schema), ErrTypeMismatchError)

		data["tasted"] = "2026-13-45"
		require.ErrorIs(ValidRecordData(data, schema), ErrTypeMismatchError)
	})
}

func TestValidTypeDoc(t *testing.T) {
	require := require.New(t)

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	doc := NewTypeDoc("coffee", []FieldDef{{Name: "flavor", Kind: FieldKind_string}}, now)
	require.NoError(ValidTypeDoc(doc))
	require.Equal(doc.CreatedAt, doc.UpdatedAt)
	require.Empty(doc.Records)

	require.Error(ValidTypeDoc(nil))

	bad := NewTypeDoc("bad name", nil, now)
	require.ErrorIs(ValidTypeDoc(bad), ErrInvalidNameError)

	bad = NewTypeDoc("coffee", []FieldDef{{Name: "x", Kind: "blob"}}, now)
	require.ErrorIs(ValidTypeDoc(bad), ErrInvalidFieldError)

	bad = NewTypeDoc("coffee", []FieldDef{{Name: "x", Kind: FieldKind_string}, {Name: "x", Kind: FieldKind_number}}, now)
	require.ErrorIs(ValidTypeDoc(bad), ErrDuplicateFieldError)

	bad = NewTypeDoc("coffee", nil, now)
	bad.Records = append(bad.Records, Record{Data: map[string]any{}})
	require.ErrorIs(ValidTypeDoc(bad), ErrInvalidFieldError)
}

func TestIndex(t *testing.T) {
	require := require.New(t)

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	idx := NewIndex(now)
	require.Empty(idx.Types)

	idx.Add("whisky", now)
	idx.Add("coffee", now)
	idx.Add("beer", now)
	idx.Add("coffee", now) // second add is a no-op
	require.Equal([]string{"beer", "coffee", "whisky"}, idx.Types)
	require.True(idx.Contains("coffee"))
	require.False(idx.Contains("tea"))

	idx.Remove("coffee", now)
	require.Equal([]string{"beer", "whisky"}, idx.Types)
	idx.Remove("tea", now) // removing an absent entry is a no-op
	require.Equal([]string{"beer", "whisky"}, idx.Types)
}

func TestNewRecordID(t *testing.T) {
	require := require.New(t)

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		id := NewRecordID(now)
		_, dup := seen[id]
		require.False(dup, id)
		seen[id] = struct{}{}
	}
}
