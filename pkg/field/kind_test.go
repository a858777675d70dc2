package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/pkg/field"
)

func TestAll(t *testing.T) {
	t.Parallel()

	kinds := field.All()
	require.Len(t, kinds, field.Count)
	assert.Equal(t, field.FirstName, kinds[0])
	assert.Equal(t, field.Password, kinds[len(kinds)-1])

	seen := make(map[field.Kind]bool)
	for _, k := range kinds {
		assert.True(t, k.Valid(), "kind %d should be valid", int(k))
		assert.False(t, seen[k], "duplicate kind %s", k)
		seen[k] = true
	}

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()
		a := field.All()
		a[0] = field.Password
		assert.Equal(t, field.FirstName, field.All()[0])
	})
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind  field.Kind
		name  string
		label string
	}{
		{field.FirstName, "firstName", "First name"},
		{field.LastName, "lastName", "Last name"},
		{field.Email, "email", "Email"},
		{field.Phone, "phone", "Phone"},
		{field.Address, "address", "Address"},
		{field.City, "city", "City"},
		{field.PostalCode, "postalCode", "Postal code"},
		{field.Country, "country", "Country"},
		{field.Password, "password", "Password"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.label, tt.kind.Label())
		})
	}

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()
		assert.False(t, field.Kind(0).Valid())
		assert.False(t, field.Kind(42).Valid())
		assert.Equal(t, "Kind(42)", field.Kind(42).String())
		assert.Equal(t, "Kind(0)", field.Kind(0).Label())
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("round trips every kind", func(t *testing.T) {
		t.Parallel()
		for _, k := range field.All() {
			got, err := field.Parse(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, got)
		}
	})

	t.Run("accepts capitalised password input name", func(t *testing.T) {
		t.Parallel()
		got, err := field.Parse("Password")
		require.NoError(t, err)
		assert.Equal(t, field.Password, got)
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		_, err := field.Parse("terms")
		require.Error(t, err)
		assert.ErrorIs(t, err, field.ErrUnknownKind)
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		t.Parallel()
		_, err := field.Parse("EMAIL")
		assert.ErrorIs(t, err, field.ErrUnknownKind)
	})
}

func TestKind_InputNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"password", "Password"}, field.Password.InputNames())
	assert.Equal(t, []string{"postalCode"}, field.PostalCode.InputNames())
	assert.Nil(t, field.Kind(0).InputNames())

	for _, k := range field.All() {
		for _, name := range k.InputNames() {
			got, err := field.Parse(name)
			require.NoError(t, err, name)
			assert.Equal(t, k, got, name)
		}
	}
}
