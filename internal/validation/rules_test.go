package validation_test

import (
	"testing"

	"catalog/internal/validation"

	"github.com/stretchr/testify/assert"
)

func messages(errs []validation.FieldError) []string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Msg
	}
	return msgs
}

func TestCreateProductRules(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want []string
	}{
		{
			name: "empty body",
			body: map[string]any{},
			want: []string{
				validation.MsgNameRequired,
				validation.MsgPriceNumeric,
				validation.MsgPriceRequired,
				validation.MsgPriceGreaterThanZero,
			},
		},
		{
			name: "valid",
			body: map[string]any{"name": "Mouse - Test", "price": float64(51)},
			want: []string{},
		},
		{
			name: "zero price",
			body: map[string]any{"name": "Mouse - Test", "price": float64(0)},
			want: []string{validation.MsgPriceGreaterThanZero},
		},
		{
			name: "non numeric price",
			body: map[string]any{"name": "Mouse - Test", "price": "hello"},
			want: []string{validation.MsgPriceNumeric, validation.MsgPriceGreaterThanZero},
		},
		{
			name: "numeric string price",
			body: map[string]any{"name": "Mouse - Test", "price": "12.5"},
			want: []string{},
		},
		{
			name: "null name",
			body: map[string]any{"name": nil, "price": float64(10)},
			want: []string{validation.MsgNameRequired},
		},
		{
			name: "unknown field after rule failures",
			body: map[string]any{"price": float64(-3), "colour": "red"},
			want: []string{
				validation.MsgNameRequired,
				validation.MsgPriceGreaterThanZero,
				validation.MsgUnknownField,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.CreateProductRules.Validate(validation.Input{Body: tt.body})
			assert.Equal(t, tt.want, messages(errs))
		})
	}
}

func TestReplaceProductRules_EmptyBody(t *testing.T) {
	errs := validation.ReplaceProductRules.Validate(validation.Input{
		Params: map[string]string{"id": "1"},
		Body:   map[string]any{},
	})

	assert.Len(t, errs, 5)
	assert.Equal(t, validation.MsgAvailabilityBoolean, errs[4].Msg)
	assert.Equal(t, "availability", errs[4].Path)
	assert.Equal(t, validation.InBody, errs[4].Location)
}

func TestReplaceProductRules_ParamErrorComesFirst(t *testing.T) {
	errs := validation.ReplaceProductRules.Validate(validation.Input{
		Params: map[string]string{"id": "abc"},
		Body:   map[string]any{"name": "Keyboard", "price": float64(101), "availability": true},
	})

	if assert.Len(t, errs, 1) {
		assert.Equal(t, validation.MsgIDInteger, errs[0].Msg)
		assert.Equal(t, "abc", errs[0].Value)
		assert.Equal(t, validation.InParams, errs[0].Location)
	}
}

func TestProductIDRules(t *testing.T) {
	for _, id := range []string{"1", "42", "-7", "+3", "007"} {
		errs := validation.ProductIDRules.Validate(validation.Input{Params: map[string]string{"id": id}})
		assert.Empty(t, errs, "id %q", id)
	}
	for _, id := range []string{"hello", "1.5", "", "1e3", " 1"} {
		errs := validation.ProductIDRules.Validate(validation.Input{Params: map[string]string{"id": id}})
		assert.Equal(t, []string{validation.MsgIDInteger}, messages(errs), "id %q", id)
	}
}

func TestUnknownFieldsAreSorted(t *testing.T) {
	errs := validation.CreateProductRules.Validate(validation.Input{Body: map[string]any{
		"name": "Keyboard", "price": float64(10), "zeta": 1, "alpha": 2,
	}})

	if assert.Len(t, errs, 2) {
		assert.Equal(t, "alpha", errs[0].Path)
		assert.Equal(t, "zeta", errs[1].Path)
		assert.Equal(t, validation.TypeUnknownField, errs[0].Type)
	}
}

func TestReadsBody(t *testing.T) {
	assert.False(t, validation.ProductIDRules.ReadsBody())
	assert.True(t, validation.CreateProductRules.ReadsBody())
	assert.True(t, validation.ReplaceProductRules.ReadsBody())
}

func TestNewReplaceProductBody(t *testing.T) {
	body := validation.NewReplaceProductBody(map[string]any{
		"name": "Monitor", "price": "300", "availability": "0",
	})
	assert.Equal(t, validation.ReplaceProductBody{Name: "Monitor", Price: 300, Availability: false}, body)

	body = validation.NewReplaceProductBody(map[string]any{
		"name": "Monitor", "price": float64(300.5), "availability": true,
	})
	assert.Equal(t, validation.ReplaceProductBody{Name: "Monitor", Price: 300.5, Availability: true}, body)
}
