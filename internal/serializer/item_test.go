package serializer_test

import (
	"encoding/json"
	"testing"
	"time"

	"StockKeeper/internal/model"
	"StockKeeper/internal/serializer"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validInput() serializer.ItemInput {
	var in serializer.ItemInput
	body := `{"SKU":"SKU1","name":"Item 1","category":"Default","tags":"ET","cost":"10.00",
		"in_stock":10,"available_stock":10,"minimum_stock":5,"desired_stock":8,"is_assembly":true}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		panic(err)
	}
	return in
}

func TestItemInput_ValidateCreate_OK(t *testing.T) {
	in := validInput()
	errs := in.Validate(false)
	assert.Empty(t, errs)
}

func TestItemInput_ValidateCreate_MissingRequired(t *testing.T) {
	var in serializer.ItemInput
	errs := in.Validate(false)

	for _, field := range []string{"SKU", "name", "category", "tags", "cost",
		"in_stock", "available_stock", "minimum_stock", "desired_stock"} {
		assert.Contains(t, errs, field, "field %s must be required", field)
		assert.Contains(t, errs[field], "This field is required.")
	}
	// булевы флаги имеют default и не обязательны
	assert.NotContains(t, errs, "is_assembly")
}

func TestItemInput_ValidatePartial_MissingFieldsOK(t *testing.T) {
	in := serializer.ItemInput{Name: strPtr("Renamed")}
	errs := in.Validate(true)
	assert.Empty(t, errs)
}

func TestItemInput_Validate_BadTag(t *testing.T) {
	in := validInput()
	in.Tags = strPtr("ZZ")
	errs := in.Validate(false)
	assert.Equal(t, []string{`"ZZ" is not a valid choice.`}, errs["tags"])
}

func TestItemInput_Validate_BlankAndTooLong(t *testing.T) {
	in := validInput()
	in.SKU = strPtr("")
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	in.Category = strPtr(string(long))

	errs := in.Validate(false)
	assert.Equal(t, []string{"This field may not be blank."}, errs["SKU"])
	assert.Equal(t, []string{"Ensure this field has no more than 100 characters."}, errs["category"])
}

func TestDecimal_Validate(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"10.00", nil},
		{"999.99", nil},
		{"7", nil},
		{"abc", []string{"A valid number is required."}},
		{"10.001", []string{"Ensure that there are no more than 2 decimal places."}},
		{"123456", []string{"Ensure that there are no more than 5 digits in total."}},
	}
	for _, c := range cases {
		d := serializer.Decimal{Raw: c.raw}
		got := d.Validate()
		if c.want == nil {
			assert.Empty(t, got, "raw=%s", c.raw)
		} else {
			assert.Equal(t, c.want, got, "raw=%s", c.raw)
		}
	}
}

func TestDecimal_AcceptsNumberAndString(t *testing.T) {
	var in serializer.ItemInput
	assert.NoError(t, json.Unmarshal([]byte(`{"cost":12.5}`), &in))
	assert.Equal(t, "12.5", in.Cost.Raw)
	assert.InDelta(t, 12.5, in.Cost.Value(), 1e-9)

	in = serializer.ItemInput{}
	assert.NoError(t, json.Unmarshal([]byte(`{"cost":"10.00"}`), &in))
	assert.Equal(t, "10.00", in.Cost.Raw)
}

func TestItemInput_Apply_Partial(t *testing.T) {
	it := model.Item{Name: "Old", SKU: "S1", Cost: 10, InStock: 3}
	in := serializer.ItemInput{Name: strPtr("New"), InStock: intPtr(7)}
	in.Apply(&it)

	assert.Equal(t, "New", it.Name)
	assert.Equal(t, 7, it.InStock)
	// остальные поля не тронуты
	assert.Equal(t, "S1", it.SKU)
	assert.InDelta(t, 10, it.Cost, 1e-9)
}

func TestNewItemDTO_FormatsCostAndTimes(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	it := model.Item{ID: 5, SKU: "SKU1", Name: "Item 1", Tags: model.TagEtsy, Cost: 10, Created: ts, Updated: ts}
	dto := serializer.NewItemDTO(&it)

	assert.Equal(t, "10.00", dto.Cost)
	assert.Equal(t, "2024-03-01T12:00:00Z", dto.Created)
	assert.Equal(t, "2024-03-01T12:00:00Z", dto.Updated)

	// user_id не должен попадать в JSON
	b, err := json.Marshal(dto)
	assert.NoError(t, err)
	assert.NotContains(t, string(b), "user_id")
}
