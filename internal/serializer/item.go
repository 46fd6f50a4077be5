package serializer

import (
	"fmt"
	"time"

	"StockKeeper/internal/model"
)

// ItemInput — входной контракт item. Указатели отличают «поле не прислали»
// от «прислали пустое», что нужно для частичного обновления.
type ItemInput struct {
	ID             *int64   `json:"id"`
	SKU            *string  `json:"SKU"`
	Name           *string  `json:"name"`
	Category       *string  `json:"category"`
	Tags           *string  `json:"tags"`
	Cost           *Decimal `json:"cost"`
	InStock        *int     `json:"in_stock"`
	AvailableStock *int     `json:"available_stock"`
	MinimumStock   *int     `json:"minimum_stock"`
	DesiredStock   *int     `json:"desired_stock"`
	IsAssembly     *bool    `json:"is_assembly"`
	IsComponent    *bool    `json:"is_component"`
	IsPurchaseable *bool    `json:"is_purchaseable"`
	IsSellable     *bool    `json:"is_sellable"`
	IsBundle       *bool    `json:"is_bundle"`
}

const maxCharLen = 100

// Validate проверяет форматы и ограничения полей. При partial=true отсутствие
// поля не является ошибкой (частичное обновление), присланные значения
// проверяются одинаково в обоих режимах. Уникальность name проверяет сервис,
// поскольку ей нужен доступ к хранилищу.
func (in *ItemInput) Validate(partial bool) FieldErrors {
	errs := FieldErrors{}

	requireStr := func(field string, v *string) {
		if v == nil {
			if !partial {
				errs.Add(field, MsgRequired)
			}
			return
		}
		if *v == "" {
			errs.Add(field, MsgBlank)
		} else if len(*v) > maxCharLen {
			errs.Add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", maxCharLen))
		}
	}
	requireInt := func(field string, v *int) {
		if v == nil && !partial {
			errs.Add(field, MsgRequired)
		}
	}

	requireStr("SKU", in.SKU)
	requireStr("name", in.Name)
	requireStr("category", in.Category)
	requireStr("tags", in.Tags)

	if in.Tags != nil && *in.Tags != "" && !model.ValidTag(*in.Tags) {
		errs.Add("tags", fmt.Sprintf("%q is not a valid choice.", *in.Tags))
	}

	if in.Cost == nil {
		if !partial {
			errs.Add("cost", MsgRequired)
		}
	} else {
		for _, msg := range in.Cost.Validate() {
			errs.Add("cost", msg)
		}
	}

	requireInt("in_stock", in.InStock)
	requireInt("available_stock", in.AvailableStock)
	requireInt("minimum_stock", in.MinimumStock)
	requireInt("desired_stock", in.DesiredStock)

	return errs
}

// Apply переносит присланные поля в модель. Отсутствующие поля не трогает.
func (in *ItemInput) Apply(it *model.Item) {
	if in.SKU != nil {
		it.SKU = *in.SKU
	}
	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Category != nil {
		it.Category = *in.Category
	}
	if in.Tags != nil {
		it.Tags = *in.Tags
	}
	if in.Cost != nil {
		it.Cost = in.Cost.Value()
	}
	if in.InStock != nil {
		it.InStock = *in.InStock
	}
	if in.AvailableStock != nil {
		it.AvailableStock = *in.AvailableStock
	}
	if in.MinimumStock != nil {
		it.MinimumStock = *in.MinimumStock
	}
	if in.DesiredStock != nil {
		it.DesiredStock = *in.DesiredStock
	}
	if in.IsAssembly != nil {
		it.IsAssembly = *in.IsAssembly
	}
	if in.IsComponent != nil {
		it.IsComponent = *in.IsComponent
	}
	if in.IsPurchaseable != nil {
		it.IsPurchaseable = *in.IsPurchaseable
	}
	if in.IsSellable != nil {
		it.IsSellable = *in.IsSellable
	}
	if in.IsBundle != nil {
		it.IsBundle = *in.IsBundle
	}
}

// ItemDTO — выходной контракт item. user_id наружу не отдаётся.
type ItemDTO struct {
	ID             int64  `json:"id"`
	SKU            string `json:"SKU"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Tags           string `json:"tags"`
	Cost           string `json:"cost"`
	InStock        int    `json:"in_stock"`
	AvailableStock int    `json:"available_stock"`
	MinimumStock   int    `json:"minimum_stock"`
	DesiredStock   int    `json:"desired_stock"`
	IsAssembly     bool   `json:"is_assembly"`
	IsComponent    bool   `json:"is_component"`
	IsPurchaseable bool   `json:"is_purchaseable"`
	IsSellable     bool   `json:"is_sellable"`
	IsBundle       bool   `json:"is_bundle"`
	Updated        string `json:"updated"`
	Created        string `json:"created"`
}

// NewItemDTO сериализует модель в выходной контракт.
func NewItemDTO(it *model.Item) ItemDTO {
	return ItemDTO{
		ID:             it.ID,
		SKU:            it.SKU,
		Name:           it.Name,
		Category:       it.Category,
		Tags:           it.Tags,
		Cost:           FormatCost(it.Cost),
		InStock:        it.InStock,
		AvailableStock: it.AvailableStock,
		MinimumStock:   it.MinimumStock,
		DesiredStock:   it.DesiredStock,
		IsAssembly:     it.IsAssembly,
		IsComponent:    it.IsComponent,
		IsPurchaseable: it.IsPurchaseable,
		IsSellable:     it.IsSellable,
		IsBundle:       it.IsBundle,
		Updated:        it.Updated.UTC().Format(time.RFC3339),
		Created:        it.Created.UTC().Format(time.RFC3339),
	}
}

// NewItemDTOs сериализует срез моделей, всегда возвращая непустой срез для JSON.
func NewItemDTOs(items []model.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for i := range items {
		out = append(out, NewItemDTO(&items[i]))
	}
	return out
}
