package service

import (
	"context"

	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"
	"StockKeeper/internal/serializer"
)

const msgNameTaken = "item with this name already exists."

// ItemService инкапсулирует бизнес-логику работы с Item: CRUD со скоупом
// владельца и проверкой глобальной уникальности имени.
type ItemService struct {
	items repo.ItemRepository
}

func NewItemService(items repo.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

// List возвращает страницу позиций пользователя и общее число строк под фильтром.
func (s *ItemService) List(ctx context.Context, userID int64, f repo.ItemFilter, limit, offset int) ([]model.Item, int64, error) {
	return s.items.List(ctx, userID, f, limit, offset)
}

// Create валидирует вход и сохраняет позицию. Владелец всегда берётся из
// сессии вызывающего, поле из тела запроса игнорируется.
func (s *ItemService) Create(ctx context.Context, userID int64, in serializer.ItemInput) (*model.Item, serializer.FieldErrors, error) {
	errs := in.Validate(false)

	if in.Name != nil && *in.Name != "" && len(errs["name"]) == 0 {
		taken, err := s.items.ExistsByName(ctx, *in.Name, 0)
		if err != nil {
			return nil, nil, err
		}
		if taken {
			errs.Add("name", msgNameTaken)
		}
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	it := &model.Item{UserID: userID}
	in.Apply(it)
	if err := s.items.Create(ctx, it); err != nil {
		return nil, nil, err
	}
	return it, nil, nil
}

// Update делает частичное обновление: поля, которых нет во входе, сохраняют
// прежние значения. Чужая или отсутствующая позиция — ErrNotFound.
func (s *ItemService) Update(ctx context.Context, userID int64, in serializer.ItemInput) (*model.Item, serializer.FieldErrors, error) {
	if in.ID == nil {
		return nil, nil, ErrNotFound
	}

	it, err := s.items.GetByID(ctx, userID, *in.ID)
	if err != nil {
		return nil, nil, err
	}
	if it == nil {
		return nil, nil, ErrNotFound
	}

	errs := in.Validate(true)

	if in.Name != nil && *in.Name != "" && len(errs["name"]) == 0 && *in.Name != it.Name {
		taken, err := s.items.ExistsByName(ctx, *in.Name, it.ID)
		if err != nil {
			return nil, nil, err
		}
		if taken {
			errs.Add("name", msgNameTaken)
		}
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	in.Apply(it)
	if err := s.items.Save(ctx, it); err != nil {
		return nil, nil, err
	}
	return it, nil, nil
}

// Delete удаляет позицию пользователя. Чужая или отсутствующая — ErrNotFound.
func (s *ItemService) Delete(ctx context.Context, userID, id int64) error {
	n, err := s.items.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
