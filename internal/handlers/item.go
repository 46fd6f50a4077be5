package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"StockKeeper/internal/config"
	"StockKeeper/internal/middleware"
	"StockKeeper/internal/repo"
	"StockKeeper/internal/serializer"
	"StockKeeper/internal/service"

	"go.uber.org/zap"
)

// ItemHandler обрабатывает CRUD складских позиций.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// ListResponse — страница списка с метаданными пагинации.
type ListResponse struct {
	Count    int64                `json:"count"`
	Next     *string              `json:"next"`
	Previous *string              `json:"previous"`
	Results  []serializer.ItemDTO `json:"results"`
}

// List отдаёт страницу позиций вызывающего с фильтрами из query-параметров.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	q := r.URL.Query()
	f := h.parseFilter(q)

	page := 1
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeDetail(w, http.StatusNotFound, msgInvalidPage)
			return
		}
		page = n
	}

	pageSize := h.Config.PageSize
	if raw := q.Get("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			pageSize = n
			if pageSize > h.Config.MaxPageSize {
				pageSize = h.Config.MaxPageSize
			}
		}
	}

	offset := (page - 1) * pageSize
	items, total, err := h.ItemService.List(r.Context(), userID, f, pageSize, offset)
	if err != nil {
		h.Logger.Errorw("List: service error", "user_id", userID, "error", err)
		writeDetail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if page > 1 && int64(offset) >= total {
		writeDetail(w, http.StatusNotFound, msgInvalidPage)
		return
	}

	resp := ListResponse{
		Count:   total,
		Results: serializer.NewItemDTOs(items),
	}
	if int64(offset+pageSize) < total {
		resp.Next = h.pageLink(r, page+1)
	}
	if page > 1 {
		resp.Previous = h.pageLink(r, page-1)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create сохраняет новую позицию. Владелец берётся из сессии, присланный
// в теле владелец игнорируется.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	var in serializer.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, msgMalformedBody)
		return
	}

	it, fieldErrs, err := h.ItemService.Create(r.Context(), userID, in)
	if err != nil {
		h.Logger.Errorw("Create: service error", "user_id", userID, "error", err)
		writeDetail(w, http.StatusInternalServerError, msgInternal)
		return
	}
	if len(fieldErrs) > 0 {
		writeJSON(w, http.StatusBadRequest, fieldErrs)
		return
	}

	writeJSON(w, http.StatusCreated, serializer.NewItemDTO(it))
}

// Update — частичное обновление позиции, id передаётся в теле запроса.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	var in serializer.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, msgMalformedBody)
		return
	}

	it, fieldErrs, err := h.ItemService.Update(r.Context(), userID, in)
	if errors.Is(err, service.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		h.Logger.Errorw("Update: service error", "user_id", userID, "error", err)
		writeDetail(w, http.StatusInternalServerError, msgInternal)
		return
	}
	if len(fieldErrs) > 0 {
		writeJSON(w, http.StatusBadRequest, fieldErrs)
		return
	}

	writeJSON(w, http.StatusOK, serializer.NewItemDTO(it))
}

// Delete удаляет позицию по id из тела запроса.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	var body struct {
		ID *int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Logger.Warnw("Delete: invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, msgMalformedBody)
		return
	}
	if body.ID == nil {
		writeDetail(w, http.StatusNotFound, msgNotFound)
		return
	}

	err := h.ItemService.Delete(r.Context(), userID, *body.ID)
	if errors.Is(err, service.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		h.Logger.Errorw("Delete: service error", "user_id", userID, "error", err)
		writeDetail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

const dateLayout = "2006-01-02"

// parseFilter собирает фильтр из query-параметров. Неизвестные параметры
// игнорируются; нечитаемые даты и стоимости игнорируются с warn-логом.
func (h *ItemHandler) parseFilter(q url.Values) repo.ItemFilter {
	var f repo.ItemFilter

	strParam := func(name string) *string {
		if !q.Has(name) {
			return nil
		}
		v := q.Get(name)
		return &v
	}
	f.SKU = strParam("SKU")
	f.NameContains = strParam("name")
	f.Tags = strParam("tags")
	f.Category = strParam("category")

	if raw := q.Get("start_date"); raw != "" {
		if t, err := time.Parse(dateLayout, raw); err == nil {
			f.CreatedFrom = &t
		} else {
			h.Logger.Warnw("List: ignoring unparsable start_date", "value", raw)
		}
	}
	if raw := q.Get("end_date"); raw != "" {
		if t, err := time.Parse(dateLayout, raw); err == nil {
			// правая граница — конец указанного дня
			to := t.Add(24 * time.Hour)
			f.CreatedTo = &to
		} else {
			h.Logger.Warnw("List: ignoring unparsable end_date", "value", raw)
		}
	}

	if raw := q.Get("min_cost"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MinCost = &v
		} else {
			h.Logger.Warnw("List: ignoring unparsable min_cost", "value", raw)
		}
	}
	if raw := q.Get("max_cost"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MaxCost = &v
		} else {
			h.Logger.Warnw("List: ignoring unparsable max_cost", "value", raw)
		}
	}

	boolParam := func(name string) *bool {
		if !q.Has(name) {
			return nil
		}
		// литерал "true" без учёта регистра, любое другое значение — false
		b := strings.EqualFold(q.Get(name), "true")
		return &b
	}
	f.IsAssembly = boolParam("is_assembly")
	f.IsComponent = boolParam("is_component")
	f.IsPurchaseable = boolParam("is_purchaseable")
	f.IsSellable = boolParam("is_sellable")
	f.IsBundle = boolParam("is_bundle")

	return f
}

// pageLink строит абсолютную ссылку на соседнюю страницу текущего запроса.
func (h *ItemHandler) pageLink(r *http.Request, page int) *string {
	q := r.URL.Query()
	q.Set("page", strconv.Itoa(page))

	scheme := "http"
	if r.TLS != nil || h.Config.EnableHTTPS {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: q.Encode()}
	s := u.String()
	return &s
}
