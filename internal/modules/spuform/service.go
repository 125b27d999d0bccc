package spuform

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/metrics"
	"pehlione.com/catalogadmin/internal/shared/apperr"
)

// API is the part of the backend the form needs. *backend.Client satisfies it.
type API interface {
	SpuDetail(ctx context.Context, id int64) (backend.Spu, error)
	CategoryProperties(ctx context.Context, categoryID int64, propertyType *int) ([]backend.CategoryProperty, error)
	PropertyValueSimpleList(ctx context.Context, propertyID int64) ([]backend.PropertyValue, error)
	CreateSpu(ctx context.Context, in backend.SpuSaveReq) (int64, error)
	UpdateSpu(ctx context.Context, in backend.SpuSaveReq) error
}

type Service struct {
	api   API
	store *Store
	log   *slog.Logger
}

func NewService(api API, store *Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{api: api, store: store, log: log}
}

type SubmitResult struct {
	SpuID   int64 `json:"spuId"`
	Created bool  `json:"created"`
	// Skipped is set for read-only drafts, which never reach the backend.
	Skipped bool `json:"skipped,omitempty"`
}

// Open starts a draft. spuID 0 opens a blank create form; readOnly opens the
// detail view of an existing SPU.
func (s *Service) Open(ctx context.Context, spuID int64, readOnly bool) (string, State, error) {
	if spuID == 0 {
		if readOnly {
			return "", State{}, apperr.InvalidErr("A product id is required to view details.", map[string]string{"id": "required"})
		}
		st := New()
		return s.store.Create(st), st, nil
	}

	detail, err := s.api.SpuDetail(ctx, spuID)
	if err != nil {
		return "", State{}, err
	}
	c, err := s.LoadCatalog(ctx, detail.CategoryID)
	if err != nil {
		return "", State{}, err
	}
	st := Hydrate(detail, c, readOnly)
	id := s.store.Create(st)
	s.observe(st)
	s.log.LogAttrs(ctx, slog.LevelInfo, "draft_opened",
		slog.String("draft_id", id),
		slog.Int64("spu_id", spuID),
		slog.Bool("read_only", readOnly),
		slog.Int("skus", len(st.Draft.SKUs)),
	)
	return id, st, nil
}

// LoadCatalog fetches enabled bindings of both kinds and the value options
// of every sales property. Category 0 has an empty catalog.
func (s *Service) LoadCatalog(ctx context.Context, categoryID int64) (Catalog, error) {
	if categoryID == 0 {
		return NewCatalog(nil, nil, nil), nil
	}
	salesType, displayType := backend.PropertyTypeSales, backend.PropertyTypeDisplay

	sales, err := s.api.CategoryProperties(ctx, categoryID, &salesType)
	if err != nil {
		return Catalog{}, err
	}
	display, err := s.api.CategoryProperties(ctx, categoryID, &displayType)
	if err != nil {
		return Catalog{}, err
	}

	values := make(map[int64][]backend.PropertyValue, len(sales))
	for _, b := range sales {
		if !b.Enabled {
			continue
		}
		if _, done := values[b.PropertyID]; done {
			continue
		}
		vs, err := s.api.PropertyValueSimpleList(ctx, b.PropertyID)
		if err != nil {
			return Catalog{}, err
		}
		values[b.PropertyID] = vs
	}
	return NewCatalog(sales, display, values), nil
}

func (s *Service) Get(draftID string) (State, error) {
	st, ok := s.store.Get(draftID)
	if !ok {
		return State{}, toAppErr(ErrDraftNotFound)
	}
	return st, nil
}

func (s *Service) Discard(draftID string) {
	s.store.Delete(draftID)
}

func (s *Service) Apply(draftID string, a Action) (State, error) {
	st, err := s.store.Update(draftID, func(cur State) (State, error) {
		return Apply(cur, a)
	})
	if err != nil {
		return st, toAppErr(err)
	}
	s.observe(st)
	return st, nil
}

// ChangeCategory loads the new category's catalog before touching the draft,
// so a failed fetch leaves the draft as it was.
func (s *Service) ChangeCategory(ctx context.Context, draftID string, categoryID int64) (State, error) {
	cur, ok := s.store.Get(draftID)
	if !ok {
		return State{}, toAppErr(ErrDraftNotFound)
	}
	if cur.ReadOnly {
		return cur, toAppErr(ErrReadOnly)
	}
	c, err := s.LoadCatalog(ctx, categoryID)
	if err != nil {
		return cur, err
	}
	st, err := s.store.Update(draftID, func(cur State) (State, error) {
		return ChangeCategory(cur, categoryID, c)
	})
	if err != nil {
		return st, toAppErr(err)
	}
	s.observe(st)
	return st, nil
}

// Validate runs the submit gate without sending anything.
func (s *Service) Validate(draftID string) error {
	st, err := s.Get(draftID)
	if err != nil {
		return err
	}
	return toAppErr(Validate(st))
}

// Submit validates and sends the draft as one create or update call. A
// successful submit closes the draft; a failed one leaves it untouched.
func (s *Service) Submit(ctx context.Context, draftID string) (SubmitResult, error) {
	st, err := s.Get(draftID)
	if err != nil {
		return SubmitResult{}, err
	}
	if st.ReadOnly {
		return SubmitResult{SpuID: st.Draft.ID, Skipped: true}, nil
	}
	if err := Validate(st); err != nil {
		return SubmitResult{}, toAppErr(err)
	}

	req := ToSaveRequest(st)
	res := SubmitResult{SpuID: st.Draft.ID}
	if st.Draft.ID == 0 {
		id, err := s.api.CreateSpu(ctx, req)
		if err != nil {
			return SubmitResult{}, err
		}
		res.SpuID, res.Created = id, true
	} else if err := s.api.UpdateSpu(ctx, req); err != nil {
		return SubmitResult{}, err
	}

	s.store.Delete(draftID)
	s.log.LogAttrs(ctx, slog.LevelInfo, "spu_submitted",
		slog.String("draft_id", draftID),
		slog.Int64("spu_id", res.SpuID),
		slog.Bool("created", res.Created),
		slog.Int("skus", len(req.Skus)),
	)
	return res, nil
}

func (s *Service) observe(st State) {
	if st.Draft.SpecType {
		metrics.ObserveSKUCount(len(st.Draft.SKUs))
	}
}

// toAppErr maps form errors onto the console error kinds.
func toAppErr(err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return apperr.InvalidErr(ve.Message, map[string]string{
			"section": string(ve.Section),
			"rule":    strconv.Itoa(ve.Rule),
		})
	case errors.Is(err, ErrDraftNotFound):
		return apperr.NotFoundErr("Draft not found or already closed.")
	case errors.Is(err, ErrReadOnly):
		return apperr.ForbiddenErr("This product is opened read only.")
	case errors.Is(err, ErrDuplicateValue):
		return apperr.InvalidErr(err.Error(), map[string]string{"section": string(SectionSKU)})
	case errors.Is(err, ErrUnknownProperty), errors.Is(err, ErrSlotNotFound),
		errors.Is(err, ErrSKUNotFound), errors.Is(err, ErrImageUnsupported),
		errors.Is(err, ErrUnknownAction):
		return apperr.InvalidErr(err.Error(), nil)
	}
	return apperr.Wrap(err)
}
