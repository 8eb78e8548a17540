package api

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/kasagi/gomical/pkg/catalog"
	"github.com/kasagi/gomical/pkg/kit"
	"github.com/kasagi/gomical/pkg/locale"
	"github.com/kasagi/gomical/pkg/notify"
	"github.com/kasagi/gomical/pkg/schedule"
	"github.com/kasagi/gomical/pkg/store"
)

// Dataset is one immutable generation of the loaded data files. A reload
// builds a fresh Dataset and swaps it in whole; in-flight requests keep
// the generation they started with.
type Dataset struct {
	Catalog  *catalog.Catalog
	Areas    *schedule.Areas
	Calendar *schedule.Calendar
}

// Service bundles the data sets and the stateful scheduler behind the
// transports.
type Service struct {
	Scheduler *notify.Scheduler
	KV        store.KV
	Logger    *slog.Logger
	TZ        *time.Location

	// Now is the clock used for "today" queries; tests override it.
	Now func() time.Time

	data atomic.Pointer[Dataset]
}

// SetData swaps in a new data generation.
func (s *Service) SetData(d *Dataset) {
	s.data.Store(d)
}

// Data returns the current data generation.
func (s *Service) Data() *Dataset {
	return s.data.Load()
}

func (s *Service) today() schedule.Date {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	tz := s.TZ
	if tz == nil {
		tz = time.Local
	}
	return schedule.DateOf(now().In(tz))
}

func (d *Dataset) area(id string) (*schedule.Area, error) {
	a := d.Areas.ByID(id)
	if a == nil {
		return nil, fmt.Errorf("unknown area %q", id)
	}
	return a, nil
}

// Shared request/response types used by both HTTP and MCP transports.

type searchReq struct {
	Query  string
	Locale locale.Locale
}

type searchResponse struct {
	Query   string              `json:"query"`
	Locale  locale.Locale       `json:"locale"`
	Results []catalog.Localized `json:"results"`

	// Suggestions is only populated when Results is empty: the
	// "did you mean" fallback.
	Suggestions []string `json:"suggestions,omitempty"`
}

type suggestReq struct {
	Query  string
	Locale locale.Locale
	Limit  int
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type popularReq struct {
	Locale locale.Locale
	Limit  int
}

type popularResponse struct {
	Terms []string `json:"terms"`
}

type collectionReq struct {
	AreaID string
	Date   schedule.Date
	Locale locale.Locale
}

type categoryView struct {
	ID    catalog.Category `json:"id"`
	Name  string           `json:"name"`
	Color string           `json:"color"`
}

type occurrenceView struct {
	Date       schedule.Date  `json:"date"`
	Categories []categoryView `json:"categories"`
}

type collectionResponse struct {
	Area       string          `json:"area"`
	Occurrence *occurrenceView `json:"occurrence"`

	// Exception is set when the requested date itself is a suspension
	// day.
	Exception *schedule.Exception `json:"exception,omitempty"`
}

type areasResponse struct {
	Areas []areaView `json:"areas"`
}

type areaView struct {
	ID   string `json:"id"`
	Ward string `json:"ward"`
	Name string `json:"name"`
}

type rescheduleReq struct {
	AreaID string
	Locale locale.Locale
}

type rescheduleResponse struct {
	Status string `json:"status"`
	Area   string `json:"area"`
}

func occurrenceToView(occ *schedule.Occurrence, loc locale.Locale) *occurrenceView {
	if occ == nil {
		return nil
	}
	v := &occurrenceView{Date: occ.Date, Categories: make([]categoryView, len(occ.Categories))}
	for i, c := range occ.Categories {
		v.Categories[i] = categoryView{ID: c, Name: c.DisplayName(loc), Color: c.Color()}
	}
	return v
}

// Endpoints backed by the engines. Absence of a match is an empty result,
// never an endpoint error; only unknown areas and boundary failures err.

func searchEndpoint(svc *Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*searchReq)
		cat := svc.Data().Catalog
		items := cat.Search(req.Query, req.Locale)
		resp := &searchResponse{
			Query:   req.Query,
			Locale:  req.Locale,
			Results: make([]catalog.Localized, len(items)),
		}
		for i, it := range items {
			resp.Results[i] = it.Localize(req.Locale)
		}
		if len(items) == 0 {
			resp.Suggestions = cat.Suggestions(req.Query, req.Locale, 3)
		}
		return resp, nil
	}
}

func suggestEndpoint(svc *Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*suggestReq)
		return &suggestResponse{
			Suggestions: svc.Data().Catalog.Suggestions(req.Query, req.Locale, req.Limit),
		}, nil
	}
}

func popularEndpoint(svc *Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*popularReq)
		return &popularResponse{Terms: svc.Data().Catalog.PopularTerms(req.Locale, req.Limit)}, nil
	}
}

func listAreasEndpoint(svc *Service) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		all := svc.Data().Areas.All()
		resp := &areasResponse{Areas: make([]areaView, len(all))}
		for i, a := range all {
			resp.Areas[i] = areaView{ID: a.ID, Ward: a.Ward, Name: a.Name.Resolve(locale.Default)}
		}
		return resp, nil
	}
}

func collectionOnEndpoint(svc *Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*collectionReq)
		d := svc.Data()
		a, err := d.area(req.AreaID)
		if err != nil {
			return nil, err
		}
		occ := schedule.TodayOccurrence(a, d.Calendar, req.Date)
		return &collectionResponse{
			Area:       a.ID,
			Occurrence: occurrenceToView(occ, req.Locale),
			Exception:  d.Calendar.Lookup(req.Date),
		}, nil
	}
}

func collectionTodayEndpoint(svc *Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*collectionReq)
		d := svc.Data()
		a, err := d.area(req.AreaID)
		if err != nil {
			return nil, err
		}
		today := svc.today()
		occ := schedule.TodayOccurrence(a, d.Calendar, today)
		return &collectionResponse{
			Area:       a.ID,
			Occurrence: occurrenceToView(occ, req.Locale),
			Exception:  d.Calendar.Lookup(today),
		}, nil
	}
}

func collectionNextEndpoint(svc *Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*collectionReq)
		d := svc.Data()
		a, err := d.area(req.AreaID)
		if err != nil {
			return nil, err
		}
		occ := schedule.NextOccurrence(a, d.Calendar, svc.today(), schedule.DefaultHorizonDays)
		return &collectionResponse{
			Area:       a.ID,
			Occurrence: occurrenceToView(occ, req.Locale),
		}, nil
	}
}

func rescheduleEndpoint(svc *Service) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*rescheduleReq)
		d := svc.Data()
		a, err := d.area(req.AreaID)
		if err != nil {
			return nil, err
		}
		settings := notify.LoadSettings(svc.KV, svc.Logger)
		if err := svc.Scheduler.Reschedule(ctx, a, d.Calendar, settings, req.Locale); err != nil {
			return nil, fmt.Errorf("reschedule: %w", err)
		}
		notify.SaveSelectedArea(svc.KV, svc.Logger, a.ID)
		return &rescheduleResponse{Status: "ok", Area: a.ID}, nil
	}
}
