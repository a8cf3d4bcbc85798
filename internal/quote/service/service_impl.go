package service

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	addondomain "github.com/lodgewise/lodgewise/internal/addon/domain"
	"github.com/lodgewise/lodgewise/internal/clock"
	"github.com/lodgewise/lodgewise/internal/config"
	pricingruledomain "github.com/lodgewise/lodgewise/internal/pricingrule/domain"
	"github.com/lodgewise/lodgewise/internal/quote/domain"
	"github.com/lodgewise/lodgewise/internal/quote/engine"
	roomtypedomain "github.com/lodgewise/lodgewise/internal/roomtype/domain"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Config       config.Config
	Clock        clock.Clock
	RoomTypeRepo roomtypedomain.Repository
	RuleRepo     pricingruledomain.Repository
	AddonRepo    addondomain.Repository
	Registry     *prometheus.Registry `optional:"true"`
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	clock         clock.Clock
	roomTypes     roomtypedomain.Repository
	rules         pricingruledomain.Repository
	addons        addondomain.Repository
	maxStayNights int
	metrics       *metrics
}

func New(p Params) domain.Service {
	maxNights := p.Config.Quote.MaxStayNights
	if maxNights <= 0 {
		maxNights = engine.DefaultMaxStayNights
	}
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("quote.service"),
		clock:         p.Clock,
		roomTypes:     p.RoomTypeRepo,
		rules:         p.RuleRepo,
		addons:        p.AddonRepo,
		maxStayNights: maxNights,
		metrics:       newMetrics(p.Registry),
	}
}

// Quote prices a hypothetical stay. It reads the room type, the rules
// overlapping the stay and the selected add-ons, then hands everything to
// the pure engine. Nothing is written; the caller owns persistence.
func (s *Service) Quote(ctx context.Context, req domain.QuoteRequest) (*domain.QuoteResult, error) {
	started := s.clock.Now(ctx)

	result, err := s.quote(ctx, req)

	elapsed := s.clock.Now(ctx).Sub(started).Seconds()
	s.metrics.observe(outcomeOf(err), elapsed)
	return result, err
}

func (s *Service) quote(ctx context.Context, req domain.QuoteRequest) (*domain.QuoteResult, error) {
	if req.PropertyID == 0 || req.RoomTypeID == 0 || req.TotalGuests < 1 {
		return nil, domain.ErrInvalidRequest
	}

	nights := engine.Nights(req.CheckIn, req.CheckOut)
	if nights <= 0 || nights > s.maxStayNights {
		return nil, domain.ErrInvalidDateRange
	}

	roomType, err := s.roomTypes.FindActiveByID(ctx, s.db, req.PropertyID, req.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, domain.ErrRoomTypeNotFound
	}

	rules, err := s.rules.ListOverlapping(ctx, s.db, req.PropertyID, req.RoomTypeID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	nightly := engine.ResolveNightlyRates(roomType.BasePrice, req.RoomTypeID, rules, req.CheckIn, req.CheckOut)

	if err := engine.ValidateStayConstraints(nightly.Flagged, nights); err != nil {
		return nil, err
	}

	addons, err := s.addons.FindActiveByIDs(ctx, s.db, req.PropertyID, req.AddonIDs)
	if err != nil {
		return nil, err
	}
	addonTotal := engine.AggregateAddonCost(addons, req.TotalGuests, nights)

	totals := engine.Assemble(nightly.RoomTotal, addonTotal, nights)

	result := &domain.QuoteResult{
		QuoteRef:       ulid.Make().String(),
		TotalAmount:    totals.TotalAmount,
		PricePerNight:  totals.PricePerNight,
		NumberOfNights: nights,
	}

	s.log.Info("quote computed",
		zap.String("quote_ref", result.QuoteRef),
		zap.String("property_id", req.PropertyID.String()),
		zap.String("room_type_id", req.RoomTypeID.String()),
		zap.Time("check_in", req.CheckIn),
		zap.Time("check_out", req.CheckOut),
		zap.Int("nights", nights),
		zap.Int("rules_considered", len(rules)),
		zap.Int("addons_applied", len(addons)),
		zap.Float64("total_amount", result.TotalAmount),
	)
	return result, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, domain.ErrInvalidDateRange):
		return "invalid_date_range"
	case errors.Is(err, domain.ErrRoomTypeNotFound):
		return "room_type_not_found"
	case errors.Is(err, domain.ErrMinStayViolation), errors.Is(err, domain.ErrMaxStayViolation):
		return "stay_constraint"
	default:
		return "error"
	}
}
