package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/Tannang0903/campus-events/internal/interval"
	"github.com/Tannang0903/campus-events/internal/lifecycle"
	"github.com/Tannang0903/campus-events/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo ports.EventRepo
	log  logger.Logger
}

func NewEventService(repo ports.EventRepo, log logger.Logger) *EventService {
	return &EventService{repo: repo, log: log}
}

func (s *EventService) Create(ctx context.Context, actor domain.Actor, input domain.CreateEventInput) (*domain.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	status := domain.EventStatusPending
	if actor.HasRole(domain.RoleAdmin) {
		status = domain.EventStatusApproved
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:                  uuid.New().String(),
		Name:                input.Name,
		Introduction:        input.Introduction,
		Description:         input.Description,
		ImageURL:            input.ImageURL,
		StartAt:             input.StartAt,
		EndAt:               input.EndAt,
		FullAddress:         input.FullAddress,
		Latitude:            input.Latitude,
		Longitude:           input.Longitude,
		Status:              status,
		RepresentativeOrgID: input.RepresentativeOrgID,
		CreatedBy:           actor.ID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	roles, regWindows, attWindows, orgs := buildSubCollections(event.ID, input)

	if err := s.repo.Create(ctx, event, roles, regWindows, attWindows, orgs); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("status", string(event.Status)),
		logger.String("created_by", actor.ID),
	)

	return event, nil
}

// Update validates the payload and then destructively replaces every
// sub-collection: windows, roles and organization links are deleted and
// recreated, not merged.
func (s *EventService) Update(ctx context.Context, id string, actor domain.Actor, input domain.CreateEventInput) (*domain.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	event := &domain.Event{
		ID:                  existing.ID,
		Name:                input.Name,
		Introduction:        input.Introduction,
		Description:         input.Description,
		ImageURL:            input.ImageURL,
		StartAt:             input.StartAt,
		EndAt:               input.EndAt,
		FullAddress:         input.FullAddress,
		Latitude:            input.Latitude,
		Longitude:           input.Longitude,
		Status:              existing.Status,
		RepresentativeOrgID: input.RepresentativeOrgID,
		CreatedBy:           existing.CreatedBy,
		CreatedAt:           existing.CreatedAt,
		UpdatedAt:           time.Now().UTC(),
	}

	roles, regWindows, attWindows, orgs := buildSubCollections(event.ID, input)

	if err := s.repo.Replace(ctx, event, roles, regWindows, attWindows, orgs); err != nil {
		return nil, fmt.Errorf("replace event: %w", err)
	}

	s.log.Info("event updated",
		logger.String("event_id", event.ID),
		logger.String("updated_by", actor.ID),
	)

	return event, nil
}

func (s *EventService) Cancel(ctx context.Context, id string, actor domain.Actor) error {
	return s.transition(ctx, id, actor, domain.EventStatusCancelled)
}

func (s *EventService) Approve(ctx context.Context, id string, actor domain.Actor) error {
	return s.transition(ctx, id, actor, domain.EventStatusApproved)
}

func (s *EventService) Reject(ctx context.Context, id string, actor domain.Actor) error {
	return s.transition(ctx, id, actor, domain.EventStatusRejected)
}

func (s *EventService) transition(ctx context.Context, id string, actor domain.Actor, target domain.EventStatus) error {
	if !actor.CanModerate() {
		return domain.ErrForbidden
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	switch target {
	case domain.EventStatusApproved, domain.EventStatusRejected:
		if event.Status != domain.EventStatusPending {
			return domain.ErrInvalidTransition
		}
	case domain.EventStatusCancelled:
		if event.Status == domain.EventStatusCancelled || event.Status == domain.EventStatusRejected {
			return domain.ErrInvalidTransition
		}
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	s.log.Info("event status changed",
		logger.String("event_id", id),
		logger.String("status", string(target)),
		logger.String("actor_id", actor.ID),
	)

	return nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.EventView, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	view := buildEventView(time.Now().UTC(), details)
	return view, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.EventView, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	// One clock reading for the whole listing.
	now := time.Now().UTC()

	views := make([]*domain.EventView, 0, len(all))
	for _, details := range all {
		views = append(views, buildEventView(now, details))
	}
	return views, nil
}

func buildEventView(now time.Time, details *domain.EventDetails) *domain.EventView {
	view := &domain.EventView{
		Details: *details,
		CalculatedStatus: lifecycle.Resolve(
			now,
			details.Event.Status,
			details.Event.StartAt,
			details.Event.EndAt,
			details.AttendanceWindows,
			details.RegistrationWindows,
		),
	}

	for _, w := range details.RegistrationWindows {
		view.RegistrationWindows = append(view.RegistrationWindows, domain.RegistrationWindowView{
			RegistrationWindow: w,
			Status:             interval.Status(now, w.StartAt, w.EndAt),
		})
		if !w.StartAt.After(now) {
			view.HasOrganizedRegistration = true
		}
	}

	for _, w := range details.AttendanceWindows {
		view.AttendanceWindows = append(view.AttendanceWindows, domain.AttendanceWindowView{
			AttendanceWindow: w,
			Status:           interval.Status(now, w.StartAt, w.EndAt),
		})
	}

	return view
}

func validateEventInput(input domain.CreateEventInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !input.EndAt.After(input.StartAt) {
		return fmt.Errorf("%w: end_at must be after start_at", domain.ErrValidation)
	}
	if len(input.Roles) == 0 {
		return fmt.Errorf("%w: at least one role is required", domain.ErrValidation)
	}
	for _, role := range input.Roles {
		if role.Quantity <= 0 {
			return fmt.Errorf("%w: role quantity must be positive", domain.ErrValidation)
		}
		if role.Score < 0 {
			return fmt.Errorf("%w: role score must not be negative", domain.ErrValidation)
		}
	}

	regIntervals := toIntervals(input.RegistrationWindows)
	if !interval.NoPairwiseOverlap(regIntervals) {
		return fmt.Errorf("%w: registration windows must not overlap", domain.ErrValidation)
	}
	if !interval.AllEndBefore(regIntervals, input.StartAt) {
		return fmt.Errorf("%w: registration windows must end before the event starts", domain.ErrValidation)
	}

	attIntervals := toIntervals(input.AttendanceWindows)
	if !interval.NoPairwiseOverlap(attIntervals) {
		return fmt.Errorf("%w: attendance windows must not overlap", domain.ErrValidation)
	}
	if !interval.AllContainedWithin(attIntervals, interval.Of(input.StartAt, input.EndAt)) {
		return fmt.Errorf("%w: attendance windows must lie within the event", domain.ErrValidation)
	}

	return nil
}

func toIntervals(windows []domain.WindowInput) []interval.Interval {
	res := make([]interval.Interval, len(windows))
	for i, w := range windows {
		res[i] = interval.Of(w.StartAt, w.EndAt)
	}
	return res
}

func buildSubCollections(eventID string, input domain.CreateEventInput) (
	[]domain.EventRole,
	[]domain.RegistrationWindow,
	[]domain.AttendanceWindow,
	[]domain.OrganizationInEvent,
) {
	roles := make([]domain.EventRole, 0, len(input.Roles))
	for _, r := range input.Roles {
		roles = append(roles, domain.EventRole{
			ID:            uuid.New().String(),
			EventID:       eventID,
			Name:          r.Name,
			Description:   r.Description,
			Quantity:      r.Quantity,
			Score:         r.Score,
			IsNeedApprove: r.IsNeedApprove,
		})
	}

	regWindows := make([]domain.RegistrationWindow, 0, len(input.RegistrationWindows))
	for _, w := range input.RegistrationWindows {
		regWindows = append(regWindows, domain.RegistrationWindow{
			ID:      uuid.New().String(),
			EventID: eventID,
			StartAt: w.StartAt,
			EndAt:   w.EndAt,
		})
	}

	attWindows := make([]domain.AttendanceWindow, 0, len(input.AttendanceWindows))
	for _, w := range input.AttendanceWindows {
		code := uuid.New().String()
		attWindows = append(attWindows, domain.AttendanceWindow{
			ID:        uuid.New().String(),
			EventID:   eventID,
			StartAt:   w.StartAt,
			EndAt:     w.EndAt,
			Code:      code,
			QRPayload: fmt.Sprintf("campus-events://check-in?code=%s", code),
		})
	}

	orgs := make([]domain.OrganizationInEvent, 0, len(input.Organizations))
	for _, o := range input.Organizations {
		orgs = append(orgs, domain.OrganizationInEvent{
			ID:             uuid.New().String(),
			EventID:        eventID,
			OrganizationID: o.OrganizationID,
			Role:           o.Role,
		})
	}

	return roles, regWindows, attWindows, orgs
}
