package services

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"seacatering/internal/models/db_models"
	"seacatering/internal/models/request_models"
	"seacatering/internal/models/response_models"
	"seacatering/internal/repositories"
	"seacatering/pkg/utils"
)

// 4.3 approximates the number of delivery weeks in a month.
var weeksPerMonth = decimal.NewFromFloat(4.3)

// priceTolerance absorbs client-side float rounding; anything beyond it is
// treated as tampering.
var priceTolerance = decimal.NewFromFloat(0.01)

var phonePattern = regexp.MustCompile(`^\d+$`)

type SubscriptionServiceInterface interface {
	CreateSubscription(ctx context.Context, auth utils.AuthContext, req request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error)
	PauseSubscription(ctx context.Context, auth utils.AuthContext, id uuid.UUID, startDate, endDate time.Time) error
	CancelSubscription(ctx context.Context, auth utils.AuthContext, id uuid.UUID) error
	ResumeSubscription(ctx context.Context, auth utils.AuthContext, id uuid.UUID) error
	ListSubscriptions(ctx context.Context, auth utils.AuthContext) ([]response_models.SubscriptionResponse, error)
}

type SubscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	catalogRepo      repositories.CatalogRepository
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	catalogRepo repositories.CatalogRepository,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		catalogRepo:      catalogRepo,
	}
}

// ComputeTotalPrice is the authoritative monthly total:
// plan price x meal types x delivery days x 4.3, rounded to 2 decimals.
// The client may preview this but is never trusted with it.
func ComputeTotalPrice(planPrice int64, mealTypes, deliveryDays int) decimal.Decimal {
	return decimal.NewFromInt(planPrice).
		Mul(decimal.NewFromInt(int64(mealTypes * deliveryDays))).
		Mul(weeksPerMonth).
		Round(2)
}

func (s *SubscriptionService) CreateSubscription(
	ctx context.Context,
	auth utils.AuthContext,
	req request_models.CreateSubscriptionRequest,
) (*response_models.SubscriptionResponse, error) {

	if strings.TrimSpace(req.FullName) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.PlanName) == "" ||
		len(req.MealTypeNames) == 0 ||
		len(req.DeliveryDayNames) == 0 ||
		req.TotalPrice <= 0 {
		return nil, utils.ErrMissingRequiredFields
	}

	if !phonePattern.MatchString(req.Phone) {
		return nil, utils.ErrPhoneDigitsOnly
	}

	mealTypes, err := s.catalogRepo.FindMealTypesByNames(ctx, req.MealTypeNames)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(mealTypes) != len(req.MealTypeNames) {
		return nil, utils.ErrUnknownMealType
	}

	deliveryDays, err := s.catalogRepo.FindDeliveryDaysByNames(ctx, req.DeliveryDayNames)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(deliveryDays) != len(req.DeliveryDayNames) {
		return nil, utils.ErrUnknownDeliveryDay
	}

	plan, err := s.catalogRepo.FindMealPlanByName(ctx, req.PlanName)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrUnknownMealPlan
	}

	total := ComputeTotalPrice(plan.Price, len(mealTypes), len(deliveryDays))
	submitted := decimal.NewFromFloat(req.TotalPrice)
	if total.Sub(submitted).Abs().GreaterThan(priceTolerance) {
		log.Printf("price mismatch: client sent %s, server calculated %s", submitted, total)
		return nil, utils.ErrPriceMismatch
	}

	var allergies *string
	if req.Allergies != nil && strings.TrimSpace(*req.Allergies) != "" {
		a := strings.TrimSpace(*req.Allergies)
		allergies = &a
	}

	sub := &db_models.Subscription{
		UserID:       auth.UserID,
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        req.Phone,
		MealPlanID:   plan.ID,
		Allergies:    allergies,
		TotalPrice:   total,
		Status:       db_models.SubStatusActive,
		MealTypes:    mealTypes,
		DeliveryDays: deliveryDays,
	}

	if err := s.subscriptionRepo.CreateWithSelections(ctx, sub); err != nil {
		log.Printf("create subscription: %v", err)
		return nil, utils.ErrDatabaseError
	}

	created, err := s.subscriptionRepo.FindOwnedDetailed(ctx, sub.ID, auth.UserID)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}

	resp := mapSubscription(created)
	return &resp, nil
}

func (s *SubscriptionService) PauseSubscription(
	ctx context.Context,
	auth utils.AuthContext,
	id uuid.UUID,
	startDate, endDate time.Time,
) error {
	if endDate.Before(startDate) || startDate.Before(utils.StartOfDay(time.Now())) {
		return utils.ErrInvalidPauseRange
	}

	sub, err := s.subscriptionRepo.FindOwned(ctx, id, auth.UserID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		return utils.ErrSubscriptionNotFound
	}
	switch sub.Status {
	case db_models.SubStatusCancelled:
		return utils.ErrSubscriptionCancelled
	case db_models.SubStatusPaused:
		return utils.ErrSubscriptionNotActive
	}

	rows, err := s.subscriptionRepo.UpdateOwned(ctx, id, auth.UserID, map[string]interface{}{
		"status":            db_models.SubStatusPaused,
		"paused_start_date": startDate.Unix(),
		"paused_end_date":   endDate.Unix(),
	})
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrSubscriptionNotFound
	}
	return nil
}

func (s *SubscriptionService) CancelSubscription(
	ctx context.Context,
	auth utils.AuthContext,
	id uuid.UUID,
) error {
	sub, err := s.subscriptionRepo.FindOwned(ctx, id, auth.UserID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		return utils.ErrSubscriptionNotFound
	}

	// Repeated cancel is a no-op success; cancelledAt keeps its first value.
	if sub.Status == db_models.SubStatusCancelled {
		return nil
	}

	rows, err := s.subscriptionRepo.UpdateOwned(ctx, id, auth.UserID, map[string]interface{}{
		"status":            db_models.SubStatusCancelled,
		"cancelled_at":      utils.NowUnixSeconds(),
		"paused_start_date": nil,
		"paused_end_date":   nil,
	})
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrSubscriptionNotFound
	}
	return nil
}

func (s *SubscriptionService) ResumeSubscription(
	ctx context.Context,
	auth utils.AuthContext,
	id uuid.UUID,
) error {
	sub, err := s.subscriptionRepo.FindOwned(ctx, id, auth.UserID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		return utils.ErrSubscriptionNotFound
	}
	switch sub.Status {
	case db_models.SubStatusCancelled:
		// Cancellation is terminal; a cancelled subscription cannot come back.
		return utils.ErrSubscriptionCancelled
	case db_models.SubStatusActive:
		return utils.ErrSubscriptionNotPaused
	}

	rows, err := s.subscriptionRepo.UpdateOwned(ctx, id, auth.UserID, map[string]interface{}{
		"status":            db_models.SubStatusActive,
		"paused_start_date": nil,
		"paused_end_date":   nil,
		"reactivated_at":    utils.NowUnixSeconds(),
	})
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrSubscriptionNotFound
	}
	return nil
}

func (s *SubscriptionService) ListSubscriptions(
	ctx context.Context,
	auth utils.AuthContext,
) ([]response_models.SubscriptionResponse, error) {
	subs, err := s.subscriptionRepo.ListActiveByUser(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SubscriptionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, mapSubscription(&subs[i]))
	}
	return out, nil
}

func mapSubscription(sub *db_models.Subscription) response_models.SubscriptionResponse {
	mealTypes := make([]string, 0, len(sub.MealTypes))
	for _, mt := range sub.MealTypes {
		mealTypes = append(mealTypes, mt.Name)
	}
	deliveryDays := make([]string, 0, len(sub.DeliveryDays))
	for _, dd := range sub.DeliveryDays {
		deliveryDays = append(deliveryDays, dd.Name)
	}

	created := sub.CreatedAt
	updated := sub.UpdatedAt
	return response_models.SubscriptionResponse{
		ID:              sub.ID,
		FullName:        sub.FullName,
		Phone:           sub.Phone,
		Allergies:       sub.Allergies,
		TotalPrice:      sub.TotalPrice,
		Status:          string(sub.Status),
		CreatedAt:       time.Unix(created, 0).UTC().Format(time.RFC3339),
		UpdatedAt:       time.Unix(updated, 0).UTC().Format(time.RFC3339),
		PausedStartDate: utils.FormatUnixRFC3339(sub.PausedStartDate),
		PausedEndDate:   utils.FormatUnixRFC3339(sub.PausedEndDate),
		CancelledAt:     utils.FormatUnixRFC3339(sub.CancelledAt),
		ReactivatedAt:   utils.FormatUnixRFC3339(sub.ReactivatedAt),
		MealPlan: response_models.MealPlanSummary{
			Name:        sub.MealPlan.Name,
			Description: sub.MealPlan.Description,
			Price:       sub.MealPlan.Price,
			ImageUrl:    sub.MealPlan.ImageUrl,
		},
		MealTypes:    mealTypes,
		DeliveryDays: deliveryDays,
	}
}
