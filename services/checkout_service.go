package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/adiafa-dev/e-commerce-mvp/libs"
	"github.com/adiafa-dev/e-commerce-mvp/models"
	"github.com/adiafa-dev/e-commerce-mvp/repositories"
)

// CheckoutService drives the checkout composer: Editing -> Submitting ->
// {Succeeded, Failed}. Validation and guard rejections keep the draft in
// Editing and never reach the network. A failed submission is terminal for
// that attempt; nothing retries, and the carried-over selection stays in
// storage so the user can re-initiate.
type CheckoutService struct {
	orderRepo *repositories.OrderRepository
	store     repositories.CarryOverStore
	signal    *libs.CartSignal
	validate  *validator.Validate
	logger    *zap.Logger
}

func NewCheckoutService(orderRepo *repositories.OrderRepository, store repositories.CarryOverStore, signal *libs.CartSignal, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		orderRepo: orderRepo,
		store:     store,
		signal:    signal,
		validate:  validator.New(),
		logger:    logger,
	}
}

// ShippingOptions is the fixed enumeration shown on the checkout page. The
// free option legitimately costs 0; "nothing chosen" is the empty method, a
// separate sentinel.
func ShippingOptions() []models.ShippingOption {
	methods := []models.ShippingMethod{models.ShippingRegular, models.ShippingExpress, models.ShippingFree}
	options := make([]models.ShippingOption, 0, len(methods))
	for _, m := range methods {
		options = append(options, models.ShippingOption{Method: m, Label: m.Label(), Cost: m.Cost()})
	}
	return options
}

func PaymentChannels() []models.PaymentChannel {
	return []models.PaymentChannel{models.PaymentBNI, models.PaymentBRI, models.PaymentBCA, models.PaymentMandiri}
}

// GoodsTotal is the sum of price x quantity over the carried-over lines. The
// payment channel never contributes; shipping is added separately.
func GoodsTotal(lines []models.CartLine) int {
	total := 0
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total
}

// ValidateDraft checks the draft against the fixed schema and returns
// per-field messages, empty when the draft is valid.
func (s *CheckoutService) ValidateDraft(draft models.CheckoutDraft) map[string]string {
	fieldErrors := map[string]string{}

	err := s.validate.Struct(draft)
	if err == nil {
		return fieldErrors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["form"] = "Invalid checkout form"
		return fieldErrors
	}

	for _, fe := range validationErrors {
		switch fe.StructField() {
		case "Name":
			fieldErrors["name"] = "Name is required"
		case "Phone":
			fieldErrors["phone"] = "Phone number is invalid"
		case "City":
			fieldErrors["city"] = "City is required"
		case "Postal":
			fieldErrors["postal"] = "Postal code is invalid"
		case "Detail":
			fieldErrors["detail"] = "Address is required"
		case "ShippingMethod":
			fieldErrors["shipping"] = "Please select a shipping method"
		case "PaymentChannel":
			fieldErrors["payment"] = "Invalid payment channel"
		}
	}
	return fieldErrors
}

// View renders the checkout page from the carried-over selection, grouped by
// shop, together with the fixed shipping and payment enumerations.
func (s *CheckoutService) View(ctx context.Context, userID int) (models.CheckoutViewResponse, error) {
	lines, err := s.store.LoadSelection(ctx, userID)
	if err != nil {
		return models.CheckoutViewResponse{}, err
	}

	profile, err := s.store.LoadProfile(ctx, userID)
	if err != nil {
		s.logger.Warn("profile load failed", zap.Int("user_id", userID), zap.Error(err))
		profile = nil
	}

	return models.CheckoutViewResponse{
		Groups:          GroupByShop(lines),
		Profile:         profile,
		GoodsTotal:      GoodsTotal(lines),
		ShippingOptions: ShippingOptions(),
		PaymentChannels: PaymentChannels(),
	}, nil
}

// Submit runs one checkout attempt. The returned field errors are non-empty
// exactly when the draft failed validation; the result then stays in Editing.
func (s *CheckoutService) Submit(ctx context.Context, token string, userID int, draft models.CheckoutDraft) (models.CheckoutResultResponse, map[string]string) {
	if fieldErrors := s.ValidateDraft(draft); len(fieldErrors) > 0 {
		return models.CheckoutResultResponse{State: models.CheckoutEditing}, fieldErrors
	}

	lines, err := s.store.LoadSelection(ctx, userID)
	if err != nil || len(lines) == 0 {
		return models.CheckoutResultResponse{
			State:   models.CheckoutEditing,
			Message: "Your cart is empty",
		}, nil
	}

	if token == "" {
		return models.CheckoutResultResponse{
			State:   models.CheckoutEditing,
			Message: "You must log in first",
		}, nil
	}

	selectedItemIDs := make([]int, 0, len(lines))
	for _, line := range lines {
		selectedItemIDs = append(selectedItemIDs, line.CartLineID)
	}

	req := models.UpstreamCheckoutRequest{
		Address: models.CheckoutAddress{
			Name:       draft.Name,
			Phone:      draft.Phone,
			City:       draft.City,
			PostalCode: draft.Postal,
			Address:    draft.Detail,
		},
		ShippingMethod:  draft.ShippingMethod.Label(),
		SelectedItemIDs: selectedItemIDs,
	}

	total := GoodsTotal(lines) + draft.ShippingMethod.Cost()

	// Editing -> Submitting: from here on the attempt ends in a terminal state.
	if err := s.orderRepo.Checkout(ctx, token, req); err != nil {
		message := "Checkout failed"
		if apiErr, ok := libs.AsAPIError(err); ok && apiErr.Message != "" {
			message = apiErr.Message
		}
		s.logger.Warn("checkout submission failed", zap.Int("user_id", userID), zap.Error(err))

		// Carry-over and draft stay put so the user can retry.
		return models.CheckoutResultResponse{
			State:    models.CheckoutFailed,
			Message:  message,
			Redirect: "/checkout/failed",
			Total:    total,
		}, nil
	}

	if err := s.store.ClearSelection(ctx, userID); err != nil {
		s.logger.Warn("carry-over clear failed after checkout", zap.Int("user_id", userID), zap.Error(err))
	}
	s.signal.Publish(userID)

	return models.CheckoutResultResponse{
		State:    models.CheckoutSucceeded,
		Redirect: "/checkout/success",
		Total:    total,
	}, nil
}
