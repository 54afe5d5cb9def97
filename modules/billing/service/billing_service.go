package service

import (
	"context"
	"net/http"

	"meetbrief-api/core/errors"
	"meetbrief-api/core/logger"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/billing/dto"
)

// BillingService is a thin projection of the heart API's billing surface.
// Billing state lives upstream; nothing is cached or persisted here.
type BillingService interface {
	GetBalance(ctx context.Context, bearer string) (*dto.BalanceResponse, *errors.AppError)
	GetTransactions(ctx context.Context, bearer string) (*dto.TransactionListResponse, *errors.AppError)
	Purchase(ctx context.Context, bearer string, req *dto.PurchaseRequest) (*dto.PurchaseResponse, *errors.AppError)
	GetAutoTopUp(ctx context.Context, bearer string) (*dto.AutoTopUpConfig, *errors.AppError)
	SetAutoTopUp(ctx context.Context, bearer string, cfg *dto.AutoTopUpConfig) (*dto.AutoTopUpConfig, *errors.AppError)
	GetSubscriptionStatus(ctx context.Context, bearer string) (*dto.SubscriptionStatusResponse, *errors.AppError)
	CreateSubscription(ctx context.Context, bearer string, req *dto.CreateSubscriptionRequest) (*dto.CreateSubscriptionResponse, *errors.AppError)
	SetAutoRenewal(ctx context.Context, bearer string, req *dto.AutoRenewalRequest) *errors.AppError
}

type billingService struct {
	heart *upstream.Client
}

func NewBillingService(heart *upstream.Client) BillingService {
	return &billingService{heart: heart}
}

func (s *billingService) GetBalance(ctx context.Context, bearer string) (*dto.BalanceResponse, *errors.AppError) {
	var resp dto.BalanceResponse
	if err := s.get(ctx, bearer, "/billing/balance", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *billingService) GetTransactions(ctx context.Context, bearer string) (*dto.TransactionListResponse, *errors.AppError) {
	var resp dto.TransactionListResponse
	if err := s.get(ctx, bearer, "/billing/transactions", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *billingService) Purchase(ctx context.Context, bearer string, req *dto.PurchaseRequest) (*dto.PurchaseResponse, *errors.AppError) {
	if req.Credits <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "credits must be positive", nil)
	}

	var resp dto.PurchaseResponse
	err := s.heart.DoJSON(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   "/billing/purchase",
		Bearer: bearer,
		Body:   req,
	}, &resp)
	if err != nil {
		logger.Error("BillingService:Purchase:Error", "error", err)
		return nil, asAppError(err)
	}

	logger.Info("BillingService:Purchase:Success", "credits", req.Credits)
	return &resp, nil
}

func (s *billingService) GetAutoTopUp(ctx context.Context, bearer string) (*dto.AutoTopUpConfig, *errors.AppError) {
	var resp dto.AutoTopUpConfig
	if err := s.get(ctx, bearer, "/billing/auto-top-up", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *billingService) SetAutoTopUp(ctx context.Context, bearer string, cfg *dto.AutoTopUpConfig) (*dto.AutoTopUpConfig, *errors.AppError) {
	var resp dto.AutoTopUpConfig
	err := s.heart.DoJSON(ctx, upstream.Request{
		Method: http.MethodPut,
		Path:   "/billing/auto-top-up",
		Bearer: bearer,
		Body:   cfg,
	}, &resp)
	if err != nil {
		return nil, asAppError(err)
	}
	return &resp, nil
}

func (s *billingService) GetSubscriptionStatus(ctx context.Context, bearer string) (*dto.SubscriptionStatusResponse, *errors.AppError) {
	var resp dto.SubscriptionStatusResponse
	if err := s.get(ctx, bearer, "/stripe/subscription/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *billingService) CreateSubscription(ctx context.Context, bearer string, req *dto.CreateSubscriptionRequest) (*dto.CreateSubscriptionResponse, *errors.AppError) {
	var resp dto.CreateSubscriptionResponse
	err := s.heart.DoJSON(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   "/stripe/create-subscription",
		Bearer: bearer,
		Body:   req,
	}, &resp)
	if err != nil {
		logger.Error("BillingService:CreateSubscription:Error", "error", err)
		return nil, asAppError(err)
	}
	return &resp, nil
}

func (s *billingService) SetAutoRenewal(ctx context.Context, bearer string, req *dto.AutoRenewalRequest) *errors.AppError {
	err := s.heart.DoJSON(ctx, upstream.Request{
		Method: http.MethodPut,
		Path:   "/stripe/subscription/auto-renewal",
		Bearer: bearer,
		Body:   req,
	}, nil)
	if err != nil {
		return asAppError(err)
	}
	return nil
}

func (s *billingService) get(ctx context.Context, bearer, path string, out any) *errors.AppError {
	err := s.heart.DoJSON(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   path,
		Bearer: bearer,
	}, out)
	if err != nil {
		logger.Error("BillingService:Get:Error", "path", path, "error", err)
		return asAppError(err)
	}
	return nil
}

func asAppError(err error) *errors.AppError {
	if ae, ok := err.(*errors.AppError); ok {
		return ae
	}
	return errors.NewAppError(errors.ErrUpstream, err.Error(), err)
}
