package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"strings"

	"meetbrief-api/core/errors"
	"meetbrief-api/core/logger"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/contact/dto"
)

// ContactService forwards "contact us" submissions to the third-party
// form-relay mailer. The relay only speaks multipart/form-data.
type ContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, *errors.AppError)
}

type contactService struct {
	relay *upstream.Client
}

func NewContactService(relay *upstream.Client) ContactService {
	return &contactService{relay: relay}
}

func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, *errors.AppError) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name, email and message are required", nil)
	}

	body, contentType, err := buildForm(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to build form", err)
	}

	err = s.relay.DoRaw(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   "",
	}, contentType, body, nil)
	if err != nil {
		logger.Error("ContactService:Submit:Error", "error", err)
		if ae, ok := err.(*errors.AppError); ok {
			return nil, ae
		}
		return nil, errors.NewAppError(errors.ErrUpstream, err.Error(), err)
	}

	logger.Info("ContactService:Submit:Success", "email", req.Email)
	return &dto.ContactResponse{Sent: true}, nil
}

func buildForm(req *dto.ContactRequest) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
		"message": req.Message,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}
