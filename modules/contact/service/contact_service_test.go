package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"meetbrief-api/core/errors"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/contact/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_RelaysAsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Alice", r.FormValue("name"))
		assert.Equal(t, "alice@acme.com", r.FormValue("email"))
		assert.Equal(t, "hello there", r.FormValue("message"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewContactService(upstream.New(srv.URL))

	resp, appErr := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "Alice",
		Email:   "alice@acme.com",
		Subject: "support",
		Message: "hello there",
	})

	require.Nil(t, appErr)
	assert.True(t, resp.Sent)
}

func TestSubmit_ValidatesBeforeSending(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	svc := NewContactService(upstream.New(srv.URL))

	cases := []dto.ContactRequest{
		{Email: "a@b.co", Message: "x"},
		{Name: "A", Message: "x"},
		{Name: "A", Email: "a@b.co"},
		{Name: "  ", Email: "a@b.co", Message: "x"},
	}
	for _, req := range cases {
		_, appErr := svc.Submit(context.Background(), &req)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	}
	assert.EqualValues(t, 0, hits.Load())
}

func TestSubmit_RelayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewContactService(upstream.New(srv.URL))

	_, appErr := svc.Submit(context.Background(), &dto.ContactRequest{
		Name: "Alice", Email: "alice@acme.com", Message: "hi",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUpstream, appErr.Code)
}
